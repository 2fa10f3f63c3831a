package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/analytics"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/sales"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/memory"
)

func TestGetSalesStats_ResumenDelDia(t *testing.T) {
	store := memory.NewStore()
	tx := memory.NewTxRunner(store)
	products := memory.NewProductRepository(store)
	customers := memory.NewCustomerRepository(store)
	salesRepo := memory.NewSaleRepository(store)

	productUC := usecase.NewProductUseCase(tx, products)
	saleUC := sales.NewSaleUseCase(tx, salesRepo)
	uc := analytics.NewDashboardUseCase(products, customers, salesRepo)

	ctx := context.Background()

	// Dos productos: uno bajo el umbral por defecto (5), otro sano.
	bajo, err := productUC.Create(ctx, "", dto.CreateProductRequest{
		StockCode: "BAJO", Name: "Producto bajo", Quantity: 4,
		SalePrice: decimal.NewFromInt(150),
	})
	require.NoError(t, err)
	_, err = productUC.Create(ctx, "", dto.CreateProductRequest{
		StockCode: "SANO", Name: "Producto sano", Quantity: 20,
		SalePrice: decimal.NewFromInt(10),
	})
	require.NoError(t, err)

	require.NoError(t, customers.Create(&entity.Customer{
		ID:        uuid.New().String(),
		Name:      "Cliente Uno",
		CreatedAt: time.Now(),
	}))

	// Venta de hoy por 150 y venta de ayer por 200: solo la de hoy cuenta.
	_, err = saleUC.Create(ctx, "", dto.CreateSaleRequest{
		ProductID:    bajo.ID,
		QuantitySold: 1,
		SalePrice:    decimal.NewFromInt(150),
	})
	require.NoError(t, err)

	require.NoError(t, salesRepo.Create(&entity.Sale{
		ID:           uuid.New().String(),
		ProductID:    bajo.ID,
		QuantitySold: 1,
		SalePrice:    decimal.NewFromInt(200),
		TotalAmount:  decimal.NewFromInt(200),
		SaleDate:     time.Now().AddDate(0, 0, -1),
	}))

	stats, err := uc.GetSalesStats()
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalProducts)
	assert.Equal(t, 1, stats.ActiveCustomers)
	assert.Equal(t, 1, stats.LowStock, "solo el producto en o bajo su umbral")
	assert.True(t, stats.TodaySales.Equal(decimal.NewFromInt(150)),
		"TodaySales es el monto vendido hoy, no acumulado: esperaba 150, obtuvo %s", stats.TodaySales)
}

func TestGetSalesStats_AlmacenVacio(t *testing.T) {
	store := memory.NewStore()
	uc := analytics.NewDashboardUseCase(
		memory.NewProductRepository(store),
		memory.NewCustomerRepository(store),
		memory.NewSaleRepository(store),
	)

	stats, err := uc.GetSalesStats()
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalProducts)
	assert.Equal(t, 0, stats.LowStock)
	assert.Equal(t, 0, stats.ActiveCustomers)
	assert.True(t, stats.TodaySales.IsZero())
}
