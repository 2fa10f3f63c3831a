package sales_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/sales"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/memory"
)

type saleKit struct {
	uc        *sales.SaleUseCase
	productUC *usecase.ProductUseCase
	products  *memory.ProductRepository
	salesRepo *memory.SaleRepository
	movements *memory.StockMovementRepository
	serials   *memory.SerialNumberRepository
}

func newSaleKit() *saleKit {
	store := memory.NewStore()
	tx := memory.NewTxRunner(store)
	products := memory.NewProductRepository(store)
	salesRepo := memory.NewSaleRepository(store)
	return &saleKit{
		uc:        sales.NewSaleUseCase(tx, salesRepo),
		productUC: usecase.NewProductUseCase(tx, products),
		products:  products,
		salesRepo: salesRepo,
		movements: memory.NewStockMovementRepository(store),
		serials:   memory.NewSerialNumberRepository(store),
	}
}

// seedProduct da de alta un producto con stock inicial y devuelve su ID.
func (k *saleKit) seedProduct(t *testing.T, code string, qty int, price int64) string {
	t.Helper()
	out, err := k.productUC.Create(context.Background(), "", dto.CreateProductRequest{
		StockCode: code,
		Name:      "Producto " + code,
		Quantity:  qty,
		SalePrice: decimal.NewFromInt(price),
	})
	require.NoError(t, err)
	return out.ID
}

func TestCreateSale_TransaccionCompleta(t *testing.T) {
	kit := newSaleKit()
	ctx := context.Background()
	productID := kit.seedProduct(t, "TV", 5, 15)

	out, err := kit.uc.Create(ctx, "carlos", dto.CreateSaleRequest{
		ProductID:    productID,
		CustomerID:   "cliente-1",
		QuantitySold: 2,
		SalePrice:    decimal.NewFromInt(15),
	})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.True(t, out.TotalAmount.Equal(decimal.NewFromInt(30)),
		"el total debe derivarse como cantidad × precio: esperaba 30.00, obtuvo %s", out.TotalAmount)

	// El stock se decrementa en la misma transacción.
	product, err := kit.products.GetByID(productID)
	require.NoError(t, err)
	assert.Equal(t, 3, product.Quantity)

	// Y queda la fila de auditoría tipo sale.
	movs, err := kit.movements.ListByProduct(productID)
	require.NoError(t, err)
	var saleMovs int
	for _, m := range movs {
		if m.Type == entity.MovementTypeSale {
			saleMovs++
			assert.Equal(t, 2, m.Quantity)
			assert.Equal(t, "carlos", m.PerformedBy)
		}
	}
	assert.Equal(t, 1, saleMovs, "la venta debe emitir exactamente un movimiento sale")

	// Dos seriales disponibles pasan a sold enlazados a la venta.
	all, err := kit.serials.ListByProduct(productID)
	require.NoError(t, err)
	var vendidos int
	for _, s := range all {
		if s.Status == entity.SerialStatusSold {
			vendidos++
			assert.Equal(t, out.ID, s.SaleID)
		}
	}
	assert.Equal(t, 2, vendidos)
}

func TestCreateSale_StockInsuficienteNoDejaEscrituras(t *testing.T) {
	kit := newSaleKit()
	ctx := context.Background()
	productID := kit.seedProduct(t, "POCO", 2, 10)

	_, err := kit.uc.Create(ctx, "", dto.CreateSaleRequest{
		ProductID:    productID,
		QuantitySold: 3,
		SalePrice:    decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	product, _ := kit.products.GetByID(productID)
	assert.Equal(t, 2, product.Quantity, "el stock no debe cambiar en una venta rechazada")

	ventas, _ := kit.salesRepo.List()
	assert.Empty(t, ventas, "no debe quedar fila de venta")

	movs, _ := kit.movements.ListByProduct(productID)
	for _, m := range movs {
		assert.NotEqual(t, entity.MovementTypeSale, m.Type, "no debe quedar movimiento sale")
	}
}

func TestCreateSale_ProductoInexistenteFalla(t *testing.T) {
	kit := newSaleKit()

	_, err := kit.uc.Create(context.Background(), "", dto.CreateSaleRequest{
		ProductID:    "no-existe",
		QuantitySold: 1,
		SalePrice:    decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateSale_CantidadInvalida(t *testing.T) {
	kit := newSaleKit()
	productID := kit.seedProduct(t, "CANT", 5, 10)

	for _, qty := range []int{0, -2} {
		_, err := kit.uc.Create(context.Background(), "", dto.CreateSaleRequest{
			ProductID:    productID,
			QuantitySold: qty,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	}
}

func TestCreateSale_ClienteDesconocidoSeTolera(t *testing.T) {
	kit := newSaleKit()
	productID := kit.seedProduct(t, "WALK", 3, 10)

	out, err := kit.uc.Create(context.Background(), "", dto.CreateSaleRequest{
		ProductID:    productID,
		CustomerID:   "cliente-fantasma",
		QuantitySold: 1,
		SalePrice:    decimal.NewFromInt(10),
	})
	require.NoError(t, err)
	assert.Equal(t, "cliente-fantasma", out.CustomerID,
		"la referencia de cliente se registra tal cual, sin validar")
}

// TestCreateSale_ConcurrenciaSerializada verifica la garantía central del
// motor: dos ventas simultáneas que en conjunto exceden el stock quedan
// serializadas, exactamente una gana y el stock nunca queda negativo.
func TestCreateSale_ConcurrenciaSerializada(t *testing.T) {
	kit := newSaleKit()
	ctx := context.Background()
	productID := kit.seedProduct(t, "CONC", 5, 10)

	req := dto.CreateSaleRequest{
		ProductID:    productID,
		QuantitySold: 3,
		SalePrice:    decimal.NewFromInt(10),
	}

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = kit.uc.Create(ctx, "", req)
		}(i)
	}
	wg.Wait()

	var exitos, rechazos int
	for _, err := range errs {
		switch {
		case err == nil:
			exitos++
		default:
			assert.ErrorIs(t, err, domain.ErrInsufficientStock)
			rechazos++
		}
	}
	assert.Equal(t, 1, exitos, "exactamente una venta debe ganar la carrera")
	assert.Equal(t, 1, rechazos)

	product, _ := kit.products.GetByID(productID)
	assert.Equal(t, 2, product.Quantity)
	assert.GreaterOrEqual(t, product.Quantity, 0, "el stock nunca puede quedar negativo")
}

func TestListToday_SoloDiaCalendarioActual(t *testing.T) {
	kit := newSaleKit()
	productID := kit.seedProduct(t, "HOY", 10, 10)

	// Venta de ayer insertada directo en el repositorio.
	ayer := time.Now().AddDate(0, 0, -1)
	require.NoError(t, kit.salesRepo.Create(&entity.Sale{
		ID:           uuid.New().String(),
		ProductID:    productID,
		QuantitySold: 1,
		SalePrice:    decimal.NewFromInt(200),
		TotalAmount:  decimal.NewFromInt(200),
		SaleDate:     ayer,
	}))

	_, err := kit.uc.Create(context.Background(), "", dto.CreateSaleRequest{
		ProductID:    productID,
		QuantitySold: 1,
		SalePrice:    decimal.NewFromInt(150),
	})
	require.NoError(t, err)

	hoy, err := kit.uc.ListToday()
	require.NoError(t, err)
	require.Len(t, hoy, 1, "la venta de ayer no cuenta para hoy")
	assert.True(t, hoy[0].TotalAmount.Equal(decimal.NewFromInt(150)))
}
