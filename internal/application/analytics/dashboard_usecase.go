// Package analytics contiene el resumen de negocio para el dashboard.
package analytics

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// DashboardUseCase calcula las estadísticas de venta del día.
type DashboardUseCase struct {
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	saleRepo     repository.SaleRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	saleRepo repository.SaleRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		productRepo:  productRepo,
		customerRepo: customerRepo,
		saleRepo:     saleRepo,
	}
}

// GetSalesStats devuelve el resumen del dashboard. TodaySales es la suma de
// los montos totales de las ventas del día calendario actual (hora local),
// no un conteo; el nombre se conserva por compatibilidad.
func (uc *DashboardUseCase) GetSalesStats() (*dto.SalesStatsResponse, error) {
	totalProducts, err := uc.productRepo.Count()
	if err != nil {
		return nil, err
	}
	lowStock, err := uc.productRepo.ListLowStock()
	if err != nil {
		return nil, err
	}
	activeCustomers, err := uc.customerRepo.Count()
	if err != nil {
		return nil, err
	}
	todaySales, err := uc.saleRepo.ListByDay(time.Now())
	if err != nil {
		return nil, err
	}
	total := decimal.Zero
	for _, s := range todaySales {
		total = total.Add(s.TotalAmount)
	}
	return &dto.SalesStatsResponse{
		TotalProducts:   totalProducts,
		LowStock:        len(lowStock),
		TodaySales:      total,
		ActiveCustomers: activeCustomers,
	}, nil
}
