package repository

import (
	"time"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para Sale.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	List() ([]*entity.Sale, error)
	ListByProduct(productID string) ([]*entity.Sale, error)
	ListByCustomer(customerID string) ([]*entity.Sale, error)
	// ListByDay devuelve las ventas cuyo SaleDate cae en el día calendario de
	// day, en la zona horaria local del servidor (comparación solo de fecha).
	ListByDay(day time.Time) ([]*entity.Sale, error)
}
