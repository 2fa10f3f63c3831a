package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// StockMovementRepository define el puerto del libro de auditoría de stock.
// Solo inserción y lectura: los movimientos nunca se actualizan ni borran.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	List() ([]*entity.StockMovement, error)
	ListByProduct(productID string) ([]*entity.StockMovement, error)
}
