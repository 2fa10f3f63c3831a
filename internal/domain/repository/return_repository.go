package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// ReturnRepository define el puerto de persistencia para Return.
type ReturnRepository interface {
	Create(ret *entity.Return) error
	GetByID(id string) (*entity.Return, error)
	Update(ret *entity.Return) error
	// List devuelve todas las devoluciones ordenadas por ReturnDate descendente.
	List() ([]*entity.Return, error)
	ListByCustomer(customerID string) ([]*entity.Return, error)
}
