package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// SerialNumberRepository define el puerto de persistencia para SerialNumber.
type SerialNumberRepository interface {
	Create(serial *entity.SerialNumber) error
	GetByID(id string) (*entity.SerialNumber, error)
	// GetBySerial busca por el valor del serial en todo el almacén; primera
	// coincidencia en orden de inserción.
	GetBySerial(value string) (*entity.SerialNumber, error)
	Update(serial *entity.SerialNumber) error
	List() ([]*entity.SerialNumber, error)
	ListByProduct(productID string) ([]*entity.SerialNumber, error)
	// ListAvailableByProduct devuelve los seriales en estado available del
	// producto, en orden de inserción.
	ListAvailableByProduct(productID string) ([]*entity.SerialNumber, error)
}
