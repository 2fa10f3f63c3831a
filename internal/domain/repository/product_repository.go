package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// Los lookups por código o serial devuelven la primera coincidencia en orden
// de inserción, o nil si no existe.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByStockCode(code string) (*entity.Product, error)
	GetByLegacySerial(serial string) (*entity.Product, error)
	Update(product *entity.Product) error
	List() ([]*entity.Product, error)
	ListLowStock() ([]*entity.Product, error)
	Delete(id string) error
	Count() (int, error)
}
