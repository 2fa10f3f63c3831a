package memory

import (
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepository)(nil)

// ProductRepository implementa repository.ProductRepository sobre el Store.
type ProductRepository struct {
	store *Store
	mu    rwLocker
}

// NewProductRepository construye el repositorio con el guard real del Store.
func NewProductRepository(store *Store) *ProductRepository {
	return &ProductRepository{store: store, mu: &store.mu}
}

// Create inserta el producto.
func (r *ProductRepository) Create(product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.store.products.put(product.ID, *product)
	return nil
}

// GetByID devuelve el producto o nil si no existe.
func (r *ProductRepository) GetByID(id string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if p, ok := r.store.products.get(id); ok {
		return &p, nil
	}
	return nil, nil
}

// GetByStockCode devuelve la primera coincidencia por código (orden de
// inserción). El código se asume único pero un duplicado no debe romper la
// lectura: gana el primero.
func (r *ProductRepository) GetByStockCode(code string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.store.products.list() {
		if p.StockCode == code {
			return &p, nil
		}
	}
	return nil, nil
}

// GetByLegacySerial busca por el campo serial legado del producto.
func (r *ProductRepository) GetByLegacySerial(serial string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.store.products.list() {
		if p.SerialNumber == serial {
			return &p, nil
		}
	}
	return nil, nil
}

// Update reemplaza el producto existente.
func (r *ProductRepository) Update(product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.store.products.get(product.ID); !ok {
		return domain.ErrNotFound
	}
	r.store.products.put(product.ID, *product)
	return nil
}

// List devuelve todos los productos en orden de inserción.
func (r *ProductRepository) List() ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return toPtrs(r.store.products.list()), nil
}

// ListLowStock devuelve los productos con Quantity <= umbral efectivo.
func (r *ProductRepository) ListLowStock() ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Product, 0)
	for _, p := range r.store.products.list() {
		if p.IsLowStock() {
			q := p
			out = append(out, &q)
		}
	}
	return out, nil
}

// Delete elimina el producto sin cascada: ventas, seriales y devoluciones que
// lo referencien quedan colgando y las rutas de lectura deben tolerarlo.
func (r *ProductRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.store.products.delete(id) {
		return domain.ErrNotFound
	}
	return nil
}

// Count devuelve el número de productos.
func (r *ProductRepository) Count() (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.store.products.len(), nil
}

// toPtrs copia cada valor a un puntero propio; los callers nunca reciben
// referencias al estado interno del Store.
func toPtrs[T any](in []T) []*T {
	out := make([]*T, 0, len(in))
	for i := range in {
		v := in[i]
		out = append(out, &v)
	}
	return out
}
