package memory

import (
	"time"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepository)(nil)

// SaleRepository implementa repository.SaleRepository sobre el Store.
type SaleRepository struct {
	store *Store
	mu    rwLocker
}

// NewSaleRepository construye el repositorio.
func NewSaleRepository(store *Store) *SaleRepository {
	return &SaleRepository{store: store, mu: &store.mu}
}

// Create inserta la venta.
func (r *SaleRepository) Create(sale *entity.Sale) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.store.sales.put(sale.ID, *sale)
	return nil
}

// GetByID devuelve la venta o nil si no existe.
func (r *SaleRepository) GetByID(id string) (*entity.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if s, ok := r.store.sales.get(id); ok {
		return &s, nil
	}
	return nil, nil
}

// List devuelve todas las ventas en orden de inserción.
func (r *SaleRepository) List() ([]*entity.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return toPtrs(r.store.sales.list()), nil
}

// ListByProduct filtra por producto.
func (r *SaleRepository) ListByProduct(productID string) ([]*entity.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filter(func(s entity.Sale) bool { return s.ProductID == productID }), nil
}

// ListByCustomer filtra por cliente.
func (r *SaleRepository) ListByCustomer(customerID string) ([]*entity.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filter(func(s entity.Sale) bool { return s.CustomerID == customerID }), nil
}

// ListByDay filtra por día calendario en hora local (no ventana móvil de 24h).
func (r *SaleRepository) ListByDay(day time.Time) ([]*entity.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	y, m, d := day.Date()
	return r.filter(func(s entity.Sale) bool {
		sy, sm, sd := s.SaleDate.Date()
		return sy == y && sm == m && sd == d
	}), nil
}

// filter asume el lock tomado.
func (r *SaleRepository) filter(keep func(entity.Sale) bool) []*entity.Sale {
	out := make([]*entity.Sale, 0)
	for _, s := range r.store.sales.list() {
		if keep(s) {
			q := s
			out = append(out, &q)
		}
	}
	return out
}
