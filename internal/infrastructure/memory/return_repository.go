package memory

import (
	"sort"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.ReturnRepository = (*ReturnRepository)(nil)

// ReturnRepository implementa repository.ReturnRepository sobre el Store.
type ReturnRepository struct {
	store *Store
	mu    rwLocker
}

// NewReturnRepository construye el repositorio.
func NewReturnRepository(store *Store) *ReturnRepository {
	return &ReturnRepository{store: store, mu: &store.mu}
}

// Create inserta la devolución.
func (r *ReturnRepository) Create(ret *entity.Return) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.store.returns.put(ret.ID, *ret)
	return nil
}

// GetByID devuelve la devolución o nil si no existe.
func (r *ReturnRepository) GetByID(id string) (*entity.Return, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if ret, ok := r.store.returns.get(id); ok {
		return &ret, nil
	}
	return nil, nil
}

// Update reemplaza la devolución existente.
func (r *ReturnRepository) Update(ret *entity.Return) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.store.returns.get(ret.ID); !ok {
		return domain.ErrNotFound
	}
	r.store.returns.put(ret.ID, *ret)
	return nil
}

// List devuelve todas las devoluciones ordenadas por ReturnDate descendente.
// El sort es estable para que empates conserven el orden de inserción.
func (r *ReturnRepository) List() ([]*entity.Return, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := toPtrs(r.store.returns.list())
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ReturnDate.After(out[j].ReturnDate)
	})
	return out, nil
}

// ListByCustomer filtra por cliente, en orden de inserción.
func (r *ReturnRepository) ListByCustomer(customerID string) ([]*entity.Return, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Return, 0)
	for _, ret := range r.store.returns.list() {
		if ret.CustomerID == customerID {
			q := ret
			out = append(out, &q)
		}
	}
	return out, nil
}
