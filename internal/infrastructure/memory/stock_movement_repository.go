package memory

import (
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepository)(nil)

// StockMovementRepository implementa el libro de auditoría sobre el Store.
// Solo expone Create y lecturas: las filas son inmutables una vez escritas.
type StockMovementRepository struct {
	store *Store
	mu    rwLocker
}

// NewStockMovementRepository construye el repositorio.
func NewStockMovementRepository(store *Store) *StockMovementRepository {
	return &StockMovementRepository{store: store, mu: &store.mu}
}

// Create inserta el movimiento.
func (r *StockMovementRepository) Create(movement *entity.StockMovement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.store.movements.put(movement.ID, *movement)
	return nil
}

// List devuelve todos los movimientos en orden de inserción.
func (r *StockMovementRepository) List() ([]*entity.StockMovement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return toPtrs(r.store.movements.list()), nil
}

// ListByProduct filtra por producto.
func (r *StockMovementRepository) ListByProduct(productID string) ([]*entity.StockMovement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.StockMovement, 0)
	for _, m := range r.store.movements.list() {
		if m.ProductID == productID {
			q := m
			out = append(out, &q)
		}
	}
	return out, nil
}
