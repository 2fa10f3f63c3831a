package memory

import (
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.SerialNumberRepository = (*SerialNumberRepository)(nil)

// SerialNumberRepository implementa repository.SerialNumberRepository sobre el Store.
type SerialNumberRepository struct {
	store *Store
	mu    rwLocker
}

// NewSerialNumberRepository construye el repositorio.
func NewSerialNumberRepository(store *Store) *SerialNumberRepository {
	return &SerialNumberRepository{store: store, mu: &store.mu}
}

// Create inserta el serial. El valor Serial es único en todo el almacén;
// este chequeo es el análogo en memoria de un índice UNIQUE.
func (r *SerialNumberRepository) Create(serial *entity.SerialNumber) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.store.serials.list() {
		if s.Serial == serial.Serial {
			return domain.ErrDuplicate
		}
	}
	r.store.serials.put(serial.ID, *serial)
	return nil
}

// GetByID devuelve el serial o nil si no existe.
func (r *SerialNumberRepository) GetByID(id string) (*entity.SerialNumber, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if s, ok := r.store.serials.get(id); ok {
		return &s, nil
	}
	return nil, nil
}

// GetBySerial busca por valor en todo el almacén; primera coincidencia en
// orden de inserción.
func (r *SerialNumberRepository) GetBySerial(value string) (*entity.SerialNumber, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.store.serials.list() {
		if s.Serial == value {
			q := s
			return &q, nil
		}
	}
	return nil, nil
}

// Update reemplaza el serial existente.
func (r *SerialNumberRepository) Update(serial *entity.SerialNumber) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.store.serials.get(serial.ID); !ok {
		return domain.ErrNotFound
	}
	r.store.serials.put(serial.ID, *serial)
	return nil
}

// List devuelve todos los seriales en orden de inserción.
func (r *SerialNumberRepository) List() ([]*entity.SerialNumber, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return toPtrs(r.store.serials.list()), nil
}

// ListByProduct filtra por producto.
func (r *SerialNumberRepository) ListByProduct(productID string) ([]*entity.SerialNumber, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filter(func(s entity.SerialNumber) bool { return s.ProductID == productID }), nil
}

// ListAvailableByProduct filtra por producto y estado available.
func (r *SerialNumberRepository) ListAvailableByProduct(productID string) ([]*entity.SerialNumber, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filter(func(s entity.SerialNumber) bool {
		return s.ProductID == productID && s.Status == entity.SerialStatusAvailable
	}), nil
}

// filter asume el lock tomado.
func (r *SerialNumberRepository) filter(keep func(entity.SerialNumber) bool) []*entity.SerialNumber {
	out := make([]*entity.SerialNumber, 0)
	for _, s := range r.store.serials.list() {
		if keep(s) {
			q := s
			out = append(out, &q)
		}
	}
	return out
}
