package memory

import (
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepository)(nil)

// CustomerRepository implementa repository.CustomerRepository sobre el Store.
type CustomerRepository struct {
	store *Store
	mu    rwLocker
}

// NewCustomerRepository construye el repositorio.
func NewCustomerRepository(store *Store) *CustomerRepository {
	return &CustomerRepository{store: store, mu: &store.mu}
}

// Create inserta el cliente.
func (r *CustomerRepository) Create(customer *entity.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.store.customers.put(customer.ID, *customer)
	return nil
}

// GetByID devuelve el cliente o nil si no existe.
func (r *CustomerRepository) GetByID(id string) (*entity.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if c, ok := r.store.customers.get(id); ok {
		return &c, nil
	}
	return nil, nil
}

// Update reemplaza el cliente existente.
func (r *CustomerRepository) Update(customer *entity.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.store.customers.get(customer.ID); !ok {
		return domain.ErrNotFound
	}
	r.store.customers.put(customer.ID, *customer)
	return nil
}

// List devuelve todos los clientes en orden de inserción.
func (r *CustomerRepository) List() ([]*entity.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return toPtrs(r.store.customers.list()), nil
}

// Count devuelve el número de clientes.
func (r *CustomerRepository) Count() (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.store.customers.len(), nil
}
