package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// CustomerUseCase casos de uso CRUD para clientes.
type CustomerUseCase struct {
	txRunner CustomerTxRunner
	repo     repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(txRunner CustomerTxRunner, repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{txRunner: txRunner, repo: repo}
}

// Create crea un cliente. Solo el nombre es obligatorio.
func (uc *CustomerUseCase) Create(in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Company:   in.Company,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// GetByID obtiene un cliente por ID; nil si no existe.
func (uc *CustomerUseCase) GetByID(id string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Update aplica una actualización parcial; los campos ausentes se conservan.
// El ciclo leer-mezclar-escribir corre entero dentro de la sección crítica:
// dos actualizaciones concurrentes al mismo cliente quedan serializadas y
// ninguna parte de una copia obsoleta.
func (uc *CustomerUseCase) Update(ctx context.Context, id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	var updated *entity.Customer
	err := uc.txRunner.RunCustomer(ctx, func(repo repository.CustomerRepository) error {
		customer, err := repo.GetByID(id)
		if err != nil {
			return err
		}
		if customer == nil {
			return nil
		}
		if in.Name != nil {
			customer.Name = *in.Name
		}
		if in.Company != nil {
			customer.Company = *in.Company
		}
		if in.Email != nil {
			customer.Email = *in.Email
		}
		if in.Phone != nil {
			customer.Phone = *in.Phone
		}
		if in.Address != nil {
			customer.Address = *in.Address
		}
		if err := repo.Update(customer); err != nil {
			return err
		}
		updated = customer
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toCustomerResponse(updated), nil
}

// List devuelve todos los clientes.
func (uc *CustomerUseCase) List() ([]*dto.CustomerResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	if c == nil {
		return nil
	}
	return &dto.CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Company:   c.Company,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
	}
}
