// Package returns contiene los casos de uso de devoluciones.
package returns

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// ReturnUseCase gestiona devoluciones. Create es un append puro: no toca el
// stock del producto, el estado de los seriales ni emite movimientos; el
// reingreso de mercancía es una llamada explícita y separada al registro de
// movimientos. Esa asimetría con la venta (que sí es atómica en tres tablas)
// es un contrato del componente, no un descuido.
//
// Las referencias a venta/producto/cliente no se validan al escribir: una
// devolución colgante se tolera y las lecturas no fallan por ella.
type ReturnUseCase struct {
	txRunner ReturnTxRunner
	repo     repository.ReturnRepository
}

// NewReturnUseCase construye el caso de uso.
func NewReturnUseCase(txRunner ReturnTxRunner, repo repository.ReturnRepository) *ReturnUseCase {
	return &ReturnUseCase{txRunner: txRunner, repo: repo}
}

// Create registra una devolución con estado pending y fecha actual.
func (uc *ReturnUseCase) Create(in dto.CreateReturnRequest) (*dto.ReturnResponse, error) {
	if in.SaleID == "" || in.ProductID == "" || in.CustomerID == "" || in.Reason == "" {
		return nil, domain.ErrInvalidInput
	}
	ret := &entity.Return{
		ID:           uuid.New().String(),
		SaleID:       in.SaleID,
		ProductID:    in.ProductID,
		CustomerID:   in.CustomerID,
		SerialNumber: in.SerialNumber,
		Reason:       in.Reason,
		Status:       entity.ReturnStatusPending,
		ReturnDate:   time.Now(),
		Notes:        in.Notes,
	}
	if err := uc.repo.Create(ret); err != nil {
		return nil, err
	}
	return toReturnResponse(ret), nil
}

// UpdateStatus cambia el estado de la devolución. Al salir de pending por
// primera vez se fija ResolvedAt. El ciclo leer-mezclar-escribir corre entero
// dentro de la sección crítica: dos resoluciones concurrentes quedan
// serializadas, ResolvedAt se asigna una sola vez y ninguna pisa las notas de
// la otra con una copia obsoleta.
func (uc *ReturnUseCase) UpdateStatus(ctx context.Context, id string, in dto.UpdateReturnStatusRequest) (*dto.ReturnResponse, error) {
	if !entity.ValidReturnStatus(in.Status) {
		return nil, domain.ErrInvalidInput
	}
	var updated *entity.Return
	err := uc.txRunner.RunReturn(ctx, func(repo repository.ReturnRepository) error {
		ret, err := repo.GetByID(id)
		if err != nil {
			return err
		}
		if ret == nil {
			return nil
		}
		ret.Status = in.Status
		if in.Status != entity.ReturnStatusPending && ret.ResolvedAt == nil {
			now := time.Now()
			ret.ResolvedAt = &now
		}
		if in.Notes != nil {
			ret.Notes = *in.Notes
		}
		if err := repo.Update(ret); err != nil {
			return err
		}
		updated = ret
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toReturnResponse(updated), nil
}

// GetByID obtiene una devolución por ID; nil si no existe.
func (uc *ReturnUseCase) GetByID(id string) (*dto.ReturnResponse, error) {
	ret, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toReturnResponse(ret), nil
}

// List devuelve todas las devoluciones, más recientes primero.
func (uc *ReturnUseCase) List() ([]*dto.ReturnResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return toReturnResponses(list), nil
}

// ListByCustomer devuelve las devoluciones de un cliente.
func (uc *ReturnUseCase) ListByCustomer(customerID string) ([]*dto.ReturnResponse, error) {
	list, err := uc.repo.ListByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	return toReturnResponses(list), nil
}

func toReturnResponse(r *entity.Return) *dto.ReturnResponse {
	if r == nil {
		return nil
	}
	return &dto.ReturnResponse{
		ID:           r.ID,
		SaleID:       r.SaleID,
		ProductID:    r.ProductID,
		CustomerID:   r.CustomerID,
		SerialNumber: r.SerialNumber,
		Reason:       r.Reason,
		Status:       r.Status,
		ReturnDate:   r.ReturnDate,
		ResolvedAt:   r.ResolvedAt,
		Notes:        r.Notes,
	}
}

func toReturnResponses(list []*entity.Return) []*dto.ReturnResponse {
	out := make([]*dto.ReturnResponse, 0, len(list))
	for _, r := range list {
		out = append(out, toReturnResponse(r))
	}
	return out
}
