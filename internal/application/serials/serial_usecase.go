// Package serials contiene los casos de uso de seguimiento por unidad física.
package serials

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/inventory"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// SerialUseCase gestiona los números de serie individuales. Los cambios de
// estado pasan por la tabla de transiciones de entity: available→{sold,
// defective}, sold→{returned,defective}, returned→{available,defective};
// defective es terminal.
type SerialUseCase struct {
	txRunner   inventory.TxRunner
	serialRepo repository.SerialNumberRepository
}

// NewSerialUseCase construye el caso de uso.
func NewSerialUseCase(txRunner inventory.TxRunner, serialRepo repository.SerialNumberRepository) *SerialUseCase {
	return &SerialUseCase{txRunner: txRunner, serialRepo: serialRepo}
}

// Create registra un serial individual. El producto debe existir y el valor
// del serial es único en todo el almacén (ErrDuplicate si ya está tomado).
func (uc *SerialUseCase) Create(ctx context.Context, in dto.CreateSerialRequest) (*dto.SerialResponse, error) {
	if in.ProductID == "" || in.Serial == "" {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.SerialStatusAvailable
	}
	if !entity.ValidSerialStatus(status) {
		return nil, domain.ErrInvalidInput
	}

	serial := &entity.SerialNumber{
		ID:        uuid.New().String(),
		ProductID: in.ProductID,
		Serial:    in.Serial,
		Status:    status,
		CreatedAt: time.Now(),
	}
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		_ repository.StockMovementRepository,
		serialRepo repository.SerialNumberRepository,
	) error {
		product, err := productRepo.GetByID(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		return serialRepo.Create(serial)
	})
	if err != nil {
		return nil, err
	}
	return toSerialResponse(serial), nil
}

// Update aplica una actualización parcial. Un cambio de estado fuera de la
// tabla de transiciones falla con ErrInvalidTransition.
func (uc *SerialUseCase) Update(ctx context.Context, id string, in dto.UpdateSerialRequest) (*dto.SerialResponse, error) {
	var updated *entity.SerialNumber
	err := uc.txRunner.Run(ctx, func(
		_ repository.ProductRepository,
		_ repository.StockMovementRepository,
		serialRepo repository.SerialNumberRepository,
	) error {
		serial, err := serialRepo.GetByID(id)
		if err != nil {
			return err
		}
		if serial == nil {
			return nil
		}
		if in.Status != nil {
			if !entity.ValidSerialStatus(*in.Status) {
				return domain.ErrInvalidInput
			}
			if !entity.CanTransition(serial.Status, *in.Status) {
				return domain.ErrInvalidTransition
			}
			serial.Status = *in.Status
		}
		if in.SaleID != nil {
			serial.SaleID = *in.SaleID
		}
		if err := serialRepo.Update(serial); err != nil {
			return err
		}
		updated = serial
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toSerialResponse(updated), nil
}

// GetByValue busca un serial por su valor exacto en todo el almacén.
func (uc *SerialUseCase) GetByValue(value string) (*dto.SerialResponse, error) {
	serial, err := uc.serialRepo.GetBySerial(value)
	if err != nil {
		return nil, err
	}
	return toSerialResponse(serial), nil
}

// List devuelve todos los seriales.
func (uc *SerialUseCase) List() ([]*dto.SerialResponse, error) {
	list, err := uc.serialRepo.List()
	if err != nil {
		return nil, err
	}
	return toSerialResponses(list), nil
}

// ListByProduct devuelve los seriales de un producto.
func (uc *SerialUseCase) ListByProduct(productID string) ([]*dto.SerialResponse, error) {
	list, err := uc.serialRepo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	return toSerialResponses(list), nil
}

func toSerialResponse(s *entity.SerialNumber) *dto.SerialResponse {
	if s == nil {
		return nil
	}
	return &dto.SerialResponse{
		ID:        s.ID,
		ProductID: s.ProductID,
		Serial:    s.Serial,
		Status:    s.Status,
		SaleID:    s.SaleID,
		CreatedAt: s.CreatedAt,
	}
}

func toSerialResponses(list []*entity.SerialNumber) []*dto.SerialResponse {
	out := make([]*dto.SerialResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toSerialResponse(s))
	}
	return out
}
