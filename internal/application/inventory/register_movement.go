package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// RegisterMovementUseCase registra movimientos de stock (in, out, adjustment)
// de forma transaccional: la fila de auditoría y el nuevo Quantity del
// producto se vuelven visibles juntos o no se escriben.
type RegisterMovementUseCase struct {
	txRunner TxRunner
	movRepo  repository.StockMovementRepository
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(txRunner TxRunner, movRepo repository.StockMovementRepository) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner, movRepo: movRepo}
}

// Register valida el tipo y la cantidad, toma la sección crítica, re-lee el
// producto, rechaza cualquier resultado que deje Quantity negativo y escribe
// producto + fila de auditoría.
//
// El tipo sale no se acepta aquí: esas filas las emite solo la transacción de
// venta.
func (uc *RegisterMovementUseCase) Register(ctx context.Context, actor string, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	if !entity.ValidMovementType(in.Type) || in.Type == entity.MovementTypeSale {
		return nil, domain.ErrInvalidInput
	}
	switch in.Type {
	case entity.MovementTypeIn, entity.MovementTypeOut:
		if in.Quantity <= 0 {
			return nil, domain.ErrInvalidQuantity
		}
	case entity.MovementTypeAdjustment:
		if in.Quantity == 0 {
			return nil, domain.ErrInvalidQuantity
		}
	}

	now := time.Now()
	mov := &entity.StockMovement{
		ID:          uuid.New().String(),
		ProductID:   in.ProductID,
		Type:        in.Type,
		Quantity:    in.Quantity,
		Reason:      in.Reason,
		PerformedBy: ActorOrSystem(actor),
		CreatedAt:   now,
	}

	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.StockMovementRepository,
		_ repository.SerialNumberRepository,
	) error {
		product, err := productRepo.GetByID(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		newQty := product.Quantity + mov.Delta()
		if newQty < 0 {
			return domain.ErrInvalidQuantity
		}
		product.Quantity = newQty
		product.UpdatedAt = now
		if err := productRepo.Update(product); err != nil {
			return err
		}
		return movRepo.Create(mov)
	})
	if err != nil {
		return nil, err
	}
	return toMovementResponse(mov), nil
}

// List devuelve todos los movimientos en orden de inserción.
func (uc *RegisterMovementUseCase) List() ([]*dto.MovementResponse, error) {
	list, err := uc.movRepo.List()
	if err != nil {
		return nil, err
	}
	return toMovementResponses(list), nil
}

// ListByProduct devuelve los movimientos de un producto.
func (uc *RegisterMovementUseCase) ListByProduct(productID string) ([]*dto.MovementResponse, error) {
	list, err := uc.movRepo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	return toMovementResponses(list), nil
}

func toMovementResponse(m *entity.StockMovement) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:          m.ID,
		ProductID:   m.ProductID,
		Type:        m.Type,
		Quantity:    m.Quantity,
		Reason:      m.Reason,
		PerformedBy: m.PerformedBy,
		CreatedAt:   m.CreatedAt,
	}
}

func toMovementResponses(list []*entity.StockMovement) []*dto.MovementResponse {
	out := make([]*dto.MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, toMovementResponse(m))
	}
	return out
}
