package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/inventory"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// SaleUseCase procesa ventas y sus consultas. Create es la única transacción
// de negocio multi-tabla del motor.
type SaleUseCase struct {
	txRunner SaleTxRunner
	saleRepo repository.SaleRepository
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(txRunner SaleTxRunner, saleRepo repository.SaleRepository) *SaleUseCase {
	return &SaleUseCase{txRunner: txRunner, saleRepo: saleRepo}
}

// Create registra una venta de forma atómica: dentro de la sección crítica
// re-lee el producto (debe existir), verifica stock suficiente, deriva el
// total como cantidad × precio unitario, crea la venta, decrementa el stock,
// emite el movimiento de auditoría tipo sale y marca como vendidas hasta
// cantidad unidades disponibles del producto, enlazándolas a la venta.
//
// Dos ventas concurrentes sobre el mismo producto quedan serializadas: si la
// suma excede el stock, la segunda falla con ErrInsufficientStock y no deja
// ninguna escritura parcial. Un CustomerID desconocido se tolera (se registra
// tal cual); un ProductID desconocido se rechaza.
func (uc *SaleUseCase) Create(ctx context.Context, actor string, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if in.QuantitySold <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:           uuid.New().String(),
		ProductID:    in.ProductID,
		CustomerID:   in.CustomerID,
		QuantitySold: in.QuantitySold,
		SalePrice:    in.SalePrice,
		TotalAmount:  in.SalePrice.Mul(decimal.NewFromInt(int64(in.QuantitySold))),
		SaleDate:     now,
		Notes:        in.Notes,
	}

	err := uc.txRunner.RunSale(ctx, func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
		movRepo repository.StockMovementRepository,
		serialRepo repository.SerialNumberRepository,
	) error {
		product, err := productRepo.GetByID(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if product.Quantity < in.QuantitySold {
			return domain.ErrInsufficientStock
		}

		// Validación completa: a partir de aquí solo escrituras.
		if err := saleRepo.Create(sale); err != nil {
			return err
		}
		product.Quantity -= in.QuantitySold
		product.UpdatedAt = now
		if err := productRepo.Update(product); err != nil {
			return err
		}
		reason := "venta de mostrador"
		if in.CustomerID != "" {
			reason = fmt.Sprintf("venta a cliente %s", in.CustomerID)
		}
		mov := &entity.StockMovement{
			ID:          uuid.New().String(),
			ProductID:   product.ID,
			Type:        entity.MovementTypeSale,
			Quantity:    in.QuantitySold,
			Reason:      reason,
			PerformedBy: inventory.ActorOrSystem(actor),
			CreatedAt:   now,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}

		// Consumir seriales disponibles. Un producto puede tener menos filas
		// de serial que unidades (alta con cantidad 1 no sintetiza seriales):
		// se marcan las que existan, hasta la cantidad vendida.
		available, err := serialRepo.ListAvailableByProduct(product.ID)
		if err != nil {
			return err
		}
		for i := 0; i < len(available) && i < in.QuantitySold; i++ {
			s := available[i]
			s.Status = entity.SerialStatusSold
			s.SaleID = sale.ID
			if err := serialRepo.Update(s); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}

// GetByID obtiene una venta por ID; nil si no existe.
func (uc *SaleUseCase) GetByID(id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}

// List devuelve todas las ventas.
func (uc *SaleUseCase) List() ([]*dto.SaleResponse, error) {
	list, err := uc.saleRepo.List()
	if err != nil {
		return nil, err
	}
	return toSaleResponses(list), nil
}

// ListByProduct devuelve las ventas de un producto.
func (uc *SaleUseCase) ListByProduct(productID string) ([]*dto.SaleResponse, error) {
	list, err := uc.saleRepo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	return toSaleResponses(list), nil
}

// ListByCustomer devuelve las ventas de un cliente.
func (uc *SaleUseCase) ListByCustomer(customerID string) ([]*dto.SaleResponse, error) {
	list, err := uc.saleRepo.ListByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	return toSaleResponses(list), nil
}

// ListToday devuelve las ventas del día calendario actual en hora local.
func (uc *SaleUseCase) ListToday() ([]*dto.SaleResponse, error) {
	list, err := uc.saleRepo.ListByDay(time.Now())
	if err != nil {
		return nil, err
	}
	return toSaleResponses(list), nil
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	if s == nil {
		return nil
	}
	return &dto.SaleResponse{
		ID:           s.ID,
		ProductID:    s.ProductID,
		CustomerID:   s.CustomerID,
		QuantitySold: s.QuantitySold,
		SalePrice:    s.SalePrice,
		TotalAmount:  s.TotalAmount,
		SaleDate:     s.SaleDate,
		Notes:        s.Notes,
	}
}

func toSaleResponses(list []*entity.Sale) []*dto.SaleResponse {
	out := make([]*dto.SaleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toSaleResponse(s))
	}
	return out
}
