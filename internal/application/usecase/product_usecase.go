package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/inventory"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// Razón del movimiento de entrada emitido al crear un producto con stock.
const initialStockReason = "initial stock entry"

// ProductUseCase gestiona el ciclo de vida de productos. El alta con stock
// inicial es transaccional: producto, movimiento de entrada y seriales
// sintetizados se vuelven visibles juntos.
type ProductUseCase struct {
	txRunner inventory.TxRunner
	repo     repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(txRunner inventory.TxRunner, repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{txRunner: txRunner, repo: repo}
}

// Create crea un producto. El código de stock debe ser único (comparación
// exacta, sensible a mayúsculas). Si Quantity > 0 emite un único movimiento
// de entrada; si Quantity > 1 sintetiza un serial por unidad con el formato
// <código>-NNN (índice secuencial desde 001, nunca renumerado después).
func (uc *ProductUseCase) Create(ctx context.Context, actor string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.StockCode == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity < 0 {
		return nil, domain.ErrInvalidQuantity
	}

	now := time.Now()
	threshold := 0
	if in.LowStockThreshold != nil {
		threshold = *in.LowStockThreshold
	}
	product := &entity.Product{
		ID:                uuid.New().String(),
		StockCode:         in.StockCode,
		Name:              in.Name,
		Quantity:          in.Quantity,
		EntryPrice:        in.EntryPrice,
		SalePrice:         in.SalePrice,
		SerialNumber:      in.SerialNumber,
		ProductLink:       in.ProductLink,
		Description:       in.Description,
		LowStockThreshold: threshold,
		LabelCode:         "LBL-" + strings.ToUpper(in.StockCode),
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.StockMovementRepository,
		serialRepo repository.SerialNumberRepository,
	) error {
		// El chequeo de unicidad vive dentro de la sección crítica: dos altas
		// concurrentes con el mismo código no pueden pasar las dos.
		existing, err := productRepo.GetByStockCode(in.StockCode)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrDuplicate
		}
		if err := productRepo.Create(product); err != nil {
			return err
		}
		if product.Quantity > 0 {
			mov := &entity.StockMovement{
				ID:          uuid.New().String(),
				ProductID:   product.ID,
				Type:        entity.MovementTypeIn,
				Quantity:    product.Quantity,
				Reason:      initialStockReason,
				PerformedBy: inventory.ActorOrSystem(actor),
				CreatedAt:   now,
			}
			if err := movRepo.Create(mov); err != nil {
				return err
			}
		}
		if product.Quantity > 1 {
			for i := 1; i <= product.Quantity; i++ {
				serial := &entity.SerialNumber{
					ID:        uuid.New().String(),
					ProductID: product.ID,
					Serial:    fmt.Sprintf("%s-%03d", product.StockCode, i),
					Status:    entity.SerialStatusAvailable,
					CreatedAt: now,
				}
				if err := serialRepo.Create(serial); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID; nil si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByStockCode obtiene un producto por código de stock.
func (uc *ProductUseCase) GetByStockCode(code string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByStockCode(code)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetBySerial obtiene un producto por su campo serial legado (no por la
// entidad SerialNumber).
func (uc *ProductUseCase) GetBySerial(serial string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByLegacySerial(serial)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update aplica una actualización parcial: los campos ausentes se conservan.
// Quantity no se toca aquí. Si el código de stock cambia se re-valida la
// unicidad contra el resto de productos.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	var updated *entity.Product
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		_ repository.StockMovementRepository,
		_ repository.SerialNumberRepository,
	) error {
		product, err := productRepo.GetByID(id)
		if err != nil {
			return err
		}
		if product == nil {
			return nil
		}
		if in.StockCode != nil && *in.StockCode != product.StockCode {
			other, err := productRepo.GetByStockCode(*in.StockCode)
			if err != nil {
				return err
			}
			if other != nil {
				return domain.ErrDuplicate
			}
			product.StockCode = *in.StockCode
		}
		if in.Name != nil {
			product.Name = *in.Name
		}
		if in.EntryPrice != nil {
			product.EntryPrice = *in.EntryPrice
		}
		if in.SalePrice != nil {
			product.SalePrice = *in.SalePrice
		}
		if in.SerialNumber != nil {
			product.SerialNumber = *in.SerialNumber
		}
		if in.ProductLink != nil {
			product.ProductLink = *in.ProductLink
		}
		if in.Description != nil {
			product.Description = *in.Description
		}
		if in.LowStockThreshold != nil {
			product.LowStockThreshold = *in.LowStockThreshold
		}
		product.UpdatedAt = time.Now()
		if err := productRepo.Update(product); err != nil {
			return err
		}
		updated = product
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(updated), nil
}

// Delete elimina el producto. No hay cascada: las ventas, seriales y
// devoluciones que lo referencien quedan colgando y las lecturas lo toleran.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// List devuelve todos los productos.
func (uc *ProductUseCase) List() ([]*dto.ProductResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// ListLowStock devuelve los productos en o bajo su umbral de reorden.
func (uc *ProductUseCase) ListLowStock() ([]*dto.ProductResponse, error) {
	list, err := uc.repo.ListLowStock()
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:                p.ID,
		StockCode:         p.StockCode,
		Name:              p.Name,
		Quantity:          p.Quantity,
		EntryPrice:        p.EntryPrice,
		SalePrice:         p.SalePrice,
		SerialNumber:      p.SerialNumber,
		ProductLink:       p.ProductLink,
		Description:       p.Description,
		LowStockThreshold: p.EffectiveThreshold(),
		LabelCode:         p.LabelCode,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func toProductResponses(list []*entity.Product) []*dto.ProductResponse {
	out := make([]*dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(p))
	}
	return out
}
