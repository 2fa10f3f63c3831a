package sales

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// SaleTxRunner ejecuta la transacción de venta como sección crítica exclusiva
// sobre el almacén: fila de venta, decremento de stock, fila de auditoría y
// transición de seriales se vuelven visibles juntos o no se escriben.
type SaleTxRunner interface {
	RunSale(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
		movRepo repository.StockMovementRepository,
		serialRepo repository.SerialNumberRepository,
	) error) error
}
