package memory

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/application/inventory"
	"github.com/jhoicas/Almacen-api/internal/application/returns"
	"github.com/jhoicas/Almacen-api/internal/application/sales"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ inventory.TxRunner = (*TxRunner)(nil)
var _ sales.SaleTxRunner = (*TxRunner)(nil)
var _ usecase.CustomerTxRunner = (*TxRunner)(nil)
var _ returns.ReturnTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks como sección crítica exclusiva sobre el Store:
// el análogo en memoria de Begin/Commit con SELECT FOR UPDATE. Mientras fn
// corre, ningún otro caller observa estado intermedio.
//
// No hay rollback: el callback debe validar todo antes de la primera
// escritura (validar → mutar → auditar), de modo que un error nunca deje
// escrituras parciales.
type TxRunner struct {
	store *Store
}

// NewTxRunner construye el runner sobre el almacén.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// Run ejecuta fn con repos de producto, movimientos y seriales bajo el lock
// exclusivo. Lo usan la creación de productos (alta + movimiento inicial +
// seriales sintetizados), el registro de movimientos y el ciclo de vida de
// seriales.
func (r *TxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movRepo repository.StockMovementRepository,
	serialRepo repository.SerialNumberRepository,
) error) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return fn(
		&ProductRepository{store: r.store, mu: unlocked{}},
		&StockMovementRepository{store: r.store, mu: unlocked{}},
		&SerialNumberRepository{store: r.store, mu: unlocked{}},
	)
}

// RunSale ejecuta fn con los cuatro repos que toca la transacción de venta
// (venta, producto, movimiento, seriales) bajo el lock exclusivo. Dos ventas
// concurrentes sobre el mismo producto quedan serializadas aquí.
func (r *TxRunner) RunSale(ctx context.Context, fn func(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	movRepo repository.StockMovementRepository,
	serialRepo repository.SerialNumberRepository,
) error) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return fn(
		&SaleRepository{store: r.store, mu: unlocked{}},
		&ProductRepository{store: r.store, mu: unlocked{}},
		&StockMovementRepository{store: r.store, mu: unlocked{}},
		&SerialNumberRepository{store: r.store, mu: unlocked{}},
	)
}

// RunCustomer ejecuta fn con el repo de clientes bajo el lock exclusivo.
// Las actualizaciones parciales leen-mezclan-escriben: sin la sección crítica
// dos merges concurrentes sobre el mismo cliente podrían partir de copias
// obsoletas y perder la escritura del otro.
func (r *TxRunner) RunCustomer(ctx context.Context, fn func(
	customerRepo repository.CustomerRepository,
) error) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return fn(&CustomerRepository{store: r.store, mu: unlocked{}})
}

// RunReturn ejecuta fn con el repo de devoluciones bajo el lock exclusivo,
// por la misma razón que RunCustomer (el cambio de estado mezcla sobre la
// fila leída y fija ResolvedAt una sola vez).
func (r *TxRunner) RunReturn(ctx context.Context, fn func(
	returnRepo repository.ReturnRepository,
) error) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return fn(&ReturnRepository{store: r.store, mu: unlocked{}})
}
