package usecase

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// CustomerTxRunner ejecuta fn como sección crítica exclusiva sobre el almacén.
// Las actualizaciones de cliente leen-mezclan-escriben; fuera de la sección
// crítica dos merges concurrentes partirían de copias obsoletas y uno
// pisaría la escritura del otro.
type CustomerTxRunner interface {
	RunCustomer(ctx context.Context, fn func(
		customerRepo repository.CustomerRepository,
	) error) error
}
