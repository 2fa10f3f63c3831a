package returns

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// ReturnTxRunner ejecuta fn como sección crítica exclusiva sobre el almacén.
// El cambio de estado mezcla sobre la fila leída y fija ResolvedAt una sola
// vez; sin la sección crítica dos cambios concurrentes podrían perder notas
// o reasignar la marca de resolución.
type ReturnTxRunner interface {
	RunReturn(ctx context.Context, fn func(
		returnRepo repository.ReturnRepository,
	) error) error
}
