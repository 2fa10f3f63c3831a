package inventory

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// TxRunner ejecuta fn como sección crítica exclusiva sobre el almacén.
// Ningún otro caller observa estado intermedio mientras fn corre; fn debe
// validar todo antes de la primera escritura porque no existe rollback.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movRepo repository.StockMovementRepository,
		serialRepo repository.SerialNumberRepository,
	) error) error
}

// SystemActor es la atribución usada en filas de auditoría generadas por el
// servidor cuando la capa de borde no aporta un actor.
const SystemActor = "system"

// ActorOrSystem devuelve el actor recibido del borde o SystemActor si viene vacío.
func ActorOrSystem(actor string) string {
	if actor == "" {
		return SystemActor
	}
	return actor
}
