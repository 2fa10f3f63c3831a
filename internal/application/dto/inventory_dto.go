package dto

import "time"

// RegisterMovementRequest entrada para registrar un movimiento de stock.
// Para in/out la cantidad es una magnitud positiva; para adjustment es un
// delta firmado. El tipo sale lo emite solo la transacción de venta.
type RegisterMovementRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Type      string `json:"type" validate:"required,oneof=in out adjustment"`
	Quantity  int    `json:"quantity" validate:"required"`
	Reason    string `json:"reason"`
}

// MovementResponse salida de un movimiento de stock.
type MovementResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	Type        string    `json:"type"`
	Quantity    int       `json:"quantity"`
	Reason      string    `json:"reason,omitempty"`
	PerformedBy string    `json:"performed_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
