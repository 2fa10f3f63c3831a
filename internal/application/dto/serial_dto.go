package dto

import "time"

// CreateSerialRequest entrada para registrar un serial individual.
type CreateSerialRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Serial    string `json:"serial" validate:"required,min=1,max=100"`
	Status    string `json:"status" validate:"omitempty,oneof=available sold returned defective"`
}

// UpdateSerialRequest entrada para actualización parcial. Un cambio de Status
// se valida contra la tabla de transiciones.
type UpdateSerialRequest struct {
	Status *string `json:"status" validate:"omitempty,oneof=available sold returned defective"`
	SaleID *string `json:"sale_id"`
}

// SerialResponse salida de un serial.
type SerialResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Serial    string    `json:"serial"`
	Status    string    `json:"status"`
	SaleID    string    `json:"sale_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
