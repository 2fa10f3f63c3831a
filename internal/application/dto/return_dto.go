package dto

import "time"

// CreateReturnRequest entrada para registrar una devolución.
type CreateReturnRequest struct {
	SaleID       string `json:"sale_id" validate:"required"`
	ProductID    string `json:"product_id" validate:"required"`
	CustomerID   string `json:"customer_id" validate:"required"`
	SerialNumber string `json:"serial_number"`
	Reason       string `json:"reason" validate:"required,min=1"`
	Notes        string `json:"notes"`
}

// UpdateReturnStatusRequest entrada para resolver una devolución.
type UpdateReturnStatusRequest struct {
	Status string  `json:"status" validate:"required,oneof=pending approved rejected resolved"`
	Notes  *string `json:"notes"`
}

// ReturnResponse salida de una devolución.
type ReturnResponse struct {
	ID           string     `json:"id"`
	SaleID       string     `json:"sale_id"`
	ProductID    string     `json:"product_id"`
	CustomerID   string     `json:"customer_id"`
	SerialNumber string     `json:"serial_number,omitempty"`
	Reason       string     `json:"reason"`
	Status       string     `json:"status"`
	ReturnDate   time.Time  `json:"return_date"`
	ResolvedAt   *time.Time `json:"resolved_at,omitempty"`
	Notes        string     `json:"notes,omitempty"`
}
