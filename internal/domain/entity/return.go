package entity

import "time"

// Estados de una devolución.
const (
	ReturnStatusPending  = "pending"
	ReturnStatusApproved = "approved"
	ReturnStatusRejected = "rejected"
	ReturnStatusResolved = "resolved"
)

// Return representa una devolución asociada a una venta. Crearla no toca
// Quantity ni el estado de los seriales: cualquier reingreso de stock es una
// llamada explícita y separada al registro de movimientos (contrato
// deliberado, no un olvido).
type Return struct {
	ID           string
	SaleID       string
	ProductID    string
	CustomerID   string
	SerialNumber string // opcional: serial de la unidad devuelta
	Reason       string
	Status       string // pending, approved, rejected, resolved
	ReturnDate   time.Time
	ResolvedAt   *time.Time
	Notes        string
}

// ValidReturnStatus indica si el estado es uno de los soportados.
func ValidReturnStatus(s string) bool {
	switch s {
	case ReturnStatusPending, ReturnStatusApproved, ReturnStatusRejected, ReturnStatusResolved:
		return true
	}
	return false
}
