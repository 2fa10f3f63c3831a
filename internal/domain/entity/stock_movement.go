package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeIn         = "in"         // entrada: suma a Quantity
	MovementTypeOut        = "out"        // salida: resta de Quantity
	MovementTypeSale       = "sale"       // emitido solo por la transacción de venta
	MovementTypeAdjustment = "adjustment" // ajuste con delta firmado
)

// StockMovement es una entrada del libro de auditoría de inventario.
// Append-only: nunca se actualiza ni se borra.
type StockMovement struct {
	ID          string
	ProductID   string
	Type        string // in, out, sale, adjustment
	Quantity    int    // magnitud positiva para in/out/sale; delta firmado en adjustment
	Reason      string
	PerformedBy string // atribución del actor; "system" en filas generadas por el servidor
	CreatedAt   time.Time
}

// Delta devuelve el efecto firmado del movimiento sobre Quantity.
func (m *StockMovement) Delta() int {
	switch m.Type {
	case MovementTypeIn:
		return m.Quantity
	case MovementTypeOut, MovementTypeSale:
		return -m.Quantity
	case MovementTypeAdjustment:
		return m.Quantity
	}
	return 0
}

// ValidMovementType indica si el tipo de movimiento es uno de los soportados.
func ValidMovementType(t string) bool {
	switch t {
	case MovementTypeIn, MovementTypeOut, MovementTypeSale, MovementTypeAdjustment:
		return true
	}
	return false
}
