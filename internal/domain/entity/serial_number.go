package entity

import "time"

// Estados de un número de serie (unidad física).
const (
	SerialStatusAvailable = "available"
	SerialStatusSold      = "sold"
	SerialStatusReturned  = "returned"
	SerialStatusDefective = "defective"
)

// serialTransitions define las transiciones de estado permitidas.
// defective es terminal.
var serialTransitions = map[string][]string{
	SerialStatusAvailable: {SerialStatusSold, SerialStatusDefective},
	SerialStatusSold:      {SerialStatusReturned, SerialStatusDefective},
	SerialStatusReturned:  {SerialStatusAvailable, SerialStatusDefective},
	SerialStatusDefective: {},
}

// SerialNumber es el registro de seguimiento por unidad física de un producto,
// distinto del campo serial legado de Product. El valor Serial es único en
// todo el almacén.
type SerialNumber struct {
	ID        string
	ProductID string
	Serial    string
	Status    string // available, sold, returned, defective
	SaleID    string // venta que consumió la unidad, si aplica
	CreatedAt time.Time
}

// ValidSerialStatus indica si el estado es uno de los cuatro soportados.
func ValidSerialStatus(s string) bool {
	_, ok := serialTransitions[s]
	return ok
}

// CanTransition indica si el paso from→to está permitido por la tabla de
// transiciones. Repetir el mismo estado se considera un no-op permitido.
func CanTransition(from, to string) bool {
	if from == to {
		return true
	}
	for _, allowed := range serialTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
