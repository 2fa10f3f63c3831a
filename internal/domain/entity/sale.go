package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa una venta de un producto. TotalAmount siempre se deriva
// como QuantitySold × SalePrice dentro del motor; nunca se confía en un
// total enviado por el caller.
type Sale struct {
	ID           string
	ProductID    string
	CustomerID   string // opcional: venta de mostrador si está vacío
	QuantitySold int
	SalePrice    decimal.Decimal // precio unitario al momento de la venta
	TotalAmount  decimal.Decimal
	SaleDate     time.Time // fijada al crear, inmutable
	Notes        string
}
