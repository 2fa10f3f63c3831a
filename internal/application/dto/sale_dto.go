package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSaleRequest entrada para registrar una venta. El total no se acepta
// del caller: el motor lo deriva como QuantitySold × SalePrice.
type CreateSaleRequest struct {
	ProductID    string          `json:"product_id" validate:"required"`
	CustomerID   string          `json:"customer_id"`
	QuantitySold int             `json:"quantity_sold" validate:"required,gt=0"`
	SalePrice    decimal.Decimal `json:"sale_price"`
	Notes        string          `json:"notes"`
}

// SaleResponse salida de una venta.
type SaleResponse struct {
	ID           string          `json:"id"`
	ProductID    string          `json:"product_id"`
	CustomerID   string          `json:"customer_id,omitempty"`
	QuantitySold int             `json:"quantity_sold"`
	SalePrice    decimal.Decimal `json:"sale_price"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	SaleDate     time.Time       `json:"sale_date"`
	Notes        string          `json:"notes,omitempty"`
}
