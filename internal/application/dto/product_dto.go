package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. Quantity es el stock
// inicial; si es > 0 el motor emite el movimiento de entrada inicial y, si es
// > 1, sintetiza un serial por unidad.
type CreateProductRequest struct {
	StockCode         string          `json:"stock_code" validate:"required,min=1,max=100"`
	Name              string          `json:"name" validate:"required,min=1,max=200"`
	Quantity          int             `json:"quantity" validate:"min=0"`
	EntryPrice        decimal.Decimal `json:"entry_price"`
	SalePrice         decimal.Decimal `json:"sale_price"`
	SerialNumber      string          `json:"serial_number"`
	ProductLink       string          `json:"product_link"`
	Description       string          `json:"description"`
	LowStockThreshold *int            `json:"low_stock_threshold"`
}

// UpdateProductRequest entrada para actualización parcial (merge). No incluye
// Quantity: el stock solo cambia vía movimientos y ventas.
type UpdateProductRequest struct {
	StockCode         *string          `json:"stock_code" validate:"omitempty,min=1,max=100"`
	Name              *string          `json:"name" validate:"omitempty,min=1,max=200"`
	EntryPrice        *decimal.Decimal `json:"entry_price"`
	SalePrice         *decimal.Decimal `json:"sale_price"`
	SerialNumber      *string          `json:"serial_number"`
	ProductLink       *string          `json:"product_link"`
	Description       *string          `json:"description"`
	LowStockThreshold *int             `json:"low_stock_threshold"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID                string          `json:"id"`
	StockCode         string          `json:"stock_code"`
	Name              string          `json:"name"`
	Quantity          int             `json:"quantity"`
	EntryPrice        decimal.Decimal `json:"entry_price"`
	SalePrice         decimal.Decimal `json:"sale_price"`
	SerialNumber      string          `json:"serial_number,omitempty"`
	ProductLink       string          `json:"product_link,omitempty"`
	Description       string          `json:"description,omitempty"`
	LowStockThreshold int             `json:"low_stock_threshold"`
	LabelCode         string          `json:"label_code"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}
