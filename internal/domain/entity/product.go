package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Umbral de stock bajo por defecto cuando el producto no define uno propio.
const DefaultLowStockThreshold = 5

// Product representa un producto del inventario.
// Quantity es estado derivado: solo lo mutan los movimientos de stock y las
// ventas; nunca se escribe directamente desde la capa HTTP.
type Product struct {
	ID                string
	StockCode         string // código único de negocio, inmutable en la práctica
	Name              string
	Quantity          int
	EntryPrice        decimal.Decimal // precio de compra
	SalePrice         decimal.Decimal // precio de venta
	SerialNumber      string          // campo serial legado (un solo valor), distinto de la entidad SerialNumber
	ProductLink       string
	Description       string
	LowStockThreshold int    // 0 = sin definir, aplica DefaultLowStockThreshold
	LabelCode         string // código de etiqueta generado al crear
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// EffectiveThreshold devuelve el umbral de reorden a aplicar (propio o por defecto).
func (p *Product) EffectiveThreshold() int {
	if p.LowStockThreshold <= 0 {
		return DefaultLowStockThreshold
	}
	return p.LowStockThreshold
}

// IsLowStock indica si el producto está en o bajo su umbral (comparación <=).
func (p *Product) IsLowStock() bool {
	return p.Quantity <= p.EffectiveThreshold()
}
