package dto

import "github.com/shopspring/decimal"

// SalesStatsResponse resumen para el dashboard. TodaySales es el monto total
// vendido hoy (suma de TotalAmount), no un conteo: el nombre se conserva por
// compatibilidad con los consumidores existentes.
type SalesStatsResponse struct {
	TotalProducts   int             `json:"totalProducts"`
	LowStock        int             `json:"lowStock"`
	TodaySales      decimal.Decimal `json:"todaySales"`
	ActiveCustomers int             `json:"activeCustomers"`
}
