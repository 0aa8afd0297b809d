package dto

import "github.com/shopspring/decimal"

// DashboardStatsDTO respuesta de GET /api/dashboard.
// Se recalcula fresco del snapshot en cada llamada (sin estado agregado cacheado).
//
// TotalValue y TotalInventoryValue son métricas distintas con etiquetas
// históricamente confundidas: la primera suma precios unitarios (el agregado
// del dashboard de referencia), la segunda suma stock × precio (el resumen
// del cliente). Se exponen por separado; cuál es el "Total Inventory Value"
// definitivo está pendiente con producto.
type DashboardStatsDTO struct {
	TotalProducts       int             `json:"total_products"`
	TotalStock          int64           `json:"total_stock"`
	TotalValue          decimal.Decimal `json:"total_value"`           // sum(price)
	TotalInventoryValue decimal.Decimal `json:"total_inventory_value"` // sum(stock * price)
	LowStock            int             `json:"low_stock"`             // count(stock < umbral)
}
