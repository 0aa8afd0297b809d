// Package inventory contiene servicios de dominio puros sobre el inventario:
// el umbral de stock bajo y el filtrado de snapshots por texto y banda de stock.
package inventory

import (
	"strings"

	"github.com/tu-usuario/inventario-lite/internal/domain/entity"
)

// LowStockThreshold es el umbral de alerta: stock < 5 se considera bajo.
// Constante de política, no configurable en esta versión.
const LowStockThreshold = 5

// StockBand selector de banda de stock para el filtrado.
type StockBand string

// Bandas válidas. Un valor desconocido se comporta como BandAll.
const (
	BandAll     StockBand = "all"
	BandLow     StockBand = "low"     // stock < LowStockThreshold
	BandInStock StockBand = "inStock" // stock >= LowStockThreshold
)

// ParseBand normaliza el selector recibido del cliente.
func ParseBand(s string) StockBand {
	switch StockBand(s) {
	case BandLow:
		return BandLow
	case BandInStock:
		return BandInStock
	default:
		return BandAll
	}
}

// IsLowStock indica si el producto está por debajo del umbral de alerta.
func IsLowStock(p *entity.Product) bool {
	return p.Stock < LowStockThreshold
}

// Filter aplica sobre el snapshot la conjunción de dos predicados:
// coincidencia de substring sin distinguir mayúsculas en Name (texto vacío
// coincide con todo) y pertenencia a la banda de stock. Preserva el orden
// relativo del snapshot de entrada y no hace I/O: es función pura, segura
// de reejecutar en cada consulta.
func Filter(products []*entity.Product, search string, band StockBand) []*entity.Product {
	needle := strings.ToLower(search)
	out := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		if !strings.Contains(strings.ToLower(p.Name), needle) {
			continue
		}
		if !matchesBand(p, band) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesBand(p *entity.Product, band StockBand) bool {
	switch band {
	case BandLow:
		return p.Stock < LowStockThreshold
	case BandInStock:
		return p.Stock >= LowStockThreshold
	default:
		return true
	}
}
