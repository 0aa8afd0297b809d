// Package reports genera el reporte PDF del inventario: tabla completa de
// productos, totales y sección de alerta de stock bajo.
package reports

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/inventario-lite/internal/application/dto"
	"github.com/tu-usuario/inventario-lite/internal/domain/entity"
	"github.com/tu-usuario/inventario-lite/internal/domain/inventory"
	"github.com/tu-usuario/inventario-lite/internal/domain/repository"
)

// PDFUseCase arma los datos del reporte desde un snapshot fresco y delega
// la maquetación en el generador.
type PDFUseCase struct {
	store     repository.ProductStore
	generator InventoryPDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(store repository.ProductStore, generator InventoryPDFGenerator) *PDFUseCase {
	return &PDFUseCase{store: store, generator: generator}
}

// GenerateInventoryReport devuelve los bytes del PDF.
func (uc *PDFUseCase) GenerateInventoryReport(ctx context.Context) ([]byte, error) {
	list, err := uc.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("reporte: snapshot: %w", err)
	}

	stats := &dto.DashboardStatsDTO{
		TotalProducts:       len(list),
		TotalValue:          decimal.Zero,
		TotalInventoryValue: decimal.Zero,
	}
	var low []*entity.Product
	for _, p := range list {
		stats.TotalStock += p.Stock
		stats.TotalValue = stats.TotalValue.Add(p.Price)
		stats.TotalInventoryValue = stats.TotalInventoryValue.Add(
			p.Price.Mul(decimal.NewFromInt(p.Stock)))
		if inventory.IsLowStock(p) {
			stats.LowStock++
			low = append(low, p)
		}
	}
	sort.SliceStable(low, func(i, j int) bool { return low[i].Stock < low[j].Stock })

	pdf, err := uc.generator.GenerateInventoryReport(ctx, list, low, stats)
	if err != nil {
		return nil, fmt.Errorf("reporte: generar PDF: %w", err)
	}
	return pdf, nil
}
