// Package analytics contiene los casos de uso de solo lectura del dashboard:
// totales del inventario y alerta de stock bajo.
package analytics

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/inventario-lite/internal/application/dto"
	"github.com/tu-usuario/inventario-lite/internal/domain/entity"
	"github.com/tu-usuario/inventario-lite/internal/domain/inventory"
	"github.com/tu-usuario/inventario-lite/internal/domain/repository"
)

// DashboardUseCase deriva las estadísticas agregadas del inventario.
// Cada consulta recalcula desde un snapshot fresco del store: no hay estado
// agregado cacheado, así que un borrado se refleja en la siguiente llamada.
type DashboardUseCase struct {
	store repository.ProductStore
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(store repository.ProductStore) *DashboardUseCase {
	return &DashboardUseCase{store: store}
}

// GetStats devuelve los totales del inventario.
//
// TotalValue suma precios unitarios y TotalInventoryValue suma stock × precio;
// ver el comentario en DashboardStatsDTO sobre por qué existen ambos.
func (uc *DashboardUseCase) GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	list, err := uc.store.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := &dto.DashboardStatsDTO{
		TotalProducts:       len(list),
		TotalValue:          decimal.Zero,
		TotalInventoryValue: decimal.Zero,
	}
	for _, p := range list {
		stats.TotalStock += p.Stock
		stats.TotalValue = stats.TotalValue.Add(p.Price)
		stats.TotalInventoryValue = stats.TotalInventoryValue.Add(
			p.Price.Mul(decimal.NewFromInt(p.Stock)))
		if inventory.IsLowStock(p) {
			stats.LowStock++
		}
	}
	return stats, nil
}

// GetLowStock devuelve los productos bajo el umbral, ascendente por stock
// (empates resueltos por ID para una salida estable).
func (uc *DashboardUseCase) GetLowStock(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.store.List(ctx)
	if err != nil {
		return nil, err
	}

	var low []*entity.Product
	for _, p := range list {
		if inventory.IsLowStock(p) {
			low = append(low, p)
		}
	}
	sort.SliceStable(low, func(i, j int) bool { return low[i].Stock < low[j].Stock })

	items := make([]dto.ProductResponse, 0, len(low))
	for _, p := range low {
		items = append(items, dto.ProductResponse{ID: p.ID, Name: p.Name, Stock: p.Stock, Price: p.Price})
	}
	return items, nil
}
