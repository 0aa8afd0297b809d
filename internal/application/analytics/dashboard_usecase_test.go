package analytics_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/inventario-lite/internal/application/analytics"
	"github.com/tu-usuario/inventario-lite/internal/infrastructure/memory"
)

// Los casos de borde de stock se insertan directo en el store: la validación
// del CRUD rechaza stock 0, pero el dashboard debe soportar cualquier dato
// que ya esté persistido.
func sembrar(t *testing.T, store *memory.ProductStore, stocks []int64) {
	t.Helper()
	ctx := context.Background()
	for i, s := range stocks {
		_, err := store.Insert(ctx, "P", s, decimal.NewFromInt(int64(i+1)))
		require.NoError(t, err)
	}
}

func TestGetStats_Totales(t *testing.T) {
	ctx := context.Background()
	store := memory.NewProductStore()
	uc := analytics.NewDashboardUseCase(store)

	_, err := store.Insert(ctx, "Martillo", 2, decimal.RequireFromString("5.00"))
	require.NoError(t, err)
	_, err = store.Insert(ctx, "Taladro", 8, decimal.RequireFromString("30.00"))
	require.NoError(t, err)

	stats, err := uc.GetStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalProducts)
	assert.Equal(t, int64(10), stats.TotalStock)
	// Valor de catálogo: 5 + 30. Valor de inventario: 2×5 + 8×30.
	assert.True(t, stats.TotalValue.Equal(decimal.RequireFromString("35.00")),
		"TotalValue = %s", stats.TotalValue)
	assert.True(t, stats.TotalInventoryValue.Equal(decimal.RequireFromString("250.00")),
		"TotalInventoryValue = %s", stats.TotalInventoryValue)
	assert.Equal(t, 1, stats.LowStock)
}

func TestGetStats_StoreVacioEsTodoCero(t *testing.T) {
	uc := analytics.NewDashboardUseCase(memory.NewProductStore())

	stats, err := uc.GetStats(context.Background())
	require.NoError(t, err)

	assert.Zero(t, stats.TotalProducts)
	assert.Zero(t, stats.TotalStock)
	assert.True(t, stats.TotalValue.IsZero())
	assert.True(t, stats.TotalInventoryValue.IsZero())
	assert.Zero(t, stats.LowStock)
}

// El umbral es estricto: stock 5 ya no cuenta como bajo.
func TestLowStock_UmbralEstricto(t *testing.T) {
	ctx := context.Background()
	store := memory.NewProductStore()
	uc := analytics.NewDashboardUseCase(store)
	sembrar(t, store, []int64{0, 4, 5, 6, 10})

	stats, err := uc.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.LowStock)

	low, err := uc.GetLowStock(ctx)
	require.NoError(t, err)
	require.Len(t, low, 2)
	// Ascendente por stock.
	assert.Equal(t, int64(0), low[0].Stock)
	assert.Equal(t, int64(4), low[1].Stock)
}

func TestLowStock_EmpatesPorID(t *testing.T) {
	ctx := context.Background()
	store := memory.NewProductStore()
	uc := analytics.NewDashboardUseCase(store)
	sembrar(t, store, []int64{3, 3, 3})

	low, err := uc.GetLowStock(ctx)
	require.NoError(t, err)
	require.Len(t, low, 3)
	assert.Less(t, low[0].ID, low[1].ID)
	assert.Less(t, low[1].ID, low[2].ID)
}

// No hay caché de agregados: un borrado se ve en la siguiente consulta.
func TestGetStats_ReflejaBorradosDeInmediato(t *testing.T) {
	ctx := context.Background()
	store := memory.NewProductStore()
	uc := analytics.NewDashboardUseCase(store)

	p, err := store.Insert(ctx, "Efímero", 2, decimal.NewFromInt(7))
	require.NoError(t, err)

	stats, err := uc.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalProducts)
	assert.Equal(t, 1, stats.LowStock)

	require.NoError(t, store.Remove(ctx, p.ID))

	stats, err = uc.GetStats(ctx)
	require.NoError(t, err)
	assert.Zero(t, stats.TotalProducts)
	assert.Zero(t, stats.LowStock)
	assert.True(t, stats.TotalInventoryValue.IsZero())
}
