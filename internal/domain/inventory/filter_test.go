package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/inventario-lite/internal/domain/entity"
	"github.com/tu-usuario/inventario-lite/internal/domain/inventory"
)

func producto(id int64, name string, stock int64) *entity.Product {
	return &entity.Product{ID: id, Name: name, Stock: stock, Price: decimal.NewFromFloat(1.50)}
}

func snapshot() []*entity.Product {
	return []*entity.Product{
		producto(1, "Tornillo", 0),
		producto(2, "Martillo", 4),
		producto(3, "Clavo", 5),
		producto(4, "Taladro", 6),
		producto(5, "Sierra", 10),
	}
}

// Texto vacío + banda all devuelve el snapshot sin cambios de orden ni contenido.
func TestFilter_VacioTodoDevuelveSnapshot(t *testing.T) {
	in := snapshot()
	out := inventory.Filter(in, "", inventory.BandAll)

	require.Len(t, out, len(in))
	for i := range in {
		assert.Equal(t, in[i].ID, out[i].ID, "debe preservar el orden del snapshot")
	}
}

// El filtro es función pura: dos llamadas con los mismos argumentos producen
// el mismo resultado y no mutan la entrada.
func TestFilter_Idempotente(t *testing.T) {
	in := snapshot()
	out1 := inventory.Filter(in, "o", inventory.BandLow)
	out2 := inventory.Filter(in, "o", inventory.BandLow)

	assert.Equal(t, out1, out2)
	assert.Len(t, in, 5, "la entrada no se modifica")
}

func TestFilter_BusquedaSinMayusculas(t *testing.T) {
	out := inventory.Filter(snapshot(), "MARTILLO", inventory.BandAll)

	require.Len(t, out, 1)
	assert.Equal(t, "Martillo", out[0].Name)
}

func TestFilter_SubstringParcial(t *testing.T) {
	// "llo" coincide con Tornillo y Martillo.
	out := inventory.Filter(snapshot(), "llo", inventory.BandAll)

	require.Len(t, out, 2)
	assert.Equal(t, int64(1), out[0].ID)
	assert.Equal(t, int64(2), out[1].ID)
}

func TestFilter_BandaLow(t *testing.T) {
	out := inventory.Filter(snapshot(), "", inventory.BandLow)

	require.Len(t, out, 2)
	assert.Equal(t, int64(0), out[0].Stock)
	assert.Equal(t, int64(4), out[1].Stock)
}

// El límite es estricto: stock 5 pertenece a inStock, no a low.
func TestFilter_BandaInStockIncluyeUmbral(t *testing.T) {
	out := inventory.Filter(snapshot(), "", inventory.BandInStock)

	require.Len(t, out, 3)
	for _, p := range out {
		assert.GreaterOrEqual(t, p.Stock, int64(inventory.LowStockThreshold))
	}
}

// Los dos predicados se combinan con AND.
func TestFilter_TextoYBandaCombinados(t *testing.T) {
	out := inventory.Filter(snapshot(), "t", inventory.BandInStock)

	// Con "t": Tornillo (stock 0), Martillo (4), Taladro (6) → solo Taladro pasa la banda.
	require.Len(t, out, 1)
	assert.Equal(t, "Taladro", out[0].Name)
}

func TestParseBand_DesconocidoEsAll(t *testing.T) {
	assert.Equal(t, inventory.BandAll, inventory.ParseBand(""))
	assert.Equal(t, inventory.BandAll, inventory.ParseBand("cualquiercosa"))
	assert.Equal(t, inventory.BandLow, inventory.ParseBand("low"))
	assert.Equal(t, inventory.BandInStock, inventory.ParseBand("inStock"))
}

func TestIsLowStock_Umbral(t *testing.T) {
	assert.True(t, inventory.IsLowStock(producto(1, "X", 4)))
	assert.False(t, inventory.IsLowStock(producto(2, "Y", 5)))
}
