// Package pdf implementa la generación del reporte imprimible del inventario
// usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de generación                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: productos / stock / valor                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: ID | Nombre | Stock | Precio                         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ALERTA: productos bajo el umbral, ascendente por stock      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tu-usuario/inventario-lite/internal/application/dto"
	"github.com/tu-usuario/inventario-lite/internal/application/reports"
	"github.com/tu-usuario/inventario-lite/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorAlert   = &props.Color{Red: 180, Green: 30, Blue: 30}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ reports.InventoryPDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa reports.InventoryPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateInventoryReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateInventoryReport(
	_ context.Context,
	products []*entity.Product,
	lowStock []*entity.Product,
	stats *dto.DashboardStatsDTO,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(statsRow(stats))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, p := range products {
		m.AddRows(productRow(p, false))
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(alertTitleRow(len(lowStock)))
	for _, p := range lowStock {
		m.AddRows(productRow(p, true))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título del reporte (izq) y fecha de generación (der).
func headerRow() core.Row {
	return row.New(10).Add(
		text.NewCol(8, "Reporte de Inventario", props.Text{
			Size: 14, Style: fontstyle.Bold, Color: colorPrimary,
		}),
		text.NewCol(4, time.Now().Format("2006-01-02 15:04"), props.Text{
			Size: 9, Align: align.Right, Color: colorGray,
		}),
	)
}

// statsRow: totales agregados (ambas métricas de valor por separado).
func statsRow(stats *dto.DashboardStatsDTO) core.Row {
	return row.New(8).Add(
		text.NewCol(3, fmt.Sprintf("Productos: %d", stats.TotalProducts), props.Text{Size: 9}),
		text.NewCol(3, fmt.Sprintf("Stock total: %d", stats.TotalStock), props.Text{Size: 9}),
		text.NewCol(3, "Suma precios: "+stats.TotalValue.StringFixed(2), props.Text{Size: 9}),
		text.NewCol(3, "Valor inventario: "+stats.TotalInventoryValue.StringFixed(2), props.Text{Size: 9}),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Size: 9, Style: fontstyle.Bold, Color: colorPrimary}
	return row.New(7).Add(
		text.NewCol(2, "ID", header),
		text.NewCol(6, "Nombre", header),
		text.NewCol(2, "Stock", header),
		text.NewCol(2, "Precio", header),
	)
}

func productRow(p *entity.Product, alert bool) core.Row {
	cell := props.Text{Size: 8}
	stockCell := cell
	if alert {
		stockCell = props.Text{Size: 8, Style: fontstyle.Bold, Color: colorAlert}
	}
	return row.New(6).Add(
		text.NewCol(2, strconv.FormatInt(p.ID, 10), cell),
		text.NewCol(6, p.Name, cell),
		text.NewCol(2, strconv.FormatInt(p.Stock, 10), stockCell),
		text.NewCol(2, p.Price.StringFixed(2), cell),
	)
}

func alertTitleRow(count int) core.Row {
	if count == 0 {
		return row.New(8).Add(
			text.NewCol(12, "Todos los productos tienen stock suficiente.", props.Text{
				Size: 9, Color: colorGray,
			}),
		)
	}
	return row.New(8).Add(
		text.NewCol(12, fmt.Sprintf("Alerta de stock bajo (%d)", count), props.Text{
			Size: 11, Style: fontstyle.Bold, Color: colorAlert,
		}),
	)
}
