package reports

import (
	"context"

	"github.com/tu-usuario/inventario-lite/internal/application/dto"
	"github.com/tu-usuario/inventario-lite/internal/domain/entity"
)

// InventoryPDFGenerator renderiza el reporte imprimible del inventario.
// La capa de aplicación reúne los datos; el adaptador solo maqueta.
type InventoryPDFGenerator interface {
	GenerateInventoryReport(
		ctx context.Context,
		products []*entity.Product,
		lowStock []*entity.Product,
		stats *dto.DashboardStatsDTO,
	) ([]byte, error)
}
