package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/inventario-lite/internal/application/analytics"
)

// DashboardHandler maneja los endpoints de agregados del inventario.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetStats godoc
// @Summary      Totales del inventario
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardStatsDTO
// @Router       /api/dashboard [get]
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.uc.GetStats(c.Context())
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(stats)
}

// GetLowStock godoc
// @Summary      Productos bajo el umbral de stock, ascendente por stock
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/low-stock [get]
func (h *DashboardHandler) GetLowStock(c *fiber.Ctx) error {
	out, err := h.uc.GetLowStock(c.Context())
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(out)
}
