package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Almacen-api/internal/application/analytics"
)

// DashboardHandler expone las estadísticas de venta.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Stats godoc
// @Summary      Resumen de ventas del día
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.SalesStatsResponse
// @Router       /api/dashboard/stats [get]
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.GetSalesStats()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
