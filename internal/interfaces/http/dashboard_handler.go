package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stockflow-api/internal/application/inventory"
)

// DashboardHandler tablero de inventario y faltantes.
type DashboardHandler struct {
	uc *inventory.ReplenishmentUseCase
}

func NewDashboardHandler(uc *inventory.ReplenishmentUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Tablero de inventario
// @Description  Total de productos, productos en o bajo su mínimo, unidades y valorización a costo.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard(c.UserContext())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// LowStock godoc
// @Summary      Productos con faltante
// @Description  Productos con stock en o bajo min_stock_level, mayor déficit primero, con reposición sugerida a 1.5x el mínimo.
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.LowStockListResponse
// @Router       /api/stock/low [get]
func (h *DashboardHandler) LowStock(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.LowStock(c.UserContext(), limit, offset)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}
