package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/inventory"
)

// InventoryHandler maneja las peticiones HTTP para movimientos de stock.
type InventoryHandler struct {
	uc *inventory.RegisterMovementUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.RegisterMovementUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar movimiento de stock
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "Movimiento (in, out o adjustment)"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [post]
func (h *InventoryHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if in.ProductID == "" || in.Type == "" {
		return badRequest(c, "product_id y type son requeridos")
	}
	out, err := h.uc.Register(c.Context(), GetActor(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar movimientos de stock
// @Tags         inventory
// @Produce      json
// @Success      200  {array}  dto.MovementResponse
// @Router       /api/inventory/movements [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByProduct godoc
// @Summary      Movimientos de un producto
// @Tags         inventory
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Success      200  {array}  dto.MovementResponse
// @Router       /api/inventory/movements/product/{productId} [get]
func (h *InventoryHandler) ListByProduct(c *fiber.Ctx) error {
	out, err := h.uc.ListByProduct(c.Params("productId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
