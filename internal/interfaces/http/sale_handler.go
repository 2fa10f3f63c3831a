package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/sales"
)

// SaleHandler maneja las peticiones HTTP para Sale.
type SaleHandler struct {
	uc *sales.SaleUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *sales.SaleUseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar venta
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "Datos de la venta"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if in.ProductID == "" {
		return badRequest(c, "product_id es requerido")
	}
	out, err := h.uc.Create(c.Context(), GetActor(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar ventas
// @Tags         sales
// @Produce      json
// @Success      200  {array}  dto.SaleResponse
// @Router       /api/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Today godoc
// @Summary      Ventas del día calendario actual
// @Tags         sales
// @Produce      json
// @Success      200  {array}  dto.SaleResponse
// @Router       /api/sales/today [get]
func (h *SaleHandler) Today(c *fiber.Ctx) error {
	out, err := h.uc.ListToday()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener venta por ID
// @Tags         sales
// @Produce      json
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [get]
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "venta no encontrada")
	}
	return c.JSON(out)
}

// ListByProduct godoc
// @Summary      Ventas de un producto
// @Tags         sales
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Success      200  {array}  dto.SaleResponse
// @Router       /api/sales/product/{productId} [get]
func (h *SaleHandler) ListByProduct(c *fiber.Ctx) error {
	out, err := h.uc.ListByProduct(c.Params("productId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByCustomer godoc
// @Summary      Ventas de un cliente
// @Tags         sales
// @Produce      json
// @Param        customerId  path  string  true  "ID del cliente"
// @Success      200  {array}  dto.SaleResponse
// @Router       /api/sales/customer/{customerId} [get]
func (h *SaleHandler) ListByCustomer(c *fiber.Ctx) error {
	out, err := h.uc.ListByCustomer(c.Params("customerId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
