package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/serials"
)

// SerialHandler maneja las peticiones HTTP para SerialNumber.
type SerialHandler struct {
	uc *serials.SerialUseCase
}

// NewSerialHandler construye el handler.
func NewSerialHandler(uc *serials.SerialUseCase) *SerialHandler {
	return &SerialHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar serial individual
// @Tags         serials
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSerialRequest  true  "Datos del serial"
// @Success      201   {object}  dto.SerialResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/serials [post]
func (h *SerialHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSerialRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if in.ProductID == "" || in.Serial == "" {
		return badRequest(c, "product_id y serial son requeridos")
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar seriales
// @Tags         serials
// @Produce      json
// @Success      200  {array}  dto.SerialResponse
// @Router       /api/serials [get]
func (h *SerialHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByProduct godoc
// @Summary      Seriales de un producto
// @Tags         serials
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Success      200  {array}  dto.SerialResponse
// @Router       /api/serials/product/{productId} [get]
func (h *SerialHandler) ListByProduct(c *fiber.Ctx) error {
	out, err := h.uc.ListByProduct(c.Params("productId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByValue godoc
// @Summary      Buscar serial por valor exacto
// @Tags         serials
// @Produce      json
// @Param        value  path  string  true  "Valor del serial"
// @Success      200  {object}  dto.SerialResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/serials/value/{value} [get]
func (h *SerialHandler) GetByValue(c *fiber.Ctx) error {
	out, err := h.uc.GetByValue(c.Params("value"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "serial no encontrado")
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar serial (parcial)
// @Tags         serials
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del serial"
// @Param        body  body  dto.UpdateSerialRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.SerialResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/serials/{id} [put]
func (h *SerialHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSerialRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "serial no encontrado")
	}
	return c.JSON(out)
}
