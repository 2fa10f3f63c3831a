package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/returns"
)

// ReturnHandler maneja las peticiones HTTP para Return.
type ReturnHandler struct {
	uc *returns.ReturnUseCase
}

// NewReturnHandler construye el handler.
func NewReturnHandler(uc *returns.ReturnUseCase) *ReturnHandler {
	return &ReturnHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar devolución
// @Tags         returns
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateReturnRequest  true  "Datos de la devolución"
// @Success      201   {object}  dto.ReturnResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/returns [post]
func (h *ReturnHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateReturnRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if in.SaleID == "" || in.ProductID == "" || in.CustomerID == "" || in.Reason == "" {
		return badRequest(c, "sale_id, product_id, customer_id y reason son requeridos")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar devoluciones (más recientes primero)
// @Tags         returns
// @Produce      json
// @Success      200  {array}  dto.ReturnResponse
// @Router       /api/returns [get]
func (h *ReturnHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener devolución por ID
// @Tags         returns
// @Produce      json
// @Param        id   path  string  true  "ID de la devolución"
// @Success      200  {object}  dto.ReturnResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/returns/{id} [get]
func (h *ReturnHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "devolución no encontrada")
	}
	return c.JSON(out)
}

// ListByCustomer godoc
// @Summary      Devoluciones de un cliente
// @Tags         returns
// @Produce      json
// @Param        customerId  path  string  true  "ID del cliente"
// @Success      200  {array}  dto.ReturnResponse
// @Router       /api/returns/customer/{customerId} [get]
func (h *ReturnHandler) ListByCustomer(c *fiber.Ctx) error {
	out, err := h.uc.ListByCustomer(c.Params("customerId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Resolver devolución (cambio de estado)
// @Tags         returns
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la devolución"
// @Param        body  body  dto.UpdateReturnStatusRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.ReturnResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/returns/{id}/status [patch]
func (h *ReturnHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateReturnStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if in.Status == "" {
		return badRequest(c, "status es requerido")
	}
	out, err := h.uc.UpdateStatus(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "devolución no encontrada")
	}
	return c.JSON(out)
}
