package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Tributo-api/internal/application/dto"
	"github.com/jhoicas/Tributo-api/internal/application/purchases"
	"github.com/jhoicas/Tributo-api/internal/domain/repository"
)

// ExpenseHandler gastos operativos deducibles.
type ExpenseHandler struct {
	uc *purchases.ExpenseUseCase
}

// NewExpenseHandler construye el handler de gastos.
func NewExpenseHandler(uc *purchases.ExpenseUseCase) *ExpenseHandler {
	return &ExpenseHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar un gasto operativo
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.RegisterExpenseRequest  true  "Datos del gasto"
// @Success      201   {object}  dto.ExpenseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/expenses [post]
func (h *ExpenseHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterExpenseRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.Register(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// AttachReceipt godoc
// @Summary      Adjuntar el comprobante de un gasto pendiente
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                true  "ID del gasto"
// @Param        body  body  attachReceiptRequest  true  "receipt_ref"
// @Success      200   {object}  dto.ExpenseResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/expenses/{id}/receipt [post]
func (h *ExpenseHandler) AttachReceipt(c *fiber.Ctx) error {
	var in attachReceiptRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.ReceiptRef == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "receipt_ref es requerido"})
	}
	resp, err := h.uc.AttachReceipt(c.Context(), c.Params("id"), in.ReceiptRef)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// GetByID godoc
// @Summary      Obtener un gasto
// @Tags         expenses
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del gasto"
// @Success      200  {object}  dto.ExpenseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/expenses/{id} [get]
func (h *ExpenseHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// List godoc
// @Summary      Listar gastos
// @Tags         expenses
// @Produce      json
// @Security     BearerAuth
// @Param        status    query  string  false  "PENDIENTE_DOCS | COMPLETADO"
// @Param        category  query  string  false  "Categoría del gasto"
// @Param        period    query  string  false  "YYYY-MM"
// @Success      200  {array}  dto.ExpenseResponse
// @Router       /api/expenses [get]
func (h *ExpenseHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	page.DefaultPage()
	resp, err := h.uc.List(c.Context(), repository.ExpenseFilter{
		Status:   c.Query("status"),
		Category: c.Query("category"),
		Period:   c.Query("period"),
		Limit:    page.Limit,
		Offset:   page.Offset,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Delete godoc
// @Summary      Eliminar un gasto
// @Tags         expenses
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del gasto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// attachReceiptRequest cuerpo mínimo para adjuntar un comprobante por referencia.
type attachReceiptRequest struct {
	ReceiptRef string `json:"receipt_ref"`
}
