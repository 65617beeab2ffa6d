package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Tributo-api/internal/application/dto"
	"github.com/jhoicas/Tributo-api/internal/application/purchases"
	"github.com/jhoicas/Tributo-api/internal/domain/repository"
)

// WholesaleHandler compras a proveedor con RUC (factura como único sustento).
type WholesaleHandler struct {
	uc *purchases.WholesaleUseCase
}

// NewWholesaleHandler construye el handler de compras mayoristas.
func NewWholesaleHandler(uc *purchases.WholesaleUseCase) *WholesaleHandler {
	return &WholesaleHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar una compra a proveedor con RUC
// @Description  Con invoice_ref la compra se completa: crea los equipos y asienta el comprobante con crédito fiscal.
// @Tags         wholesale
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.RegisterWholesaleRequest  true  "Datos de la compra"
// @Success      201   {object}  dto.WholesaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/wholesale [post]
func (h *WholesaleHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterWholesaleRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.Register(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// AttachInvoice godoc
// @Summary      Adjuntar la factura a una compra mayorista pendiente
// @Tags         wholesale
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                true  "ID de la compra"
// @Param        body  body  attachInvoiceRequest  true  "invoice_ref"
// @Success      200   {object}  dto.WholesaleResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/wholesale/{id}/invoice [post]
func (h *WholesaleHandler) AttachInvoice(c *fiber.Ctx) error {
	var in attachInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.InvoiceRef == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invoice_ref es requerido"})
	}
	resp, err := h.uc.AttachInvoice(c.Context(), c.Params("id"), in.InvoiceRef)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// GetByID godoc
// @Summary      Obtener una compra mayorista
// @Tags         wholesale
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la compra"
// @Success      200  {object}  dto.WholesaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/wholesale/{id} [get]
func (h *WholesaleHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// List godoc
// @Summary      Listar compras mayoristas
// @Tags         wholesale
// @Produce      json
// @Security     BearerAuth
// @Param        status       query  string  false  "PENDIENTE_DOCS | COMPLETADO"
// @Param        supplier_id  query  string  false  "Proveedor"
// @Success      200  {array}  dto.WholesaleResponse
// @Router       /api/wholesale [get]
func (h *WholesaleHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	page.DefaultPage()
	resp, err := h.uc.List(c.Context(), repository.WholesaleFilter{
		Status:     c.Query("status"),
		SupplierID: c.Query("supplier_id"),
		Limit:      page.Limit,
		Offset:     page.Offset,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Delete godoc
// @Summary      Eliminar una compra mayorista pendiente
// @Tags         wholesale
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la compra"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/wholesale/{id} [delete]
func (h *WholesaleHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// attachInvoiceRequest cuerpo mínimo para adjuntar una factura por referencia.
type attachInvoiceRequest struct {
	InvoiceRef string `json:"invoice_ref"`
}
