package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Tributo-api/internal/application/dto"
	"github.com/jhoicas/Tributo-api/internal/application/purchases"
	"github.com/jhoicas/Tributo-api/internal/domain/repository"
)

// PurchaseHandler compras a persona natural (RUC 10) con trío de sustentos.
type PurchaseHandler struct {
	uc *purchases.Ruc10UseCase
}

// NewPurchaseHandler construye el handler de compras RUC 10.
func NewPurchaseHandler(uc *purchases.Ruc10UseCase) *PurchaseHandler {
	return &PurchaseHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar una compra a persona natural
// @Description  Con los tres sustentos la compra se completa y crea el equipo; sin ellos queda PENDIENTE_DOCS.
// @Tags         purchases
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.RegisterPurchaseRequest  true  "Datos de la compra"
// @Success      201   {object}  dto.PurchaseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/purchases [post]
func (h *PurchaseHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterPurchaseRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.Register(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// AttachDocs godoc
// @Summary      Adjuntar sustentos a una compra pendiente
// @Description  Idempotente: solo actualiza referencias no vacías. Al juntarse voucher, contrato y DJ la compra se completa.
// @Tags         purchases
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                         true  "ID de la compra"
// @Param        body  body  dto.AttachPurchaseDocsRequest  true  "Referencias de sustentos"
// @Success      200   {object}  dto.PurchaseResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/purchases/{id}/docs [post]
func (h *PurchaseHandler) AttachDocs(c *fiber.Ctx) error {
	var in dto.AttachPurchaseDocsRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.AttachDocs(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// GetByID godoc
// @Summary      Obtener una compra RUC 10
// @Tags         purchases
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la compra"
// @Success      200  {object}  dto.PurchaseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/purchases/{id} [get]
func (h *PurchaseHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// List godoc
// @Summary      Listar compras RUC 10
// @Tags         purchases
// @Produce      json
// @Security     BearerAuth
// @Param        status           query  string  false  "PENDIENTE_DOCS | COMPLETADO"
// @Param        intermediary_id  query  string  false  "Emisor RUC 10"
// @Success      200  {array}  dto.PurchaseResponse
// @Router       /api/purchases [get]
func (h *PurchaseHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	page.DefaultPage()
	resp, err := h.uc.List(c.Context(), repository.PurchaseFilter{
		Status:         c.Query("status"),
		IntermediaryID: c.Query("intermediary_id"),
		Limit:          page.Limit,
		Offset:         page.Offset,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Delete godoc
// @Summary      Eliminar una compra pendiente
// @Description  Solo compras PENDIENTE_DOCS; una compra completada ya creó inventario y no se borra.
// @Tags         purchases
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la compra"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/purchases/{id} [delete]
func (h *PurchaseHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
