package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Tributo-api/internal/application/dto"
	"github.com/jhoicas/Tributo-api/internal/application/usecase"
)

// IntermediaryHandler emisores RUC 10 (personas naturales con negocio).
type IntermediaryHandler struct {
	uc *usecase.IntermediaryUseCase
}

// NewIntermediaryHandler construye el handler de emisores.
func NewIntermediaryHandler(uc *usecase.IntermediaryUseCase) *IntermediaryHandler {
	return &IntermediaryHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar un emisor RUC 10
// @Tags         intermediaries
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateIntermediaryRequest  true  "Datos del emisor"
// @Success      201   {object}  dto.IntermediaryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/intermediaries [post]
func (h *IntermediaryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateIntermediaryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetByID godoc
// @Summary      Obtener un emisor
// @Tags         intermediaries
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del emisor"
// @Success      200  {object}  dto.IntermediaryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/intermediaries/{id} [get]
func (h *IntermediaryHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// List godoc
// @Summary      Listar emisores
// @Tags         intermediaries
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.IntermediaryResponse
// @Router       /api/intermediaries [get]
func (h *IntermediaryHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.List(c.Context(), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Update godoc
// @Summary      Editar un emisor (el DNI es inmutable)
// @Tags         intermediaries
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                         true  "ID del emisor"
// @Param        body  body  dto.UpdateIntermediaryRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.IntermediaryResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/intermediaries/{id} [put]
func (h *IntermediaryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateIntermediaryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Delete godoc
// @Summary      Eliminar un emisor sin equipos registrados
// @Tags         intermediaries
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del emisor"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/intermediaries/{id} [delete]
func (h *IntermediaryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
