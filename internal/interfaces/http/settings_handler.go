package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Tributo-api/internal/application/dto"
	"github.com/jhoicas/Tributo-api/internal/application/usecase"
)

// SettingsHandler configuración tributaria y matriz de roles.
type SettingsHandler struct {
	uc *usecase.SettingsUseCase
}

// NewSettingsHandler construye el handler de configuración.
func NewSettingsHandler(uc *usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// GetTaxConfig godoc
// @Summary      Obtener la configuración tributaria vigente
// @Tags         settings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.TaxConfigResponse
// @Router       /api/settings/tax [get]
func (h *SettingsHandler) GetTaxConfig(c *fiber.Ctx) error {
	resp, err := h.uc.GetTaxConfig(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// UpdateTaxConfig godoc
// @Summary      Actualizar la configuración tributaria (parcial)
// @Description  Cambiar de régimen aplica la tasa de renta de tabla salvo que la petición traiga renta_rate explícito.
// @Tags         settings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.UpdateTaxConfigRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.TaxConfigResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/settings/tax [put]
func (h *SettingsHandler) UpdateTaxConfig(c *fiber.Ctx) error {
	var in dto.UpdateTaxConfigRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.UpdateTaxConfig(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// ListRoles godoc
// @Summary      Listar roles y sus matrices de permisos
// @Tags         settings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.RoleConfigResponse
// @Router       /api/settings/roles [get]
func (h *SettingsHandler) ListRoles(c *fiber.Ctx) error {
	resp, err := h.uc.ListRoles(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// SaveRole godoc
// @Summary      Crear o reemplazar la matriz de permisos de un rol
// @Tags         settings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.SaveRoleRequest  true  "role, label, permissions"
// @Success      200   {object}  dto.RoleConfigResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/settings/roles [put]
func (h *SettingsHandler) SaveRole(c *fiber.Ctx) error {
	var in dto.SaveRoleRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.SaveRole(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
