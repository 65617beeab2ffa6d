package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Tributo-api/internal/application/usecase"
)

// LookupHandler consulta de identidad contra los padrones RENIEC/SUNAT.
type LookupHandler struct {
	uc *usecase.LookupUseCase
}

// NewLookupHandler construye el handler de consultas.
func NewLookupHandler(uc *usecase.LookupUseCase) *LookupHandler {
	return &LookupHandler{uc: uc}
}

// LookupDNI godoc
// @Summary      Consultar nombre por DNI
// @Description  Si el proveedor externo no responde, found=false; el registro manual sigue disponible.
// @Tags         lookup
// @Produce      json
// @Security     BearerAuth
// @Param        dni  path  string  true  "DNI de 8 dígitos"
// @Success      200  {object}  dto.DNILookupResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/lookup/dni/{dni} [get]
func (h *LookupHandler) LookupDNI(c *fiber.Ctx) error {
	resp, err := h.uc.LookupDNI(c.Context(), c.Params("dni"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// LookupRUC godoc
// @Summary      Consultar contribuyente por RUC
// @Tags         lookup
// @Produce      json
// @Security     BearerAuth
// @Param        ruc  path  string  true  "RUC de 11 dígitos"
// @Success      200  {object}  dto.RUCLookupResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/lookup/ruc/{ruc} [get]
func (h *LookupHandler) LookupRUC(c *fiber.Ctx) error {
	resp, err := h.uc.LookupRUC(c.Context(), c.Params("ruc"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
