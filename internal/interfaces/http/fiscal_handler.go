package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Tributo-api/internal/application/dto"
	"github.com/jhoicas/Tributo-api/internal/application/fiscal"
)

// FiscalHandler liquidaciones mensuales, proyección anual y exportación SIRE.
type FiscalHandler struct {
	uc *fiscal.FiscalUseCase
}

// NewFiscalHandler construye el handler tributario.
func NewFiscalHandler(uc *fiscal.FiscalUseCase) *FiscalHandler {
	return &FiscalHandler{uc: uc}
}

// Monthly godoc
// @Summary      Liquidación mensual de ambos libros (RUC 10 y RUC 20)
// @Tags         taxes
// @Produce      json
// @Security     BearerAuth
// @Param        period  path  string  true  "Período YYYY-MM"
// @Success      200  {object}  dto.MonthlyTaxResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/taxes/monthly/{period} [get]
func (h *FiscalHandler) Monthly(c *fiber.Ctx) error {
	resp, err := h.uc.MonthlySummary(c.Context(), c.Params("period"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Annual godoc
// @Summary      Proyección de regularización anual del RUC 20
// @Tags         taxes
// @Produce      json
// @Security     BearerAuth
// @Param        year  path  int  true  "Año calendario"
// @Success      200  {object}  dto.AnnualProjectionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/taxes/annual/{year} [get]
func (h *FiscalHandler) Annual(c *fiber.Ctx) error {
	year, err := strconv.Atoi(c.Params("year"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "año inválido"})
	}
	resp, err := h.uc.AnnualProjection(c.Context(), year)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// ExportSire godoc
// @Summary      Generar el TXT SIRE de un período
// @Tags         taxes
// @Produce      json
// @Security     BearerAuth
// @Param        register  query  string  true  "RVIE | RCE"
// @Param        period    query  string  true  "Período YYYY-MM"
// @Success      200  {object}  dto.SireExportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/taxes/sire [get]
func (h *FiscalHandler) ExportSire(c *fiber.Ctx) error {
	resp, err := h.uc.ExportSire(c.Context(), c.Query("register"), c.Query("period"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// DownloadSire godoc
// @Summary      Descargar el TXT SIRE codificado en Windows-1252
// @Description  El portal de SUNAT importa los archivos planos en Windows-1252, no UTF-8.
// @Tags         taxes
// @Produce      text/plain
// @Security     BearerAuth
// @Param        register  query  string  true  "RVIE | RCE"
// @Param        period    query  string  true  "Período YYYY-MM"
// @Success      200  {string}  string  "Archivo TXT"
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/taxes/sire/download [get]
func (h *FiscalHandler) DownloadSire(c *fiber.Ctx) error {
	resp, err := h.uc.ExportSire(c.Context(), c.Query("register"), c.Query("period"))
	if err != nil {
		return respondError(c, err)
	}
	encoded, err := fiscal.EncodeWindows1252(resp.Content)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/plain; charset=windows-1252")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+resp.Filename+`"`)
	return c.Send(encoded)
}
