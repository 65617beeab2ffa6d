package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Tributo-api/internal/application/dto"
	"github.com/jhoicas/Tributo-api/internal/application/usecase"
)

// ProductHandler consultas y edición descriptiva del inventario. Los equipos
// no se crean por HTTP directo: nacen al completarse una compra.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler de inventario.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List godoc
// @Summary      Listar equipos
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        status           query  string  false  "IN_STOCK_RUC10 | TRANSFERRED_RUC20 | SOLD"
// @Param        category         query  string  false  "Categoría"
// @Param        intermediary_id  query  string  false  "Emisor RUC 10"
// @Param        search           query  string  false  "Marca, modelo o serie"
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	var in dto.ListProductsRequest
	if err := c.QueryParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.List(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Summary godoc
// @Summary      Conteo de equipos por estado
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.StockSummaryResponse
// @Router       /api/products/summary [get]
func (h *ProductHandler) Summary(c *fiber.Ctx) error {
	resp, err := h.uc.StockSummary(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// GetByID godoc
// @Summary      Obtener un equipo
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del equipo"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Update godoc
// @Summary      Editar datos descriptivos de un equipo
// @Description  El estado y los campos de transferencia no se editan por aquí.
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                   true  "ID del equipo"
// @Param        body  body  dto.UpdateProductRequest true  "Campos a actualizar"
// @Success      200   {object}  dto.ProductResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
