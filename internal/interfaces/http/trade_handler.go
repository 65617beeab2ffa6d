package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Tributo-api/internal/application/dto"
	"github.com/jhoicas/Tributo-api/internal/application/trade"
)

// TradeHandler expone la venta interna RUC 10 → RUC 20, la venta a cliente
// final y el registro de comprobantes que ambas alimentan.
type TradeHandler struct {
	transfers *trade.TransferUseCase
	sales     *trade.SaleUseCase
	ledger    *trade.LedgerUseCase
}

// NewTradeHandler construye el handler de operaciones comerciales.
func NewTradeHandler(transfers *trade.TransferUseCase, sales *trade.SaleUseCase, ledger *trade.LedgerUseCase) *TradeHandler {
	return &TradeHandler{transfers: transfers, sales: sales, ledger: ledger}
}

// QuoteTransfer godoc
// @Summary      Cotizar la venta interna de un equipo (sin persistir)
// @Tags         transfers
// @Produce      json
// @Security     BearerAuth
// @Param        productId  path  string  true  "ID del equipo"
// @Success      200  {object}  dto.PriceQuoteResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/transfers/quote/{productId} [get]
func (h *TradeHandler) QuoteTransfer(c *fiber.Ctx) error {
	resp, err := h.transfers.Quote(c.Context(), c.Params("productId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// CreateTransfer godoc
// @Summary      Ejecutar la venta interna RUC 10 → RUC 20
// @Description  Genera el par atómico de comprobantes: salida en el libro RUC 10 y entrada en el libro RUC 20.
// @Tags         transfers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.TransferRequest  true  "product_id, intermediary_id, document_type, document_number, voucher_ref, date"
// @Success      201   {object}  dto.TransferResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/transfers [post]
func (h *TradeHandler) CreateTransfer(c *fiber.Ctx) error {
	var in dto.TransferRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.transfers.Transfer(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// AttachTransferVoucher godoc
// @Summary      Reintentar la carga del voucher bancario de una venta interna
// @Tags         transfers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        eventId  path  string                true  "ID del evento de transferencia"
// @Param        body     body  attachVoucherRequest  true  "voucher_ref"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/transfers/{eventId}/voucher [post]
func (h *TradeHandler) AttachTransferVoucher(c *fiber.Ctx) error {
	var in attachVoucherRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.VoucherRef == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "voucher_ref es requerido"})
	}
	if err := h.transfers.AttachVoucher(c.Context(), c.Params("eventId"), in.VoucherRef); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// VoidTransfer godoc
// @Summary      Anular una venta interna
// @Description  Marca el par de comprobantes como ANULADO y devuelve el equipo al stock RUC 10.
// @Tags         transfers
// @Produce      json
// @Security     BearerAuth
// @Param        eventId  path  string  true  "ID del evento de transferencia"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/transfers/{eventId}/void [post]
func (h *TradeHandler) VoidTransfer(c *fiber.Ctx) error {
	if err := h.transfers.VoidTransfer(c.Context(), c.Params("eventId")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// QuoteSale godoc
// @Summary      Cotizar la venta final de un equipo (sin persistir)
// @Tags         sales
// @Produce      json
// @Security     BearerAuth
// @Param        productId  path  string  true  "ID del equipo"
// @Success      200  {object}  dto.PriceQuoteResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/sales/quote/{productId} [get]
func (h *TradeHandler) QuoteSale(c *fiber.Ctx) error {
	resp, err := h.sales.Quote(c.Context(), c.Params("productId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// CreateSale godoc
// @Summary      Registrar una venta a cliente final
// @Tags         sales
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.SaleRequest  true  "lines, customer_name, customer_doc, document_type, document_number, date"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *TradeHandler) CreateSale(c *fiber.Ctx) error {
	var in dto.SaleRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.sales.ProcessSale(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// VoidSale godoc
// @Summary      Anular una venta final
// @Description  Marca el comprobante como ANULADO y regresa los equipos a TRANSFERRED_RUC20.
// @Tags         sales
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del comprobante de venta"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/void [post]
func (h *TradeHandler) VoidSale(c *fiber.Ctx) error {
	if err := h.sales.VoidSale(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListTransactions godoc
// @Summary      Consultar el registro de comprobantes
// @Tags         transactions
// @Produce      json
// @Security     BearerAuth
// @Param        trx_type      query  string  false  "sale | purchase | transfer"
// @Param        sunat_status  query  string  false  "ACEPTADO | PENDIENTE | ANULADO"
// @Param        from          query  string  false  "YYYY-MM-DD"
// @Param        to            query  string  false  "YYYY-MM-DD"
// @Success      200  {object}  dto.TransactionListResponse
// @Router       /api/transactions [get]
func (h *TradeHandler) ListTransactions(c *fiber.Ctx) error {
	var in dto.ListTransactionsRequest
	if err := c.QueryParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.ledger.List(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// GetTransaction godoc
// @Summary      Obtener un comprobante con sus líneas
// @Tags         transactions
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del comprobante"
// @Success      200  {object}  dto.TransactionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/transactions/{id} [get]
func (h *TradeHandler) GetTransaction(c *fiber.Ctx) error {
	resp, err := h.ledger.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// attachVoucherRequest cuerpo mínimo para adjuntar un voucher por referencia.
type attachVoucherRequest struct {
	VoucherRef string `json:"voucher_ref"`
}
