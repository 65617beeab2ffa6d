package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransferRequest entrada para la venta interna RUC 10 → RUC 20 de un equipo.
type TransferRequest struct {
	ProductID      string `json:"product_id" validate:"required,uuid"`
	IntermediaryID string `json:"intermediary_id" validate:"required,uuid"`
	DocumentType   string `json:"document_type" validate:"required,oneof=FACTURA BOLETA"`
	DocumentNumber string `json:"document_number" validate:"required"` // SERIE-NUMERO
	VoucherRef     string `json:"voucher_ref" validate:"required"`     // voucher bancario, obligatorio
	Date           string `json:"date" validate:"required"`            // YYYY-MM-DD
}

// TransferResponse salida de la venta interna: el par de comprobantes
// generados (transfer en el libro RUC 10, purchase en el libro RUC 20).
type TransferResponse struct {
	EventID      string              `json:"event_id"`
	Product      ProductResponse     `json:"product"`
	SaleSide     TransactionResponse `json:"sale_side"`
	PurchaseSide TransactionResponse `json:"purchase_side"`
}

// PriceQuoteRequest entrada para cotizar sin persistir.
type PriceQuoteRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
}

// PriceQuoteResponse desglose de precio calculado.
type PriceQuoteResponse struct {
	Base  decimal.Decimal `json:"base"`
	Igv   decimal.Decimal `json:"igv"`
	Total decimal.Decimal `json:"total"`
}

// SaleLineRequest una línea del carrito de venta final.
type SaleLineRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
}

// SaleRequest entrada para la venta a cliente final (uno o más equipos).
type SaleRequest struct {
	Lines          []SaleLineRequest `json:"lines" validate:"required,min=1,dive"`
	CustomerName   string            `json:"customer_name" validate:"required"`
	CustomerDoc    string            `json:"customer_doc" validate:"required"` // DNI o RUC
	DocumentType   string            `json:"document_type" validate:"required,oneof=FACTURA BOLETA"`
	DocumentNumber string            `json:"document_number" validate:"required"`
	Date           string            `json:"date" validate:"required"` // YYYY-MM-DD
}

// TransactionItemResponse línea de detalle de un comprobante.
type TransactionItemResponse struct {
	ProductID     string          `json:"product_id"`
	ProductName   string          `json:"product_name"`
	Quantity      decimal.Decimal `json:"quantity"`
	UnitPriceBase decimal.Decimal `json:"unit_price_base"`
	TotalBase     decimal.Decimal `json:"total_base"`
}

// TransactionResponse salida de un comprobante contable.
type TransactionResponse struct {
	ID              string                    `json:"id"`
	EventID         string                    `json:"event_id,omitempty"`
	TrxType         string                    `json:"trx_type"`
	Date            time.Time                 `json:"date"`
	DocumentType    string                    `json:"document_type"`
	DocumentNumber  string                    `json:"document_number"`
	EntityName      string                    `json:"entity_name"`
	EntityDocNumber string                    `json:"entity_doc_number"`
	Items           []TransactionItemResponse `json:"items,omitempty"`
	BaseAmount      decimal.Decimal           `json:"base_amount"`
	IgvAmount       decimal.Decimal           `json:"igv_amount"`
	TotalAmount     decimal.Decimal           `json:"total_amount"`
	IsIgvExempt     bool                      `json:"is_igv_exempt"`
	ExemptionReason string                    `json:"exemption_reason,omitempty"`
	SunatStatus     string                    `json:"sunat_status"`
	VoucherRef      string                    `json:"voucher_ref,omitempty"`
	InvoiceRef      string                    `json:"invoice_ref,omitempty"`
	CreatedAt       time.Time                 `json:"created_at"`
}

// ListTransactionsRequest filtros del registro contable.
type ListTransactionsRequest struct {
	TrxType     string `query:"trx_type"`
	SunatStatus string `query:"sunat_status"`
	From        string `query:"from"` // YYYY-MM-DD
	To          string `query:"to"`
	PageRequest
}

// TransactionListResponse lista paginada de comprobantes.
type TransactionListResponse struct {
	Items []TransactionResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}
