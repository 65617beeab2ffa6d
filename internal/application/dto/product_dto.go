package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductResponse salida de un equipo serializado.
type ProductResponse struct {
	ID             string          `json:"id"`
	Category       string          `json:"category"`
	Brand          string          `json:"brand"`
	Model          string          `json:"model"`
	SerialNumber   string          `json:"serial_number"`
	Specs          string          `json:"specs,omitempty"`
	Color          string          `json:"color,omitempty"`
	Condition      string          `json:"condition"`
	Origin         string          `json:"origin"`
	IntermediaryID string          `json:"intermediary_id,omitempty"`
	Status         string          `json:"status"`
	PurchasePrice  decimal.Decimal `json:"purchase_price"`
	NotaryCost     decimal.Decimal `json:"notary_cost"`
	TotalCost      decimal.Decimal `json:"total_cost"`

	TransferBase      decimal.Decimal `json:"transfer_base"`
	TransferIgv       decimal.Decimal `json:"transfer_igv"`
	TransferTotal     decimal.Decimal `json:"transfer_total"`
	TransferDocType   string          `json:"transfer_doc_type,omitempty"`
	TransferDocNumber string          `json:"transfer_doc_number,omitempty"`
	TransferDate      *time.Time      `json:"transfer_date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListProductsRequest filtros de listado de equipos.
type ListProductsRequest struct {
	Status         string `query:"status"`
	Category       string `query:"category"`
	IntermediaryID string `query:"intermediary_id"`
	Search         string `query:"search"`
	PageRequest
}

// ProductListResponse lista paginada de equipos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// UpdateProductRequest entrada parcial para editar datos descriptivos de un
// equipo. El estado y los campos de transferencia NUNCA se editan por aquí:
// solo los mueven las operaciones de transferencia, venta y anulación.
type UpdateProductRequest struct {
	Category  *string `json:"category"`
	Brand     *string `json:"brand"`
	Model     *string `json:"model"`
	Specs     *string `json:"specs"`
	Color     *string `json:"color"`
	Condition *string `json:"condition"`
}

// StockSummaryResponse conteo de equipos por estado del ciclo de vida.
type StockSummaryResponse struct {
	InStockRuc10     int `json:"in_stock_ruc10"`
	TransferredRuc20 int `json:"transferred_ruc20"`
	Sold             int `json:"sold"`
}
