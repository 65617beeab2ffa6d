package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterPurchaseRequest entrada para registrar una compra a persona natural
// (RUC 10). Los sustentos pueden venir vacíos: el registro queda
// PENDIENTE_DOCS hasta adjuntarlos todos.
type RegisterPurchaseRequest struct {
	Date           string `json:"date" validate:"required"` // YYYY-MM-DD
	IntermediaryID string `json:"intermediary_id" validate:"required,uuid"`

	ProviderDNI  string `json:"provider_dni" validate:"required,len=8,numeric"`
	ProviderName string `json:"provider_name" validate:"required"`
	ProviderAddr string `json:"provider_addr"`
	CivilStatus  string `json:"civil_status"`
	Occupation   string `json:"occupation"`

	ProductCategory string `json:"product_category" validate:"required"`
	ProductBrand    string `json:"product_brand" validate:"required"`
	ProductModel    string `json:"product_model" validate:"required"`
	ProductSerial   string `json:"product_serial" validate:"required"`
	ProductColor    string `json:"product_color"`
	Condition       string `json:"condition"`
	OriginType      string `json:"origin_type" validate:"required"`

	PriceAgreed decimal.Decimal `json:"price_agreed" validate:"required"`
	NotaryCost  decimal.Decimal `json:"notary_cost"`

	BankOrigin      string `json:"bank_origin"`
	BankDestination string `json:"bank_destination"`
	OperationNumber string `json:"operation_number"`
}

// AttachPurchaseDocsRequest adjunta sustentos a una compra pendiente. Solo se
// actualizan los campos no vacíos; re-adjuntar es idempotente.
type AttachPurchaseDocsRequest struct {
	VoucherRef    string `json:"voucher_ref"`
	ContractRef   string `json:"contract_ref"`
	OriginDeclRef string `json:"origin_decl_ref"`
}

// PurchaseResponse salida de una compra RUC 10.
type PurchaseResponse struct {
	ID     string    `json:"id"`
	Date   time.Time `json:"date"`
	Status string    `json:"status"`

	IntermediaryID string `json:"intermediary_id"`
	ProviderDNI    string `json:"provider_dni"`
	ProviderName   string `json:"provider_name"`
	ProviderAddr   string `json:"provider_addr,omitempty"`

	ProductCategory string `json:"product_category"`
	ProductBrand    string `json:"product_brand"`
	ProductModel    string `json:"product_model"`
	ProductSerial   string `json:"product_serial"`
	Condition       string `json:"condition,omitempty"`
	OriginType      string `json:"origin_type"`

	PriceAgreed decimal.Decimal `json:"price_agreed"`
	NotaryCost  decimal.Decimal `json:"notary_cost"`

	VoucherRef    string   `json:"voucher_ref,omitempty"`
	ContractRef   string   `json:"contract_ref,omitempty"`
	OriginDeclRef string   `json:"origin_decl_ref,omitempty"`
	MissingDocs   []string `json:"missing_docs,omitempty"`

	ProductID string `json:"product_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WholesaleItemRequest un equipo de la compra mayorista.
type WholesaleItemRequest struct {
	Category string          `json:"category" validate:"required"`
	Brand    string          `json:"brand" validate:"required"`
	Model    string          `json:"model" validate:"required"`
	Serial   string          `json:"serial" validate:"required"`
	Specs    string          `json:"specs"`
	Cost     decimal.Decimal `json:"cost" validate:"required"`
}

// RegisterWholesaleRequest entrada para registrar una compra a proveedor con RUC.
type RegisterWholesaleRequest struct {
	Date           string                 `json:"date" validate:"required"`
	SupplierID     string                 `json:"supplier_id" validate:"required,uuid"`
	DocumentNumber string                 `json:"document_number" validate:"required"`
	InvoiceRef     string                 `json:"invoice_ref"`
	Items          []WholesaleItemRequest `json:"items" validate:"required,min=1,dive"`
	IgvAmount      decimal.Decimal        `json:"igv_amount"`
}

// WholesaleItemResponse ítem de la compra mayorista.
type WholesaleItemResponse struct {
	ID       string          `json:"id"`
	Category string          `json:"category"`
	Brand    string          `json:"brand"`
	Model    string          `json:"model"`
	Serial   string          `json:"serial"`
	Specs    string          `json:"specs,omitempty"`
	Cost     decimal.Decimal `json:"cost"`
}

// WholesaleResponse salida de una compra mayorista.
type WholesaleResponse struct {
	ID             string                  `json:"id"`
	Date           time.Time               `json:"date"`
	Status         string                  `json:"status"`
	SupplierID     string                  `json:"supplier_id"`
	SupplierName   string                  `json:"supplier_name"`
	SupplierRUC    string                  `json:"supplier_ruc"`
	DocumentNumber string                  `json:"document_number"`
	InvoiceRef     string                  `json:"invoice_ref,omitempty"`
	Items          []WholesaleItemResponse `json:"items"`
	BaseAmount     decimal.Decimal         `json:"base_amount"`
	IgvAmount      decimal.Decimal         `json:"igv_amount"`
	TotalAmount    decimal.Decimal         `json:"total_amount"`
	CreatedAt      time.Time               `json:"created_at"`
	UpdatedAt      time.Time               `json:"updated_at"`
}

// RegisterExpenseRequest entrada para registrar un gasto operativo.
type RegisterExpenseRequest struct {
	Date           string          `json:"date" validate:"required"`
	Category       string          `json:"category" validate:"required"`
	Description    string          `json:"description" validate:"required"`
	Amount         decimal.Decimal `json:"amount" validate:"required"`
	PaymentMethod  string          `json:"payment_method" validate:"required,oneof=CONTADO CREDITO TRANSFERENCIA"`
	Beneficiary    string          `json:"beneficiary"`
	DocumentType   string          `json:"document_type"`
	DocumentNumber string          `json:"document_number"`
	ReceiptRef     string          `json:"receipt_ref"`
}

// ExpenseResponse salida de un gasto operativo.
type ExpenseResponse struct {
	ID             string          `json:"id"`
	Date           time.Time       `json:"date"`
	Category       string          `json:"category"`
	Description    string          `json:"description"`
	Amount         decimal.Decimal `json:"amount"`
	PaymentMethod  string          `json:"payment_method"`
	Beneficiary    string          `json:"beneficiary,omitempty"`
	Status         string          `json:"status"`
	DocumentType   string          `json:"document_type,omitempty"`
	DocumentNumber string          `json:"document_number,omitempty"`
	ReceiptRef     string          `json:"receipt_ref,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
