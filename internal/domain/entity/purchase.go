package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un registro pendiente de documentos. Un registro PENDIENTE_DOCS
// no afecta stock ni agregación tributaria hasta completarse.
const (
	StatusPendingDocs = "PENDIENTE_DOCS"
	StatusCompleted   = "COMPLETADO"
)

// PurchaseEntry es una compra a persona natural (origen RUC 10). Para
// completarla se exige el trío de sustentos: voucher bancario, contrato
// legalizado y declaración jurada de origen. Recién al completarse se crea el
// Product vinculado en el almacén RUC 10.
type PurchaseEntry struct {
	ID     string
	Date   time.Time
	Status string

	IntermediaryID string
	ProviderDNI    string
	ProviderName   string
	ProviderAddr   string
	CivilStatus    string
	Occupation     string

	ProductCategory string
	ProductBrand    string
	ProductModel    string
	ProductSerial   string
	ProductColor    string
	Condition       string
	OriginType      string

	PriceAgreed decimal.Decimal
	NotaryCost  decimal.Decimal

	BankOrigin      string
	BankDestination string
	OperationNumber string

	VoucherRef    string // voucher bancario
	ContractRef   string // contrato legalizado
	OriginDeclRef string // declaración jurada de origen de fondos

	ProductID string // poblado al completar

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DocsComplete reporta si los tres sustentos obligatorios están presentes.
func (p *PurchaseEntry) DocsComplete() bool {
	return p.VoucherRef != "" && p.ContractRef != "" && p.OriginDeclRef != ""
}

// MissingDocs lista los sustentos ausentes, para mensajes de validación.
func (p *PurchaseEntry) MissingDocs() []string {
	var missing []string
	if p.VoucherRef == "" {
		missing = append(missing, "voucher bancario")
	}
	if p.ContractRef == "" {
		missing = append(missing, "contrato legalizado")
	}
	if p.OriginDeclRef == "" {
		missing = append(missing, "declaración jurada de origen")
	}
	return missing
}
