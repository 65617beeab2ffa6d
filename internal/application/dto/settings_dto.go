package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// MarginPolicyDTO política de margen comercial.
type MarginPolicyDTO struct {
	Type  string          `json:"type" validate:"required,oneof=PERCENT FIXED"`
	Value decimal.Decimal `json:"value"`
}

// TaxConfigResponse fotografía de la configuración tributaria vigente.
type TaxConfigResponse struct {
	UIT       decimal.Decimal `json:"uit"`
	IgvRate   decimal.Decimal `json:"igv_rate"`
	RentaRate decimal.Decimal `json:"renta_rate"`

	Ruc10TransferMargin MarginPolicyDTO `json:"ruc10_transfer_margin"`
	Ruc20SaleMargin     MarginPolicyDTO `json:"ruc20_sale_margin"`

	IsIgvExempt        bool   `json:"is_igv_exempt"`
	IgvExemptionReason string `json:"igv_exemption_reason,omitempty"`

	Ruc10Regime string `json:"ruc10_regime"`
	Ruc20Regime string `json:"ruc20_regime"`

	Ruc10DeclarationDay int `json:"ruc10_declaration_day"`
	Ruc20DeclarationDay int `json:"ruc20_declaration_day"`

	DefaultNotaryCost decimal.Decimal `json:"default_notary_cost"`
	ProductCategories []string        `json:"product_categories"`

	CompanyName string `json:"company_name"`
	CompanyRUC  string `json:"company_ruc"`
	CompanyAddr string `json:"company_addr"`

	UpdatedAt time.Time `json:"updated_at"`
}

// UpdateTaxConfigRequest entrada parcial para la configuración tributaria.
// Las tasas llegan como fracciones (0.18, no 18).
type UpdateTaxConfigRequest struct {
	UIT       *decimal.Decimal `json:"uit"`
	IgvRate   *decimal.Decimal `json:"igv_rate"`
	RentaRate *decimal.Decimal `json:"renta_rate"`

	Ruc10TransferMargin *MarginPolicyDTO `json:"ruc10_transfer_margin"`
	Ruc20SaleMargin     *MarginPolicyDTO `json:"ruc20_sale_margin"`

	IsIgvExempt        *bool   `json:"is_igv_exempt"`
	IgvExemptionReason *string `json:"igv_exemption_reason"`

	Ruc10Regime *string `json:"ruc10_regime"`
	Ruc20Regime *string `json:"ruc20_regime"`

	Ruc10DeclarationDay *int `json:"ruc10_declaration_day"`
	Ruc20DeclarationDay *int `json:"ruc20_declaration_day"`

	DefaultNotaryCost *decimal.Decimal `json:"default_notary_cost"`
	ProductCategories []string         `json:"product_categories"`

	CompanyName *string `json:"company_name"`
	CompanyRUC  *string `json:"company_ruc"`
	CompanyAddr *string `json:"company_addr"`
}

// RoleConfigResponse matriz de permisos de un rol.
type RoleConfigResponse struct {
	ID          string                   `json:"id"`
	Role        string                   `json:"role"`
	Label       string                   `json:"label"`
	Permissions map[string]PermissionDTO `json:"permissions"`
}

// SaveRoleRequest crea o reemplaza la matriz de permisos de un rol.
type SaveRoleRequest struct {
	Role        string                   `json:"role" validate:"required"`
	Label       string                   `json:"label"`
	Permissions map[string]PermissionDTO `json:"permissions" validate:"required"`
}
