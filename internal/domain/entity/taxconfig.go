package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Regímenes tributarios peruanos.
const (
	RegimeRER = "REGIMEN_ESPECIAL" // pagos cancelatorios, sin DJ anual
	RegimeRMT = "REGIMEN_MYPE"
	RegimeRGT = "REGIMEN_GENERAL"
)

// Tipos de margen comercial.
const (
	MarginPercent = "PERCENT"
	MarginFixed   = "FIXED"
)

// MarginPolicy define cómo se calcula la utilidad sobre el costo: un
// porcentaje del costo o un monto fijo en soles.
type MarginPolicy struct {
	Type  string
	Value decimal.Decimal
}

// Profit devuelve la utilidad para un costo dado según la política.
func (m MarginPolicy) Profit(cost decimal.Decimal) decimal.Decimal {
	if m.Type == MarginFixed {
		return m.Value
	}
	return cost.Mul(m.Value)
}

// PermissionSet son los cuatro booleanos CRUD de un módulo.
type PermissionSet struct {
	Create bool `json:"create"`
	Read   bool `json:"read"`
	Update bool `json:"update"`
	Delete bool `json:"delete"`
}

// RoleConfig asocia un rol con su matriz de permisos por módulo. La matriz es
// una tabla de capacidades que se consulta ANTES de invocar el núcleo; la
// lógica de precios y el ledger no la conocen.
type RoleConfig struct {
	ID          string
	Role        string
	Label       string
	Permissions map[string]PermissionSet // módulo → CRUD
}

// Allows reporta si el rol tiene habilitada la acción CRUD sobre el módulo.
// Un módulo ausente de la matriz deniega todo.
func (rc *RoleConfig) Allows(module, action string) bool {
	perms, ok := rc.Permissions[module]
	if !ok {
		return false
	}
	switch action {
	case "create":
		return perms.Create
	case "read":
		return perms.Read
	case "update":
		return perms.Update
	case "delete":
		return perms.Delete
	}
	return false
}

// TaxConfig es la fotografía inmutable de la configuración tributaria vigente.
// Cada cálculo de precios o agregación recibe su propia copia: los cálculos
// históricos siguen siendo reproducibles contra configuraciones pasadas.
type TaxConfig struct {
	UIT       decimal.Decimal
	IgvRate   decimal.Decimal
	RentaRate decimal.Decimal

	Ruc10TransferMargin MarginPolicy
	Ruc20SaleMargin     MarginPolicy

	IsIgvExempt        bool
	IgvExemptionReason string

	Ruc10Regime string
	Ruc20Regime string

	Ruc10DeclarationDay int
	Ruc20DeclarationDay int

	DefaultNotaryCost decimal.Decimal
	ProductCategories []string

	CompanyName string
	CompanyRUC  string
	CompanyAddr string

	UpdatedAt time.Time
}

// DefaultRentaRateForRegime es la tabla fija de tasas de renta por régimen
// aplicada al cambiar de régimen. Es una tabla de política, no un cálculo
// derivado: el valor resultante sigue siendo editable por el usuario.
func DefaultRentaRateForRegime(regime string) (decimal.Decimal, bool) {
	switch regime {
	case RegimeRER:
		return decimal.NewFromFloat(0.015), true
	case RegimeRMT:
		return decimal.NewFromFloat(0.010), true
	case RegimeRGT:
		return decimal.NewFromFloat(0.015), true
	}
	return decimal.Zero, false
}
