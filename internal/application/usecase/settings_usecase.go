package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/Tributo-api/internal/application/dto"
	"github.com/jhoicas/Tributo-api/internal/domain"
	"github.com/jhoicas/Tributo-api/internal/domain/entity"
	"github.com/jhoicas/Tributo-api/internal/domain/repository"
)

// La tasa de renta se rechaza EN LA ESCRITURA si deja el divisor (1 - renta)
// en o por debajo del épsilon que los cálculos de precio admiten (0.0001):
// una configuración persistida jamás dispara la guarda aritmética. Con tope
// 0.9998 el peor divisor aceptado es 0.0002.
var maxRentaRate = decimal.NewFromFloat(0.9998)

// SettingsUseCase lee y actualiza la configuración tributaria y la matriz de
// roles. Cada lectura devuelve una fotografía nueva.
type SettingsUseCase struct {
	repo repository.ConfigRepository
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(repo repository.ConfigRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

// GetTaxConfig devuelve la configuración vigente.
func (uc *SettingsUseCase) GetTaxConfig(ctx context.Context) (*dto.TaxConfigResponse, error) {
	cfg, err := uc.repo.GetTaxConfig(ctx)
	if err != nil {
		return nil, err
	}
	resp := toTaxConfigResponse(cfg)
	return &resp, nil
}

// UpdateTaxConfig aplica cambios parciales. Al cambiar de régimen sin tasa
// explícita en la misma petición, la tasa de renta se resetea a la de la
// tabla por régimen; si la petición trae ambas, la explícita gana.
func (uc *SettingsUseCase) UpdateTaxConfig(ctx context.Context, in dto.UpdateTaxConfigRequest) (*dto.TaxConfigResponse, error) {
	cfg, err := uc.repo.GetTaxConfig(ctx)
	if err != nil {
		return nil, err
	}

	if in.Ruc20Regime != nil && *in.Ruc20Regime != cfg.Ruc20Regime {
		rate, ok := entity.DefaultRentaRateForRegime(*in.Ruc20Regime)
		if !ok {
			return nil, domain.NewValidationError("ruc20_regime")
		}
		cfg.Ruc20Regime = *in.Ruc20Regime
		if in.RentaRate == nil {
			cfg.RentaRate = rate
		}
	}
	if in.Ruc10Regime != nil && *in.Ruc10Regime != cfg.Ruc10Regime {
		if _, ok := entity.DefaultRentaRateForRegime(*in.Ruc10Regime); !ok {
			return nil, domain.NewValidationError("ruc10_regime")
		}
		cfg.Ruc10Regime = *in.Ruc10Regime
	}

	if in.UIT != nil {
		if !in.UIT.IsPositive() {
			return nil, domain.NewValidationError("uit")
		}
		cfg.UIT = *in.UIT
	}
	if in.IgvRate != nil {
		if in.IgvRate.IsNegative() || in.IgvRate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
			return nil, domain.NewValidationError("igv_rate")
		}
		cfg.IgvRate = *in.IgvRate
	}
	if in.RentaRate != nil {
		if in.RentaRate.IsNegative() || in.RentaRate.GreaterThan(maxRentaRate) {
			return nil, domain.NewValidationError("renta_rate")
		}
		cfg.RentaRate = *in.RentaRate
	}
	if in.Ruc10TransferMargin != nil {
		margin, err := toMarginPolicy(*in.Ruc10TransferMargin)
		if err != nil {
			return nil, err
		}
		cfg.Ruc10TransferMargin = margin
	}
	if in.Ruc20SaleMargin != nil {
		margin, err := toMarginPolicy(*in.Ruc20SaleMargin)
		if err != nil {
			return nil, err
		}
		cfg.Ruc20SaleMargin = margin
	}
	if in.IsIgvExempt != nil {
		cfg.IsIgvExempt = *in.IsIgvExempt
	}
	if in.IgvExemptionReason != nil {
		cfg.IgvExemptionReason = *in.IgvExemptionReason
	}
	if in.Ruc10DeclarationDay != nil {
		if *in.Ruc10DeclarationDay < 1 || *in.Ruc10DeclarationDay > 28 {
			return nil, domain.NewValidationError("ruc10_declaration_day")
		}
		cfg.Ruc10DeclarationDay = *in.Ruc10DeclarationDay
	}
	if in.Ruc20DeclarationDay != nil {
		if *in.Ruc20DeclarationDay < 1 || *in.Ruc20DeclarationDay > 28 {
			return nil, domain.NewValidationError("ruc20_declaration_day")
		}
		cfg.Ruc20DeclarationDay = *in.Ruc20DeclarationDay
	}
	if in.DefaultNotaryCost != nil {
		if in.DefaultNotaryCost.IsNegative() {
			return nil, domain.NewValidationError("default_notary_cost")
		}
		cfg.DefaultNotaryCost = *in.DefaultNotaryCost
	}
	if in.ProductCategories != nil {
		cfg.ProductCategories = in.ProductCategories
	}
	if in.CompanyName != nil {
		cfg.CompanyName = *in.CompanyName
	}
	if in.CompanyRUC != nil {
		cfg.CompanyRUC = *in.CompanyRUC
	}
	if in.CompanyAddr != nil {
		cfg.CompanyAddr = *in.CompanyAddr
	}

	cfg.UpdatedAt = time.Now()
	if err := uc.repo.SaveTaxConfig(ctx, cfg); err != nil {
		return nil, err
	}
	resp := toTaxConfigResponse(cfg)
	return &resp, nil
}

// ListRoles devuelve la matriz de permisos de todos los roles.
func (uc *SettingsUseCase) ListRoles(ctx context.Context) ([]dto.RoleConfigResponse, error) {
	roles, err := uc.repo.ListRoles(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RoleConfigResponse, 0, len(roles))
	for _, r := range roles {
		out = append(out, toRoleConfigResponse(r))
	}
	return out, nil
}

// SaveRole crea o reemplaza la matriz de un rol.
func (uc *SettingsUseCase) SaveRole(ctx context.Context, in dto.SaveRoleRequest) (*dto.RoleConfigResponse, error) {
	if in.Role == "" || len(in.Permissions) == 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetRole(ctx, in.Role)
	if err != nil {
		return nil, err
	}
	rc := &entity.RoleConfig{
		Role:        in.Role,
		Label:       in.Label,
		Permissions: make(map[string]entity.PermissionSet, len(in.Permissions)),
	}
	if existing != nil {
		rc.ID = existing.ID
	} else {
		rc.ID = uuid.New().String()
	}
	for module, p := range in.Permissions {
		rc.Permissions[module] = entity.PermissionSet{
			Create: p.Create, Read: p.Read, Update: p.Update, Delete: p.Delete,
		}
	}
	if err := uc.repo.SaveRole(ctx, rc); err != nil {
		return nil, err
	}
	resp := toRoleConfigResponse(rc)
	return &resp, nil
}

func toMarginPolicy(in dto.MarginPolicyDTO) (entity.MarginPolicy, error) {
	if in.Type != entity.MarginPercent && in.Type != entity.MarginFixed {
		return entity.MarginPolicy{}, domain.NewValidationError("margin type")
	}
	if in.Value.IsNegative() {
		return entity.MarginPolicy{}, domain.NewValidationError("margin value")
	}
	return entity.MarginPolicy{Type: in.Type, Value: in.Value}, nil
}

func toTaxConfigResponse(cfg *entity.TaxConfig) dto.TaxConfigResponse {
	return dto.TaxConfigResponse{
		UIT:       cfg.UIT,
		IgvRate:   cfg.IgvRate,
		RentaRate: cfg.RentaRate,
		Ruc10TransferMargin: dto.MarginPolicyDTO{
			Type: cfg.Ruc10TransferMargin.Type, Value: cfg.Ruc10TransferMargin.Value,
		},
		Ruc20SaleMargin: dto.MarginPolicyDTO{
			Type: cfg.Ruc20SaleMargin.Type, Value: cfg.Ruc20SaleMargin.Value,
		},
		IsIgvExempt:         cfg.IsIgvExempt,
		IgvExemptionReason:  cfg.IgvExemptionReason,
		Ruc10Regime:         cfg.Ruc10Regime,
		Ruc20Regime:         cfg.Ruc20Regime,
		Ruc10DeclarationDay: cfg.Ruc10DeclarationDay,
		Ruc20DeclarationDay: cfg.Ruc20DeclarationDay,
		DefaultNotaryCost:   cfg.DefaultNotaryCost,
		ProductCategories:   cfg.ProductCategories,
		CompanyName:         cfg.CompanyName,
		CompanyRUC:          cfg.CompanyRUC,
		CompanyAddr:         cfg.CompanyAddr,
		UpdatedAt:           cfg.UpdatedAt,
	}
}

func toRoleConfigResponse(rc *entity.RoleConfig) dto.RoleConfigResponse {
	perms := make(map[string]dto.PermissionDTO, len(rc.Permissions))
	for module, p := range rc.Permissions {
		perms[module] = dto.PermissionDTO{Create: p.Create, Read: p.Read, Update: p.Update, Delete: p.Delete}
	}
	return dto.RoleConfigResponse{ID: rc.ID, Role: rc.Role, Label: rc.Label, Permissions: perms}
}
