package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/jhoicas/Tributo-api/internal/application/dto"
	"github.com/jhoicas/Tributo-api/internal/application/usecase"
	"github.com/jhoicas/Tributo-api/internal/domain"
	"github.com/jhoicas/Tributo-api/internal/domain/entity"
	"github.com/jhoicas/Tributo-api/internal/domain/pricing"
)

func testTaxConfig() *entity.TaxConfig {
	return &entity.TaxConfig{
		UIT:       decimal.NewFromInt(5350),
		IgvRate:   decimal.NewFromFloat(0.18),
		RentaRate: decimal.NewFromFloat(0.015),
		Ruc10TransferMargin: entity.MarginPolicy{
			Type: entity.MarginPercent, Value: decimal.NewFromFloat(0.10),
		},
		Ruc20SaleMargin: entity.MarginPolicy{
			Type: entity.MarginPercent, Value: decimal.NewFromFloat(0.20),
		},
		Ruc10Regime:         entity.RegimeRER,
		Ruc20Regime:         entity.RegimeRGT,
		Ruc10DeclarationDay: 12,
		Ruc20DeclarationDay: 14,
		DefaultNotaryCost:   decimal.NewFromInt(50),
		ProductCategories:   []string{"LAPTOP", "CELULAR"},
		CompanyName:         "Importaciones Lima SAC",
		CompanyRUC:          "20601234567",
		CompanyAddr:         "Av. Wilson 1234, Lima",
		UpdatedAt:           time.Now(),
	}
}

func strPtr(s string) *string { return &s }

func decPtr(f float64) *decimal.Decimal {
	d := decimal.NewFromFloat(f)
	return &d
}

// ─────────────────────────────────────────────
// Configuración tributaria
// ─────────────────────────────────────────────

func TestUpdateTaxConfig_CambioDeRegimenAplicaTasaDeTabla(t *testing.T) {
	repo := newFakeConfigRepo(testTaxConfig())
	uc := usecase.NewSettingsUseCase(repo)

	resp, err := uc.UpdateTaxConfig(context.Background(), dto.UpdateTaxConfigRequest{
		Ruc20Regime: strPtr(entity.RegimeRMT),
	})
	require.NoError(t, err)

	assert.Equal(t, entity.RegimeRMT, resp.Ruc20Regime)
	assert.Equal(t, "0.01", resp.RentaRate.String())
	assert.Equal(t, 1, repo.saves)
}

func TestUpdateTaxConfig_TasaExplicitaGanaAlCambioDeRegimen(t *testing.T) {
	repo := newFakeConfigRepo(testTaxConfig())
	uc := usecase.NewSettingsUseCase(repo)

	resp, err := uc.UpdateTaxConfig(context.Background(), dto.UpdateTaxConfigRequest{
		Ruc20Regime: strPtr(entity.RegimeRMT),
		RentaRate:   decPtr(0.02),
	})
	require.NoError(t, err)

	assert.Equal(t, entity.RegimeRMT, resp.Ruc20Regime)
	assert.Equal(t, "0.02", resp.RentaRate.String())
}

func TestUpdateTaxConfig_RentaFueraDeRangoRechazada(t *testing.T) {
	repo := newFakeConfigRepo(testTaxConfig())
	uc := usecase.NewSettingsUseCase(repo)

	_, err := uc.UpdateTaxConfig(context.Background(), dto.UpdateTaxConfigRequest{
		RentaRate: decPtr(1.0),
	})
	require.ErrorIs(t, err, domain.ErrValidation)

	_, err = uc.UpdateTaxConfig(context.Background(), dto.UpdateTaxConfigRequest{
		RentaRate: decPtr(-0.01),
	})
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, 0, repo.saves)
}

// TestUpdateTaxConfig_RentaEnElBordeDelDivisor: toda tasa que la escritura
// acepta debe dejar el divisor (1 - renta) por encima del épsilon del cálculo
// de precios; 0.9999 produciría divisor 0.0001 y se rechaza.
func TestUpdateTaxConfig_RentaEnElBordeDelDivisor(t *testing.T) {
	repo := newFakeConfigRepo(testTaxConfig())
	uc := usecase.NewSettingsUseCase(repo)

	_, err := uc.UpdateTaxConfig(context.Background(), dto.UpdateTaxConfigRequest{
		RentaRate: decPtr(0.9999),
	})
	require.ErrorIs(t, err, domain.ErrValidation)

	resp, err := uc.UpdateTaxConfig(context.Background(), dto.UpdateTaxConfigRequest{
		RentaRate: decPtr(0.9998),
	})
	require.NoError(t, err)

	// La tasa más alta persistible sigue siendo calculable.
	_, err = pricing.TransferPrice(
		decimal.NewFromInt(1000),
		entity.MarginPolicy{Type: entity.MarginPercent, Value: decimal.NewFromFloat(0.10)},
		resp.RentaRate,
		decimal.NewFromFloat(0.18),
		false,
	)
	require.NoError(t, err)
}

func TestUpdateTaxConfig_RegimenDesconocidoRechazado(t *testing.T) {
	repo := newFakeConfigRepo(testTaxConfig())
	uc := usecase.NewSettingsUseCase(repo)

	_, err := uc.UpdateTaxConfig(context.Background(), dto.UpdateTaxConfigRequest{
		Ruc20Regime: strPtr("NUEVO_RUS"),
	})
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestUpdateTaxConfig_MargenInvalidoRechazado(t *testing.T) {
	repo := newFakeConfigRepo(testTaxConfig())
	uc := usecase.NewSettingsUseCase(repo)

	_, err := uc.UpdateTaxConfig(context.Background(), dto.UpdateTaxConfigRequest{
		Ruc20SaleMargin: &dto.MarginPolicyDTO{Type: "RATIO", Value: decimal.NewFromFloat(0.2)},
	})
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestUpdateTaxConfig_ParcialNoTocaElResto(t *testing.T) {
	repo := newFakeConfigRepo(testTaxConfig())
	uc := usecase.NewSettingsUseCase(repo)

	uit := decimal.NewFromInt(5500)
	resp, err := uc.UpdateTaxConfig(context.Background(), dto.UpdateTaxConfigRequest{
		UIT: &uit,
	})
	require.NoError(t, err)

	assert.Equal(t, "5500", resp.UIT.String())
	assert.Equal(t, "0.18", resp.IgvRate.String())
	assert.Equal(t, entity.RegimeRGT, resp.Ruc20Regime)
	assert.Equal(t, "Importaciones Lima SAC", resp.CompanyName)
}

// ─────────────────────────────────────────────
// Matriz de roles
// ─────────────────────────────────────────────

func TestSaveRole_CreaYReemplaza(t *testing.T) {
	repo := newFakeConfigRepo(testTaxConfig())
	uc := usecase.NewSettingsUseCase(repo)

	created, err := uc.SaveRole(context.Background(), dto.SaveRoleRequest{
		Role:  "vendedor",
		Label: "Vendedor",
		Permissions: map[string]dto.PermissionDTO{
			"ventas":     {Create: true, Read: true},
			"inventario": {Read: true},
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.True(t, created.Permissions["ventas"].Create)
	assert.False(t, created.Permissions["inventario"].Delete)

	updated, err := uc.SaveRole(context.Background(), dto.SaveRoleRequest{
		Role:  "vendedor",
		Label: "Vendedor",
		Permissions: map[string]dto.PermissionDTO{
			"ventas": {Read: true},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.False(t, updated.Permissions["ventas"].Create)

	roles, err := uc.ListRoles(context.Background())
	require.NoError(t, err)
	assert.Len(t, roles, 1)
}

func TestSaveRole_SinPermisosRechazado(t *testing.T) {
	repo := newFakeConfigRepo(testTaxConfig())
	uc := usecase.NewSettingsUseCase(repo)

	_, err := uc.SaveRole(context.Background(), dto.SaveRoleRequest{Role: "vendedor"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}
