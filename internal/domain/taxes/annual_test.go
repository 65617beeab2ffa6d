package taxes_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/jhoicas/Tributo-api/internal/domain/entity"
	"github.com/jhoicas/Tributo-api/internal/domain/taxes"
)

var uit5350 = decimal.NewFromInt(5350)

// TestProjectAnnual_TramoExcedente: utilidad neta 100,000 con UIT 5,350.
//
//	15 UIT  = 80,250
//	tax     = 80,250×0.10 + 19,750×0.295 = 8,025 + 5,826.25 = 13,851.25
func TestProjectAnnual_TramoExcedente(t *testing.T) {
	// ventas 500,000 → utilidad neta = 500,000 × 0.20 = 100,000
	sales := []entity.Transaction{trx(entity.TrxTypeSale, 500000, 90000, entity.SunatAceptado)}
	p := taxes.ProjectAnnual(2026, sales, entity.RegimeRMT, uit5350)

	require.False(t, p.Skipped)
	assert.Equal(t, "100000.00", p.AnnualNetProfit.StringFixed(2))
	assert.Equal(t, "80250.00", p.Uit15Limit.StringFixed(2))
	assert.Equal(t, "13851.25", p.ProjectedTax.StringFixed(2))
}

// TestProjectAnnual_TramoBajo: utilidad dentro de 15 UIT tributa al 10%.
func TestProjectAnnual_TramoBajo(t *testing.T) {
	// ventas 100,000 → utilidad 20,000 ≤ 80,250
	sales := []entity.Transaction{trx(entity.TrxTypeSale, 100000, 18000, entity.SunatAceptado)}
	p := taxes.ProjectAnnual(2026, sales, entity.RegimeRMT, uit5350)
	assert.Equal(t, "2000.00", p.ProjectedTax.StringFixed(2))
}

// TestProjectAnnual_AlertaTope: ventas 9,000,000 con UIT 5,350 → tope
// 9,095,000 → 98.95% usado: la alerta >80% debe dispararse sin implicar
// todavía migración obligatoria.
func TestProjectAnnual_AlertaTope(t *testing.T) {
	sales := []entity.Transaction{trx(entity.TrxTypeSale, 9000000, 1620000, entity.SunatAceptado)}
	p := taxes.ProjectAnnual(2026, sales, entity.RegimeRMT, uit5350)

	assert.Equal(t, "98.95", p.UitLimitPercent.Round(2).StringFixed(2))
	assert.True(t, p.ApproachingCeiling, "la alerta >80%% debe dispararse")
	assert.False(t, p.ExceedsCeiling, "98.95%% no excede el tope")
}

// TestProjectAnnual_ExcesoTope: superar 1,700 UIT marca migración obligatoria.
func TestProjectAnnual_ExcesoTope(t *testing.T) {
	sales := []entity.Transaction{trx(entity.TrxTypeSale, 9500000, 1710000, entity.SunatAceptado)}
	p := taxes.ProjectAnnual(2026, sales, entity.RegimeRMT, uit5350)
	assert.True(t, p.ExceedsCeiling)
}

// TestProjectAnnual_PendientesYAnuladosFuera: solo las ventas ACEPTADO
// alimentan la proyección.
func TestProjectAnnual_PendientesYAnuladosFuera(t *testing.T) {
	sales := []entity.Transaction{
		trx(entity.TrxTypeSale, 100000, 18000, entity.SunatAceptado),
		trx(entity.TrxTypeSale, 400000, 72000, entity.SunatPendiente),
		trx(entity.TrxTypeSale, 250000, 45000, entity.SunatAnulado),
	}
	p := taxes.ProjectAnnual(2026, sales, entity.RegimeRMT, uit5350)
	assert.Equal(t, "100000.00", p.AnnualSales.StringFixed(2))
}

// TestProjectAnnual_RERSinDeclaracion: en RER no existe DJ anual; la
// proyección se omite por completo.
func TestProjectAnnual_RERSinDeclaracion(t *testing.T) {
	sales := []entity.Transaction{trx(entity.TrxTypeSale, 500000, 90000, entity.SunatAceptado)}
	p := taxes.ProjectAnnual(2026, sales, entity.RegimeRER, uit5350)
	assert.True(t, p.Skipped)
	assert.True(t, p.ProjectedTax.IsZero())
}

// TestDefaultRentaRateForRegime: tabla fija de política, no cálculo derivado.
func TestDefaultRentaRateForRegime(t *testing.T) {
	cases := map[string]string{
		entity.RegimeRER: "0.015",
		entity.RegimeRMT: "0.01",
		entity.RegimeRGT: "0.015",
	}
	for regime, want := range cases {
		rate, ok := entity.DefaultRentaRateForRegime(regime)
		require.True(t, ok, regime)
		assert.Equal(t, want, rate.String(), regime)
	}
	_, ok := entity.DefaultRentaRateForRegime("REGIMEN_DESCONOCIDO")
	assert.False(t, ok)
}
