package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/jhoicas/Tributo-api/internal/domain"
	"github.com/jhoicas/Tributo-api/internal/domain/entity"
	"github.com/jhoicas/Tributo-api/internal/domain/pricing"
)

func marginPct(v float64) entity.MarginPolicy {
	return entity.MarginPolicy{Type: entity.MarginPercent, Value: decimal.NewFromFloat(v)}
}

func marginFixed(v float64) entity.MarginPolicy {
	return entity.MarginPolicy{Type: entity.MarginFixed, Value: decimal.NewFromFloat(v)}
}

// TestTransferPrice_EscenarioReferencia valida el vector exacto de la venta
// interna: costo 1000, margen 10%, renta 1%, IGV 18%.
//
//	utilidad = 100
//	base     = 1100 / 0.99 = 1111.11
//	igv      = 200.00
//	total    = 1311.11
func TestTransferPrice_EscenarioReferencia(t *testing.T) {
	p, err := pricing.TransferPrice(
		decimal.NewFromInt(1000),
		marginPct(0.10),
		decimal.NewFromFloat(0.01),
		decimal.NewFromFloat(0.18),
		false,
	)
	require.NoError(t, err)
	assert.Equal(t, "1111.11", p.Base.StringFixed(2))
	assert.Equal(t, "200.00", p.Igv.StringFixed(2))
	assert.Equal(t, "1311.11", p.Total.StringFixed(2))
}

// TestTransferPrice_Exonerado: mismos insumos con exoneración de IGV, el
// impuesto debe ser cero y el total igual a la base.
func TestTransferPrice_Exonerado(t *testing.T) {
	p, err := pricing.TransferPrice(
		decimal.NewFromInt(1000),
		marginPct(0.10),
		decimal.NewFromFloat(0.01),
		decimal.NewFromFloat(0.18),
		true,
	)
	require.NoError(t, err)
	assert.True(t, p.Igv.IsZero(), "IGV debe ser 0 cuando hay exoneración")
	assert.Equal(t, "1111.11", p.Total.StringFixed(2))
}

// TestTransferPrice_MargenFijo: un margen fijo se suma tal cual al costo.
func TestTransferPrice_MargenFijo(t *testing.T) {
	p, err := pricing.TransferPrice(
		decimal.NewFromInt(500),
		marginFixed(80),
		decimal.Zero,
		decimal.NewFromFloat(0.18),
		false,
	)
	require.NoError(t, err)
	// sin renta el gross-up es neutro: base = 580
	assert.Equal(t, "580.00", p.Base.StringFixed(2))
	assert.Equal(t, "104.40", p.Igv.StringFixed(2))
	assert.Equal(t, "684.40", p.Total.StringFixed(2))
}

// TestTransferPrice_BaseNuncaMenorAlCosto: para cualquier costo ≥ 0 y margen
// con utilidad ≥ 0, la base imponible nunca puede ser menor al costo total.
func TestTransferPrice_BaseNuncaMenorAlCosto(t *testing.T) {
	costs := []int64{0, 1, 250, 999, 4500, 120000}
	for _, c := range costs {
		cost := decimal.NewFromInt(c)
		p, err := pricing.TransferPrice(cost, marginPct(0.05), decimal.NewFromFloat(0.015), decimal.NewFromFloat(0.18), false)
		require.NoError(t, err)
		assert.True(t, p.Base.GreaterThanOrEqual(cost),
			"base %s menor al costo %s", p.Base, cost)
	}
}

// TestTransferPrice_DivisorInvalido: renta ≥ 1 invalida el divisor; el
// cálculo debe rechazarse con guard aritmético, nunca sustituir un valor.
func TestTransferPrice_DivisorInvalido(t *testing.T) {
	for _, renta := range []float64{1.0, 0.99995, 1.5} {
		_, err := pricing.TransferPrice(
			decimal.NewFromInt(1000),
			marginPct(0.10),
			decimal.NewFromFloat(renta),
			decimal.NewFromFloat(0.18),
			false,
		)
		require.Error(t, err, "renta=%v debe rechazarse", renta)
		assert.True(t, domain.IsArithmeticGuard(err))
	}
}

// TestTransferPrice_CostoNegativo se rechaza por validación.
func TestTransferPrice_CostoNegativo(t *testing.T) {
	_, err := pricing.TransferPrice(decimal.NewFromInt(-10), marginPct(0.10), decimal.Zero, decimal.NewFromFloat(0.18), false)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

// TestTransferPrice_Idempotente: dos llamadas con los mismos insumos producen
// exactamente el mismo resultado (sin estado oculto).
func TestTransferPrice_Idempotente(t *testing.T) {
	args := func() (pricing.Price, error) {
		return pricing.TransferPrice(decimal.NewFromFloat(1234.56), marginPct(0.07), decimal.NewFromFloat(0.01), decimal.NewFromFloat(0.18), false)
	}
	p1, err1 := args()
	p2, err2 := args()
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.True(t, p1.Base.Equal(p2.Base))
	assert.True(t, p1.Igv.Equal(p2.Igv))
	assert.True(t, p1.Total.Equal(p2.Total))
}
