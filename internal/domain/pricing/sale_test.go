package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/jhoicas/Tributo-api/internal/domain"
	"github.com/jhoicas/Tributo-api/internal/domain/pricing"
)

var (
	igv18   = decimal.NewFromFloat(0.18)
	renta01 = decimal.NewFromFloat(0.01)
)

// TestSalePriceTotal_IncluyeIgv: el precio final lleva el IGV incorporado
// sobre la base gross-up.
func TestSalePriceTotal_IncluyeIgv(t *testing.T) {
	// base = (1000 + 300) / 0.99 = 1313.13...; total = base * 1.18
	total, err := pricing.SalePriceTotal(decimal.NewFromInt(1000), marginPct(0.30), renta01, igv18, false)
	require.NoError(t, err)
	expected := decimal.NewFromInt(1300).Div(decimal.NewFromFloat(0.99)).Mul(decimal.NewFromFloat(1.18)).Round(2)
	assert.Equal(t, expected.StringFixed(2), total.StringFixed(2))
}

// TestSalePriceTotal_Exonerado: sin IGV el precio final es la base gross-up.
func TestSalePriceTotal_Exonerado(t *testing.T) {
	total, err := pricing.SalePriceTotal(decimal.NewFromInt(1000), marginPct(0.30), renta01, igv18, true)
	require.NoError(t, err)
	expected := decimal.NewFromInt(1300).Div(decimal.NewFromFloat(0.99)).Round(2)
	assert.Equal(t, expected.StringFixed(2), total.StringFixed(2))
}

// TestSalePriceTotal_DivisorInvalido replica el guard de la transferencia.
func TestSalePriceTotal_DivisorInvalido(t *testing.T) {
	_, err := pricing.SalePriceTotal(decimal.NewFromInt(1000), marginPct(0.30), decimal.NewFromInt(1), igv18, false)
	require.Error(t, err)
	assert.True(t, domain.IsArithmeticGuard(err))
}

// TestAggregateCart_RetroCalculo: el subtotal y el IGV se derivan hacia atrás
// desde el total; total - igv debe coincidir con el subtotal exactamente.
func TestAggregateCart_RetroCalculo(t *testing.T) {
	lines := []decimal.Decimal{
		decimal.NewFromFloat(1311.11),
		decimal.NewFromFloat(799.90),
		decimal.NewFromFloat(2450.55),
	}
	totals := pricing.AggregateCart(lines, igv18, false)

	sum := decimal.NewFromFloat(1311.11 + 799.90 + 2450.55)
	assert.Equal(t, sum.StringFixed(2), totals.Total.StringFixed(2))
	assert.True(t, totals.Subtotal.Add(totals.Igv).Equal(totals.Total),
		"subtotal + igv debe reconstruir el total sin residuo")
}

// TestAggregateCart_RoundTripUnCentavo: para cualquier carrito, el total
// menos el IGV derivado coincide con la suma de bases por línea con error
// máximo de 1 centavo (propiedad de compatibilidad con el comprobante).
func TestAggregateCart_RoundTripUnCentavo(t *testing.T) {
	carts := [][]float64{
		{100.00},
		{1311.11, 684.40},
		{0.01, 0.02, 0.03},
		{999.99, 1234.56, 888.88, 450.10},
	}
	oneCent := decimal.NewFromFloat(0.01)
	for _, cart := range carts {
		var lines []decimal.Decimal
		var baseSum decimal.Decimal
		for _, v := range cart {
			lt := decimal.NewFromFloat(v)
			lines = append(lines, lt)
			baseSum = baseSum.Add(lt.Div(decimal.NewFromInt(1).Add(igv18)))
		}
		totals := pricing.AggregateCart(lines, igv18, false)
		diff := totals.Total.Sub(totals.Igv).Sub(baseSum).Abs()
		assert.True(t, diff.LessThanOrEqual(oneCent),
			"carrito %v: desviación %s mayor a 1 centavo", cart, diff)
	}
}

// TestAggregateCart_Exonerado: subtotal = total, igv = 0.
func TestAggregateCart_Exonerado(t *testing.T) {
	lines := []decimal.Decimal{decimal.NewFromFloat(500.50), decimal.NewFromFloat(250.25)}
	totals := pricing.AggregateCart(lines, igv18, true)
	assert.True(t, totals.Igv.IsZero())
	assert.Equal(t, "750.75", totals.Subtotal.StringFixed(2))
	assert.Equal(t, "750.75", totals.Total.StringFixed(2))
}
