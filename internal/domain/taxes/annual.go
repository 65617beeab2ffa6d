package taxes

import (
	"github.com/shopspring/decimal"
	"github.com/jhoicas/Tributo-api/internal/domain/entity"
)

// Parámetros fijos de la proyección anual.
var (
	netProfitRatio   = decimal.NewFromFloat(0.20)  // utilidad neta estimada sobre ventas
	bracketLowRate   = decimal.NewFromFloat(0.10)  // tramo hasta 15 UIT
	bracketHighRate  = decimal.NewFromFloat(0.295) // exceso sobre 15 UIT
	uitBracketFactor = decimal.NewFromInt(15)
	uitCeilingFactor = decimal.NewFromInt(1700) // tope anual de régimen (RMT)
	advisoryPercent  = decimal.NewFromInt(80)
	ceilingPercent   = decimal.NewFromInt(100)
)

// AnnualProjection es la proyección de regularización anual y el estado de
// los límites de régimen. Derivada, nunca persistida.
type AnnualProjection struct {
	Year            int
	AnnualSales     decimal.Decimal
	AnnualNetProfit decimal.Decimal // ventas × 0.20 (ratio heurístico fijo)
	Uit15Limit      decimal.Decimal
	ProjectedTax    decimal.Decimal
	UitLimitPercent decimal.Decimal // ventas / (1700 × UIT) × 100

	// ApproachingCeiling (>80%) es la alerta temprana; ExceedsCeiling (>100%)
	// implica migración obligatoria al Régimen General. El agregador expone
	// los booleanos, no recalcula tasas por su cuenta.
	ApproachingCeiling bool
	ExceedsCeiling     bool

	// Skipped = true cuando el régimen es RER: sus pagos mensuales son
	// cancelatorios y no existe declaración anual.
	Skipped bool
}

// ProjectAnnual proyecta la regularización anual sobre las ventas del año
// calendario. Con régimen RER no hay declaración anual y la proyección se
// omite por completo.
func ProjectAnnual(year int, sales []entity.Transaction, regime string, uit decimal.Decimal) AnnualProjection {
	if regime == entity.RegimeRER {
		return AnnualProjection{Year: year, Skipped: true}
	}
	var annualSales decimal.Decimal
	for _, t := range sales {
		if t.Voided() || t.Pending() {
			continue
		}
		annualSales = annualSales.Add(t.BaseAmount)
	}
	netProfit := annualSales.Mul(netProfitRatio)
	uit15 := uit.Mul(uitBracketFactor)

	var tax decimal.Decimal
	if netProfit.LessThanOrEqual(uit15) {
		tax = netProfit.Mul(bracketLowRate)
	} else {
		tax = uit15.Mul(bracketLowRate).Add(netProfit.Sub(uit15).Mul(bracketHighRate))
	}

	ceiling := uit.Mul(uitCeilingFactor)
	var limitPct decimal.Decimal
	if ceiling.IsPositive() {
		limitPct = annualSales.Div(ceiling).Mul(decimal.NewFromInt(100))
	}

	return AnnualProjection{
		Year:               year,
		AnnualSales:        annualSales,
		AnnualNetProfit:    netProfit,
		Uit15Limit:         uit15,
		ProjectedTax:       tax.Round(2),
		UitLimitPercent:    limitPct,
		ApproachingCeiling: limitPct.GreaterThan(advisoryPercent),
		ExceedsCeiling:     limitPct.GreaterThan(ceilingPercent),
	}
}
