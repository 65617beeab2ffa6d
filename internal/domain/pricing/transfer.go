package pricing

import (
	"github.com/shopspring/decimal"
	"github.com/jhoicas/Tributo-api/internal/domain"
	"github.com/jhoicas/Tributo-api/internal/domain/entity"
)

// divisorEpsilon: por debajo de este valor el divisor (1 - renta) se considera
// inválido y el cálculo se rechaza en lugar de dividir.
var divisorEpsilon = decimal.NewFromFloat(0.0001)

// Price es el resultado de una valorización: base imponible, IGV y total,
// todos redondeados a 2 decimales (precisión de moneda).
type Price struct {
	Base  decimal.Decimal
	Igv   decimal.Decimal
	Total decimal.Decimal
}

// TransferPrice calcula el precio de la venta interna RUC 10 → RUC 20
// (servicio de dominio, función pura).
//
//	utilidad = margen.Profit(costoTotal)
//	base     = (costoTotal + utilidad) / (1 - renta)   // gross-up: la utilidad sobrevive a la renta
//	igv      = exonerado ? 0 : base * igv
//	total    = base + igv
//
// El divisor (1 - renta) debe superar un épsilon; de lo contrario la
// configuración se rechaza con ArithmeticGuardError. El resultado debe ser
// no negativo.
func TransferPrice(totalCost decimal.Decimal, margin entity.MarginPolicy, rentaRate, igvRate decimal.Decimal, isIgvExempt bool) (Price, error) {
	if totalCost.IsNegative() {
		return Price{}, domain.NewValidationError("costo total no negativo")
	}
	divisor := decimal.NewFromInt(1).Sub(rentaRate)
	if divisor.LessThanOrEqual(divisorEpsilon) {
		return Price{}, &domain.ArithmeticGuardError{
			Rate:   "renta_rate",
			Value:  rentaRate.String(),
			Reason: "el divisor (1 - renta) es menor o igual al épsilon permitido",
		}
	}
	profit := margin.Profit(totalCost)
	base := totalCost.Add(profit).Div(divisor).Round(2)
	if base.IsNegative() {
		return Price{}, &domain.ArithmeticGuardError{
			Rate:   "margin",
			Value:  margin.Value.String(),
			Reason: "la base imponible resultante es negativa",
		}
	}
	igv := decimal.Zero
	if !isIgvExempt {
		igv = base.Mul(igvRate).Round(2)
	}
	return Price{Base: base, Igv: igv, Total: base.Add(igv)}, nil
}
