package pricing

import (
	"github.com/shopspring/decimal"
	"github.com/jhoicas/Tributo-api/internal/domain"
	"github.com/jhoicas/Tributo-api/internal/domain/entity"
)

// SalePriceTotal calcula el precio final de venta al cliente para un costo
// neto (base de transferencia, o precio de compra como respaldo). Mismo
// gross-up que la transferencia; el precio final incluye IGV salvo
// exoneración. El resultado se redondea a 2 decimales ANTES de cualquier
// agregación de carrito.
func SalePriceTotal(netCost decimal.Decimal, margin entity.MarginPolicy, rentaRate, igvRate decimal.Decimal, isIgvExempt bool) (decimal.Decimal, error) {
	if netCost.IsNegative() {
		return decimal.Zero, domain.NewValidationError("costo neto no negativo")
	}
	divisor := decimal.NewFromInt(1).Sub(rentaRate)
	if divisor.LessThanOrEqual(divisorEpsilon) {
		return decimal.Zero, &domain.ArithmeticGuardError{
			Rate:   "renta_rate",
			Value:  rentaRate.String(),
			Reason: "el divisor (1 - renta) es menor o igual al épsilon permitido",
		}
	}
	base := netCost.Add(margin.Profit(netCost)).Div(divisor)
	if isIgvExempt {
		return base.Round(2), nil
	}
	return base.Mul(decimal.NewFromInt(1).Add(igvRate)).Round(2), nil
}

// CartTotals es el resumen de un carrito: total cobrado, subtotal e IGV
// derivados hacia atrás desde el total.
type CartTotals struct {
	Subtotal decimal.Decimal
	Igv      decimal.Decimal
	Total    decimal.Decimal
}

// AggregateCart suma los precios finales por línea (ya redondeados a moneda)
// y DERIVA subtotal e IGV por retro-cálculo desde el total:
//
//	subtotal = total / (1 + igv)   // o = total si exonerado
//	igv      = total - subtotal
//
// El redondeo fluye del total hacia abajo; nunca se suman bases pre-impuesto
// de forma independiente (compatibilidad numérica con el comprobante impreso).
func AggregateCart(lineTotals []decimal.Decimal, igvRate decimal.Decimal, isIgvExempt bool) CartTotals {
	total := decimal.Zero
	for _, lt := range lineTotals {
		total = total.Add(lt.Round(2))
	}
	if isIgvExempt {
		return CartTotals{Subtotal: total, Igv: decimal.Zero, Total: total}
	}
	subtotal := total.Div(decimal.NewFromInt(1).Add(igvRate)).Round(2)
	return CartTotals{Subtotal: subtotal, Igv: total.Sub(subtotal), Total: total}
}
