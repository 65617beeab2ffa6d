package taxes

import (
	"github.com/shopspring/decimal"
	"github.com/jhoicas/Tributo-api/internal/domain/entity"
)

// PeriodSummary es la liquidación mensual derivada de los comprobantes del
// periodo. Nunca se persiste: se recalcula desde las transacciones.
type PeriodSummary struct {
	Period         string // YYYY-MM
	SalesBase      decimal.Decimal
	IgvDebit       decimal.Decimal // débito fiscal (ventas)
	IgvCredit      decimal.Decimal // crédito fiscal (compras)
	IgvToPay       decimal.Decimal // max(0, débito - crédito)
	RentaToPay     decimal.Decimal // pago a cuenta: base de ventas × tasa renta
	TotalToCollect decimal.Decimal // IGV + renta
}

// MonthlySummary liquida un periodo YYYY-MM a partir de los comprobantes ya
// filtrados por periodo. Solo computan los comprobantes ACEPTADO: los anulados
// y los que siguen a la espera de documentos quedan fuera de la liquidación.
func MonthlySummary(period string, sales, purchases []entity.Transaction, rentaRate decimal.Decimal) PeriodSummary {
	var salesBase, igvDebit, igvCredit decimal.Decimal
	for _, t := range sales {
		if t.Voided() || t.Pending() {
			continue
		}
		salesBase = salesBase.Add(t.BaseAmount)
		igvDebit = igvDebit.Add(t.IgvAmount)
	}
	for _, t := range purchases {
		if t.Voided() || t.Pending() {
			continue
		}
		igvCredit = igvCredit.Add(t.IgvAmount)
	}
	igvToPay := igvDebit.Sub(igvCredit)
	if igvToPay.IsNegative() {
		igvToPay = decimal.Zero
	}
	renta := salesBase.Mul(rentaRate).Round(2)
	return PeriodSummary{
		Period:         period,
		SalesBase:      salesBase,
		IgvDebit:       igvDebit,
		IgvCredit:      igvCredit,
		IgvToPay:       igvToPay,
		RentaToPay:     renta,
		TotalToCollect: igvToPay.Add(renta),
	}
}
