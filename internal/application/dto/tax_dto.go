package dto

import "github.com/shopspring/decimal"

// PeriodSummaryResponse liquidación mensual de un libro (RUC 10 o RUC 20).
type PeriodSummaryResponse struct {
	Period         string          `json:"period"` // YYYY-MM
	SalesBase      decimal.Decimal `json:"sales_base"`
	IgvDebit       decimal.Decimal `json:"igv_debit"`
	IgvCredit      decimal.Decimal `json:"igv_credit"`
	IgvToPay       decimal.Decimal `json:"igv_to_pay"`
	RentaToPay     decimal.Decimal `json:"renta_to_pay"`
	TotalToCollect decimal.Decimal `json:"total_to_collect"`
}

// MonthlyTaxResponse liquidación mensual de ambas entidades.
type MonthlyTaxResponse struct {
	Period string                `json:"period"`
	Ruc10  PeriodSummaryResponse `json:"ruc10"`
	Ruc20  PeriodSummaryResponse `json:"ruc20"`
}

// AnnualProjectionResponse proyección de regularización anual.
type AnnualProjectionResponse struct {
	Year            int             `json:"year"`
	Regime          string          `json:"regime"`
	AnnualSales     decimal.Decimal `json:"annual_sales"`
	AnnualNetProfit decimal.Decimal `json:"annual_net_profit"`
	Uit15Limit      decimal.Decimal `json:"uit_15_limit"`
	ProjectedTax    decimal.Decimal `json:"projected_tax"`
	UitLimitPercent decimal.Decimal `json:"uit_limit_percent"`

	ApproachingCeiling bool `json:"approaching_ceiling"` // >80% del tope de 1700 UIT
	ExceedsCeiling     bool `json:"exceeds_ceiling"`     // migración de régimen obligatoria
	Skipped            bool `json:"skipped"`             // RER: sin declaración anual
}

// SireExportResponse archivo SIRE generado.
type SireExportResponse struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
	Lines    int    `json:"lines"`
}
