package fiscal

import (
	"context"
	"regexp"
	"sort"

	"github.com/jhoicas/Tributo-api/internal/application/dto"
	"github.com/jhoicas/Tributo-api/internal/domain"
	"github.com/jhoicas/Tributo-api/internal/domain/entity"
	"github.com/jhoicas/Tributo-api/internal/domain/repository"
	"github.com/jhoicas/Tributo-api/internal/domain/taxes"
)

var periodRe = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// FiscalUseCase agrega los comprobantes en liquidaciones mensuales, proyecta
// la regularización anual y exporta los registros SIRE. Solo lee: nunca
// modifica comprobantes ni configuración.
type FiscalUseCase struct {
	trxRepo    repository.TransactionRepository
	configRepo repository.ConfigRepository
}

// NewFiscalUseCase construye el caso de uso.
func NewFiscalUseCase(trxRepo repository.TransactionRepository, configRepo repository.ConfigRepository) *FiscalUseCase {
	return &FiscalUseCase{trxRepo: trxRepo, configRepo: configRepo}
}

// MonthlySummary liquida el período YYYY-MM para ambas entidades. Libro
// RUC 10: sus ventas son las transferencias internas y no tiene compras con
// crédito fiscal (las compras a persona natural no traen IGV). Libro RUC 20:
// ventas al cliente final contra compras (lado purchase de transferencias y
// facturas mayoristas).
func (uc *FiscalUseCase) MonthlySummary(ctx context.Context, period string) (*dto.MonthlyTaxResponse, error) {
	if !periodRe.MatchString(period) {
		return nil, domain.NewValidationError("period")
	}
	cfg, err := uc.configRepo.GetTaxConfig(ctx)
	if err != nil {
		return nil, err
	}

	transfers, err := uc.trxRepo.ListByPeriod(ctx, period, entity.TrxTypeTransfer)
	if err != nil {
		return nil, err
	}
	sales, err := uc.trxRepo.ListByPeriod(ctx, period, entity.TrxTypeSale)
	if err != nil {
		return nil, err
	}
	purchases, err := uc.trxRepo.ListByPeriod(ctx, period, entity.TrxTypePurchase)
	if err != nil {
		return nil, err
	}

	ruc10 := taxes.MonthlySummary(period, deref(transfers), nil, cfg.RentaRate)
	ruc20 := taxes.MonthlySummary(period, deref(sales), deref(purchases), cfg.RentaRate)

	return &dto.MonthlyTaxResponse{
		Period: period,
		Ruc10:  toPeriodSummaryResponse(ruc10),
		Ruc20:  toPeriodSummaryResponse(ruc20),
	}, nil
}

// AnnualProjection proyecta la regularización anual de la empresa (RUC 20)
// sobre las ventas del año. En RER la proyección viene marcada Skipped.
func (uc *FiscalUseCase) AnnualProjection(ctx context.Context, year int) (*dto.AnnualProjectionResponse, error) {
	if year < 2000 || year > 2100 {
		return nil, domain.NewValidationError("year")
	}
	cfg, err := uc.configRepo.GetTaxConfig(ctx)
	if err != nil {
		return nil, err
	}
	sales, err := uc.trxRepo.ListByYear(ctx, year, entity.TrxTypeSale)
	if err != nil {
		return nil, err
	}

	p := taxes.ProjectAnnual(year, deref(sales), cfg.Ruc20Regime, cfg.UIT)
	return &dto.AnnualProjectionResponse{
		Year:               p.Year,
		Regime:             cfg.Ruc20Regime,
		AnnualSales:        p.AnnualSales,
		AnnualNetProfit:    p.AnnualNetProfit,
		Uit15Limit:         p.Uit15Limit,
		ProjectedTax:       p.ProjectedTax,
		UitLimitPercent:    p.UitLimitPercent,
		ApproachingCeiling: p.ApproachingCeiling,
		ExceedsCeiling:     p.ExceedsCeiling,
		Skipped:            p.Skipped,
	}, nil
}

// ExportSire genera el TXT del registro pedido para el período: RVIE reúne
// las ventas de ambos libros (venta final y transferencia interna), RCE las
// compras con crédito fiscal. Los anulados y los pendientes de documentos
// nunca se exportan.
func (uc *FiscalUseCase) ExportSire(ctx context.Context, register, period string) (*dto.SireExportResponse, error) {
	if !periodRe.MatchString(period) {
		return nil, domain.NewValidationError("period")
	}

	var trxs []*entity.Transaction
	switch register {
	case RegisterRVIE:
		sales, err := uc.trxRepo.ListByPeriod(ctx, period, entity.TrxTypeSale)
		if err != nil {
			return nil, err
		}
		transfers, err := uc.trxRepo.ListByPeriod(ctx, period, entity.TrxTypeTransfer)
		if err != nil {
			return nil, err
		}
		trxs = append(sales, transfers...)
	case RegisterRCE:
		purchases, err := uc.trxRepo.ListByPeriod(ctx, period, entity.TrxTypePurchase)
		if err != nil {
			return nil, err
		}
		trxs = purchases
	default:
		return nil, domain.NewValidationError("register")
	}

	// Orden estable por fecha y número: el archivo debe ser reproducible.
	sort.Slice(trxs, func(i, j int) bool {
		if !trxs[i].Date.Equal(trxs[j].Date) {
			return trxs[i].Date.Before(trxs[j].Date)
		}
		return trxs[i].DocumentNumber < trxs[j].DocumentNumber
	})

	content := BuildSireTxt(period, trxs)
	lines := 0
	for _, t := range trxs {
		if !t.Voided() && !t.Pending() {
			lines++
		}
	}
	return &dto.SireExportResponse{
		Filename: SireFilename(register, period),
		Content:  content,
		Lines:    lines,
	}, nil
}

func deref(in []*entity.Transaction) []entity.Transaction {
	out := make([]entity.Transaction, 0, len(in))
	for _, t := range in {
		out = append(out, *t)
	}
	return out
}

func toPeriodSummaryResponse(s taxes.PeriodSummary) dto.PeriodSummaryResponse {
	return dto.PeriodSummaryResponse{
		Period:         s.Period,
		SalesBase:      s.SalesBase,
		IgvDebit:       s.IgvDebit,
		IgvCredit:      s.IgvCredit,
		IgvToPay:       s.IgvToPay,
		RentaToPay:     s.RentaToPay,
		TotalToCollect: s.TotalToCollect,
	}
}
