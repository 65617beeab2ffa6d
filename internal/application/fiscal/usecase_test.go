package fiscal_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/jhoicas/Tributo-api/internal/application/fiscal"
	"github.com/jhoicas/Tributo-api/internal/domain"
	"github.com/jhoicas/Tributo-api/internal/domain/entity"
	"github.com/jhoicas/Tributo-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes mínimos de lectura
// ──────────────────────────────────────────────────────────────────────────────

type fakeTrxReader struct {
	trxs []*entity.Transaction
}

func (r *fakeTrxReader) Create(_ context.Context, t *entity.Transaction) error {
	r.trxs = append(r.trxs, t)
	return nil
}

func (r *fakeTrxReader) GetByID(_ context.Context, id string) (*entity.Transaction, error) {
	for _, t := range r.trxs {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, nil
}

func (r *fakeTrxReader) GetByEventID(_ context.Context, eventID string) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, t := range r.trxs {
		if t.EventID == eventID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeTrxReader) ExistsDocNumber(_ context.Context, docType, docNumber string) (bool, error) {
	return false, nil
}

func (r *fakeTrxReader) ListByPeriod(_ context.Context, period, trxType string) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, t := range r.trxs {
		if t.Date.Format("2006-01") != period {
			continue
		}
		if trxType != "" && t.TrxType != trxType {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (r *fakeTrxReader) ListByYear(_ context.Context, year int, trxType string) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, t := range r.trxs {
		if t.Date.Year() != year {
			continue
		}
		if trxType != "" && t.TrxType != trxType {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (r *fakeTrxReader) List(_ context.Context, _ repository.TransactionFilter) ([]*entity.Transaction, error) {
	return r.trxs, nil
}

func (r *fakeTrxReader) UpdateSunatStatus(_ context.Context, id, status string) error { return nil }
func (r *fakeTrxReader) UpdateDocumentRefs(_ context.Context, id, v, i string) error  { return nil }

type fakeConfigReader struct {
	cfg *entity.TaxConfig
}

func (r *fakeConfigReader) GetTaxConfig(_ context.Context) (*entity.TaxConfig, error) {
	cp := *r.cfg
	return &cp, nil
}
func (r *fakeConfigReader) SaveTaxConfig(_ context.Context, cfg *entity.TaxConfig) error { return nil }
func (r *fakeConfigReader) ListRoles(_ context.Context) ([]*entity.RoleConfig, error) {
	return nil, nil
}
func (r *fakeConfigReader) GetRole(_ context.Context, role string) (*entity.RoleConfig, error) {
	return nil, nil
}
func (r *fakeConfigReader) SaveRole(_ context.Context, rc *entity.RoleConfig) error { return nil }

func fiscalTrx(trxType string, base, igv float64, day int, status string) *entity.Transaction {
	b := decimal.NewFromFloat(base)
	g := decimal.NewFromFloat(igv)
	return &entity.Transaction{
		ID:             trxType + "-" + time.Date(2026, 3, day, 0, 0, 0, 0, time.UTC).String(),
		TrxType:        trxType,
		Date:           time.Date(2026, 3, day, 0, 0, 0, 0, time.UTC),
		DocumentType:   entity.DocTypeBoleta,
		DocumentNumber: "B001-00000001",
		BaseAmount:     b,
		IgvAmount:      g,
		TotalAmount:    b.Add(g),
		SunatStatus:    status,
	}
}

func buildFiscalUseCase(trxs ...*entity.Transaction) *fiscal.FiscalUseCase {
	cfg := &entity.TaxConfig{
		UIT:         decimal.NewFromInt(5350),
		IgvRate:     decimal.NewFromFloat(0.18),
		RentaRate:   decimal.NewFromFloat(0.01),
		Ruc10Regime: entity.RegimeRER,
		Ruc20Regime: entity.RegimeRMT,
	}
	return fiscal.NewFiscalUseCase(&fakeTrxReader{trxs: trxs}, &fakeConfigReader{cfg: cfg})
}

// TestMonthlySummary_DosLibros: las transferencias liquidan en el libro
// RUC 10 (sin crédito fiscal) y simultáneamente como crédito del libro
// RUC 20 contra sus ventas finales.
func TestMonthlySummary_DosLibros(t *testing.T) {
	uc := buildFiscalUseCase(
		// venta interna: par transfer/purchase con los mismos montos
		fiscalTrx(entity.TrxTypeTransfer, 1111.11, 200.00, 10, entity.SunatAceptado),
		fiscalTrx(entity.TrxTypePurchase, 1111.11, 200.00, 10, entity.SunatAceptado),
		// venta final
		fiscalTrx(entity.TrxTypeSale, 1346.80, 242.42, 15, entity.SunatAceptado),
	)

	resp, err := uc.MonthlySummary(context.Background(), "2026-03")
	require.NoError(t, err)

	// RUC 10: IGV íntegro (sin crédito), renta 1% de la base.
	assert.Equal(t, "200.00", resp.Ruc10.IgvToPay.StringFixed(2))
	assert.Equal(t, "11.11", resp.Ruc10.RentaToPay.StringFixed(2))

	// RUC 20: débito 242.42 menos crédito 200.00.
	assert.Equal(t, "42.42", resp.Ruc20.IgvToPay.StringFixed(2))
	assert.Equal(t, "13.47", resp.Ruc20.RentaToPay.StringFixed(2))
}

// TestMonthlySummary_PendientesNoLiquidan: una venta interna que sigue a la
// espera de documentos no aporta débito al libro RUC 10 ni crédito al RUC 20.
func TestMonthlySummary_PendientesNoLiquidan(t *testing.T) {
	uc := buildFiscalUseCase(
		fiscalTrx(entity.TrxTypeTransfer, 1000.00, 180.00, 10, entity.SunatPendiente),
		fiscalTrx(entity.TrxTypePurchase, 1000.00, 180.00, 10, entity.SunatPendiente),
	)

	resp, err := uc.MonthlySummary(context.Background(), "2026-03")
	require.NoError(t, err)

	assert.True(t, resp.Ruc10.IgvDebit.IsZero(),
		"un comprobante pendiente no debe llegar a la liquidación")
	assert.True(t, resp.Ruc10.RentaToPay.IsZero())
	assert.True(t, resp.Ruc20.IgvCredit.IsZero())
}

// TestMonthlySummary_PeriodoInvalido.
func TestMonthlySummary_PeriodoInvalido(t *testing.T) {
	uc := buildFiscalUseCase()
	_, err := uc.MonthlySummary(context.Background(), "2026-13")
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = uc.MonthlySummary(context.Background(), "202603")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

// TestExportSire_RVIEIncluyeVentasYTransferencias y RCE solo compras.
func TestExportSire_RVIEIncluyeVentasYTransferencias(t *testing.T) {
	uc := buildFiscalUseCase(
		fiscalTrx(entity.TrxTypeTransfer, 1111.11, 200.00, 10, entity.SunatAceptado),
		fiscalTrx(entity.TrxTypePurchase, 1111.11, 200.00, 10, entity.SunatAceptado),
		fiscalTrx(entity.TrxTypeSale, 1346.80, 242.42, 15, entity.SunatAceptado),
	)

	rvie, err := uc.ExportSire(context.Background(), fiscal.RegisterRVIE, "2026-03")
	require.NoError(t, err)
	assert.Equal(t, 2, rvie.Lines)
	assert.Equal(t, "SIRE_RVIE_202603.txt", rvie.Filename)

	rce, err := uc.ExportSire(context.Background(), fiscal.RegisterRCE, "2026-03")
	require.NoError(t, err)
	assert.Equal(t, 1, rce.Lines)
}

// TestExportSire_PendientesNoSeExportan: los comprobantes sin documentos
// completos no se declaran en ningún registro.
func TestExportSire_PendientesNoSeExportan(t *testing.T) {
	uc := buildFiscalUseCase(
		fiscalTrx(entity.TrxTypeSale, 1346.80, 242.42, 15, entity.SunatAceptado),
		fiscalTrx(entity.TrxTypeTransfer, 1111.11, 200.00, 10, entity.SunatPendiente),
		fiscalTrx(entity.TrxTypePurchase, 1111.11, 200.00, 10, entity.SunatPendiente),
	)

	rvie, err := uc.ExportSire(context.Background(), fiscal.RegisterRVIE, "2026-03")
	require.NoError(t, err)
	assert.Equal(t, 1, rvie.Lines)

	rce, err := uc.ExportSire(context.Background(), fiscal.RegisterRCE, "2026-03")
	require.NoError(t, err)
	assert.Equal(t, 0, rce.Lines)
}

// TestExportSire_RegistroDesconocido.
func TestExportSire_RegistroDesconocido(t *testing.T) {
	uc := buildFiscalUseCase()
	_, err := uc.ExportSire(context.Background(), "RVX", "2026-03")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

// TestAnnualProjection_UsaVentasDelAnio.
func TestAnnualProjection_UsaVentasDelAnio(t *testing.T) {
	uc := buildFiscalUseCase(
		fiscalTrx(entity.TrxTypeSale, 500000, 90000, 15, entity.SunatAceptado),
	)

	resp, err := uc.AnnualProjection(context.Background(), 2026)
	require.NoError(t, err)
	assert.False(t, resp.Skipped)
	assert.Equal(t, entity.RegimeRMT, resp.Regime)
	assert.Equal(t, "100000.00", resp.AnnualNetProfit.StringFixed(2))
	assert.Equal(t, "13851.25", resp.ProjectedTax.StringFixed(2))
}
