package trade_test

import (
	"context"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/Tributo-api/internal/application/trade"
	"github.com/jhoicas/Tributo-api/internal/domain"
	"github.com/jhoicas/Tributo-api/internal/domain/entity"
	"github.com/jhoicas/Tributo-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para los casos de uso de trade. Replican la semántica
// condicional de los UPDATE de estado: cero filas afectadas = precondición.
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	m := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		cp := *p
		m[p.ID] = &cp
	}
	return &fakeProductRepo{products: m}
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetBySerial(_ context.Context, serial string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.SerialNumber == serial {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	if _, ok := r.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) List(_ context.Context, _ repository.ProductFilter) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeProductRepo) CountByStatus(_ context.Context, status string) (int, error) {
	n := 0
	for _, p := range r.products {
		if p.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id string) error {
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) UpdateStatus(_ context.Context, id, expected, newStatus string) error {
	p, ok := r.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	if p.Status != expected {
		return domain.NewPreconditionError("estado " + p.Status + ", se esperaba " + expected)
	}
	p.Status = newStatus
	return nil
}

func (r *fakeProductRepo) SetTransfer(_ context.Context, p *entity.Product, expected string) error {
	current, ok := r.products[p.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if current.Status != expected {
		return domain.NewPreconditionError("estado " + current.Status + ", se esperaba " + expected)
	}
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) ClearTransfer(_ context.Context, id, expected string) error {
	p, ok := r.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	if p.Status != expected {
		return domain.NewPreconditionError("estado " + p.Status + ", se esperaba " + expected)
	}
	p.Status = entity.StatusInStockRuc10
	p.TransferBase = decimal.Zero
	p.TransferIgv = decimal.Zero
	p.TransferTotal = decimal.Zero
	p.TransferDocType = ""
	p.TransferDocNumber = ""
	p.TransferVoucherRef = ""
	p.TransferDate = nil
	return nil
}

type fakeTrxRepo struct {
	trxs map[string]*entity.Transaction
}

func newFakeTrxRepo() *fakeTrxRepo {
	return &fakeTrxRepo{trxs: make(map[string]*entity.Transaction)}
}

func (r *fakeTrxRepo) Create(_ context.Context, t *entity.Transaction) error {
	cp := *t
	r.trxs[t.ID] = &cp
	return nil
}

func (r *fakeTrxRepo) GetByID(_ context.Context, id string) (*entity.Transaction, error) {
	t, ok := r.trxs[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *fakeTrxRepo) GetByEventID(_ context.Context, eventID string) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, t := range r.trxs {
		if t.EventID == eventID {
			cp := *t
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeTrxRepo) ExistsDocNumber(_ context.Context, docType, docNumber string) (bool, error) {
	for _, t := range r.trxs {
		if t.DocumentType == docType && t.DocumentNumber == docNumber {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeTrxRepo) ListByPeriod(_ context.Context, period, trxType string) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, t := range r.trxs {
		if t.Date.Format("2006-01") != period {
			continue
		}
		if trxType != "" && t.TrxType != trxType {
			continue
		}
		cp := *t
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeTrxRepo) ListByYear(_ context.Context, year int, trxType string) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, t := range r.trxs {
		if strconv.Itoa(t.Date.Year()) != strconv.Itoa(year) {
			continue
		}
		if trxType != "" && t.TrxType != trxType {
			continue
		}
		cp := *t
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeTrxRepo) List(_ context.Context, _ repository.TransactionFilter) ([]*entity.Transaction, error) {
	out := make([]*entity.Transaction, 0, len(r.trxs))
	for _, t := range r.trxs {
		cp := *t
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeTrxRepo) UpdateSunatStatus(_ context.Context, id, status string) error {
	t, ok := r.trxs[id]
	if !ok {
		return domain.ErrNotFound
	}
	t.SunatStatus = status
	return nil
}

func (r *fakeTrxRepo) UpdateDocumentRefs(_ context.Context, id, voucherRef, invoiceRef string) error {
	t, ok := r.trxs[id]
	if !ok {
		return domain.ErrNotFound
	}
	t.VoucherRef = voucherRef
	t.InvoiceRef = invoiceRef
	return nil
}

type fakeIntermediaryRepo struct {
	inters map[string]*entity.Intermediary
}

func newFakeIntermediaryRepo(inters ...*entity.Intermediary) *fakeIntermediaryRepo {
	m := make(map[string]*entity.Intermediary, len(inters))
	for _, i := range inters {
		cp := *i
		m[i.ID] = &cp
	}
	return &fakeIntermediaryRepo{inters: m}
}

func (r *fakeIntermediaryRepo) Create(_ context.Context, i *entity.Intermediary) error {
	cp := *i
	r.inters[i.ID] = &cp
	return nil
}

func (r *fakeIntermediaryRepo) GetByID(_ context.Context, id string) (*entity.Intermediary, error) {
	i, ok := r.inters[id]
	if !ok {
		return nil, nil
	}
	cp := *i
	return &cp, nil
}

func (r *fakeIntermediaryRepo) GetByDocNumber(_ context.Context, doc string) (*entity.Intermediary, error) {
	for _, i := range r.inters {
		if i.DocNumber == doc {
			cp := *i
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeIntermediaryRepo) Update(_ context.Context, i *entity.Intermediary) error {
	cp := *i
	r.inters[i.ID] = &cp
	return nil
}

func (r *fakeIntermediaryRepo) List(_ context.Context, _, _ int) ([]*entity.Intermediary, error) {
	out := make([]*entity.Intermediary, 0, len(r.inters))
	for _, i := range r.inters {
		cp := *i
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeIntermediaryRepo) Delete(_ context.Context, id string) error {
	delete(r.inters, id)
	return nil
}

type fakeConfigRepo struct {
	cfg   *entity.TaxConfig
	roles map[string]*entity.RoleConfig
}

func newFakeConfigRepo(cfg *entity.TaxConfig) *fakeConfigRepo {
	return &fakeConfigRepo{cfg: cfg, roles: make(map[string]*entity.RoleConfig)}
}

func (r *fakeConfigRepo) GetTaxConfig(_ context.Context) (*entity.TaxConfig, error) {
	cp := *r.cfg
	return &cp, nil
}

func (r *fakeConfigRepo) SaveTaxConfig(_ context.Context, cfg *entity.TaxConfig) error {
	cp := *cfg
	r.cfg = &cp
	return nil
}

func (r *fakeConfigRepo) ListRoles(_ context.Context) ([]*entity.RoleConfig, error) {
	out := make([]*entity.RoleConfig, 0, len(r.roles))
	for _, rc := range r.roles {
		cp := *rc
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeConfigRepo) GetRole(_ context.Context, role string) (*entity.RoleConfig, error) {
	rc, ok := r.roles[role]
	if !ok {
		return nil, nil
	}
	cp := *rc
	return &cp, nil
}

func (r *fakeConfigRepo) SaveRole(_ context.Context, rc *entity.RoleConfig) error {
	cp := *rc
	r.roles[rc.Role] = &cp
	return nil
}

// fakeTxRunner pasa los repos directamente; la atomicidad real se prueba
// contra PostgreSQL, aquí solo interesa la lógica del caso de uso.
type fakeTxRunner struct {
	productRepo *fakeProductRepo
	trxRepo     *fakeTrxRepo
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	trxRepo repository.TransactionRepository,
) error) error {
	return fn(r.productRepo, r.trxRepo)
}

var _ trade.TxRunner = (*fakeTxRunner)(nil)

// ──────────────────────────────────────────────────────────────────────────────
// Datos base compartidos por los tests
// ──────────────────────────────────────────────────────────────────────────────

func testConfig() *entity.TaxConfig {
	return &entity.TaxConfig{
		UIT:       decimal.NewFromInt(5350),
		IgvRate:   decimal.NewFromFloat(0.18),
		RentaRate: decimal.NewFromFloat(0.01),
		Ruc10TransferMargin: entity.MarginPolicy{
			Type:  entity.MarginPercent,
			Value: decimal.NewFromFloat(0.10),
		},
		Ruc20SaleMargin: entity.MarginPolicy{
			Type:  entity.MarginPercent,
			Value: decimal.NewFromFloat(0.20),
		},
		Ruc10Regime: entity.RegimeRER,
		Ruc20Regime: entity.RegimeRMT,
		CompanyName: "Importaciones Lima SAC",
		CompanyRUC:  "20601234567",
		UpdatedAt:   time.Now(),
	}
}

func testProductInStock(id, serial string) *entity.Product {
	now := time.Now()
	return &entity.Product{
		ID:             id,
		Category:       "LAPTOP",
		Brand:          "Lenovo",
		Model:          "ThinkPad T14",
		SerialNumber:   serial,
		Condition:      "NUEVO",
		Origin:         entity.OriginDeclaracionJurada,
		IntermediaryID: "inter-1",
		Status:         entity.StatusInStockRuc10,
		PurchasePrice:  decimal.NewFromInt(950),
		NotaryCost:     decimal.NewFromInt(50),
		TotalCost:      decimal.NewFromInt(1000),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func testIntermediary() *entity.Intermediary {
	return &entity.Intermediary{
		ID:        "inter-1",
		FullName:  "Juan Quispe Mamani",
		DocNumber: "45678912",
		RucNumber: "10456789121",
	}
}
