package purchases_test

import (
	"context"

	"github.com/jhoicas/Tributo-api/internal/application/purchases"
	"github.com/jhoicas/Tributo-api/internal/domain"
	"github.com/jhoicas/Tributo-api/internal/domain/entity"
	"github.com/jhoicas/Tributo-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria. Complete replica la semántica condicional del UPDATE.
// ──────────────────────────────────────────────────────────────────────────────

type fakePurchaseRepo struct {
	entries map[string]*entity.PurchaseEntry
}

func newFakePurchaseRepo() *fakePurchaseRepo {
	return &fakePurchaseRepo{entries: make(map[string]*entity.PurchaseEntry)}
}

func (r *fakePurchaseRepo) Create(_ context.Context, e *entity.PurchaseEntry) error {
	cp := *e
	r.entries[e.ID] = &cp
	return nil
}

func (r *fakePurchaseRepo) GetByID(_ context.Context, id string) (*entity.PurchaseEntry, error) {
	e, ok := r.entries[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *fakePurchaseRepo) Update(_ context.Context, e *entity.PurchaseEntry) error {
	if _, ok := r.entries[e.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *e
	r.entries[e.ID] = &cp
	return nil
}

func (r *fakePurchaseRepo) List(_ context.Context, filter repository.PurchaseFilter) ([]*entity.PurchaseEntry, error) {
	var out []*entity.PurchaseEntry
	for _, e := range r.entries {
		if filter.Status != "" && e.Status != filter.Status {
			continue
		}
		cp := *e
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakePurchaseRepo) Delete(_ context.Context, id string) error {
	delete(r.entries, id)
	return nil
}

func (r *fakePurchaseRepo) Complete(_ context.Context, id, productID string) error {
	e, ok := r.entries[id]
	if !ok {
		return domain.ErrNotFound
	}
	if e.Status != entity.StatusPendingDocs {
		return domain.NewPreconditionError("la compra no está pendiente")
	}
	e.Status = entity.StatusCompleted
	e.ProductID = productID
	return nil
}

type fakeWholesaleRepo struct {
	entries      map[string]*entity.WholesalePurchaseEntry
	itemProducts map[string][]string // entryID → productIDs
}

func newFakeWholesaleRepo() *fakeWholesaleRepo {
	return &fakeWholesaleRepo{
		entries:      make(map[string]*entity.WholesalePurchaseEntry),
		itemProducts: make(map[string][]string),
	}
}

func (r *fakeWholesaleRepo) Create(_ context.Context, e *entity.WholesalePurchaseEntry) error {
	cp := *e
	r.entries[e.ID] = &cp
	return nil
}

func (r *fakeWholesaleRepo) GetByID(_ context.Context, id string) (*entity.WholesalePurchaseEntry, error) {
	e, ok := r.entries[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *fakeWholesaleRepo) Update(_ context.Context, e *entity.WholesalePurchaseEntry) error {
	if _, ok := r.entries[e.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *e
	r.entries[e.ID] = &cp
	return nil
}

func (r *fakeWholesaleRepo) List(_ context.Context, filter repository.WholesaleFilter) ([]*entity.WholesalePurchaseEntry, error) {
	var out []*entity.WholesalePurchaseEntry
	for _, e := range r.entries {
		if filter.Status != "" && e.Status != filter.Status {
			continue
		}
		cp := *e
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeWholesaleRepo) Delete(_ context.Context, id string) error {
	delete(r.entries, id)
	delete(r.itemProducts, id)
	return nil
}

func (r *fakeWholesaleRepo) Complete(_ context.Context, id string) error {
	e, ok := r.entries[id]
	if !ok {
		return domain.ErrNotFound
	}
	if e.Status != entity.StatusPendingDocs {
		return domain.NewPreconditionError("la compra no está pendiente")
	}
	e.Status = entity.StatusCompleted
	return nil
}

func (r *fakeWholesaleRepo) LinkItemProduct(_ context.Context, itemID, productID string) error {
	for id, e := range r.entries {
		for _, it := range e.Items {
			if it.ID == itemID {
				r.itemProducts[id] = append(r.itemProducts[id], productID)
				return nil
			}
		}
	}
	return domain.ErrNotFound
}

func (r *fakeWholesaleRepo) ListItemProductIDs(_ context.Context, entryID string) ([]string, error) {
	return r.itemProducts[entryID], nil
}

type fakeExpenseRepo struct {
	entries map[string]*entity.ExpenseEntry
}

func newFakeExpenseRepo() *fakeExpenseRepo {
	return &fakeExpenseRepo{entries: make(map[string]*entity.ExpenseEntry)}
}

func (r *fakeExpenseRepo) Create(_ context.Context, e *entity.ExpenseEntry) error {
	cp := *e
	r.entries[e.ID] = &cp
	return nil
}

func (r *fakeExpenseRepo) GetByID(_ context.Context, id string) (*entity.ExpenseEntry, error) {
	e, ok := r.entries[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *fakeExpenseRepo) Update(_ context.Context, e *entity.ExpenseEntry) error {
	cp := *e
	r.entries[e.ID] = &cp
	return nil
}

func (r *fakeExpenseRepo) List(_ context.Context, filter repository.ExpenseFilter) ([]*entity.ExpenseEntry, error) {
	var out []*entity.ExpenseEntry
	for _, e := range r.entries {
		if filter.Status != "" && e.Status != filter.Status {
			continue
		}
		if filter.Category != "" && e.Category != filter.Category {
			continue
		}
		cp := *e
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeExpenseRepo) Delete(_ context.Context, id string) error {
	delete(r.entries, id)
	return nil
}

func (r *fakeExpenseRepo) Complete(_ context.Context, id, receiptRef string) error {
	e, ok := r.entries[id]
	if !ok {
		return domain.ErrNotFound
	}
	if e.Status != entity.StatusPendingDocs {
		return domain.NewPreconditionError("el gasto no está pendiente")
	}
	e.Status = entity.StatusCompleted
	e.ReceiptRef = receiptRef
	return nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*entity.Product)}
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
		return domain.NewPreconditionError("estado inesperado")
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
		return domain.NewPreconditionError("estado inesperado")
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
		return domain.NewPreconditionError("estado inesperado")
	}
	p.Status = entity.StatusInStockRuc10
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
		if t.Date.Year() != year {
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

type fakeSupplierRepo struct {
	suppliers map[string]*entity.Supplier
}

func newFakeSupplierRepo(suppliers ...*entity.Supplier) *fakeSupplierRepo {
	m := make(map[string]*entity.Supplier, len(suppliers))
	for _, s := range suppliers {
		cp := *s
		m[s.ID] = &cp
	}
	return &fakeSupplierRepo{suppliers: m}
}

func (r *fakeSupplierRepo) Create(_ context.Context, s *entity.Supplier) error {
	cp := *s
	r.suppliers[s.ID] = &cp
	return nil
}

func (r *fakeSupplierRepo) GetByID(_ context.Context, id string) (*entity.Supplier, error) {
	s, ok := r.suppliers[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSupplierRepo) GetByRUC(_ context.Context, ruc string) (*entity.Supplier, error) {
	for _, s := range r.suppliers {
		if s.RUC == ruc {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeSupplierRepo) Update(_ context.Context, s *entity.Supplier) error {
	cp := *s
	r.suppliers[s.ID] = &cp
	return nil
}

func (r *fakeSupplierRepo) List(_ context.Context, _, _ int) ([]*entity.Supplier, error) {
	out := make([]*entity.Supplier, 0, len(r.suppliers))
	for _, s := range r.suppliers {
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeSupplierRepo) Delete(_ context.Context, id string) error {
	delete(r.suppliers, id)
	return nil
}

type fakeTxRunner struct {
	purchaseRepo  *fakePurchaseRepo
	wholesaleRepo *fakeWholesaleRepo
	productRepo   *fakeProductRepo
	trxRepo       *fakeTrxRepo
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	purchaseRepo repository.PurchaseRepository,
	wholesaleRepo repository.WholesaleRepository,
	productRepo repository.ProductRepository,
	trxRepo repository.TransactionRepository,
) error) error {
	return fn(r.purchaseRepo, r.wholesaleRepo, r.productRepo, r.trxRepo)
}

var _ purchases.TxRunner = (*fakeTxRunner)(nil)

func listAllProducts() repository.ProductFilter { return repository.ProductFilter{} }
