package usecase_test

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Tributo-api/internal/domain"
	"github.com/jhoicas/Tributo-api/internal/domain/entity"
	"github.com/jhoicas/Tributo-api/internal/domain/repository"
)

// ─────────────────────────────────────────────
// Fakes en memoria
// ─────────────────────────────────────────────

type fakeConfigRepo struct {
	cfg   *entity.TaxConfig
	roles map[string]*entity.RoleConfig
	saves int
}

func newFakeConfigRepo(cfg *entity.TaxConfig) *fakeConfigRepo {
	return &fakeConfigRepo{cfg: cfg, roles: map[string]*entity.RoleConfig{}}
}

func (f *fakeConfigRepo) GetTaxConfig(ctx context.Context) (*entity.TaxConfig, error) {
	cp := *f.cfg
	return &cp, nil
}

func (f *fakeConfigRepo) SaveTaxConfig(ctx context.Context, cfg *entity.TaxConfig) error {
	cp := *cfg
	f.cfg = &cp
	f.saves++
	return nil
}

func (f *fakeConfigRepo) ListRoles(ctx context.Context) ([]*entity.RoleConfig, error) {
	out := make([]*entity.RoleConfig, 0, len(f.roles))
	for _, r := range f.roles {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeConfigRepo) GetRole(ctx context.Context, role string) (*entity.RoleConfig, error) {
	return f.roles[role], nil
}

func (f *fakeConfigRepo) SaveRole(ctx context.Context, rc *entity.RoleConfig) error {
	f.roles[rc.Role] = rc
	return nil
}

type fakeEmployeeRepo struct {
	byID map[string]*entity.Employee
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{byID: map[string]*entity.Employee{}}
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp *entity.Employee) error {
	f.byID[emp.ID] = emp
	return nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (*entity.Employee, error) {
	return f.byID[id], nil
}

func (f *fakeEmployeeRepo) GetByDocNumber(ctx context.Context, docNumber string) (*entity.Employee, error) {
	for _, e := range f.byID {
		if e.DocNumber == docNumber {
			return e, nil
		}
	}
	return nil, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, emp *entity.Employee) error {
	f.byID[emp.ID] = emp
	return nil
}

func (f *fakeEmployeeRepo) List(ctx context.Context, limit, offset int) ([]*entity.Employee, error) {
	out := make([]*entity.Employee, 0, len(f.byID))
	for _, e := range f.byID {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error {
	delete(f.byID, id)
	return nil
}

type fakeIntermediaryRepo struct {
	byID map[string]*entity.Intermediary
}

func newFakeIntermediaryRepo() *fakeIntermediaryRepo {
	return &fakeIntermediaryRepo{byID: map[string]*entity.Intermediary{}}
}

func (f *fakeIntermediaryRepo) Create(ctx context.Context, inter *entity.Intermediary) error {
	f.byID[inter.ID] = inter
	return nil
}

func (f *fakeIntermediaryRepo) GetByID(ctx context.Context, id string) (*entity.Intermediary, error) {
	return f.byID[id], nil
}

func (f *fakeIntermediaryRepo) GetByDocNumber(ctx context.Context, docNumber string) (*entity.Intermediary, error) {
	for _, i := range f.byID {
		if i.DocNumber == docNumber {
			return i, nil
		}
	}
	return nil, nil
}

func (f *fakeIntermediaryRepo) Update(ctx context.Context, inter *entity.Intermediary) error {
	f.byID[inter.ID] = inter
	return nil
}

func (f *fakeIntermediaryRepo) List(ctx context.Context, limit, offset int) ([]*entity.Intermediary, error) {
	out := make([]*entity.Intermediary, 0, len(f.byID))
	for _, i := range f.byID {
		out = append(out, i)
	}
	return out, nil
}

func (f *fakeIntermediaryRepo) Delete(ctx context.Context, id string) error {
	delete(f.byID, id)
	return nil
}

// fakeProductRepo cubre solo lo que estos casos de uso consultan.
type fakeProductRepo struct {
	byID map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{byID: map[string]*entity.Product{}}
}

func (f *fakeProductRepo) Create(ctx context.Context, p *entity.Product) error {
	f.byID[p.ID] = p
	return nil
}

func (f *fakeProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	return f.byID[id], nil
}

func (f *fakeProductRepo) GetBySerial(ctx context.Context, serial string) (*entity.Product, error) {
	for _, p := range f.byID {
		if p.SerialNumber == serial {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) Update(ctx context.Context, p *entity.Product) error {
	f.byID[p.ID] = p
	return nil
}

func (f *fakeProductRepo) List(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	out := []*entity.Product{}
	for _, p := range f.byID {
		if filter.IntermediaryID != "" && p.IntermediaryID != filter.IntermediaryID {
			continue
		}
		if filter.Status != "" && p.Status != filter.Status {
			continue
		}
		out = append(out, p)
	}
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (f *fakeProductRepo) CountByStatus(ctx context.Context, status string) (int, error) {
	n := 0
	for _, p := range f.byID {
		if p.Status == status {
			n++
		}
	}
	return n, nil
}

func (f *fakeProductRepo) Delete(ctx context.Context, id string) error {
	delete(f.byID, id)
	return nil
}

func (f *fakeProductRepo) UpdateStatus(ctx context.Context, id, expected, next string) error {
	p := f.byID[id]
	if p == nil || p.Status != expected {
		return domain.NewPreconditionError("estado cambiado")
	}
	p.Status = next
	return nil
}

func (f *fakeProductRepo) SetTransfer(ctx context.Context, p *entity.Product, expected string) error {
	cur := f.byID[p.ID]
	if cur == nil || cur.Status != expected {
		return domain.NewPreconditionError("estado cambiado")
	}
	f.byID[p.ID] = p
	return nil
}

func (f *fakeProductRepo) ClearTransfer(ctx context.Context, id, expected string) error {
	p := f.byID[id]
	if p == nil || p.Status != expected {
		return domain.NewPreconditionError("estado cambiado")
	}
	p.Status = entity.StatusInStockRuc10
	p.TransferDocNumber = ""
	p.TransferBase = decimal.Zero
	p.TransferIgv = decimal.Zero
	p.TransferTotal = decimal.Zero
	return nil
}

type fakeSupplierRepo struct {
	byID map[string]*entity.Supplier
}

func newFakeSupplierRepo() *fakeSupplierRepo {
	return &fakeSupplierRepo{byID: map[string]*entity.Supplier{}}
}

func (f *fakeSupplierRepo) Create(ctx context.Context, s *entity.Supplier) error {
	f.byID[s.ID] = s
	return nil
}

func (f *fakeSupplierRepo) GetByID(ctx context.Context, id string) (*entity.Supplier, error) {
	return f.byID[id], nil
}

func (f *fakeSupplierRepo) GetByRUC(ctx context.Context, ruc string) (*entity.Supplier, error) {
	for _, s := range f.byID {
		if s.RUC == ruc {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeSupplierRepo) Update(ctx context.Context, s *entity.Supplier) error {
	f.byID[s.ID] = s
	return nil
}

func (f *fakeSupplierRepo) List(ctx context.Context, limit, offset int) ([]*entity.Supplier, error) {
	out := make([]*entity.Supplier, 0, len(f.byID))
	for _, s := range f.byID {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeSupplierRepo) Delete(ctx context.Context, id string) error {
	delete(f.byID, id)
	return nil
}
