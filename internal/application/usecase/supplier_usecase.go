package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Tributo-api/internal/application/dto"
	"github.com/jhoicas/Tributo-api/internal/domain"
	"github.com/jhoicas/Tributo-api/internal/domain/entity"
	"github.com/jhoicas/Tributo-api/internal/domain/repository"
)

// SupplierUseCase CRUD de proveedores mayoristas. El RUC es único.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// Create registra un proveedor.
func (uc *SupplierUseCase) Create(ctx context.Context, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	existing, err := uc.repo.GetByRUC(ctx, in.RUC)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	supplier := &entity.Supplier{
		ID:          uuid.New().String(),
		RUC:         in.RUC,
		RazonSocial: in.RazonSocial,
		ContactName: in.ContactName,
		Phone:       in.Phone,
		Email:       in.Email,
		Address:     in.Address,
		Department:  in.Department,
		Province:    in.Province,
		District:    in.District,
		Category:    in.Category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, supplier); err != nil {
		return nil, err
	}
	resp := toSupplierResponse(supplier)
	return &resp, nil
}

// GetByID obtiene un proveedor.
func (uc *SupplierUseCase) GetByID(ctx context.Context, id string) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	resp := toSupplierResponse(supplier)
	return &resp, nil
}

// List lista proveedores.
func (uc *SupplierUseCase) List(ctx context.Context, page dto.PageRequest) ([]dto.SupplierResponse, error) {
	page.DefaultPage()
	suppliers, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		out = append(out, toSupplierResponse(s))
	}
	return out, nil
}

// Update actualiza un proveedor. El RUC no se cambia.
func (uc *SupplierUseCase) Update(ctx context.Context, id string, in dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	if in.RazonSocial != nil {
		supplier.RazonSocial = *in.RazonSocial
	}
	if in.ContactName != nil {
		supplier.ContactName = *in.ContactName
	}
	if in.Phone != nil {
		supplier.Phone = *in.Phone
	}
	if in.Email != nil {
		supplier.Email = *in.Email
	}
	if in.Address != nil {
		supplier.Address = *in.Address
	}
	if in.Department != nil {
		supplier.Department = *in.Department
	}
	if in.Province != nil {
		supplier.Province = *in.Province
	}
	if in.District != nil {
		supplier.District = *in.District
	}
	if in.Category != nil {
		supplier.Category = *in.Category
	}
	supplier.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, supplier); err != nil {
		return nil, err
	}
	resp := toSupplierResponse(supplier)
	return &resp, nil
}

// Delete elimina un proveedor.
func (uc *SupplierUseCase) Delete(ctx context.Context, id string) error {
	supplier, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if supplier == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toSupplierResponse(s *entity.Supplier) dto.SupplierResponse {
	return dto.SupplierResponse{
		ID:          s.ID,
		RUC:         s.RUC,
		RazonSocial: s.RazonSocial,
		ContactName: s.ContactName,
		Phone:       s.Phone,
		Email:       s.Email,
		Address:     s.Address,
		Department:  s.Department,
		Province:    s.Province,
		District:    s.District,
		Category:    s.Category,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
