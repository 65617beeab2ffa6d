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

// IntermediaryUseCase CRUD de emisores RUC 10.
type IntermediaryUseCase struct {
	repo        repository.IntermediaryRepository
	productRepo repository.ProductRepository
}

// NewIntermediaryUseCase construye el caso de uso.
func NewIntermediaryUseCase(repo repository.IntermediaryRepository, productRepo repository.ProductRepository) *IntermediaryUseCase {
	return &IntermediaryUseCase{repo: repo, productRepo: productRepo}
}

// Create registra un emisor. El DNI es único.
func (uc *IntermediaryUseCase) Create(ctx context.Context, in dto.CreateIntermediaryRequest) (*dto.IntermediaryResponse, error) {
	existing, err := uc.repo.GetByDocNumber(ctx, in.DocNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	inter := &entity.Intermediary{
		ID:        uuid.New().String(),
		FullName:  in.FullName,
		DocNumber: in.DocNumber,
		RucNumber: in.RucNumber,
		Phone:     in.Phone,
		Email:     in.Email,
		Address:   in.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, inter); err != nil {
		return nil, err
	}
	resp := toIntermediaryResponse(inter)
	return &resp, nil
}

// GetByID obtiene un emisor.
func (uc *IntermediaryUseCase) GetByID(ctx context.Context, id string) (*dto.IntermediaryResponse, error) {
	inter, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inter == nil {
		return nil, domain.ErrNotFound
	}
	resp := toIntermediaryResponse(inter)
	return &resp, nil
}

// List lista emisores.
func (uc *IntermediaryUseCase) List(ctx context.Context, page dto.PageRequest) ([]dto.IntermediaryResponse, error) {
	page.DefaultPage()
	inters, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.IntermediaryResponse, 0, len(inters))
	for _, i := range inters {
		out = append(out, toIntermediaryResponse(i))
	}
	return out, nil
}

// Update actualiza un emisor. El DNI no se cambia.
func (uc *IntermediaryUseCase) Update(ctx context.Context, id string, in dto.UpdateIntermediaryRequest) (*dto.IntermediaryResponse, error) {
	inter, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inter == nil {
		return nil, domain.ErrNotFound
	}
	if in.FullName != nil {
		inter.FullName = *in.FullName
	}
	if in.RucNumber != nil {
		inter.RucNumber = *in.RucNumber
	}
	if in.Phone != nil {
		inter.Phone = *in.Phone
	}
	if in.Email != nil {
		inter.Email = *in.Email
	}
	if in.Address != nil {
		inter.Address = *in.Address
	}
	inter.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, inter); err != nil {
		return nil, err
	}
	resp := toIntermediaryResponse(inter)
	return &resp, nil
}

// Delete elimina un emisor, solo si no tiene equipos en inventario.
func (uc *IntermediaryUseCase) Delete(ctx context.Context, id string) error {
	inter, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if inter == nil {
		return domain.ErrNotFound
	}
	products, err := uc.productRepo.List(ctx, repository.ProductFilter{IntermediaryID: id, Limit: 1})
	if err != nil {
		return err
	}
	if len(products) > 0 {
		return domain.NewPreconditionError("el emisor tiene equipos registrados")
	}
	return uc.repo.Delete(ctx, id)
}

func toIntermediaryResponse(i *entity.Intermediary) dto.IntermediaryResponse {
	return dto.IntermediaryResponse{
		ID:        i.ID,
		FullName:  i.FullName,
		DocNumber: i.DocNumber,
		RucNumber: i.RucNumber,
		Phone:     i.Phone,
		Email:     i.Email,
		Address:   i.Address,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}
