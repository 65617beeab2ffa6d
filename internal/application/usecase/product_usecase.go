package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Tributo-api/internal/application/dto"
	"github.com/jhoicas/Tributo-api/internal/domain"
	"github.com/jhoicas/Tributo-api/internal/domain/entity"
	"github.com/jhoicas/Tributo-api/internal/domain/repository"
)

// ProductUseCase consultas y edición descriptiva del inventario. Los equipos
// NO se crean por aquí: nacen al completarse una compra. El estado y los
// campos de transferencia solo los mueven transferencias, ventas y
// anulaciones.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// GetByID obtiene un equipo por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// List lista equipos con filtros y paginación.
func (uc *ProductUseCase) List(ctx context.Context, in dto.ListProductsRequest) (*dto.ProductListResponse, error) {
	in.DefaultPage()
	products, err := uc.repo.List(ctx, repository.ProductFilter{
		Status:         in.Status,
		Category:       in.Category,
		IntermediaryID: in.IntermediaryID,
		Search:         in.Search,
		Limit:          in.Limit,
		Offset:         in.Offset,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: in.Limit, Offset: in.Offset},
	}, nil
}

// StockSummary cuenta los equipos por estado del ciclo de vida.
func (uc *ProductUseCase) StockSummary(ctx context.Context) (*dto.StockSummaryResponse, error) {
	inStock, err := uc.repo.CountByStatus(ctx, entity.StatusInStockRuc10)
	if err != nil {
		return nil, err
	}
	transferred, err := uc.repo.CountByStatus(ctx, entity.StatusTransferredRuc20)
	if err != nil {
		return nil, err
	}
	sold, err := uc.repo.CountByStatus(ctx, entity.StatusSold)
	if err != nil {
		return nil, err
	}
	return &dto.StockSummaryResponse{
		InStockRuc10:     inStock,
		TransferredRuc20: transferred,
		Sold:             sold,
	}, nil
}

// Update edita los campos descriptivos de un equipo.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Brand != nil {
		product.Brand = *in.Brand
	}
	if in.Model != nil {
		product.Model = *in.Model
	}
	if in.Specs != nil {
		product.Specs = *in.Specs
	}
	if in.Color != nil {
		product.Color = *in.Color
	}
	if in.Condition != nil {
		product.Condition = *in.Condition
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	resp := toProductResponse(product)
	return &resp, nil
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:                p.ID,
		Category:          p.Category,
		Brand:             p.Brand,
		Model:             p.Model,
		SerialNumber:      p.SerialNumber,
		Specs:             p.Specs,
		Color:             p.Color,
		Condition:         p.Condition,
		Origin:            p.Origin,
		IntermediaryID:    p.IntermediaryID,
		Status:            p.Status,
		PurchasePrice:     p.PurchasePrice,
		NotaryCost:        p.NotaryCost,
		TotalCost:         p.TotalCost,
		TransferBase:      p.TransferBase,
		TransferIgv:       p.TransferIgv,
		TransferTotal:     p.TransferTotal,
		TransferDocType:   p.TransferDocType,
		TransferDocNumber: p.TransferDocNumber,
		TransferDate:      p.TransferDate,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}
