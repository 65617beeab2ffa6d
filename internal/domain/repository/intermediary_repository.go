package repository

import (
	"context"

	"github.com/jhoicas/Tributo-api/internal/domain/entity"
)

// IntermediaryRepository define el puerto de persistencia para emisores RUC 10.
type IntermediaryRepository interface {
	Create(ctx context.Context, inter *entity.Intermediary) error
	GetByID(ctx context.Context, id string) (*entity.Intermediary, error)
	GetByDocNumber(ctx context.Context, docNumber string) (*entity.Intermediary, error)
	Update(ctx context.Context, inter *entity.Intermediary) error
	List(ctx context.Context, limit, offset int) ([]*entity.Intermediary, error)
	Delete(ctx context.Context, id string) error
}
