package repository

import (
	"context"

	"github.com/jhoicas/Tributo-api/internal/domain/entity"
)

// PurchaseFilter acota los listados de compras a persona natural.
type PurchaseFilter struct {
	Status         string
	IntermediaryID string
	Limit          int
	Offset         int
}

// PurchaseRepository define el puerto de persistencia para compras RUC 10
// (a persona natural, con trío de sustentos).
type PurchaseRepository interface {
	Create(ctx context.Context, entry *entity.PurchaseEntry) error
	GetByID(ctx context.Context, id string) (*entity.PurchaseEntry, error)
	Update(ctx context.Context, entry *entity.PurchaseEntry) error
	List(ctx context.Context, filter PurchaseFilter) ([]*entity.PurchaseEntry, error)
	Delete(ctx context.Context, id string) error

	// Complete marca COMPLETADO y vincula el equipo creado, SOLO si el
	// registro sigue en PENDIENTE_DOCS (UPDATE condicional contra el doble
	// completado concurrente).
	Complete(ctx context.Context, id, productID string) error
}
