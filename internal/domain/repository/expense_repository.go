package repository

import (
	"context"

	"github.com/jhoicas/Tributo-api/internal/domain/entity"
)

// ExpenseFilter acota los listados de gastos operativos.
type ExpenseFilter struct {
	Status   string
	Category string
	Period   string // YYYY-MM
	Limit    int
	Offset   int
}

// ExpenseRepository define el puerto de persistencia para gastos operativos.
type ExpenseRepository interface {
	Create(ctx context.Context, entry *entity.ExpenseEntry) error
	GetByID(ctx context.Context, id string) (*entity.ExpenseEntry, error)
	Update(ctx context.Context, entry *entity.ExpenseEntry) error
	List(ctx context.Context, filter ExpenseFilter) ([]*entity.ExpenseEntry, error)
	Delete(ctx context.Context, id string) error

	// Complete adjunta el comprobante y marca COMPLETADO con UPDATE
	// condicional sobre PENDIENTE_DOCS.
	Complete(ctx context.Context, id, receiptRef string) error
}
