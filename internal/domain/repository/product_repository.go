package repository

import (
	"context"

	"github.com/jhoicas/Tributo-api/internal/domain/entity"
)

// ProductFilter acota los listados de equipos.
type ProductFilter struct {
	Status         string
	Category       string
	IntermediaryID string
	Search         string // marca, modelo o serie
	Limit          int
	Offset         int
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetBySerial(ctx context.Context, serial string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)
	CountByStatus(ctx context.Context, status string) (int, error)
	Delete(ctx context.Context, id string) error

	// UpdateStatus cambia el estado SOLO si el equipo sigue en expectedStatus
	// (UPDATE condicional: cero filas afectadas = precondición violada, no
	// "not found"). Es la barrera contra transferencias o ventas concurrentes
	// del mismo equipo.
	UpdateStatus(ctx context.Context, id, expectedStatus, newStatus string) error

	// SetTransfer puebla los campos de transferencia y mueve el equipo a
	// TRANSFERRED_RUC20 con la misma semántica condicional que UpdateStatus.
	SetTransfer(ctx context.Context, product *entity.Product, expectedStatus string) error

	// ClearTransfer limpia los campos de transferencia al anular la venta
	// interna y devuelve el equipo a IN_STOCK_RUC10.
	ClearTransfer(ctx context.Context, id, expectedStatus string) error
}
