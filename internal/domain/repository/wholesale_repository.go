package repository

import (
	"context"

	"github.com/jhoicas/Tributo-api/internal/domain/entity"
)

// WholesaleFilter acota los listados de compras mayoristas.
type WholesaleFilter struct {
	Status     string
	SupplierID string
	Limit      int
	Offset     int
}

// WholesaleRepository define el puerto de persistencia para compras a
// proveedor con RUC (factura como único sustento).
type WholesaleRepository interface {
	// Create inserta la compra y sus ítems.
	Create(ctx context.Context, entry *entity.WholesalePurchaseEntry) error
	GetByID(ctx context.Context, id string) (*entity.WholesalePurchaseEntry, error)
	Update(ctx context.Context, entry *entity.WholesalePurchaseEntry) error
	List(ctx context.Context, filter WholesaleFilter) ([]*entity.WholesalePurchaseEntry, error)
	Delete(ctx context.Context, id string) error

	// Complete marca COMPLETADO con UPDATE condicional sobre PENDIENTE_DOCS.
	Complete(ctx context.Context, id string) error

	// LinkItemProduct vincula un ítem con el equipo creado al completar.
	LinkItemProduct(ctx context.Context, itemID, productID string) error

	// ListItemProductIDs devuelve los IDs de equipos creados desde los ítems
	// de la compra (guardia de borrado: ninguno puede estar VENDIDO).
	ListItemProductIDs(ctx context.Context, entryID string) ([]string, error)
}
