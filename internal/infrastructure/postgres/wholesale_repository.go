package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Tributo-api/internal/domain"
	"github.com/jhoicas/Tributo-api/internal/domain/entity"
	"github.com/jhoicas/Tributo-api/internal/domain/repository"
)

var _ repository.WholesaleRepository = (*WholesaleRepo)(nil)

const wholesaleColumns = `
	id, date, status, supplier_id, supplier_name, supplier_ruc,
	document_number, invoice_ref, base_amount, igv_amount, total_amount,
	created_at, updated_at`

// WholesaleRepo implementación del puerto WholesaleRepository sobre PostgreSQL (usable con pool o tx).
type WholesaleRepo struct {
	q Querier
}

// NewWholesaleRepository construye el adaptador de compras mayoristas. Pasar pool o tx (Querier).
func NewWholesaleRepository(q Querier) *WholesaleRepo {
	return &WholesaleRepo{q: q}
}

// Create inserta la compra y sus ítems.
func (r *WholesaleRepo) Create(ctx context.Context, e *entity.WholesalePurchaseEntry) error {
	query := `
		INSERT INTO wholesale_entries (` + wholesaleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.Date, e.Status, e.SupplierID, e.SupplierName, e.SupplierRUC,
		e.DocumentNumber, e.InvoiceRef, e.BaseAmount, e.IgvAmount, e.TotalAmount,
		e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert wholesale entry: %w", err)
	}
	for _, item := range e.Items {
		_, err := r.q.Exec(ctx, `
			INSERT INTO wholesale_items (id, entry_id, category, brand, model, serial, specs, cost)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			item.ID, e.ID, item.Category, item.Brand, item.Model, item.Serial, item.Specs, item.Cost,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicate
			}
			return fmt.Errorf("insert wholesale item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una compra mayorista con sus ítems.
func (r *WholesaleRepo) GetByID(ctx context.Context, id string) (*entity.WholesalePurchaseEntry, error) {
	query := `SELECT ` + wholesaleColumns + ` FROM wholesale_entries WHERE id = $1`
	var e entity.WholesalePurchaseEntry
	err := r.q.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.Date, &e.Status, &e.SupplierID, &e.SupplierName, &e.SupplierRUC,
		&e.DocumentNumber, &e.InvoiceRef, &e.BaseAmount, &e.IgvAmount, &e.TotalAmount,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wholesale entry: %w", err)
	}
	if err := r.loadItems(ctx, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// Update actualiza la cabecera de la compra (número de factura y sustento).
func (r *WholesaleRepo) Update(ctx context.Context, e *entity.WholesalePurchaseEntry) error {
	query := `
		UPDATE wholesale_entries
		SET document_number = $2, invoice_ref = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, e.ID, e.DocumentNumber, e.InvoiceRef, e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update wholesale entry: %w", err)
	}
	return nil
}

// List lista compras mayoristas aplicando el filtro.
func (r *WholesaleRepo) List(ctx context.Context, filter repository.WholesaleFilter) ([]*entity.WholesalePurchaseEntry, error) {
	query := `SELECT ` + wholesaleColumns + ` FROM wholesale_entries WHERE 1=1`
	args := []any{}
	i := 1
	if filter.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", i)
		args = append(args, filter.Status)
		i++
	}
	if filter.SupplierID != "" {
		query += fmt.Sprintf(" AND supplier_id = $%d", i)
		args = append(args, filter.SupplierID)
		i++
	}
	query += " ORDER BY date DESC, created_at DESC"
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", i)
		args = append(args, filter.Limit)
		i++
	}
	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", i)
		args = append(args, filter.Offset)
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list wholesale entries: %w", err)
	}
	defer rows.Close()
	var list []*entity.WholesalePurchaseEntry
	for rows.Next() {
		var e entity.WholesalePurchaseEntry
		if err := rows.Scan(
			&e.ID, &e.Date, &e.Status, &e.SupplierID, &e.SupplierName, &e.SupplierRUC,
			&e.DocumentNumber, &e.InvoiceRef, &e.BaseAmount, &e.IgvAmount, &e.TotalAmount,
			&e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan wholesale entry: %w", err)
		}
		list = append(list, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, e := range list {
		if err := r.loadItems(ctx, e); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// Delete elimina la compra y sus ítems.
func (r *WholesaleRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM wholesale_items WHERE entry_id = $1`, id); err != nil {
		return fmt.Errorf("delete wholesale items: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM wholesale_entries WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete wholesale entry: %w", err)
	}
	return nil
}

// Complete marca COMPLETADO solo si la compra sigue en PENDIENTE_DOCS.
func (r *WholesaleRepo) Complete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE wholesale_entries SET status = $3, updated_at = now()
		WHERE id = $1 AND status = $2`,
		id, entity.StatusPendingDocs, entity.StatusCompleted,
	)
	if err != nil {
		return fmt.Errorf("complete wholesale entry: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.NewPreconditionError("la compra ya no está en " + entity.StatusPendingDocs)
	}
	return nil
}

// LinkItemProduct vincula un ítem con el equipo creado al completar.
func (r *WholesaleRepo) LinkItemProduct(ctx context.Context, itemID, productID string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE wholesale_items SET product_id = $2 WHERE id = $1`,
		itemID, productID,
	)
	if err != nil {
		return fmt.Errorf("link wholesale item product: %w", err)
	}
	return nil
}

// ListItemProductIDs devuelve los IDs de equipos creados desde los ítems.
func (r *WholesaleRepo) ListItemProductIDs(ctx context.Context, entryID string) ([]string, error) {
	rows, err := r.q.Query(ctx,
		`SELECT product_id FROM wholesale_items WHERE entry_id = $1 AND product_id IS NOT NULL AND product_id <> ''`,
		entryID,
	)
	if err != nil {
		return nil, fmt.Errorf("list wholesale item products: %w", err)
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan wholesale item product: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *WholesaleRepo) loadItems(ctx context.Context, e *entity.WholesalePurchaseEntry) error {
	rows, err := r.q.Query(ctx, `
		SELECT id, category, brand, model, serial, specs, cost
		FROM wholesale_items WHERE entry_id = $1`, e.ID)
	if err != nil {
		return fmt.Errorf("list wholesale items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var item entity.WholesaleItem
		if err := rows.Scan(&item.ID, &item.Category, &item.Brand, &item.Model,
			&item.Serial, &item.Specs, &item.Cost); err != nil {
			return fmt.Errorf("scan wholesale item: %w", err)
		}
		e.Items = append(e.Items, item)
	}
	return rows.Err()
}
