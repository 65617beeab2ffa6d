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

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `
	id, category, brand, model, serial_number, specs, color, condition, origin,
	intermediary_id, status, purchase_price, notary_cost, total_cost,
	transfer_base, transfer_igv, transfer_total, transfer_doc_type,
	transfer_doc_number, transfer_voucher_ref, transfer_date,
	created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para equipos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo equipo.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Category, p.Brand, p.Model, p.SerialNumber, p.Specs, p.Color, p.Condition, p.Origin,
		p.IntermediaryID, p.Status, p.PurchasePrice, p.NotaryCost, p.TotalCost,
		p.TransferBase, p.TransferIgv, p.TransferTotal, p.TransferDocType,
		p.TransferDocNumber, p.TransferVoucherRef, p.TransferDate,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un equipo por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, id), "get product")
}

// GetBySerial obtiene un equipo por número de serie.
func (r *ProductRepo) GetBySerial(ctx context.Context, serial string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE serial_number = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, serial), "get product by serial")
}

// Update actualiza los campos descriptivos. Estado, costos y datos de
// transferencia se manejan por las operaciones condicionales.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	query := `
		UPDATE products
		SET category = $2, brand = $3, model = $4, specs = $5, color = $6, condition = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Category, p.Brand, p.Model, p.Specs, p.Color, p.Condition, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// List lista equipos aplicando el filtro.
func (r *ProductRepo) List(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE 1=1`
	args := []any{}
	i := 1
	if filter.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", i)
		args = append(args, filter.Status)
		i++
	}
	if filter.Category != "" {
		query += fmt.Sprintf(" AND category = $%d", i)
		args = append(args, filter.Category)
		i++
	}
	if filter.IntermediaryID != "" {
		query += fmt.Sprintf(" AND intermediary_id = $%d", i)
		args = append(args, filter.IntermediaryID)
		i++
	}
	if filter.Search != "" {
		query += fmt.Sprintf(" AND (brand ILIKE $%d OR model ILIKE $%d OR serial_number ILIKE $%d)", i, i, i)
		args = append(args, "%"+filter.Search+"%")
		i++
	}
	query += " ORDER BY created_at DESC"
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
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := r.scanRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// CountByStatus cuenta los equipos en un estado.
func (r *ProductRepo) CountByStatus(ctx context.Context, status string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT count(*) FROM products WHERE status = $1`, status).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

// Delete elimina un equipo por ID.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// UpdateStatus cambia el estado solo si el equipo sigue en expectedStatus.
// Cero filas afectadas = otro proceso ganó la carrera.
func (r *ProductRepo) UpdateStatus(ctx context.Context, id, expectedStatus, newStatus string) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE products SET status = $3, updated_at = now() WHERE id = $1 AND status = $2`,
		id, expectedStatus, newStatus,
	)
	if err != nil {
		return fmt.Errorf("update product status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.NewPreconditionError("el equipo ya no está en " + expectedStatus)
	}
	return nil
}

// SetTransfer puebla los campos de transferencia y mueve el equipo a
// TRANSFERRED_RUC20, condicionado al estado esperado.
func (r *ProductRepo) SetTransfer(ctx context.Context, p *entity.Product, expectedStatus string) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE products
		SET status = $3, transfer_base = $4, transfer_igv = $5, transfer_total = $6,
		    transfer_doc_type = $7, transfer_doc_number = $8, transfer_voucher_ref = $9,
		    transfer_date = $10, updated_at = now()
		WHERE id = $1 AND status = $2`,
		p.ID, expectedStatus, entity.StatusTransferredRuc20,
		p.TransferBase, p.TransferIgv, p.TransferTotal,
		p.TransferDocType, p.TransferDocNumber, p.TransferVoucherRef,
		p.TransferDate,
	)
	if err != nil {
		return fmt.Errorf("set product transfer: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.NewPreconditionError("el equipo ya no está en " + expectedStatus)
	}
	return nil
}

// ClearTransfer limpia los campos de transferencia y devuelve el equipo a
// IN_STOCK_RUC10, condicionado al estado esperado.
func (r *ProductRepo) ClearTransfer(ctx context.Context, id, expectedStatus string) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE products
		SET status = $3, transfer_base = 0, transfer_igv = 0, transfer_total = 0,
		    transfer_doc_type = '', transfer_doc_number = '', transfer_voucher_ref = '',
		    transfer_date = NULL, updated_at = now()
		WHERE id = $1 AND status = $2`,
		id, expectedStatus, entity.StatusInStockRuc10,
	)
	if err != nil {
		return fmt.Errorf("clear product transfer: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.NewPreconditionError("el equipo ya no está en " + expectedStatus)
	}
	return nil
}

func (r *ProductRepo) scanOne(row pgx.Row, op string) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.Category, &p.Brand, &p.Model, &p.SerialNumber, &p.Specs, &p.Color, &p.Condition, &p.Origin,
		&p.IntermediaryID, &p.Status, &p.PurchasePrice, &p.NotaryCost, &p.TotalCost,
		&p.TransferBase, &p.TransferIgv, &p.TransferTotal, &p.TransferDocType,
		&p.TransferDocNumber, &p.TransferVoucherRef, &p.TransferDate,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}

func (r *ProductRepo) scanRow(rows pgx.Rows) (*entity.Product, error) {
	var p entity.Product
	err := rows.Scan(
		&p.ID, &p.Category, &p.Brand, &p.Model, &p.SerialNumber, &p.Specs, &p.Color, &p.Condition, &p.Origin,
		&p.IntermediaryID, &p.Status, &p.PurchasePrice, &p.NotaryCost, &p.TotalCost,
		&p.TransferBase, &p.TransferIgv, &p.TransferTotal, &p.TransferDocType,
		&p.TransferDocNumber, &p.TransferVoucherRef, &p.TransferDate,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
