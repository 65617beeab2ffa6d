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

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

const expenseColumns = `
	id, date, category, description, amount, payment_method, beneficiary, status,
	document_type, document_number, receipt_ref, created_at, updated_at`

// ExpenseRepo implementación del puerto ExpenseRepository sobre PostgreSQL (usable con pool o tx).
type ExpenseRepo struct {
	q Querier
}

// NewExpenseRepository construye el adaptador de gastos operativos. Pasar pool o tx (Querier).
func NewExpenseRepository(q Querier) *ExpenseRepo {
	return &ExpenseRepo{q: q}
}

// Create persiste un nuevo gasto.
func (r *ExpenseRepo) Create(ctx context.Context, e *entity.ExpenseEntry) error {
	query := `
		INSERT INTO expense_entries (` + expenseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.Date, e.Category, e.Description, e.Amount, e.PaymentMethod, e.Beneficiary, e.Status,
		e.DocumentType, e.DocumentNumber, e.ReceiptRef, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert expense entry: %w", err)
	}
	return nil
}

// GetByID obtiene un gasto por ID.
func (r *ExpenseRepo) GetByID(ctx context.Context, id string) (*entity.ExpenseEntry, error) {
	query := `SELECT ` + expenseColumns + ` FROM expense_entries WHERE id = $1`
	var e entity.ExpenseEntry
	err := r.q.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.Date, &e.Category, &e.Description, &e.Amount, &e.PaymentMethod, &e.Beneficiary, &e.Status,
		&e.DocumentType, &e.DocumentNumber, &e.ReceiptRef, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get expense entry: %w", err)
	}
	return &e, nil
}

// Update actualiza un gasto.
func (r *ExpenseRepo) Update(ctx context.Context, e *entity.ExpenseEntry) error {
	query := `
		UPDATE expense_entries
		SET category = $2, description = $3, amount = $4, payment_method = $5,
		    beneficiary = $6, document_type = $7, document_number = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.Category, e.Description, e.Amount, e.PaymentMethod,
		e.Beneficiary, e.DocumentType, e.DocumentNumber, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update expense entry: %w", err)
	}
	return nil
}

// List lista gastos aplicando el filtro.
func (r *ExpenseRepo) List(ctx context.Context, filter repository.ExpenseFilter) ([]*entity.ExpenseEntry, error) {
	query := `SELECT ` + expenseColumns + ` FROM expense_entries WHERE 1=1`
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
	if filter.Period != "" {
		query += fmt.Sprintf(" AND to_char(date, 'YYYY-MM') = $%d", i)
		args = append(args, filter.Period)
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
		return nil, fmt.Errorf("list expense entries: %w", err)
	}
	defer rows.Close()
	var list []*entity.ExpenseEntry
	for rows.Next() {
		var e entity.ExpenseEntry
		if err := rows.Scan(
			&e.ID, &e.Date, &e.Category, &e.Description, &e.Amount, &e.PaymentMethod, &e.Beneficiary, &e.Status,
			&e.DocumentType, &e.DocumentNumber, &e.ReceiptRef, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan expense entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Delete elimina un gasto por ID.
func (r *ExpenseRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM expense_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete expense entry: %w", err)
	}
	return nil
}

// Complete adjunta el comprobante y marca COMPLETADO solo si el gasto sigue
// en PENDIENTE_DOCS.
func (r *ExpenseRepo) Complete(ctx context.Context, id, receiptRef string) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE expense_entries SET status = $3, receipt_ref = $4, updated_at = now()
		WHERE id = $1 AND status = $2`,
		id, entity.StatusPendingDocs, entity.StatusCompleted, receiptRef,
	)
	if err != nil {
		return fmt.Errorf("complete expense entry: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.NewPreconditionError("el gasto ya no está en " + entity.StatusPendingDocs)
	}
	return nil
}
