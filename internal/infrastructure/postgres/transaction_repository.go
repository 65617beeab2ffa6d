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

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

const transactionColumns = `
	id, event_id, trx_type, date, document_type, document_number,
	entity_name, entity_doc_number, base_amount, igv_amount, total_amount,
	is_igv_exempt, exemption_reason, sunat_status, voucher_ref, invoice_ref,
	created_at`

// TransactionRepo implementación del puerto TransactionRepository sobre PostgreSQL (usable con pool o tx).
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador del registro de comprobantes. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// Create inserta la transacción y sus líneas de detalle.
func (r *TransactionRepo) Create(ctx context.Context, trx *entity.Transaction) error {
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(ctx, query,
		trx.ID, trx.EventID, trx.TrxType, trx.Date, trx.DocumentType, trx.DocumentNumber,
		trx.EntityName, trx.EntityDocNumber, trx.BaseAmount, trx.IgvAmount, trx.TotalAmount,
		trx.IsIgvExempt, trx.ExemptionReason, trx.SunatStatus, trx.VoucherRef, trx.InvoiceRef,
		trx.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDocNumberExists
		}
		return fmt.Errorf("insert transaction: %w", err)
	}
	for _, item := range trx.Items {
		_, err := r.q.Exec(ctx, `
			INSERT INTO transaction_items (id, transaction_id, product_id, product_name, quantity, unit_price_base, total_base)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			item.ID, trx.ID, item.ProductID, item.ProductName, item.Quantity, item.UnitPriceBase, item.TotalBase,
		)
		if err != nil {
			return fmt.Errorf("insert transaction item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una transacción con sus líneas.
func (r *TransactionRepo) GetByID(ctx context.Context, id string) (*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`
	var t entity.Transaction
	err := r.q.QueryRow(ctx, query, id).Scan(scanTargets(&t)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	if err := r.loadItems(ctx, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// GetByEventID devuelve el par transfer/purchase de una venta interna.
func (r *TransactionRepo) GetByEventID(ctx context.Context, eventID string) ([]*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE event_id = $1 ORDER BY trx_type DESC`
	return r.list(ctx, query, eventID)
}

// ExistsDocNumber verifica unicidad de (tipo, SERIE-NUMERO).
func (r *TransactionRepo) ExistsDocNumber(ctx context.Context, docType, docNumber string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM transactions WHERE document_type = $1 AND document_number = $2)`,
		docType, docNumber,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists doc number: %w", err)
	}
	return exists, nil
}

// ListByPeriod devuelve los comprobantes de un período YYYY-MM. Incluye
// anulados; el filtrado tributario lo hace el dominio.
func (r *TransactionRepo) ListByPeriod(ctx context.Context, period string, trxType string) ([]*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE to_char(date, 'YYYY-MM') = $1`
	args := []any{period}
	if trxType != "" {
		query += ` AND trx_type = $2`
		args = append(args, trxType)
	}
	query += ` ORDER BY date, document_number`
	return r.list(ctx, query, args...)
}

// ListByYear devuelve los comprobantes del año calendario.
func (r *TransactionRepo) ListByYear(ctx context.Context, year int, trxType string) ([]*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE date_part('year', date) = $1`
	args := []any{year}
	if trxType != "" {
		query += ` AND trx_type = $2`
		args = append(args, trxType)
	}
	query += ` ORDER BY date, document_number`
	return r.list(ctx, query, args...)
}

// List lista transacciones aplicando el filtro.
func (r *TransactionRepo) List(ctx context.Context, filter repository.TransactionFilter) ([]*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE 1=1`
	args := []any{}
	i := 1
	if filter.TrxType != "" {
		query += fmt.Sprintf(" AND trx_type = $%d", i)
		args = append(args, filter.TrxType)
		i++
	}
	if filter.SunatStatus != "" {
		query += fmt.Sprintf(" AND sunat_status = $%d", i)
		args = append(args, filter.SunatStatus)
		i++
	}
	if !filter.From.IsZero() {
		query += fmt.Sprintf(" AND date >= $%d", i)
		args = append(args, filter.From)
		i++
	}
	if !filter.To.IsZero() {
		query += fmt.Sprintf(" AND date <= $%d", i)
		args = append(args, filter.To)
		i++
	}
	query += " ORDER BY date DESC, document_number DESC"
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", i)
		args = append(args, filter.Limit)
		i++
	}
	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", i)
		args = append(args, filter.Offset)
	}
	return r.list(ctx, query, args...)
}

// UpdateSunatStatus marca ACEPTADO/PENDIENTE/ANULADO. Nunca borra la fila.
func (r *TransactionRepo) UpdateSunatStatus(ctx context.Context, id, status string) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE transactions SET sunat_status = $2 WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("update sunat status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateDocumentRefs adjunta los sustentos de un comprobante.
func (r *TransactionRepo) UpdateDocumentRefs(ctx context.Context, id, voucherRef, invoiceRef string) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE transactions SET voucher_ref = $2, invoice_ref = $3 WHERE id = $1`,
		id, voucherRef, invoiceRef,
	)
	if err != nil {
		return fmt.Errorf("update document refs: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *TransactionRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Transaction, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Transaction
	for rows.Next() {
		var t entity.Transaction
		if err := rows.Scan(scanTargets(&t)...); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, t := range list {
		if err := r.loadItems(ctx, t); err != nil {
			return nil, err
		}
	}
	return list, nil
}

func (r *TransactionRepo) loadItems(ctx context.Context, t *entity.Transaction) error {
	rows, err := r.q.Query(ctx, `
		SELECT id, transaction_id, product_id, product_name, quantity, unit_price_base, total_base
		FROM transaction_items WHERE transaction_id = $1`, t.ID)
	if err != nil {
		return fmt.Errorf("list transaction items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var item entity.TransactionItem
		if err := rows.Scan(&item.ID, &item.TransactionID, &item.ProductID, &item.ProductName,
			&item.Quantity, &item.UnitPriceBase, &item.TotalBase); err != nil {
			return fmt.Errorf("scan transaction item: %w", err)
		}
		t.Items = append(t.Items, item)
	}
	return rows.Err()
}

func scanTargets(t *entity.Transaction) []any {
	return []any{
		&t.ID, &t.EventID, &t.TrxType, &t.Date, &t.DocumentType, &t.DocumentNumber,
		&t.EntityName, &t.EntityDocNumber, &t.BaseAmount, &t.IgvAmount, &t.TotalAmount,
		&t.IsIgvExempt, &t.ExemptionReason, &t.SunatStatus, &t.VoucherRef, &t.InvoiceRef,
		&t.CreatedAt,
	}
}
