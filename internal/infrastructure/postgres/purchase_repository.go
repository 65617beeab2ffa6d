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

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

const purchaseColumns = `
	id, date, status, intermediary_id, provider_dni, provider_name, provider_addr,
	civil_status, occupation, product_category, product_brand, product_model,
	product_serial, product_color, condition, origin_type, price_agreed, notary_cost,
	bank_origin, bank_destination, operation_number,
	voucher_ref, contract_ref, origin_decl_ref, product_id,
	created_at, updated_at`

// PurchaseRepo implementación del puerto PurchaseRepository sobre PostgreSQL (usable con pool o tx).
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository construye el adaptador de compras a persona natural. Pasar pool o tx (Querier).
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

// Create persiste un nuevo registro de compra.
func (r *PurchaseRepo) Create(ctx context.Context, e *entity.PurchaseEntry) error {
	query := `
		INSERT INTO purchase_entries (` + purchaseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27)`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.Date, e.Status, e.IntermediaryID, e.ProviderDNI, e.ProviderName, e.ProviderAddr,
		e.CivilStatus, e.Occupation, e.ProductCategory, e.ProductBrand, e.ProductModel,
		e.ProductSerial, e.ProductColor, e.Condition, e.OriginType, e.PriceAgreed, e.NotaryCost,
		e.BankOrigin, e.BankDestination, e.OperationNumber,
		e.VoucherRef, e.ContractRef, e.OriginDeclRef, e.ProductID,
		e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert purchase entry: %w", err)
	}
	return nil
}

// GetByID obtiene un registro de compra por ID.
func (r *PurchaseRepo) GetByID(ctx context.Context, id string) (*entity.PurchaseEntry, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchase_entries WHERE id = $1`
	var e entity.PurchaseEntry
	err := r.q.QueryRow(ctx, query, id).Scan(purchaseScanTargets(&e)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase entry: %w", err)
	}
	return &e, nil
}

// Update actualiza un registro de compra (datos y referencias de sustentos).
func (r *PurchaseRepo) Update(ctx context.Context, e *entity.PurchaseEntry) error {
	query := `
		UPDATE purchase_entries
		SET provider_name = $2, provider_addr = $3, civil_status = $4, occupation = $5,
		    bank_origin = $6, bank_destination = $7, operation_number = $8,
		    voucher_ref = $9, contract_ref = $10, origin_decl_ref = $11, updated_at = $12
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.ProviderName, e.ProviderAddr, e.CivilStatus, e.Occupation,
		e.BankOrigin, e.BankDestination, e.OperationNumber,
		e.VoucherRef, e.ContractRef, e.OriginDeclRef, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update purchase entry: %w", err)
	}
	return nil
}

// List lista registros de compra aplicando el filtro.
func (r *PurchaseRepo) List(ctx context.Context, filter repository.PurchaseFilter) ([]*entity.PurchaseEntry, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchase_entries WHERE 1=1`
	args := []any{}
	i := 1
	if filter.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", i)
		args = append(args, filter.Status)
		i++
	}
	if filter.IntermediaryID != "" {
		query += fmt.Sprintf(" AND intermediary_id = $%d", i)
		args = append(args, filter.IntermediaryID)
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
		return nil, fmt.Errorf("list purchase entries: %w", err)
	}
	defer rows.Close()
	var list []*entity.PurchaseEntry
	for rows.Next() {
		var e entity.PurchaseEntry
		if err := rows.Scan(purchaseScanTargets(&e)...); err != nil {
			return nil, fmt.Errorf("scan purchase entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Delete elimina un registro de compra por ID.
func (r *PurchaseRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM purchase_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete purchase entry: %w", err)
	}
	return nil
}

// Complete marca COMPLETADO y vincula el equipo, solo si el registro sigue
// en PENDIENTE_DOCS.
func (r *PurchaseRepo) Complete(ctx context.Context, id, productID string) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE purchase_entries
		SET status = $3, product_id = $4, updated_at = now()
		WHERE id = $1 AND status = $2`,
		id, entity.StatusPendingDocs, entity.StatusCompleted, productID,
	)
	if err != nil {
		return fmt.Errorf("complete purchase entry: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.NewPreconditionError("la compra ya no está en " + entity.StatusPendingDocs)
	}
	return nil
}

func purchaseScanTargets(e *entity.PurchaseEntry) []any {
	return []any{
		&e.ID, &e.Date, &e.Status, &e.IntermediaryID, &e.ProviderDNI, &e.ProviderName, &e.ProviderAddr,
		&e.CivilStatus, &e.Occupation, &e.ProductCategory, &e.ProductBrand, &e.ProductModel,
		&e.ProductSerial, &e.ProductColor, &e.Condition, &e.OriginType, &e.PriceAgreed, &e.NotaryCost,
		&e.BankOrigin, &e.BankDestination, &e.OperationNumber,
		&e.VoucherRef, &e.ContractRef, &e.OriginDeclRef, &e.ProductID,
		&e.CreatedAt, &e.UpdatedAt,
	}
}
