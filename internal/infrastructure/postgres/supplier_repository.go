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

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

const supplierColumns = `
	id, ruc, razon_social, contact_name, phone, email, address,
	department, province, district, category, created_at, updated_at`

// SupplierRepo implementación del puerto SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador de proveedores. Pasar pool o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// Create persiste un nuevo proveedor.
func (r *SupplierRepo) Create(ctx context.Context, s *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (` + supplierColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.RUC, s.RazonSocial, s.ContactName, s.Phone, s.Email, s.Address,
		s.Department, s.Province, s.District, s.Category, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID.
func (r *SupplierRepo) GetByID(ctx context.Context, id string) (*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE id = $1`
	return r.scanOne(ctx, query, id)
}

// GetByRUC obtiene un proveedor por RUC.
func (r *SupplierRepo) GetByRUC(ctx context.Context, ruc string) (*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE ruc = $1`
	return r.scanOne(ctx, query, ruc)
}

// Update actualiza un proveedor. El RUC no se cambia.
func (r *SupplierRepo) Update(ctx context.Context, s *entity.Supplier) error {
	query := `
		UPDATE suppliers
		SET razon_social = $2, contact_name = $3, phone = $4, email = $5, address = $6,
		    department = $7, province = $8, district = $9, category = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.RazonSocial, s.ContactName, s.Phone, s.Email, s.Address,
		s.Department, s.Province, s.District, s.Category, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update supplier: %w", err)
	}
	return nil
}

// List lista proveedores con paginación.
func (r *SupplierRepo) List(ctx context.Context, limit, offset int) ([]*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers ORDER BY razon_social LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.RUC, &s.RazonSocial, &s.ContactName, &s.Phone, &s.Email, &s.Address,
			&s.Department, &s.Province, &s.District, &s.Category, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Delete elimina un proveedor por ID.
func (r *SupplierRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete supplier: %w", err)
	}
	return nil
}

func (r *SupplierRepo) scanOne(ctx context.Context, query string, arg any) (*entity.Supplier, error) {
	var s entity.Supplier
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&s.ID, &s.RUC, &s.RazonSocial, &s.ContactName, &s.Phone, &s.Email, &s.Address,
		&s.Department, &s.Province, &s.District, &s.Category, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}
