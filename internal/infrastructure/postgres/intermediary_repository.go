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

var _ repository.IntermediaryRepository = (*IntermediaryRepo)(nil)

const intermediaryColumns = `
	id, full_name, doc_number, ruc_number, phone, email, address, created_at, updated_at`

// IntermediaryRepo implementación del puerto IntermediaryRepository sobre PostgreSQL.
type IntermediaryRepo struct {
	q Querier
}

// NewIntermediaryRepository construye el adaptador de emisores RUC 10. Pasar pool o tx (Querier).
func NewIntermediaryRepository(q Querier) *IntermediaryRepo {
	return &IntermediaryRepo{q: q}
}

// Create persiste un nuevo emisor.
func (r *IntermediaryRepo) Create(ctx context.Context, inter *entity.Intermediary) error {
	query := `
		INSERT INTO intermediaries (` + intermediaryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		inter.ID, inter.FullName, inter.DocNumber, inter.RucNumber,
		inter.Phone, inter.Email, inter.Address, inter.CreatedAt, inter.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert intermediary: %w", err)
	}
	return nil
}

// GetByID obtiene un emisor por ID.
func (r *IntermediaryRepo) GetByID(ctx context.Context, id string) (*entity.Intermediary, error) {
	query := `SELECT ` + intermediaryColumns + ` FROM intermediaries WHERE id = $1`
	return r.scanOne(ctx, query, id)
}

// GetByDocNumber obtiene un emisor por DNI.
func (r *IntermediaryRepo) GetByDocNumber(ctx context.Context, docNumber string) (*entity.Intermediary, error) {
	query := `SELECT ` + intermediaryColumns + ` FROM intermediaries WHERE doc_number = $1`
	return r.scanOne(ctx, query, docNumber)
}

// Update actualiza un emisor.
func (r *IntermediaryRepo) Update(ctx context.Context, inter *entity.Intermediary) error {
	query := `
		UPDATE intermediaries
		SET full_name = $2, ruc_number = $3, phone = $4, email = $5, address = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		inter.ID, inter.FullName, inter.RucNumber, inter.Phone, inter.Email, inter.Address, inter.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update intermediary: %w", err)
	}
	return nil
}

// List lista emisores con paginación.
func (r *IntermediaryRepo) List(ctx context.Context, limit, offset int) ([]*entity.Intermediary, error) {
	query := `SELECT ` + intermediaryColumns + ` FROM intermediaries ORDER BY full_name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list intermediaries: %w", err)
	}
	defer rows.Close()
	var list []*entity.Intermediary
	for rows.Next() {
		var i entity.Intermediary
		if err := rows.Scan(&i.ID, &i.FullName, &i.DocNumber, &i.RucNumber,
			&i.Phone, &i.Email, &i.Address, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan intermediary: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}

// Delete elimina un emisor por ID.
func (r *IntermediaryRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM intermediaries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete intermediary: %w", err)
	}
	return nil
}

func (r *IntermediaryRepo) scanOne(ctx context.Context, query string, arg any) (*entity.Intermediary, error) {
	var i entity.Intermediary
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&i.ID, &i.FullName, &i.DocNumber, &i.RucNumber,
		&i.Phone, &i.Email, &i.Address, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get intermediary: %w", err)
	}
	return &i, nil
}
