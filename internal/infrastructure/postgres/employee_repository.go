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

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

const employeeColumns = `
	id, full_name, doc_number, password_hash, phone, email, address,
	base_salary, role, job_title, status, created_at, updated_at`

// EmployeeRepo implementación del puerto EmployeeRepository sobre PostgreSQL.
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el adaptador de trabajadores. Pasar pool o tx (Querier).
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

// Create persiste un nuevo trabajador.
func (r *EmployeeRepo) Create(ctx context.Context, emp *entity.Employee) error {
	query := `
		INSERT INTO employees (` + employeeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		emp.ID, emp.FullName, emp.DocNumber, emp.PasswordHash, emp.Phone, emp.Email, emp.Address,
		emp.BaseSalary, emp.Role, emp.JobTitle, emp.Status, emp.CreatedAt, emp.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// GetByID obtiene un trabajador por ID.
func (r *EmployeeRepo) GetByID(ctx context.Context, id string) (*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`
	return r.scanOne(ctx, query, id)
}

// GetByDocNumber obtiene un trabajador por DNI (login).
func (r *EmployeeRepo) GetByDocNumber(ctx context.Context, docNumber string) (*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE doc_number = $1`
	return r.scanOne(ctx, query, docNumber)
}

// Update actualiza un trabajador.
func (r *EmployeeRepo) Update(ctx context.Context, emp *entity.Employee) error {
	query := `
		UPDATE employees
		SET full_name = $2, password_hash = $3, phone = $4, email = $5, address = $6,
		    base_salary = $7, role = $8, job_title = $9, status = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		emp.ID, emp.FullName, emp.PasswordHash, emp.Phone, emp.Email, emp.Address,
		emp.BaseSalary, emp.Role, emp.JobTitle, emp.Status, emp.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	return nil
}

// List lista trabajadores con paginación.
func (r *EmployeeRepo) List(ctx context.Context, limit, offset int) ([]*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY full_name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	var list []*entity.Employee
	for rows.Next() {
		var e entity.Employee
		if err := rows.Scan(&e.ID, &e.FullName, &e.DocNumber, &e.PasswordHash, &e.Phone, &e.Email, &e.Address,
			&e.BaseSalary, &e.Role, &e.JobTitle, &e.Status, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Delete elimina un trabajador por ID.
func (r *EmployeeRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	return nil
}

func (r *EmployeeRepo) scanOne(ctx context.Context, query string, arg any) (*entity.Employee, error) {
	var e entity.Employee
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&e.ID, &e.FullName, &e.DocNumber, &e.PasswordHash, &e.Phone, &e.Email, &e.Address,
		&e.BaseSalary, &e.Role, &e.JobTitle, &e.Status, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return &e, nil
}
