package repository

import (
	"context"

	"github.com/jhoicas/Tributo-api/internal/domain/entity"
)

// EmployeeRepository define el puerto de persistencia para trabajadores.
// El login es por número de documento, no por email.
type EmployeeRepository interface {
	Create(ctx context.Context, emp *entity.Employee) error
	GetByID(ctx context.Context, id string) (*entity.Employee, error)
	GetByDocNumber(ctx context.Context, docNumber string) (*entity.Employee, error)
	Update(ctx context.Context, emp *entity.Employee) error
	List(ctx context.Context, limit, offset int) ([]*entity.Employee, error)
	Delete(ctx context.Context, id string) error
}
