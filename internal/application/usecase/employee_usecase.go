package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/Tributo-api/internal/application/dto"
	"github.com/jhoicas/Tributo-api/internal/domain"
	"github.com/jhoicas/Tributo-api/internal/domain/entity"
	"github.com/jhoicas/Tributo-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// EmployeeUseCase CRUD de trabajadores. El DNI es único: es el identificador
// de login.
type EmployeeUseCase struct {
	repo       repository.EmployeeRepository
	configRepo repository.ConfigRepository
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository, configRepo repository.ConfigRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo, configRepo: configRepo}
}

// Create crea un trabajador: hashea password con bcrypt y valida que el rol
// exista en la matriz de permisos.
func (uc *EmployeeUseCase) Create(ctx context.Context, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	existing, err := uc.repo.GetByDocNumber(ctx, in.DocNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	role, err := uc.configRepo.GetRole(ctx, in.Role)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.NewValidationError("role")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	salary := decimal.Zero
	if in.BaseSalary != "" {
		salary, err = decimal.NewFromString(in.BaseSalary)
		if err != nil || salary.IsNegative() {
			return nil, domain.NewValidationError("base_salary")
		}
	}
	now := time.Now()
	emp := &entity.Employee{
		ID:           uuid.New().String(),
		FullName:     in.FullName,
		DocNumber:    in.DocNumber,
		PasswordHash: string(hash),
		Phone:        in.Phone,
		Email:        in.Email,
		Address:      in.Address,
		BaseSalary:   salary,
		Role:         in.Role,
		JobTitle:     in.JobTitle,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, emp); err != nil {
		return nil, err
	}
	resp := toEmployeeResponse(emp)
	return &resp, nil
}

// GetByID obtiene un trabajador.
func (uc *EmployeeUseCase) GetByID(ctx context.Context, id string) (*dto.EmployeeResponse, error) {
	emp, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrNotFound
	}
	resp := toEmployeeResponse(emp)
	return &resp, nil
}

// List lista trabajadores.
func (uc *EmployeeUseCase) List(ctx context.Context, page dto.PageRequest) ([]dto.EmployeeResponse, error) {
	page.DefaultPage()
	emps, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmployeeResponse, 0, len(emps))
	for _, e := range emps {
		out = append(out, toEmployeeResponse(e))
	}
	return out, nil
}

// Update actualiza un trabajador. El DNI no se cambia.
func (uc *EmployeeUseCase) Update(ctx context.Context, id string, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	emp, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrNotFound
	}
	if in.FullName != nil {
		emp.FullName = *in.FullName
	}
	if in.Phone != nil {
		emp.Phone = *in.Phone
	}
	if in.Email != nil {
		emp.Email = *in.Email
	}
	if in.Address != nil {
		emp.Address = *in.Address
	}
	if in.BaseSalary != nil {
		salary, err := decimal.NewFromString(*in.BaseSalary)
		if err != nil || salary.IsNegative() {
			return nil, domain.NewValidationError("base_salary")
		}
		emp.BaseSalary = salary
	}
	if in.Role != nil {
		role, err := uc.configRepo.GetRole(ctx, *in.Role)
		if err != nil {
			return nil, err
		}
		if role == nil {
			return nil, domain.NewValidationError("role")
		}
		emp.Role = *in.Role
	}
	if in.JobTitle != nil {
		emp.JobTitle = *in.JobTitle
	}
	if in.Status != nil {
		emp.Status = *in.Status
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		emp.PasswordHash = string(hash)
	}
	emp.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, emp); err != nil {
		return nil, err
	}
	resp := toEmployeeResponse(emp)
	return &resp, nil
}

// Delete elimina un trabajador.
func (uc *EmployeeUseCase) Delete(ctx context.Context, id string) error {
	emp, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if emp == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toEmployeeResponse(e *entity.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		ID:        e.ID,
		FullName:  e.FullName,
		DocNumber: e.DocNumber,
		Phone:     e.Phone,
		Email:     e.Email,
		Role:      e.Role,
		JobTitle:  e.JobTitle,
		Status:    e.Status,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
