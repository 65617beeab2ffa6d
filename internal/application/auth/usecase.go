package auth

import (
	"context"

	"github.com/jhoicas/Tributo-api/internal/application/dto"
	"github.com/jhoicas/Tributo-api/internal/domain"
	"github.com/jhoicas/Tributo-api/internal/domain/entity"
	"github.com/jhoicas/Tributo-api/internal/domain/repository"
	"github.com/jhoicas/Tributo-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase caso de uso de autenticación. El login es por número de
// documento (DNI), no por email: los trabajadores se identifican como en
// planilla.
type AuthUseCase struct {
	employeeRepo repository.EmployeeRepository
	configRepo   repository.ConfigRepository
	jwtCfg       JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(employeeRepo repository.EmployeeRepository, configRepo repository.ConfigRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{employeeRepo: employeeRepo, configRepo: configRepo, jwtCfg: jwtCfg}
}

// Login verifica DNI/password, genera JWT y devuelve token, usuario y la
// matriz de permisos de su rol para que el cliente arme su UI sin otra
// consulta.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	emp, err := uc.employeeRepo.GetByDocNumber(ctx, in.DocNumber)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if emp.Status != "active" {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, emp.ID, emp.DocNumber, emp.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}

	perms := map[string]dto.PermissionDTO{}
	role, err := uc.configRepo.GetRole(ctx, emp.Role)
	if err != nil {
		return nil, err
	}
	if role != nil {
		for module, p := range role.Permissions {
			perms[module] = dto.PermissionDTO{Create: p.Create, Read: p.Read, Update: p.Update, Delete: p.Delete}
		}
	}

	return &dto.LoginResponse{
		Token:       token,
		User:        toEmployeeResponse(emp),
		Permissions: perms,
	}, nil
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
