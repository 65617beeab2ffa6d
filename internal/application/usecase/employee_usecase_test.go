package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"github.com/jhoicas/Tributo-api/internal/application/dto"
	"github.com/jhoicas/Tributo-api/internal/application/usecase"
	"github.com/jhoicas/Tributo-api/internal/domain"
	"github.com/jhoicas/Tributo-api/internal/domain/entity"
)

func setupEmployeeUC() (*usecase.EmployeeUseCase, *fakeEmployeeRepo, *fakeConfigRepo) {
	empRepo := newFakeEmployeeRepo()
	cfgRepo := newFakeConfigRepo(testTaxConfig())
	cfgRepo.roles["vendedor"] = &entity.RoleConfig{
		ID:   "role-1",
		Role: "vendedor",
		Permissions: map[string]entity.PermissionSet{
			"ventas": {Create: true, Read: true},
		},
	}
	return usecase.NewEmployeeUseCase(empRepo, cfgRepo), empRepo, cfgRepo
}

func TestEmployeeCreate_HasheaPasswordYNaceActivo(t *testing.T) {
	uc, empRepo, _ := setupEmployeeUC()

	resp, err := uc.Create(context.Background(), dto.CreateEmployeeRequest{
		FullName:   "Rosa Quispe Mamani",
		DocNumber:  "45678912",
		Password:   "clave-segura-1",
		BaseSalary: "1500.00",
		Role:       "vendedor",
	})
	require.NoError(t, err)

	assert.Equal(t, "active", resp.Status)
	stored := empRepo.byID[resp.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "clave-segura-1", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("clave-segura-1")))
}

func TestEmployeeCreate_RolInexistenteRechazado(t *testing.T) {
	uc, _, _ := setupEmployeeUC()

	_, err := uc.Create(context.Background(), dto.CreateEmployeeRequest{
		FullName:  "Rosa Quispe Mamani",
		DocNumber: "45678912",
		Password:  "clave-segura-1",
		Role:      "gerente",
	})
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestEmployeeCreate_DNIDuplicadoRechazado(t *testing.T) {
	uc, _, _ := setupEmployeeUC()

	req := dto.CreateEmployeeRequest{
		FullName:  "Rosa Quispe Mamani",
		DocNumber: "45678912",
		Password:  "clave-segura-1",
		Role:      "vendedor",
	}
	_, err := uc.Create(context.Background(), req)
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), req)
	require.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestEmployeeUpdate_DNIInmutableYSalarioValidado(t *testing.T) {
	uc, _, _ := setupEmployeeUC()

	created, err := uc.Create(context.Background(), dto.CreateEmployeeRequest{
		FullName:  "Rosa Quispe Mamani",
		DocNumber: "45678912",
		Password:  "clave-segura-1",
		Role:      "vendedor",
	})
	require.NoError(t, err)

	bad := "-100"
	_, err = uc.Update(context.Background(), created.ID, dto.UpdateEmployeeRequest{BaseSalary: &bad})
	require.ErrorIs(t, err, domain.ErrValidation)

	name := "Rosa Quispe de García"
	updated, err := uc.Update(context.Background(), created.ID, dto.UpdateEmployeeRequest{FullName: &name})
	require.NoError(t, err)
	assert.Equal(t, "45678912", updated.DocNumber)
	assert.Equal(t, name, updated.FullName)
}
