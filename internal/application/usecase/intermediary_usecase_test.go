package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/jhoicas/Tributo-api/internal/application/dto"
	"github.com/jhoicas/Tributo-api/internal/application/usecase"
	"github.com/jhoicas/Tributo-api/internal/domain"
	"github.com/jhoicas/Tributo-api/internal/domain/entity"
)

func TestIntermediaryCreate_DNIDuplicadoRechazado(t *testing.T) {
	repo := newFakeIntermediaryRepo()
	uc := usecase.NewIntermediaryUseCase(repo, newFakeProductRepo())

	req := dto.CreateIntermediaryRequest{
		FullName:  "Juan Pérez Ccopa",
		DocNumber: "41223344",
		RucNumber: "10412233441",
	}
	created, err := uc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "41223344", created.DocNumber)

	_, err = uc.Create(context.Background(), req)
	require.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestIntermediaryDelete_BloqueadoConEquiposRegistrados(t *testing.T) {
	repo := newFakeIntermediaryRepo()
	productRepo := newFakeProductRepo()
	uc := usecase.NewIntermediaryUseCase(repo, productRepo)

	created, err := uc.Create(context.Background(), dto.CreateIntermediaryRequest{
		FullName:  "Juan Pérez Ccopa",
		DocNumber: "41223344",
	})
	require.NoError(t, err)

	productRepo.byID["prod-1"] = &entity.Product{
		ID:             "prod-1",
		SerialNumber:   "SN-001",
		Status:         entity.StatusInStockRuc10,
		IntermediaryID: created.ID,
	}

	err = uc.Delete(context.Background(), created.ID)
	require.ErrorIs(t, err, domain.ErrPrecondition)

	delete(productRepo.byID, "prod-1")
	require.NoError(t, uc.Delete(context.Background(), created.ID))

	_, err = uc.GetByID(context.Background(), created.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSupplierCreate_RUCDuplicadoEInmutable(t *testing.T) {
	repo := newFakeSupplierRepo()
	uc := usecase.NewSupplierUseCase(repo)

	created, err := uc.Create(context.Background(), dto.CreateSupplierRequest{
		RUC:         "20512345678",
		RazonSocial: "Distribuidora Andina SAC",
		Category:    "MAYORISTA",
	})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), dto.CreateSupplierRequest{
		RUC:         "20512345678",
		RazonSocial: "Otra Razón SAC",
	})
	require.ErrorIs(t, err, domain.ErrDuplicate)

	name := "Distribuidora Andina S.A.C."
	updated, err := uc.Update(context.Background(), created.ID, dto.UpdateSupplierRequest{
		RazonSocial: &name,
	})
	require.NoError(t, err)
	assert.Equal(t, "20512345678", updated.RUC)
	assert.Equal(t, name, updated.RazonSocial)
}
