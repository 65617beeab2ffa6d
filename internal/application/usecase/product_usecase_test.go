package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Tributo-api/internal/application/dto"
	"github.com/jhoicas/Tributo-api/internal/application/usecase"
	"github.com/jhoicas/Tributo-api/internal/domain"
	"github.com/jhoicas/Tributo-api/internal/domain/entity"
)

func seedProduct(repo *fakeProductRepo, id, status string) *entity.Product {
	p := &entity.Product{
		ID:            id,
		Category:      "LAPTOP",
		Brand:         "Lenovo",
		Model:         "ThinkPad T14",
		SerialNumber:  "SN-" + id,
		Status:        status,
		PurchasePrice: decimal.NewFromInt(1500),
		NotaryCost:    decimal.NewFromInt(50),
	}
	repo.byID[id] = p
	return p
}

// ─────────────────────────────────────────────
// Edición descriptiva
// ─────────────────────────────────────────────

func TestProductUpdate_NoTocaEstadoNiSerie(t *testing.T) {
	repo := newFakeProductRepo()
	seedProduct(repo, "p1", entity.StatusTransferredRuc20)
	uc := usecase.NewProductUseCase(repo)

	brand := "HP"
	resp, err := uc.Update(context.Background(), "p1", dto.UpdateProductRequest{Brand: &brand})
	require.NoError(t, err)

	assert.Equal(t, "HP", resp.Brand)
	assert.Equal(t, "SN-p1", resp.SerialNumber, "la serie no se edita")
	assert.Equal(t, entity.StatusTransferredRuc20, resp.Status,
		"el estado solo lo mueven transferencias, ventas y anulaciones")
}

func TestProductUpdate_InexistenteRetornaNotFound(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	brand := "HP"
	_, err := uc.Update(context.Background(), "no-existe", dto.UpdateProductRequest{Brand: &brand})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ─────────────────────────────────────────────
// Resumen de stock
// ─────────────────────────────────────────────

func TestStockSummary_CuentaPorEstado(t *testing.T) {
	repo := newFakeProductRepo()
	seedProduct(repo, "p1", entity.StatusInStockRuc10)
	seedProduct(repo, "p2", entity.StatusInStockRuc10)
	seedProduct(repo, "p3", entity.StatusTransferredRuc20)
	seedProduct(repo, "p4", entity.StatusSold)
	uc := usecase.NewProductUseCase(repo)

	resp, err := uc.StockSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, resp.InStockRuc10)
	assert.Equal(t, 1, resp.TransferredRuc20)
	assert.Equal(t, 1, resp.Sold)
}
