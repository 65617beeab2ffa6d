package purchases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Tributo-api/internal/application/dto"
	"github.com/jhoicas/Tributo-api/internal/domain"
	"github.com/jhoicas/Tributo-api/internal/domain/entity"
	"github.com/jhoicas/Tributo-api/internal/domain/repository"
)

// Ruc10UseCase gestiona compras a persona natural. El registro nace
// PENDIENTE_DOCS y solo al reunir el trío de sustentos (voucher bancario,
// contrato legalizado y declaración jurada de origen) se completa creando el
// equipo en el almacén RUC 10. Un registro pendiente no afecta stock ni
// agregación tributaria.
type Ruc10UseCase struct {
	txRunner         TxRunner
	purchaseRepo     repository.PurchaseRepository
	productRepo      repository.ProductRepository
	intermediaryRepo repository.IntermediaryRepository
}

// NewRuc10UseCase construye el caso de uso.
func NewRuc10UseCase(
	txRunner TxRunner,
	purchaseRepo repository.PurchaseRepository,
	productRepo repository.ProductRepository,
	intermediaryRepo repository.IntermediaryRepository,
) *Ruc10UseCase {
	return &Ruc10UseCase{
		txRunner:         txRunner,
		purchaseRepo:     purchaseRepo,
		productRepo:      productRepo,
		intermediaryRepo: intermediaryRepo,
	}
}

// Register crea el registro de compra en PENDIENTE_DOCS. Los sustentos se
// adjuntan después con AttachDocs; el equipo todavía no existe.
func (uc *Ruc10UseCase) Register(ctx context.Context, in dto.RegisterPurchaseRequest) (*dto.PurchaseResponse, error) {
	date, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return nil, domain.NewValidationError("date")
	}
	if in.PriceAgreed.IsNegative() || in.NotaryCost.IsNegative() {
		return nil, domain.NewValidationError("price_agreed")
	}
	emitter, err := uc.intermediaryRepo.GetByID(ctx, in.IntermediaryID)
	if err != nil {
		return nil, err
	}
	if emitter == nil {
		return nil, domain.NewValidationError("intermediary_id")
	}
	existing, err := uc.productRepo.GetBySerial(ctx, in.ProductSerial)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	entry := &entity.PurchaseEntry{
		ID:              uuid.New().String(),
		Date:            date,
		Status:          entity.StatusPendingDocs,
		IntermediaryID:  in.IntermediaryID,
		ProviderDNI:     in.ProviderDNI,
		ProviderName:    in.ProviderName,
		ProviderAddr:    in.ProviderAddr,
		CivilStatus:     in.CivilStatus,
		Occupation:      in.Occupation,
		ProductCategory: in.ProductCategory,
		ProductBrand:    in.ProductBrand,
		ProductModel:    in.ProductModel,
		ProductSerial:   in.ProductSerial,
		ProductColor:    in.ProductColor,
		Condition:       in.Condition,
		OriginType:      in.OriginType,
		PriceAgreed:     in.PriceAgreed,
		NotaryCost:      in.NotaryCost,
		BankOrigin:      in.BankOrigin,
		BankDestination: in.BankDestination,
		OperationNumber: in.OperationNumber,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.purchaseRepo.Create(ctx, entry); err != nil {
		return nil, err
	}
	resp := toPurchaseResponse(entry)
	return &resp, nil
}

// AttachDocs adjunta sustentos (solo los campos no vacíos; re-adjuntar es
// idempotente). Cuando el trío queda completo, el registro se completa en la
// misma operación: se crea el equipo EN_STOCK_RUC10 y se vincula.
func (uc *Ruc10UseCase) AttachDocs(ctx context.Context, id string, in dto.AttachPurchaseDocsRequest) (*dto.PurchaseResponse, error) {
	entry, err := uc.purchaseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, domain.ErrNotFound
	}
	if entry.Status == entity.StatusCompleted {
		return nil, domain.NewPreconditionError("la compra ya está completada")
	}

	if in.VoucherRef != "" {
		entry.VoucherRef = in.VoucherRef
	}
	if in.ContractRef != "" {
		entry.ContractRef = in.ContractRef
	}
	if in.OriginDeclRef != "" {
		entry.OriginDeclRef = in.OriginDeclRef
	}
	entry.UpdatedAt = time.Now()

	if !entry.DocsComplete() {
		if err := uc.purchaseRepo.Update(ctx, entry); err != nil {
			return nil, err
		}
		resp := toPurchaseResponse(entry)
		return &resp, nil
	}

	// Trío completo: crear el equipo y completar el registro, atómico. El
	// Complete condicional rechaza el doble completado concurrente.
	now := time.Now()
	product := &entity.Product{
		ID:             uuid.New().String(),
		Category:       entry.ProductCategory,
		Brand:          entry.ProductBrand,
		Model:          entry.ProductModel,
		SerialNumber:   entry.ProductSerial,
		Color:          entry.ProductColor,
		Condition:      entry.Condition,
		Origin:         entry.OriginType,
		IntermediaryID: entry.IntermediaryID,
		Status:         entity.StatusInStockRuc10,
		PurchasePrice:  entry.PriceAgreed,
		NotaryCost:     entry.NotaryCost,
		TotalCost:      entry.PriceAgreed.Add(entry.NotaryCost),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	err = uc.txRunner.Run(ctx, func(
		purchaseRepo repository.PurchaseRepository,
		_ repository.WholesaleRepository,
		productRepo repository.ProductRepository,
		_ repository.TransactionRepository,
	) error {
		if err := purchaseRepo.Update(ctx, entry); err != nil {
			return err
		}
		if err := productRepo.Create(ctx, product); err != nil {
			return err
		}
		return purchaseRepo.Complete(ctx, entry.ID, product.ID)
	})
	if err != nil {
		return nil, err
	}

	entry.Status = entity.StatusCompleted
	entry.ProductID = product.ID
	resp := toPurchaseResponse(entry)
	return &resp, nil
}

// GetByID devuelve la compra con su lista de sustentos faltantes.
func (uc *Ruc10UseCase) GetByID(ctx context.Context, id string) (*dto.PurchaseResponse, error) {
	entry, err := uc.purchaseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, domain.ErrNotFound
	}
	resp := toPurchaseResponse(entry)
	return &resp, nil
}

// List lista compras con filtros.
func (uc *Ruc10UseCase) List(ctx context.Context, filter repository.PurchaseFilter) ([]dto.PurchaseResponse, error) {
	entries, err := uc.purchaseRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PurchaseResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toPurchaseResponse(e))
	}
	return out, nil
}

// Delete elimina una compra. Pendiente: se borra sin más. Completada: solo si
// el equipo creado sigue EN_STOCK_RUC10; un equipo ya transferido o vendido
// tiene comprobantes aguas abajo y bloquea el borrado.
func (uc *Ruc10UseCase) Delete(ctx context.Context, id string) error {
	entry, err := uc.purchaseRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if entry == nil {
		return domain.ErrNotFound
	}
	if entry.Status == entity.StatusPendingDocs {
		return uc.purchaseRepo.Delete(ctx, id)
	}

	product, err := uc.productRepo.GetByID(ctx, entry.ProductID)
	if err != nil {
		return err
	}
	if product != nil && product.Status != entity.StatusInStockRuc10 {
		return domain.NewPreconditionError("el equipo ya fue transferido o vendido")
	}
	return uc.txRunner.Run(ctx, func(
		purchaseRepo repository.PurchaseRepository,
		_ repository.WholesaleRepository,
		productRepo repository.ProductRepository,
		_ repository.TransactionRepository,
	) error {
		if product != nil {
			if err := productRepo.Delete(ctx, product.ID); err != nil {
				return err
			}
		}
		return purchaseRepo.Delete(ctx, id)
	})
}
