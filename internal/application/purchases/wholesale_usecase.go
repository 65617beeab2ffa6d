package purchases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/Tributo-api/internal/application/dto"
	"github.com/jhoicas/Tributo-api/internal/domain"
	"github.com/jhoicas/Tributo-api/internal/domain/entity"
	"github.com/jhoicas/Tributo-api/internal/domain/repository"
)

// WholesaleUseCase gestiona compras a proveedor con RUC. El único sustento
// exigido es la factura; al completarse, cada ítem se materializa como equipo
// directamente en el almacén RUC 20 y la factura entra al registro de compras
// como crédito fiscal de la empresa.
type WholesaleUseCase struct {
	txRunner      TxRunner
	wholesaleRepo repository.WholesaleRepository
	productRepo   repository.ProductRepository
	trxRepo       repository.TransactionRepository
	supplierRepo  repository.SupplierRepository
}

// NewWholesaleUseCase construye el caso de uso.
func NewWholesaleUseCase(
	txRunner TxRunner,
	wholesaleRepo repository.WholesaleRepository,
	productRepo repository.ProductRepository,
	trxRepo repository.TransactionRepository,
	supplierRepo repository.SupplierRepository,
) *WholesaleUseCase {
	return &WholesaleUseCase{
		txRunner:      txRunner,
		wholesaleRepo: wholesaleRepo,
		productRepo:   productRepo,
		trxRepo:       trxRepo,
		supplierRepo:  supplierRepo,
	}
}

// Register crea la compra mayorista en PENDIENTE_DOCS. La base es la suma de
// costos de los ítems; el IGV viene de la factura del proveedor.
func (uc *WholesaleUseCase) Register(ctx context.Context, in dto.RegisterWholesaleRequest) (*dto.WholesaleResponse, error) {
	date, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return nil, domain.NewValidationError("date")
	}
	if len(in.Items) == 0 {
		return nil, domain.NewValidationError("items")
	}
	if in.DocumentNumber == "" {
		return nil, domain.NewValidationError("document_number")
	}
	supplier, err := uc.supplierRepo.GetByID(ctx, in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.NewValidationError("supplier_id")
	}

	base := decimal.Zero
	items := make([]entity.WholesaleItem, 0, len(in.Items))
	for _, it := range in.Items {
		if it.Cost.IsNegative() {
			return nil, domain.NewValidationError("items: costo negativo")
		}
		existing, err := uc.productRepo.GetBySerial(ctx, it.Serial)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
		base = base.Add(it.Cost)
		items = append(items, entity.WholesaleItem{
			ID:       uuid.New().String(),
			Category: it.Category,
			Brand:    it.Brand,
			Model:    it.Model,
			Serial:   it.Serial,
			Specs:    it.Specs,
			Cost:     it.Cost,
		})
	}

	now := time.Now()
	entry := &entity.WholesalePurchaseEntry{
		ID:             uuid.New().String(),
		Date:           date,
		Status:         entity.StatusPendingDocs,
		SupplierID:     supplier.ID,
		SupplierName:   supplier.RazonSocial,
		SupplierRUC:    supplier.RUC,
		DocumentNumber: in.DocumentNumber,
		InvoiceRef:     in.InvoiceRef,
		Items:          items,
		BaseAmount:     base.Round(2),
		IgvAmount:      in.IgvAmount.Round(2),
		TotalAmount:    base.Add(in.IgvAmount).Round(2),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.wholesaleRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	// Con factura adjunta desde el inicio, se completa de inmediato.
	if entry.InvoiceRef != "" {
		return uc.complete(ctx, entry)
	}
	resp := toWholesaleResponse(entry)
	return &resp, nil
}

// AttachInvoice adjunta la factura del proveedor y completa la compra:
// equipos al almacén RUC 20 y comprobante de crédito fiscal, atómico.
func (uc *WholesaleUseCase) AttachInvoice(ctx context.Context, id, invoiceRef string) (*dto.WholesaleResponse, error) {
	if invoiceRef == "" {
		return nil, domain.NewValidationError("invoice_ref")
	}
	entry, err := uc.wholesaleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, domain.ErrNotFound
	}
	if entry.Status == entity.StatusCompleted {
		return nil, domain.NewPreconditionError("la compra ya está completada")
	}
	entry.InvoiceRef = invoiceRef
	entry.UpdatedAt = time.Now()
	if err := uc.wholesaleRepo.Update(ctx, entry); err != nil {
		return nil, err
	}
	return uc.complete(ctx, entry)
}

func (uc *WholesaleUseCase) complete(ctx context.Context, entry *entity.WholesalePurchaseEntry) (*dto.WholesaleResponse, error) {
	now := time.Now()
	products := make([]*entity.Product, 0, len(entry.Items))
	for _, it := range entry.Items {
		// El equipo nace en el almacén RUC 20 valorizado al costo: la factura
		// del proveedor hace de sustento de transferencia. El IGV se prorratea
		// por costo sobre el IGV total de la factura. Con los campos de
		// transferencia poblados, anular una venta posterior lo regresa al
		// almacén de la empresa y no al de la persona natural.
		itemIgv := decimal.Zero
		if entry.BaseAmount.IsPositive() {
			itemIgv = entry.IgvAmount.Mul(it.Cost).Div(entry.BaseAmount).Round(2)
		}
		transferDate := entry.Date
		products = append(products, &entity.Product{
			ID:                 uuid.New().String(),
			Category:           it.Category,
			Brand:              it.Brand,
			Model:              it.Model,
			SerialNumber:       it.Serial,
			Specs:              it.Specs,
			Condition:          "NUEVO",
			Origin:             entity.OriginMayoristaLocal,
			Status:             entity.StatusTransferredRuc20,
			PurchasePrice:      it.Cost,
			TotalCost:          it.Cost,
			TransferBase:       it.Cost,
			TransferIgv:        itemIgv,
			TransferTotal:      it.Cost.Add(itemIgv),
			TransferDocType:    entity.DocTypeFactura,
			TransferDocNumber:  entry.DocumentNumber,
			TransferVoucherRef: entry.InvoiceRef,
			TransferDate:       &transferDate,
			CreatedAt:          now,
			UpdatedAt:          now,
		})
	}

	trxItems := make([]entity.TransactionItem, 0, len(entry.Items))
	trxID := uuid.New().String()
	for i, it := range entry.Items {
		trxItems = append(trxItems, entity.TransactionItem{
			ID:            uuid.New().String(),
			TransactionID: trxID,
			ProductID:     products[i].ID,
			ProductName:   it.Brand + " " + it.Model,
			Quantity:      decimal.NewFromInt(1),
			UnitPriceBase: it.Cost,
			TotalBase:     it.Cost,
		})
	}
	trx := &entity.Transaction{
		ID:              trxID,
		TrxType:         entity.TrxTypePurchase,
		Date:            entry.Date,
		DocumentType:    entity.DocTypeFactura,
		DocumentNumber:  entry.DocumentNumber,
		EntityName:      entry.SupplierName,
		EntityDocNumber: entry.SupplierRUC,
		Items:           trxItems,
		BaseAmount:      entry.BaseAmount,
		IgvAmount:       entry.IgvAmount,
		TotalAmount:     entry.TotalAmount,
		SunatStatus:     entity.SunatAceptado,
		InvoiceRef:      entry.InvoiceRef,
		CreatedAt:       now,
	}

	err := uc.txRunner.Run(ctx, func(
		_ repository.PurchaseRepository,
		wholesaleRepo repository.WholesaleRepository,
		productRepo repository.ProductRepository,
		trxRepo repository.TransactionRepository,
	) error {
		for i, product := range products {
			if err := productRepo.Create(ctx, product); err != nil {
				return err
			}
			if err := wholesaleRepo.LinkItemProduct(ctx, entry.Items[i].ID, product.ID); err != nil {
				return err
			}
		}
		if err := trxRepo.Create(ctx, trx); err != nil {
			return err
		}
		return wholesaleRepo.Complete(ctx, entry.ID)
	})
	if err != nil {
		return nil, err
	}

	entry.Status = entity.StatusCompleted
	resp := toWholesaleResponse(entry)
	return &resp, nil
}

// GetByID devuelve la compra mayorista.
func (uc *WholesaleUseCase) GetByID(ctx context.Context, id string) (*dto.WholesaleResponse, error) {
	entry, err := uc.wholesaleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, domain.ErrNotFound
	}
	resp := toWholesaleResponse(entry)
	return &resp, nil
}

// List lista compras mayoristas con filtros.
func (uc *WholesaleUseCase) List(ctx context.Context, filter repository.WholesaleFilter) ([]dto.WholesaleResponse, error) {
	entries, err := uc.wholesaleRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.WholesaleResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toWholesaleResponse(e))
	}
	return out, nil
}

// Delete elimina la compra. Si algún equipo derivado ya fue VENDIDO, el
// borrado se bloquea; los equipos no vendidos se eliminan junto con el
// registro.
func (uc *WholesaleUseCase) Delete(ctx context.Context, id string) error {
	entry, err := uc.wholesaleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if entry == nil {
		return domain.ErrNotFound
	}
	if entry.Status == entity.StatusPendingDocs {
		return uc.wholesaleRepo.Delete(ctx, id)
	}

	productIDs, err := uc.wholesaleRepo.ListItemProductIDs(ctx, id)
	if err != nil {
		return err
	}
	for _, pid := range productIDs {
		product, err := uc.productRepo.GetByID(ctx, pid)
		if err != nil {
			return err
		}
		if product != nil && product.Status == entity.StatusSold {
			return domain.NewPreconditionError("un equipo de la compra ya fue vendido")
		}
	}
	return uc.txRunner.Run(ctx, func(
		_ repository.PurchaseRepository,
		wholesaleRepo repository.WholesaleRepository,
		productRepo repository.ProductRepository,
		_ repository.TransactionRepository,
	) error {
		for _, pid := range productIDs {
			if err := productRepo.Delete(ctx, pid); err != nil {
				return err
			}
		}
		return wholesaleRepo.Delete(ctx, id)
	})
}
