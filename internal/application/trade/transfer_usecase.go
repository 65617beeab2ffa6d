package trade

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/Tributo-api/internal/application/dto"
	"github.com/jhoicas/Tributo-api/internal/domain"
	"github.com/jhoicas/Tributo-api/internal/domain/entity"
	"github.com/jhoicas/Tributo-api/internal/domain/pricing"
	"github.com/jhoicas/Tributo-api/internal/domain/repository"
)

// TransferUseCase ejecuta la venta interna RUC 10 → RUC 20: un solo hecho
// económico que produce DOS comprobantes (la venta del emisor y la compra de
// la empresa) compartiendo EventID, escritos en una sola transacción de BD.
type TransferUseCase struct {
	txRunner         TxRunner
	productRepo      repository.ProductRepository
	trxRepo          repository.TransactionRepository
	intermediaryRepo repository.IntermediaryRepository
	configRepo       repository.ConfigRepository
}

// NewTransferUseCase construye el caso de uso.
func NewTransferUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	trxRepo repository.TransactionRepository,
	intermediaryRepo repository.IntermediaryRepository,
	configRepo repository.ConfigRepository,
) *TransferUseCase {
	return &TransferUseCase{
		txRunner:         txRunner,
		productRepo:      productRepo,
		trxRepo:          trxRepo,
		intermediaryRepo: intermediaryRepo,
		configRepo:       configRepo,
	}
}

// Quote calcula el precio de transferencia de un equipo sin persistir nada.
func (uc *TransferUseCase) Quote(ctx context.Context, productID string) (*dto.PriceQuoteResponse, error) {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	cfg, err := uc.configRepo.GetTaxConfig(ctx)
	if err != nil {
		return nil, err
	}
	price, err := pricing.TransferPrice(product.TotalCost, cfg.Ruc10TransferMargin, cfg.RentaRate, cfg.IgvRate, cfg.IsIgvExempt)
	if err != nil {
		return nil, err
	}
	return &dto.PriceQuoteResponse{Base: price.Base, Igv: price.Igv, Total: price.Total}, nil
}

// Transfer ejecuta la venta interna de un equipo. Precondiciones: el equipo
// está EN_STOCK_RUC10, el emisor existe y es el propietario, el número de
// comprobante no se repite y el voucher de pago viene en la petición: sin
// voucher la transición no ocurre.
func (uc *TransferUseCase) Transfer(ctx context.Context, in dto.TransferRequest) (*dto.TransferResponse, error) {
	date, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return nil, domain.NewValidationError("date")
	}
	if in.DocumentType != entity.DocTypeFactura && in.DocumentType != entity.DocTypeBoleta {
		return nil, domain.NewValidationError("document_type")
	}
	if in.DocumentNumber == "" {
		return nil, domain.NewValidationError("document_number")
	}
	if in.VoucherRef == "" {
		return nil, domain.NewValidationError("voucher_ref")
	}

	product, err := uc.productRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if !product.Transferable() {
		return nil, domain.NewPreconditionError("el equipo no está en el almacén RUC 10")
	}

	emitter, err := uc.intermediaryRepo.GetByID(ctx, in.IntermediaryID)
	if err != nil {
		return nil, err
	}
	if emitter == nil {
		return nil, domain.NewValidationError("intermediary_id")
	}
	if product.IntermediaryID != "" && product.IntermediaryID != emitter.ID {
		return nil, domain.NewPreconditionError("el equipo pertenece a otro emisor")
	}

	exists, err := uc.trxRepo.ExistsDocNumber(ctx, in.DocumentType, in.DocumentNumber)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDocNumberExists
	}

	cfg, err := uc.configRepo.GetTaxConfig(ctx)
	if err != nil {
		return nil, err
	}
	price, err := pricing.TransferPrice(product.TotalCost, cfg.Ruc10TransferMargin, cfg.RentaRate, cfg.IgvRate, cfg.IsIgvExempt)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	eventID := uuid.New().String()

	item := entity.TransactionItem{
		ID:            uuid.New().String(),
		ProductID:     product.ID,
		ProductName:   product.Brand + " " + product.Model,
		Quantity:      decimal.NewFromInt(1),
		UnitPriceBase: price.Base,
		TotalBase:     price.Base,
	}

	// Lado venta: libro del emisor RUC 10, contraparte la empresa.
	saleSide := &entity.Transaction{
		ID:              uuid.New().String(),
		EventID:         eventID,
		TrxType:         entity.TrxTypeTransfer,
		Date:            date,
		DocumentType:    in.DocumentType,
		DocumentNumber:  in.DocumentNumber,
		EntityName:      cfg.CompanyName,
		EntityDocNumber: cfg.CompanyRUC,
		Items:           []entity.TransactionItem{item},
		BaseAmount:      price.Base,
		IgvAmount:       price.Igv,
		TotalAmount:     price.Total,
		IsIgvExempt:     cfg.IsIgvExempt,
		ExemptionReason: cfg.IgvExemptionReason,
		SunatStatus:     entity.SunatAceptado,
		VoucherRef:      in.VoucherRef,
		CreatedAt:       now,
	}
	// Lado compra: libro de la empresa RUC 20, contraparte el emisor. Mismos
	// montos, mismo comprobante: es crédito fiscal de la empresa.
	purchaseItem := item
	purchaseItem.ID = uuid.New().String()
	purchaseSide := &entity.Transaction{
		ID:              uuid.New().String(),
		EventID:         eventID,
		TrxType:         entity.TrxTypePurchase,
		Date:            date,
		DocumentType:    in.DocumentType,
		DocumentNumber:  in.DocumentNumber,
		EntityName:      emitter.FullName,
		EntityDocNumber: emitter.RucNumber,
		Items:           []entity.TransactionItem{purchaseItem},
		BaseAmount:      price.Base,
		IgvAmount:       price.Igv,
		TotalAmount:     price.Total,
		IsIgvExempt:     cfg.IsIgvExempt,
		ExemptionReason: cfg.IgvExemptionReason,
		SunatStatus:     entity.SunatAceptado,
		VoucherRef:      in.VoucherRef,
		CreatedAt:       now,
	}

	product.Status = entity.StatusTransferredRuc20
	product.TransferBase = price.Base
	product.TransferIgv = price.Igv
	product.TransferTotal = price.Total
	product.TransferDocType = in.DocumentType
	product.TransferDocNumber = in.DocumentNumber
	product.TransferVoucherRef = in.VoucherRef
	product.TransferDate = &date
	product.UpdatedAt = now

	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		trxRepo repository.TransactionRepository,
	) error {
		// UPDATE condicional: si otro proceso transfirió o vendió el equipo
		// entre la lectura y aquí, falla con precondición, no con sobrescritura.
		if err := productRepo.SetTransfer(ctx, product, entity.StatusInStockRuc10); err != nil {
			return err
		}
		if err := trxRepo.Create(ctx, saleSide); err != nil {
			return err
		}
		return trxRepo.Create(ctx, purchaseSide)
	})
	if err != nil {
		return nil, err
	}

	return &dto.TransferResponse{
		EventID:      eventID,
		Product:      toProductResponse(product),
		SaleSide:     toTransactionResponse(saleSide),
		PurchaseSide: toTransactionResponse(purchaseSide),
	}, nil
}

// AttachVoucher reintenta la carga del voucher bancario sobre ambos lados de
// una venta interna ya emitida, por ejemplo cuando la subida del archivo al
// almacén falló después de crear el par. Reemplaza la referencia y deja ambos
// comprobantes ACEPTADO; el par nunca se re-crea.
func (uc *TransferUseCase) AttachVoucher(ctx context.Context, eventID, voucherRef string) error {
	if voucherRef == "" {
		return domain.NewValidationError("voucher_ref")
	}
	pair, err := uc.trxRepo.GetByEventID(ctx, eventID)
	if err != nil {
		return err
	}
	if len(pair) == 0 {
		return domain.ErrNotFound
	}
	return uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		trxRepo repository.TransactionRepository,
	) error {
		for _, trx := range pair {
			if trx.Voided() {
				return domain.NewPreconditionError("la venta interna está anulada")
			}
			if err := trxRepo.UpdateDocumentRefs(ctx, trx.ID, voucherRef, trx.InvoiceRef); err != nil {
				return err
			}
			if err := trxRepo.UpdateSunatStatus(ctx, trx.ID, entity.SunatAceptado); err != nil {
				return err
			}
		}
		return nil
	})
}

// VoidTransfer anula la venta interna: ambos comprobantes pasan a ANULADO y
// el equipo vuelve al almacén RUC 10 con los campos de transferencia limpios.
// Si el equipo ya fue vendido al cliente final, la anulación se rechaza.
func (uc *TransferUseCase) VoidTransfer(ctx context.Context, eventID string) error {
	pair, err := uc.trxRepo.GetByEventID(ctx, eventID)
	if err != nil {
		return err
	}
	if len(pair) == 0 {
		return domain.ErrNotFound
	}
	var productID string
	for _, trx := range pair {
		if trx.Voided() {
			return domain.NewPreconditionError("la venta interna ya está anulada")
		}
		if len(trx.Items) > 0 {
			productID = trx.Items[0].ProductID
		}
	}
	if productID == "" {
		return domain.ErrConflict
	}
	return uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		trxRepo repository.TransactionRepository,
	) error {
		// Condicional sobre TRANSFERRED_RUC20: un equipo ya VENDIDO bloquea
		// la anulación de su transferencia.
		if err := productRepo.ClearTransfer(ctx, productID, entity.StatusTransferredRuc20); err != nil {
			return err
		}
		for _, trx := range pair {
			if err := trxRepo.UpdateSunatStatus(ctx, trx.ID, entity.SunatAnulado); err != nil {
				return err
			}
		}
		return nil
	})
}
