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

// SaleUseCase procesa ventas a cliente final desde el almacén RUC 20. Cada
// línea del carrito se valora por separado (total redondeado a 2 decimales) y
// el comprobante deriva subtotal e IGV desde el total, nunca al revés: el
// cliente paga exactamente la suma de las líneas exhibidas.
type SaleUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	trxRepo     repository.TransactionRepository
	configRepo  repository.ConfigRepository
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	trxRepo repository.TransactionRepository,
	configRepo repository.ConfigRepository,
) *SaleUseCase {
	return &SaleUseCase{
		txRunner:    txRunner,
		productRepo: productRepo,
		trxRepo:     trxRepo,
		configRepo:  configRepo,
	}
}

// Quote calcula el precio de venta final de un equipo sin persistir nada.
func (uc *SaleUseCase) Quote(ctx context.Context, productID string) (*dto.PriceQuoteResponse, error) {
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
	total, err := pricing.SalePriceTotal(product.NetCost(), cfg.Ruc20SaleMargin, cfg.RentaRate, cfg.IgvRate, cfg.IsIgvExempt)
	if err != nil {
		return nil, err
	}
	cart := pricing.AggregateCart([]decimal.Decimal{total}, cfg.IgvRate, cfg.IsIgvExempt)
	return &dto.PriceQuoteResponse{Base: cart.Subtotal, Igv: cart.Igv, Total: cart.Total}, nil
}

// ProcessSale vende uno o más equipos en un solo comprobante. Precondiciones:
// cada equipo está TRANSFERIDO al RUC 20, sin repetidos en el carrito, y el
// número de comprobante no existe. El cambio de estado de TODOS los equipos y
// la escritura del comprobante son atómicos.
func (uc *SaleUseCase) ProcessSale(ctx context.Context, in dto.SaleRequest) (*dto.TransactionResponse, error) {
	date, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return nil, domain.NewValidationError("date")
	}
	if len(in.Lines) == 0 {
		return nil, domain.NewValidationError("lines")
	}
	if in.DocumentType != entity.DocTypeFactura && in.DocumentType != entity.DocTypeBoleta {
		return nil, domain.NewValidationError("document_type")
	}
	if in.CustomerName == "" || in.CustomerDoc == "" {
		return nil, domain.NewValidationError("customer")
	}

	seen := make(map[string]bool, len(in.Lines))
	products := make([]*entity.Product, 0, len(in.Lines))
	for _, line := range in.Lines {
		if seen[line.ProductID] {
			return nil, domain.NewValidationError("lines: producto repetido")
		}
		seen[line.ProductID] = true
		product, err := uc.productRepo.GetByID(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		if !product.Sellable() {
			return nil, domain.NewPreconditionError("el equipo " + product.SerialNumber + " no está disponible para venta")
		}
		products = append(products, product)
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

	lineTotals := make([]decimal.Decimal, 0, len(products))
	items := make([]entity.TransactionItem, 0, len(products))
	now := time.Now()
	trxID := uuid.New().String()
	for _, product := range products {
		total, err := pricing.SalePriceTotal(product.NetCost(), cfg.Ruc20SaleMargin, cfg.RentaRate, cfg.IgvRate, cfg.IsIgvExempt)
		if err != nil {
			return nil, err
		}
		lineTotals = append(lineTotals, total)
		line := pricing.AggregateCart([]decimal.Decimal{total}, cfg.IgvRate, cfg.IsIgvExempt)
		items = append(items, entity.TransactionItem{
			ID:            uuid.New().String(),
			TransactionID: trxID,
			ProductID:     product.ID,
			ProductName:   product.Brand + " " + product.Model,
			Quantity:      decimal.NewFromInt(1),
			UnitPriceBase: line.Subtotal,
			TotalBase:     line.Subtotal,
		})
	}

	cart := pricing.AggregateCart(lineTotals, cfg.IgvRate, cfg.IsIgvExempt)

	trx := &entity.Transaction{
		ID:              trxID,
		TrxType:         entity.TrxTypeSale,
		Date:            date,
		DocumentType:    in.DocumentType,
		DocumentNumber:  in.DocumentNumber,
		EntityName:      in.CustomerName,
		EntityDocNumber: in.CustomerDoc,
		Items:           items,
		BaseAmount:      cart.Subtotal,
		IgvAmount:       cart.Igv,
		TotalAmount:     cart.Total,
		IsIgvExempt:     cfg.IsIgvExempt,
		ExemptionReason: cfg.IgvExemptionReason,
		SunatStatus:     entity.SunatAceptado,
		CreatedAt:       now,
	}

	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		trxRepo repository.TransactionRepository,
	) error {
		for _, product := range products {
			// Condicional sobre TRANSFERRED_RUC20: dos ventas concurrentes del
			// mismo equipo degeneran en una precondición, no en doble venta.
			if err := productRepo.UpdateStatus(ctx, product.ID, entity.StatusTransferredRuc20, entity.StatusSold); err != nil {
				return err
			}
		}
		return trxRepo.Create(ctx, trx)
	})
	if err != nil {
		return nil, err
	}

	resp := toTransactionResponse(trx)
	return &resp, nil
}

// VoidSale anula una venta a cliente final: el comprobante pasa a ANULADO y
// cada equipo vuelve al almacén del que salió. Todo equipo vendible conserva
// datos de transferencia (los mayoristas los traen valorizados al costo), así
// que el retorno normal es al almacén RUC 20.
func (uc *SaleUseCase) VoidSale(ctx context.Context, trxID string) error {
	trx, err := uc.trxRepo.GetByID(ctx, trxID)
	if err != nil {
		return err
	}
	if trx == nil {
		return domain.ErrNotFound
	}
	if trx.TrxType != entity.TrxTypeSale {
		return domain.NewPreconditionError("el comprobante no es una venta")
	}
	if trx.Voided() {
		return domain.NewPreconditionError("el comprobante ya está anulado")
	}

	reverts := make(map[string]string, len(trx.Items))
	for _, item := range trx.Items {
		product, err := uc.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		reverts[product.ID] = product.RevertStatus()
	}

	return uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		trxRepo repository.TransactionRepository,
	) error {
		for productID, revertTo := range reverts {
			if err := productRepo.UpdateStatus(ctx, productID, entity.StatusSold, revertTo); err != nil {
				return err
			}
		}
		return trxRepo.UpdateSunatStatus(ctx, trxID, entity.SunatAnulado)
	})
}
