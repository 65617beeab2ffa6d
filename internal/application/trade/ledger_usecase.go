package trade

import (
	"context"
	"time"

	"github.com/jhoicas/Tributo-api/internal/application/dto"
	"github.com/jhoicas/Tributo-api/internal/domain"
	"github.com/jhoicas/Tributo-api/internal/domain/repository"
)

// LedgerUseCase consulta de solo lectura sobre el registro de comprobantes.
// No muta nada: las altas y anulaciones pasan por Transfer/Sale.
type LedgerUseCase struct {
	trxRepo repository.TransactionRepository
}

// NewLedgerUseCase construye el caso de uso del registro contable.
func NewLedgerUseCase(trxRepo repository.TransactionRepository) *LedgerUseCase {
	return &LedgerUseCase{trxRepo: trxRepo}
}

// List devuelve los comprobantes que cumplen los filtros, con sus líneas.
func (uc *LedgerUseCase) List(ctx context.Context, in dto.ListTransactionsRequest) (*dto.TransactionListResponse, error) {
	in.DefaultPage()

	filter := repository.TransactionFilter{
		TrxType:     in.TrxType,
		SunatStatus: in.SunatStatus,
		Limit:       in.Limit,
		Offset:      in.Offset,
	}
	if in.From != "" {
		from, err := time.Parse("2006-01-02", in.From)
		if err != nil {
			return nil, domain.NewValidationError("from (YYYY-MM-DD)")
		}
		filter.From = from
	}
	if in.To != "" {
		to, err := time.Parse("2006-01-02", in.To)
		if err != nil {
			return nil, domain.NewValidationError("to (YYYY-MM-DD)")
		}
		filter.To = to
	}

	trxs, err := uc.trxRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]dto.TransactionResponse, 0, len(trxs))
	for _, t := range trxs {
		items = append(items, toTransactionResponse(t))
	}
	return &dto.TransactionListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: in.Limit, Offset: in.Offset},
	}, nil
}

// GetByID devuelve un comprobante con sus líneas de detalle.
func (uc *LedgerUseCase) GetByID(ctx context.Context, id string) (*dto.TransactionResponse, error) {
	trx, err := uc.trxRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if trx == nil {
		return nil, domain.ErrNotFound
	}
	resp := toTransactionResponse(trx)
	return &resp, nil
}
