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

// ExpenseUseCase gestiona gastos operativos. El gasto nace PENDIENTE_DOCS si
// no trae comprobante y se completa al adjuntarlo.
type ExpenseUseCase struct {
	expenseRepo repository.ExpenseRepository
}

// NewExpenseUseCase construye el caso de uso.
func NewExpenseUseCase(expenseRepo repository.ExpenseRepository) *ExpenseUseCase {
	return &ExpenseUseCase{expenseRepo: expenseRepo}
}

// Register registra un gasto operativo.
func (uc *ExpenseUseCase) Register(ctx context.Context, in dto.RegisterExpenseRequest) (*dto.ExpenseResponse, error) {
	date, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return nil, domain.NewValidationError("date")
	}
	if !in.Amount.IsPositive() {
		return nil, domain.NewValidationError("amount")
	}
	status := entity.StatusPendingDocs
	if in.ReceiptRef != "" {
		status = entity.StatusCompleted
	}
	now := time.Now()
	entry := &entity.ExpenseEntry{
		ID:             uuid.New().String(),
		Date:           date,
		Category:       in.Category,
		Description:    in.Description,
		Amount:         in.Amount.Round(2),
		PaymentMethod:  in.PaymentMethod,
		Beneficiary:    in.Beneficiary,
		Status:         status,
		DocumentType:   in.DocumentType,
		DocumentNumber: in.DocumentNumber,
		ReceiptRef:     in.ReceiptRef,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.expenseRepo.Create(ctx, entry); err != nil {
		return nil, err
	}
	resp := toExpenseResponse(entry)
	return &resp, nil
}

// AttachReceipt adjunta el comprobante de sustento y completa el gasto. El
// Complete condicional del repositorio rechaza el doble completado.
func (uc *ExpenseUseCase) AttachReceipt(ctx context.Context, id, receiptRef string) (*dto.ExpenseResponse, error) {
	if receiptRef == "" {
		return nil, domain.NewValidationError("receipt_ref")
	}
	entry, err := uc.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, domain.ErrNotFound
	}
	if entry.Status == entity.StatusCompleted {
		return nil, domain.NewPreconditionError("el gasto ya está completado")
	}
	if err := uc.expenseRepo.Complete(ctx, id, receiptRef); err != nil {
		return nil, err
	}
	entry.Status = entity.StatusCompleted
	entry.ReceiptRef = receiptRef
	resp := toExpenseResponse(entry)
	return &resp, nil
}

// GetByID devuelve el gasto.
func (uc *ExpenseUseCase) GetByID(ctx context.Context, id string) (*dto.ExpenseResponse, error) {
	entry, err := uc.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, domain.ErrNotFound
	}
	resp := toExpenseResponse(entry)
	return &resp, nil
}

// List lista gastos con filtros.
func (uc *ExpenseUseCase) List(ctx context.Context, filter repository.ExpenseFilter) ([]dto.ExpenseResponse, error) {
	entries, err := uc.expenseRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ExpenseResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toExpenseResponse(e))
	}
	return out, nil
}

// Delete elimina un gasto.
func (uc *ExpenseUseCase) Delete(ctx context.Context, id string) error {
	entry, err := uc.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if entry == nil {
		return domain.ErrNotFound
	}
	return uc.expenseRepo.Delete(ctx, id)
}
