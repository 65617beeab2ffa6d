package trade

import (
	"github.com/jhoicas/Tributo-api/internal/application/dto"
	"github.com/jhoicas/Tributo-api/internal/domain/entity"
)

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:                p.ID,
		Category:          p.Category,
		Brand:             p.Brand,
		Model:             p.Model,
		SerialNumber:      p.SerialNumber,
		Specs:             p.Specs,
		Color:             p.Color,
		Condition:         p.Condition,
		Origin:            p.Origin,
		IntermediaryID:    p.IntermediaryID,
		Status:            p.Status,
		PurchasePrice:     p.PurchasePrice,
		NotaryCost:        p.NotaryCost,
		TotalCost:         p.TotalCost,
		TransferBase:      p.TransferBase,
		TransferIgv:       p.TransferIgv,
		TransferTotal:     p.TransferTotal,
		TransferDocType:   p.TransferDocType,
		TransferDocNumber: p.TransferDocNumber,
		TransferDate:      p.TransferDate,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func toTransactionResponse(t *entity.Transaction) dto.TransactionResponse {
	items := make([]dto.TransactionItemResponse, 0, len(t.Items))
	for _, it := range t.Items {
		items = append(items, dto.TransactionItemResponse{
			ProductID:     it.ProductID,
			ProductName:   it.ProductName,
			Quantity:      it.Quantity,
			UnitPriceBase: it.UnitPriceBase,
			TotalBase:     it.TotalBase,
		})
	}
	return dto.TransactionResponse{
		ID:              t.ID,
		EventID:         t.EventID,
		TrxType:         t.TrxType,
		Date:            t.Date,
		DocumentType:    t.DocumentType,
		DocumentNumber:  t.DocumentNumber,
		EntityName:      t.EntityName,
		EntityDocNumber: t.EntityDocNumber,
		Items:           items,
		BaseAmount:      t.BaseAmount,
		IgvAmount:       t.IgvAmount,
		TotalAmount:     t.TotalAmount,
		IsIgvExempt:     t.IsIgvExempt,
		ExemptionReason: t.ExemptionReason,
		SunatStatus:     t.SunatStatus,
		VoucherRef:      t.VoucherRef,
		InvoiceRef:      t.InvoiceRef,
		CreatedAt:       t.CreatedAt,
	}
}
