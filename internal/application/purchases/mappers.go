package purchases

import (
	"github.com/jhoicas/Tributo-api/internal/application/dto"
	"github.com/jhoicas/Tributo-api/internal/domain/entity"
)

func toPurchaseResponse(e *entity.PurchaseEntry) dto.PurchaseResponse {
	resp := dto.PurchaseResponse{
		ID:              e.ID,
		Date:            e.Date,
		Status:          e.Status,
		IntermediaryID:  e.IntermediaryID,
		ProviderDNI:     e.ProviderDNI,
		ProviderName:    e.ProviderName,
		ProviderAddr:    e.ProviderAddr,
		ProductCategory: e.ProductCategory,
		ProductBrand:    e.ProductBrand,
		ProductModel:    e.ProductModel,
		ProductSerial:   e.ProductSerial,
		Condition:       e.Condition,
		OriginType:      e.OriginType,
		PriceAgreed:     e.PriceAgreed,
		NotaryCost:      e.NotaryCost,
		VoucherRef:      e.VoucherRef,
		ContractRef:     e.ContractRef,
		OriginDeclRef:   e.OriginDeclRef,
		ProductID:       e.ProductID,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
	if e.Status == entity.StatusPendingDocs {
		resp.MissingDocs = e.MissingDocs()
	}
	return resp
}

func toWholesaleResponse(e *entity.WholesalePurchaseEntry) dto.WholesaleResponse {
	items := make([]dto.WholesaleItemResponse, 0, len(e.Items))
	for _, it := range e.Items {
		items = append(items, dto.WholesaleItemResponse{
			ID:       it.ID,
			Category: it.Category,
			Brand:    it.Brand,
			Model:    it.Model,
			Serial:   it.Serial,
			Specs:    it.Specs,
			Cost:     it.Cost,
		})
	}
	return dto.WholesaleResponse{
		ID:             e.ID,
		Date:           e.Date,
		Status:         e.Status,
		SupplierID:     e.SupplierID,
		SupplierName:   e.SupplierName,
		SupplierRUC:    e.SupplierRUC,
		DocumentNumber: e.DocumentNumber,
		InvoiceRef:     e.InvoiceRef,
		Items:          items,
		BaseAmount:     e.BaseAmount,
		IgvAmount:      e.IgvAmount,
		TotalAmount:    e.TotalAmount,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func toExpenseResponse(e *entity.ExpenseEntry) dto.ExpenseResponse {
	return dto.ExpenseResponse{
		ID:             e.ID,
		Date:           e.Date,
		Category:       e.Category,
		Description:    e.Description,
		Amount:         e.Amount,
		PaymentMethod:  e.PaymentMethod,
		Beneficiary:    e.Beneficiary,
		Status:         e.Status,
		DocumentType:   e.DocumentType,
		DocumentNumber: e.DocumentNumber,
		ReceiptRef:     e.ReceiptRef,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}
