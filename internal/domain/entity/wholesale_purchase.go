package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// WholesaleItem es un equipo incluido en una compra mayorista.
type WholesaleItem struct {
	ID       string
	Category string
	Brand    string
	Model    string
	Serial   string
	Specs    string
	Cost     decimal.Decimal
}

// WholesalePurchaseEntry es una compra a proveedor con RUC (origen
// corporativo). A diferencia de la compra a persona natural, el único
// sustento exigido es la factura del proveedor; al completarse los equipos
// ingresan directamente al almacén RUC 20.
type WholesalePurchaseEntry struct {
	ID     string
	Date   time.Time
	Status string

	SupplierID   string
	SupplierName string
	SupplierRUC  string

	DocumentNumber string
	InvoiceRef     string // factura del proveedor

	Items []WholesaleItem

	BaseAmount  decimal.Decimal
	IgvAmount   decimal.Decimal
	TotalAmount decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
}
