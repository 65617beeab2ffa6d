package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de un equipo. Las transiciones son estrictamente
// hacia adelante (EN_STOCK_PERSONA → TRANSFERIDO_EMPRESA → VENDIDO); la única
// reversa es la anulación explícita de la transacción que produjo el estado.
const (
	StatusInStockRuc10     = "IN_STOCK_RUC10"    // en almacén de la persona natural (RUC 10)
	StatusTransferredRuc20 = "TRANSFERRED_RUC20" // transferido a la empresa (RUC 20)
	StatusSold             = "SOLD"              // vendido a cliente final
)

// Origen del equipo (sustento documental de la procedencia).
const (
	OriginDeclaracionJurada = "DJ"
	OriginBoletaTienda      = "BOLETA"
	OriginImportacion       = "IMPORTACION"
	OriginMayoristaLocal    = "MAYORISTA_LOCAL"
)

// Product representa una unidad física de inventario (equipo serializado).
// Los campos de transferencia se pueblan únicamente cuando el equipo pasa
// del RUC 10 al RUC 20; antes de eso permanecen en cero/vacío.
type Product struct {
	ID             string
	Category       string
	Brand          string
	Model          string
	SerialNumber   string
	Specs          string
	Color          string
	Condition      string // NUEVO, USADO, REACONDICIONADO
	Origin         string
	IntermediaryID string // emisor RUC 10 propietario del equipo

	Status string

	PurchasePrice decimal.Decimal
	NotaryCost    decimal.Decimal
	TotalCost     decimal.Decimal // PurchasePrice + NotaryCost

	TransferBase       decimal.Decimal
	TransferIgv        decimal.Decimal
	TransferTotal      decimal.Decimal
	TransferDocType    string
	TransferDocNumber  string
	TransferVoucherRef string
	TransferDate       *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Transferable reporta si el equipo es elegible para la venta interna
// RUC 10 → RUC 20.
func (p *Product) Transferable() bool {
	return p.Status == StatusInStockRuc10
}

// Sellable reporta si el equipo es elegible para venta a cliente final.
func (p *Product) Sellable() bool {
	return p.Status == StatusTransferredRuc20
}

// RevertStatus devuelve el estado al que debe volver el equipo al anular la
// transición más reciente: si conserva datos de transferencia vuelve al
// almacén RUC 20, si no, al almacén RUC 10.
func (p *Product) RevertStatus() string {
	if p.TransferDocNumber != "" {
		return StatusTransferredRuc20
	}
	return StatusInStockRuc10
}

// NetCost devuelve el costo neto para valorizar la venta: la base de
// transferencia si existe, o el precio de compra como respaldo.
func (p *Product) NetCost() decimal.Decimal {
	if p.TransferBase.IsPositive() {
		return p.TransferBase
	}
	return p.PurchasePrice
}
