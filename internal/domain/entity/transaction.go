package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción contable.
const (
	TrxTypePurchase = "purchase" // entrada al registro de compras (RCE)
	TrxTypeTransfer = "transfer" // salida RUC 10 (venta interna)
	TrxTypeSale     = "sale"     // venta a cliente final (RVIE)
)

// Tipos de comprobante (Tabla 10 SUNAT: 01 factura, 03 boleta).
const (
	DocTypeFactura = "FACTURA"
	DocTypeBoleta  = "BOLETA"
)

// Estados SUNAT de un comprobante.
const (
	SunatAceptado  = "ACEPTADO"
	SunatPendiente = "PENDIENTE"
	SunatAnulado   = "ANULADO"
)

// TransactionItem es una línea de detalle de una transacción.
type TransactionItem struct {
	ID            string
	TransactionID string
	ProductID     string
	ProductName   string
	Quantity      decimal.Decimal
	UnitPriceBase decimal.Decimal
	TotalBase     decimal.Decimal
}

// Transaction representa un comprobante contable de cualquiera de los dos
// registros (ventas o compras). Invariante: TotalAmount = BaseAmount + IgvAmount.
//
// Una transferencia interna genera DOS transacciones (transfer + purchase) con
// el mismo EventID: son dos proyecciones del mismo hecho económico escritas en
// una sola transacción de BD, nunca dos inserciones independientes.
type Transaction struct {
	ID              string
	EventID         string // agrupa los pares transfer/purchase de una venta interna
	TrxType         string
	Date            time.Time
	DocumentType    string
	DocumentNumber  string // "SERIE-NUMERO"
	EntityName      string
	EntityDocNumber string
	Items           []TransactionItem

	BaseAmount  decimal.Decimal
	IgvAmount   decimal.Decimal
	TotalAmount decimal.Decimal

	IsIgvExempt     bool
	ExemptionReason string

	SunatStatus string

	// Referencias a sustentos en el almacén de documentos. Vacías mientras el
	// comprobante está "a la espera de documento"; la re-subida es reintentable
	// sin re-crear la transacción.
	VoucherRef string
	InvoiceRef string

	CreatedAt time.Time
}

// Voided reporta si el comprobante fue anulado.
func (t *Transaction) Voided() bool {
	return t.SunatStatus == SunatAnulado
}

// Pending reporta si el comprobante sigue a la espera de sus documentos de
// sustento. Mientras dure ese estado no computa en ninguna liquidación ni
// exportación.
func (t *Transaction) Pending() bool {
	return t.SunatStatus == SunatPendiente
}
