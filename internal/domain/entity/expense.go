package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías de gasto operativo.
const (
	ExpenseAlquiler      = "ALQUILER_LOCAL"
	ExpenseServicios     = "SERVICIOS_BASICOS"
	ExpenseMarketing     = "MARKETING_PUBLICIDAD"
	ExpenseSuministros   = "SUMINISTROS_OFICINA"
	ExpenseMovilidad     = "MOVILIDAD_VIATICOS"
	ExpenseMantenimiento = "MANTENIMIENTO"
	ExpenseOtros         = "OTROS_GASTOS"
)

// Métodos de pago.
const (
	PaymentContado       = "CONTADO"
	PaymentCredito       = "CREDITO"
	PaymentTransferencia = "TRANSFERENCIA"
)

// ExpenseEntry es un gasto operativo. Pasa de PENDIENTE_DOCS a COMPLETADO
// solo cuando se adjunta el comprobante de sustento.
type ExpenseEntry struct {
	ID            string
	Date          time.Time
	Category      string
	Description   string
	Amount        decimal.Decimal
	PaymentMethod string
	Beneficiary   string
	Status        string

	DocumentType   string
	DocumentNumber string
	ReceiptRef     string // comprobante de sustento

	CreatedAt time.Time
	UpdatedAt time.Time
}
