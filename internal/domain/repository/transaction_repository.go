package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Tributo-api/internal/domain/entity"
)

// TransactionFilter acota los listados del registro contable.
type TransactionFilter struct {
	TrxType     string
	SunatStatus string
	From        time.Time
	To          time.Time
	Limit       int
	Offset      int
}

// TransactionRepository define el puerto de persistencia para el registro de
// comprobantes (ventas, compras y transferencias internas).
type TransactionRepository interface {
	// Create inserta la transacción y sus líneas de detalle.
	Create(ctx context.Context, trx *entity.Transaction) error
	GetByID(ctx context.Context, id string) (*entity.Transaction, error)

	// GetByEventID devuelve el par transfer/purchase de una venta interna.
	GetByEventID(ctx context.Context, eventID string) ([]*entity.Transaction, error)

	// ExistsDocNumber verifica unicidad de (tipo, SERIE-NUMERO) antes de emitir.
	ExistsDocNumber(ctx context.Context, docType, docNumber string) (bool, error)

	// ListByPeriod devuelve los comprobantes de un período YYYY-MM con el tipo
	// dado; trxType vacío trae todos. Incluye anulados: el filtrado tributario
	// es responsabilidad del dominio, no del SQL.
	ListByPeriod(ctx context.Context, period string, trxType string) ([]*entity.Transaction, error)

	// ListByYear devuelve los comprobantes del año calendario (proyección anual).
	ListByYear(ctx context.Context, year int, trxType string) ([]*entity.Transaction, error)

	List(ctx context.Context, filter TransactionFilter) ([]*entity.Transaction, error)

	// UpdateSunatStatus marca ACEPTADO/PENDIENTE/ANULADO. La anulación nunca
	// borra la fila: el registro contable es append-only.
	UpdateSunatStatus(ctx context.Context, id, status string) error

	// UpdateDocumentRefs adjunta (o reintenta) los sustentos de un comprobante.
	UpdateDocumentRefs(ctx context.Context, id, voucherRef, invoiceRef string) error
}
