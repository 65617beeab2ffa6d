package trade

import (
	"context"

	"github.com/jhoicas/Tributo-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el cambio de estado del equipo
// y la escritura de comprobantes sean un solo hecho atómico: el par
// transfer/purchase de una venta interna jamás queda a medias.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		trxRepo repository.TransactionRepository,
	) error) error
}
