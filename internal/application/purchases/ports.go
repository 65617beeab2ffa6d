package purchases

import (
	"context"

	"github.com/jhoicas/Tributo-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD. Completar una
// compra crea equipos, marca el registro y (en mayoristas) escribe el
// comprobante de crédito fiscal: todo o nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		purchaseRepo repository.PurchaseRepository,
		wholesaleRepo repository.WholesaleRepository,
		productRepo repository.ProductRepository,
		trxRepo repository.TransactionRepository,
	) error) error
}
