package ports

import (
	"context"
	"io"
)

// DocumentStore almacena los sustentos escaneados (vouchers, contratos,
// declaraciones juradas, facturas). La implementación vive en infrastructure
// (S3 o disco local). Las referencias devueltas son claves opacas que se
// guardan en los registros como VoucherRef/ContractRef/etc.
type DocumentStore interface {
	// Put guarda el documento y devuelve su referencia estable.
	Put(ctx context.Context, key string, contentType string, body io.Reader) (ref string, err error)

	// Get abre el documento por referencia. El caller debe cerrar el reader.
	Get(ctx context.Context, ref string) (io.ReadCloser, string, error)

	// SignedURL devuelve una URL temporal de descarga directa, si el backend
	// la soporta; si no, cadena vacía sin error.
	SignedURL(ctx context.Context, ref string, expirySeconds int) (string, error)

	Delete(ctx context.Context, ref string) error
}
