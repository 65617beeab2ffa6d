package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation detecta el código 23505 (unique_violation) de Postgres,
// el que disparan las series de equipos y los números de comprobante
// repetidos. El fallback por texto cubre errores envueltos por el pool.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "23505")
}
