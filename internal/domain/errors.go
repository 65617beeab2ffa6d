package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrUserNotFound      = errors.New("usuario no encontrado")
	ErrDocNumberExists   = errors.New("el número de documento ya está registrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrLookupUnavailable = errors.New("servicio de consulta de identidad no disponible")
)

// ErrValidation indica un campo obligatorio ausente o inválido. Bloquea la
// operación antes de cualquier mutación.
var ErrValidation = errors.New("validación fallida")

// ErrPrecondition indica que la operación se intentó contra un estado de ciclo
// de vida incorrecto (ej: re-transferir un equipo ya transferido).
var ErrPrecondition = errors.New("precondición de estado violada")

// NewValidationError envuelve ErrValidation nombrando el campo faltante.
func NewValidationError(field string) error {
	return fmt.Errorf("%w: falta %s", ErrValidation, field)
}

// NewPreconditionError envuelve ErrPrecondition nombrando la condición violada.
func NewPreconditionError(detail string) error {
	return fmt.Errorf("%w: %s", ErrPrecondition, detail)
}

// ArithmeticGuardError señala una configuración tributaria que produce una
// división inválida o un resultado no finito. No se parchea silenciosamente:
// la configuración ofensiva se rechaza apuntando a la tasa responsable.
type ArithmeticGuardError struct {
	Rate   string // nombre de la tasa ofensiva, ej: "renta_rate"
	Value  string
	Reason string
}

func (e *ArithmeticGuardError) Error() string {
	return fmt.Sprintf("configuración tributaria inválida: %s=%s (%s)", e.Rate, e.Value, e.Reason)
}

// IsArithmeticGuard reporta si err es un ArithmeticGuardError.
func IsArithmeticGuard(err error) bool {
	var g *ArithmeticGuardError
	return errors.As(err, &g)
}
