package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee es un trabajador con acceso al sistema. El login es por número de
// documento; el rol determina la matriz de permisos por módulo.
type Employee struct {
	ID           string
	FullName     string
	DocNumber    string // DNI, identificador de login
	PasswordHash string
	Phone        string
	Email        string
	Address      string
	BaseSalary   decimal.Decimal
	Role         string
	JobTitle     string
	Status       string // active, disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
