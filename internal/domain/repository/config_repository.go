package repository

import (
	"context"

	"github.com/jhoicas/Tributo-api/internal/domain/entity"
)

// ConfigRepository define el puerto de persistencia para la configuración
// tributaria y la matriz de roles. Get devuelve siempre una copia nueva: el
// llamador recibe una fotografía, nunca una referencia compartida.
type ConfigRepository interface {
	GetTaxConfig(ctx context.Context) (*entity.TaxConfig, error)
	SaveTaxConfig(ctx context.Context, cfg *entity.TaxConfig) error

	ListRoles(ctx context.Context) ([]*entity.RoleConfig, error)
	GetRole(ctx context.Context, role string) (*entity.RoleConfig, error)
	SaveRole(ctx context.Context, rc *entity.RoleConfig) error
}
