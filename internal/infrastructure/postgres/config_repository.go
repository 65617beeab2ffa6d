package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Tributo-api/internal/domain/entity"
	"github.com/jhoicas/Tributo-api/internal/domain/repository"
)

var _ repository.ConfigRepository = (*ConfigRepo)(nil)

// ConfigRepo implementación del puerto ConfigRepository sobre PostgreSQL.
// La configuración tributaria vive en una tabla de una sola fila; la matriz
// de permisos se guarda como JSONB por rol.
type ConfigRepo struct {
	q Querier
}

// NewConfigRepository construye el adaptador de configuración. Pasar pool o tx (Querier).
func NewConfigRepository(q Querier) *ConfigRepo {
	return &ConfigRepo{q: q}
}

// GetTaxConfig devuelve la configuración vigente. Siempre una copia nueva.
func (r *ConfigRepo) GetTaxConfig(ctx context.Context) (*entity.TaxConfig, error) {
	query := `
		SELECT uit, igv_rate, renta_rate,
		       ruc10_margin_type, ruc10_margin_value, ruc20_margin_type, ruc20_margin_value,
		       is_igv_exempt, igv_exemption_reason, ruc10_regime, ruc20_regime,
		       ruc10_declaration_day, ruc20_declaration_day, default_notary_cost,
		       product_categories, company_name, company_ruc, company_addr, updated_at
		FROM tax_config WHERE id = 1`
	var cfg entity.TaxConfig
	err := r.q.QueryRow(ctx, query).Scan(
		&cfg.UIT, &cfg.IgvRate, &cfg.RentaRate,
		&cfg.Ruc10TransferMargin.Type, &cfg.Ruc10TransferMargin.Value,
		&cfg.Ruc20SaleMargin.Type, &cfg.Ruc20SaleMargin.Value,
		&cfg.IsIgvExempt, &cfg.IgvExemptionReason, &cfg.Ruc10Regime, &cfg.Ruc20Regime,
		&cfg.Ruc10DeclarationDay, &cfg.Ruc20DeclarationDay, &cfg.DefaultNotaryCost,
		&cfg.ProductCategories, &cfg.CompanyName, &cfg.CompanyRUC, &cfg.CompanyAddr, &cfg.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("get tax config: %w", err)
	}
	return &cfg, nil
}

// SaveTaxConfig reemplaza la configuración vigente.
func (r *ConfigRepo) SaveTaxConfig(ctx context.Context, cfg *entity.TaxConfig) error {
	query := `
		INSERT INTO tax_config
			(id, uit, igv_rate, renta_rate,
			 ruc10_margin_type, ruc10_margin_value, ruc20_margin_type, ruc20_margin_value,
			 is_igv_exempt, igv_exemption_reason, ruc10_regime, ruc20_regime,
			 ruc10_declaration_day, ruc20_declaration_day, default_notary_cost,
			 product_categories, company_name, company_ruc, company_addr, updated_at)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		ON CONFLICT (id) DO UPDATE SET
			uit = EXCLUDED.uit, igv_rate = EXCLUDED.igv_rate, renta_rate = EXCLUDED.renta_rate,
			ruc10_margin_type = EXCLUDED.ruc10_margin_type, ruc10_margin_value = EXCLUDED.ruc10_margin_value,
			ruc20_margin_type = EXCLUDED.ruc20_margin_type, ruc20_margin_value = EXCLUDED.ruc20_margin_value,
			is_igv_exempt = EXCLUDED.is_igv_exempt, igv_exemption_reason = EXCLUDED.igv_exemption_reason,
			ruc10_regime = EXCLUDED.ruc10_regime, ruc20_regime = EXCLUDED.ruc20_regime,
			ruc10_declaration_day = EXCLUDED.ruc10_declaration_day, ruc20_declaration_day = EXCLUDED.ruc20_declaration_day,
			default_notary_cost = EXCLUDED.default_notary_cost, product_categories = EXCLUDED.product_categories,
			company_name = EXCLUDED.company_name, company_ruc = EXCLUDED.company_ruc,
			company_addr = EXCLUDED.company_addr, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(ctx, query,
		cfg.UIT, cfg.IgvRate, cfg.RentaRate,
		cfg.Ruc10TransferMargin.Type, cfg.Ruc10TransferMargin.Value,
		cfg.Ruc20SaleMargin.Type, cfg.Ruc20SaleMargin.Value,
		cfg.IsIgvExempt, cfg.IgvExemptionReason, cfg.Ruc10Regime, cfg.Ruc20Regime,
		cfg.Ruc10DeclarationDay, cfg.Ruc20DeclarationDay, cfg.DefaultNotaryCost,
		cfg.ProductCategories, cfg.CompanyName, cfg.CompanyRUC, cfg.CompanyAddr, cfg.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save tax config: %w", err)
	}
	return nil
}

// ListRoles devuelve todos los roles con su matriz de permisos.
func (r *ConfigRepo) ListRoles(ctx context.Context) ([]*entity.RoleConfig, error) {
	rows, err := r.q.Query(ctx, `SELECT id, role, label, permissions FROM role_configs ORDER BY role`)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()
	var list []*entity.RoleConfig
	for rows.Next() {
		rc, err := scanRole(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, rc)
	}
	return list, rows.Err()
}

// GetRole obtiene un rol por nombre. Nil si no existe.
func (r *ConfigRepo) GetRole(ctx context.Context, role string) (*entity.RoleConfig, error) {
	var rc entity.RoleConfig
	var permsJSON []byte
	err := r.q.QueryRow(ctx,
		`SELECT id, role, label, permissions FROM role_configs WHERE role = $1`, role,
	).Scan(&rc.ID, &rc.Role, &rc.Label, &permsJSON)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get role: %w", err)
	}
	if err := json.Unmarshal(permsJSON, &rc.Permissions); err != nil {
		return nil, fmt.Errorf("decode role permissions: %w", err)
	}
	return &rc, nil
}

// SaveRole crea o reemplaza la matriz de un rol.
func (r *ConfigRepo) SaveRole(ctx context.Context, rc *entity.RoleConfig) error {
	permsJSON, err := json.Marshal(rc.Permissions)
	if err != nil {
		return fmt.Errorf("encode role permissions: %w", err)
	}
	_, err = r.q.Exec(ctx, `
		INSERT INTO role_configs (id, role, label, permissions)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (role) DO UPDATE SET label = EXCLUDED.label, permissions = EXCLUDED.permissions`,
		rc.ID, rc.Role, rc.Label, permsJSON,
	)
	if err != nil {
		return fmt.Errorf("save role: %w", err)
	}
	return nil
}

func scanRole(rows pgx.Rows) (*entity.RoleConfig, error) {
	var rc entity.RoleConfig
	var permsJSON []byte
	if err := rows.Scan(&rc.ID, &rc.Role, &rc.Label, &permsJSON); err != nil {
		return nil, fmt.Errorf("scan role: %w", err)
	}
	if err := json.Unmarshal(permsJSON, &rc.Permissions); err != nil {
		return nil, fmt.Errorf("decode role permissions: %w", err)
	}
	return &rc, nil
}
