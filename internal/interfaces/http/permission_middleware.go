package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Tributo-api/internal/application/dto"
	"github.com/jhoicas/Tributo-api/internal/domain/entity"
)

// Acciones de la matriz de permisos.
const (
	ActionCreate = "create"
	ActionRead   = "read"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// Módulos de la matriz de permisos. Deben coincidir con las claves que la
// pantalla de roles guarda en role_configs.
const (
	ModuleInventario    = "inventario"
	ModuleVentas        = "ventas"
	ModuleCompras       = "compras"
	ModuleGastos        = "gastos"
	ModuleImpuestos     = "impuestos"
	ModuleTerceros      = "terceros"
	ModuleConfiguracion = "configuracion"
)

// roleSource es el contrato mínimo que necesita el middleware para resolver
// la matriz de un rol. Lo implementa repository.ConfigRepository; el uso de
// interfaz evita acoplar la capa HTTP al repositorio concreto.
type roleSource interface {
	GetRole(ctx context.Context, role string) (*entity.RoleConfig, error)
}

// RequirePermission devuelve un middleware Fiber que verifica si el rol del
// token tiene habilitada la acción sobre el módulo. Debe usarse DESPUÉS de
// AuthMiddleware (necesita LocalRole).
//
// Comportamiento:
//   - 401 Unauthorized → el token no trae rol.
//   - 403 Forbidden → rol desconocido o acción deshabilitada en la matriz.
//   - 503 Service Unavailable → fallo de infraestructura al consultar la matriz.
func RequirePermission(module, action string, src roleSource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "MISSING_ROLE",
				Message: "rol no encontrado en el token",
			})
		}

		rc, err := src.GetRole(c.Context(), role)
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "PERMISSION_CHECK_FAILED",
				Message: "no se pudo verificar permisos, intente más tarde",
			})
		}
		if rc == nil || !rc.Allows(module, action) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "el rol '" + role + "' no puede '" + action + "' en '" + module + "'",
			})
		}
		return c.Next()
	}
}
