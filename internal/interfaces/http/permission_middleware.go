package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/caja-rapida/internal/application/dto"
	"github.com/tu-usuario/caja-rapida/internal/domain/access"
)

// accessChecker es el contrato mínimo que necesita el middleware para decidir
// acceso a una pantalla. Lo implementa *session.Manager; el uso de interfaz
// evita el import circular.
type accessChecker interface {
	CanAccess(identity *access.Identity, permission string) bool
	CurrentUser() *access.CurrentUser
}

// RequirePermission devuelve un middleware Fiber que verifica el acceso a una
// superficie operativa: pasa si hay identidad de administrador (token JWT) o si
// el rol del usuario en turno incluye el permiso.
//
// Comportamiento:
//   - 401 Unauthorized → no hay sesión de empleado ni token de administración.
//   - 403 Forbidden    → hay usuario en turno pero su rol no incluye el permiso.
//
// A diferencia de AuthMiddleware, aquí la ausencia de token NO es un error: las
// pantallas operativas se autorizan por la sesión de turno del proceso.
func RequirePermission(permission string, checker accessChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity := AdminIdentity(c)
		if checker.CanAccess(identity, permission) {
			return c.Next()
		}
		if identity == nil && checker.CurrentUser() == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "SESSION_REQUIRED",
				Message: "se requiere sesión de empleado o token de administración",
			})
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code:    "FORBIDDEN",
			Message: "el rol en turno no incluye el permiso '" + permission + "'",
		})
	}
}

// RequireAnyPermission variante para rutas compartidas entre pantallas (p. ej.
// cocina avanza pedidos y caja confirma la entrega): pasa si el acceso se
// concede para cualquiera de los permisos indicados. Mismos códigos de error
// que RequirePermission.
func RequireAnyPermission(checker accessChecker, permissions ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity := AdminIdentity(c)
		for _, p := range permissions {
			if checker.CanAccess(identity, p) {
				return c.Next()
			}
		}
		if identity == nil && checker.CurrentUser() == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "SESSION_REQUIRED",
				Message: "se requiere sesión de empleado o token de administración",
			})
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code:    "FORBIDDEN",
			Message: "el rol en turno no incluye ninguno de los permisos requeridos",
		})
	}
}
