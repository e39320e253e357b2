package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/caja-rapida/internal/application/dto"
	"github.com/tu-usuario/caja-rapida/internal/domain/access"
	"github.com/tu-usuario/caja-rapida/pkg/jwt"
)

// Locals keys para la identidad de administración en Fiber.
const (
	LocalAdminID    = "admin_id"
	LocalAdminEmail = "admin_email"
)

// AuthMiddleware valida el Bearer Token JWT del panel de administración y
// extrae la identidad a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		adminID, email, role, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil || role != "admin" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalAdminID, adminID)
		c.Locals(LocalAdminEmail, email)
		return c.Next()
	}
}

// OptionalAuthMiddleware extrae la identidad de administración si hay un Bearer
// Token válido, y deja pasar la petición en cualquier otro caso. Lo usan las
// superficies operativas, donde la autorización normal es la sesión de turno y
// el token de administración solo es una vía alternativa (ver RequirePermission).
func OptionalAuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Next()
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Next()
		}
		adminID, email, role, err := jwt.Parse(jwtSecret, strings.TrimSpace(parts[1]))
		if err != nil || role != "admin" {
			return c.Next()
		}
		c.Locals(LocalAdminID, adminID)
		c.Locals(LocalAdminEmail, email)
		return c.Next()
	}
}

// GetAdminID devuelve el ID del administrador del contexto (después del middleware de auth).
func GetAdminID(c *fiber.Ctx) string {
	v := c.Locals(LocalAdminID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetAdminEmail devuelve el email del administrador del contexto.
func GetAdminEmail(c *fiber.Ctx) string {
	v := c.Locals(LocalAdminEmail)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// AdminIdentity construye la identidad de administración desde el contexto, o
// nil si la petición no pasó por AuthMiddleware.
func AdminIdentity(c *fiber.Ctx) *access.Identity {
	id := GetAdminID(c)
	if id == "" {
		return nil
	}
	return &access.Identity{ID: id, Email: GetAdminEmail(c)}
}
