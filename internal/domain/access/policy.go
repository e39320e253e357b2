// Package access contiene la política de acceso a pantallas.
//
// Es una política de presentación, no una frontera de seguridad: decide qué
// superficies se muestran. La frontera real de las rutas de administración es
// el middleware JWT.
package access

import "github.com/tu-usuario/caja-rapida/internal/domain/entity"

// Identity identidad externa autenticada (proveedor de auth). Su sola presencia
// otorga acceso total, sin pasar por roles.
type Identity struct {
	ID    string
	Email string
}

// CurrentUser usuario de turno en sesión: User unido con su Role resuelto.
type CurrentUser struct {
	User entity.User
	Role entity.Role
}

// CanAccess decide si una pantalla es accesible: hay una identidad de
// administrador presente, O el rol del usuario en sesión incluye el permiso
// requerido. Reemplaza el chequeo duplicado por pantalla del diseño original.
func CanAccess(identity *Identity, current *CurrentUser, permission string) bool {
	if identity != nil {
		return true
	}
	if current == nil {
		return false
	}
	return current.Role.HasPermission(permission)
}
