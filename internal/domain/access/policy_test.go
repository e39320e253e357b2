package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/caja-rapida/internal/domain/access"
	"github.com/tu-usuario/caja-rapida/internal/domain/entity"
)

func cashierUser() *access.CurrentUser {
	return &access.CurrentUser{
		User: entity.User{ID: "u1", Name: "Ana"},
		Role: entity.Role{ID: "r1", Name: "cajero", Permissions: []string{entity.PermCaja}},
	}
}

func TestCanAccess_IdentidadAdminAccedeATodo(t *testing.T) {
	identity := &access.Identity{ID: "adm1", Email: "admin@local"}

	for _, perm := range entity.ValidPermissions {
		assert.True(t, access.CanAccess(identity, nil, perm),
			"la identidad de administración debe acceder a %s sin rol", perm)
	}
}

func TestCanAccess_RolDecideSinIdentidad(t *testing.T) {
	current := cashierUser()

	assert.True(t, access.CanAccess(nil, current, entity.PermCaja))
	assert.False(t, access.CanAccess(nil, current, entity.PermKitchen),
		"el rol cajero no incluye kitchen")
	assert.False(t, access.CanAccess(nil, current, entity.PermAdmin))
}

func TestCanAccess_SinSesionNiIdentidad(t *testing.T) {
	assert.False(t, access.CanAccess(nil, nil, entity.PermCaja),
		"sin identidad ni usuario en sesión no hay acceso")
}

func TestCanAccess_RolMultiPermiso(t *testing.T) {
	current := &access.CurrentUser{
		User: entity.User{ID: "u2", Name: "Luis"},
		Role: entity.Role{ID: "r2", Name: "encargado", Permissions: []string{entity.PermCaja, entity.PermReports}},
	}
	assert.True(t, access.CanAccess(nil, current, entity.PermCaja))
	assert.True(t, access.CanAccess(nil, current, entity.PermReports))
	assert.False(t, access.CanAccess(nil, current, entity.PermInventory))
}
