package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrUserNotFound    = errors.New("usuario no encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrDuplicate       = errors.New("recurso duplicado")
	ErrUnauthorized    = errors.New("no autorizado")
	ErrForbidden       = errors.New("acceso denegado")
	ErrConflict        = errors.New("conflicto con el estado actual")
	ErrPINIncorrecto   = errors.New("PIN incorrecto")
	ErrRolNoEncontrado = errors.New("rol no encontrado")
	ErrRolEnUso        = errors.New("el rol tiene usuarios asignados")
	ErrCategoriaEnUso  = errors.New("la categoría tiene productos asignados")
	ErrSesionRequerida = errors.New("no hay un turno activo")
	ErrCarritoVacio    = errors.New("el carrito está vacío")
	ErrTurnoActivo     = errors.New("ya hay un turno activo")
)
