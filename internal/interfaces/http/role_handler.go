package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/caja-rapida/internal/application/dto"
	"github.com/tu-usuario/caja-rapida/internal/application/usecase"
	"github.com/tu-usuario/caja-rapida/internal/domain"
)

// RoleHandler maneja las peticiones HTTP para roles (protegido).
type RoleHandler struct {
	uc *usecase.RoleUseCase
}

// NewRoleHandler construye el handler.
func NewRoleHandler(uc *usecase.RoleUseCase) *RoleHandler {
	return &RoleHandler{uc: uc}
}

// Create godoc
// @Summary      Crear rol
// @Tags         roles
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRoleRequest  true  "Nombre y permisos"
// @Success      201   {object}  dto.RoleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/roles [post]
func (h *RoleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRoleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name requerido y permisos de la enumeración: caja, kitchen, inventory, reports, admin"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener rol por ID
// @Tags         roles
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del rol"
// @Success      200  {object}  dto.RoleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/roles/{id} [get]
func (h *RoleHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "rol no encontrado"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar rol
// @Tags         roles
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del rol"
// @Param        body  body  dto.UpdateRoleRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.RoleResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/roles/{id} [put]
func (h *RoleHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	var in dto.UpdateRoleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "rol no encontrado"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "permisos inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "rol no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar roles
// @Tags         roles
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.RoleListResponse
// @Router       /api/roles [get]
func (h *RoleHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar rol (rechazado si hay empleados con el rol)
// @Tags         roles
// @Security     Bearer
// @Param        id  path  string  true  "ID del rol"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/roles/{id} [delete]
func (h *RoleHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	if err := h.uc.Delete(id); err != nil {
		if errors.Is(err, domain.ErrRolEnUso) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ROLE_IN_USE", Message: "hay empleados con este rol; reasígnelos primero"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
