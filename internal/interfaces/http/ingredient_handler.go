package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/caja-rapida/internal/application/dto"
	"github.com/tu-usuario/caja-rapida/internal/application/usecase"
	"github.com/tu-usuario/caja-rapida/internal/domain"
)

// IngredientHandler maneja las peticiones HTTP para insumos (protegido por permiso "inventory").
type IngredientHandler struct {
	uc *usecase.IngredientUseCase
}

// NewIngredientHandler construye el handler.
func NewIngredientHandler(uc *usecase.IngredientUseCase) *IngredientHandler {
	return &IngredientHandler{uc: uc}
}

// Create godoc
// @Summary      Crear insumo
// @Tags         ingredients
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateIngredientRequest  true  "Datos del insumo"
// @Success      201   {object}  dto.IngredientResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/ingredients [post]
func (h *IngredientHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateIngredientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y unit requeridos; stock y min_level no negativos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener insumo por ID
// @Tags         ingredients
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del insumo"
// @Success      200  {object}  dto.IngredientResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ingredients/{id} [get]
func (h *IngredientHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "insumo no encontrado"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar insumo (campos opcionales)
// @Tags         ingredients
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del insumo"
// @Param        body  body  dto.UpdateIngredientRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.IngredientResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/ingredients/{id} [put]
func (h *IngredientHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	var in dto.UpdateIngredientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "insumo no encontrado"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "insumo no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar insumos
// @Tags         ingredients
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Tamaño de página"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {object}  dto.IngredientListResponse
// @Router       /api/ingredients [get]
func (h *IngredientHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	out, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// LowStock godoc
// @Summary      Insumos con stock por debajo del mínimo
// @Tags         ingredients
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.IngredientListResponse
// @Router       /api/ingredients/low-stock [get]
func (h *IngredientHandler) LowStock(c *fiber.Ctx) error {
	out, err := h.uc.LowStock()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar insumo
// @Tags         ingredients
// @Security     Bearer
// @Param        id  path  string  true  "ID del insumo"
// @Success      204
// @Router       /api/ingredients/{id} [delete]
func (h *IngredientHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	if err := h.uc.Delete(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
