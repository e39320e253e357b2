package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/caja-rapida/internal/application/dto"
	"github.com/tu-usuario/caja-rapida/internal/application/usecase"
	"github.com/tu-usuario/caja-rapida/internal/domain"
)

// ExpenseHandler maneja las peticiones HTTP para gastos (protegido por permiso "reports").
type ExpenseHandler struct {
	uc *usecase.ExpenseUseCase
}

// NewExpenseHandler construye el handler.
func NewExpenseHandler(uc *usecase.ExpenseUseCase) *ExpenseHandler {
	return &ExpenseHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar gasto
// @Tags         expenses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateExpenseRequest  true  "Descripción y monto"
// @Success      201   {object}  dto.ExpenseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/expenses [post]
func (h *ExpenseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateExpenseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "description requerida y amount positivo"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar gastos
// @Tags         expenses
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Tamaño de página"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {object}  dto.ExpenseListResponse
// @Router       /api/expenses [get]
func (h *ExpenseHandler) List(c *fiber.Ctx) error {
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

// Delete godoc
// @Summary      Eliminar gasto
// @Tags         expenses
// @Security     Bearer
// @Param        id  path  string  true  "ID del gasto"
// @Success      204
// @Router       /api/expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	if err := h.uc.Delete(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
