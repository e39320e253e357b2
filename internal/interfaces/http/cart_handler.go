package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/caja-rapida/internal/application/dto"
	"github.com/tu-usuario/caja-rapida/internal/application/session"
	"github.com/tu-usuario/caja-rapida/internal/domain"
)

// CartHandler maneja las peticiones HTTP del carrito de la caja (protegido por permiso "caja").
type CartHandler struct {
	manager *session.Manager
}

// NewCartHandler construye el handler.
func NewCartHandler(manager *session.Manager) *CartHandler {
	return &CartHandler{manager: manager}
}

// Get godoc
// @Summary      Carrito actual
// @Tags         cart
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Router       /api/cart [get]
func (h *CartHandler) Get(c *fiber.Ctx) error {
	return c.JSON(toCartResponse(h.manager.Cart()))
}

// Add godoc
// @Summary      Agregar una unidad de producto al carrito
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddToCartRequest  true  "Producto y variante"
// @Success      200   {object}  dto.CartResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/cart/items [post]
func (h *CartHandler) Add(c *fiber.Ctx) error {
	var in dto.AddToCartRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id es requerido"})
	}
	items, err := h.manager.AddToCart(c.Context(), in.ProductID, in.Combo)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSesionRequerida):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "SESSION_REQUIRED", Message: "se requiere sesión de empleado"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(toCartResponse(items))
}

// UpdateLine godoc
// @Summary      Reemplazar la cantidad de una línea (0 la elimina)
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        lineId  path  string  true  "ID de línea (productID o productID-combo)"
// @Param        body    body  dto.UpdateQuantityRequest  true  "Cantidad"
// @Success      200     {object}  dto.CartResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/cart/items/{lineId} [put]
func (h *CartHandler) UpdateLine(c *fiber.Ctx) error {
	lineID := c.Params("lineId")
	if lineID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "lineId requerido"})
	}
	var in dto.UpdateQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	items, err := h.manager.UpdateQuantity(lineID, in.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "la cantidad no puede ser negativa"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "línea no encontrada en el carrito"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(toCartResponse(items))
}

// Clear godoc
// @Summary      Vaciar el carrito
// @Tags         cart
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Router       /api/cart [delete]
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	h.manager.ClearCart()
	return c.JSON(toCartResponse(nil))
}
