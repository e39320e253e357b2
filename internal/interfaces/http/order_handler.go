package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/caja-rapida/internal/application/dto"
	"github.com/tu-usuario/caja-rapida/internal/application/session"
	"github.com/tu-usuario/caja-rapida/internal/domain"
	"github.com/tu-usuario/caja-rapida/internal/domain/entity"
	"github.com/tu-usuario/caja-rapida/internal/domain/order"
)

// OrderHandler maneja las peticiones HTTP de pedidos: confirmación de pago,
// listado para cocina y avance de estado.
type OrderHandler struct {
	manager *session.Manager
}

// NewOrderHandler construye el handler.
func NewOrderHandler(manager *session.Manager) *OrderHandler {
	return &OrderHandler{manager: manager}
}

// Confirm godoc
// @Summary      Confirmar pago: convierte el carrito en un pedido pendiente
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ConfirmPaymentRequest  true  "Método de pago y datos del cliente"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Confirm(c *fiber.Ctx) error {
	var in dto.ConfirmPaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	switch in.Method {
	case entity.PaymentCash, entity.PaymentCard, entity.PaymentTransfer:
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "method debe ser efectivo, tarjeta o transferencia"})
	}
	if in.EstimatedMin < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "estimated_min no puede ser negativo"})
	}
	o, err := h.manager.ConfirmPayment(c.Context(), session.ConfirmPaymentInput{
		Method:        in.Method,
		CustomerName:  in.CustomerName,
		CustomerPhone: in.CustomerPhone,
		EstimatedMin:  in.EstimatedMin,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSesionRequerida):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "SESSION_REQUIRED", Message: "se requiere sesión de empleado"})
		case errors.Is(err, domain.ErrCarritoVacio):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMPTY_CART", Message: "el carrito está vacío"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(toOrderResponse(o))
}

// List godoc
// @Summary      Pedidos del proceso en orden de creación
// @Tags         orders
// @Produce      json
// @Success      200  {object}  dto.OrderListResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	orders := h.manager.Orders()
	out := dto.OrderListResponse{Items: make([]dto.OrderResponse, 0, len(orders))}
	for i := range orders {
		out.Items = append(out.Items, *toOrderResponse(&orders[i]))
	}
	return c.JSON(out)
}

// Advance godoc
// @Summary      Avanzar el estado de un pedido (solo sucesor inmediato)
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del pedido"
// @Param        body  body  dto.AdvanceOrderRequest  true  "Estado destino"
// @Success      200   {object}  dto.OrderResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/status [put]
func (h *OrderHandler) Advance(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	var in dto.AdvanceOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	next := entity.OrderStatus(in.Status)
	if !order.IsValid(next) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "estado desconocido: " + in.Status})
	}
	// Un turno sin permiso de cocina (caja) solo confirma la entrega al cliente.
	if next != entity.StatusEntregado && !h.manager.CanAccess(AdminIdentity(c), entity.PermKitchen) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el rol en turno solo puede confirmar la entrega del pedido"})
	}
	o, err := h.manager.AdvanceOrder(c.Context(), id, next)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pedido no encontrado"})
		case errors.Is(err, order.ErrTransicionInvalida):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVALID_TRANSITION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(toOrderResponse(o))
}

// Notifications godoc
// @Summary      Pedidos recién listos (cada pedido se reporta una sola vez)
// @Tags         orders
// @Produce      json
// @Success      200  {object}  dto.NotificationsResponse
// @Router       /api/orders/notifications [get]
func (h *OrderHandler) Notifications(c *fiber.Ctx) error {
	ids := h.manager.ReadyNotifications()
	if ids == nil {
		ids = []string{}
	}
	return c.JSON(dto.NotificationsResponse{ReadyOrderIDs: ids})
}
