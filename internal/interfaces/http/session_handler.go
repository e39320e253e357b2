package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/caja-rapida/internal/application/dto"
	"github.com/tu-usuario/caja-rapida/internal/application/session"
	"github.com/tu-usuario/caja-rapida/internal/domain"
	"github.com/tu-usuario/caja-rapida/internal/domain/access"
	"github.com/tu-usuario/caja-rapida/internal/domain/entity"
)

// SessionHandler maneja las peticiones HTTP de sesión y turno de caja.
type SessionHandler struct {
	manager *session.Manager
}

// NewSessionHandler construye el handler.
func NewSessionHandler(manager *session.Manager) *SessionHandler {
	return &SessionHandler{manager: manager}
}

// Start godoc
// @Summary      Iniciar sesión de empleado por PIN (abre turno si el rol incluye caja)
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StartShiftRequest  true  "Usuario y PIN"
// @Success      200   {object}  dto.SessionResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/session [post]
func (h *SessionHandler) Start(c *fiber.Ctx) error {
	var in dto.StartShiftRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.UserID == "" || in.PIN == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "user_id y pin son requeridos"})
	}
	current, shift, err := h.manager.StartShift(c.Context(), in.UserID, in.PIN)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTurnoActivo):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SESSION_ACTIVE", Message: "ya hay una sesión activa; cierre el turno primero"})
		case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrPINIncorrecto):
			// Mismo 401 para usuario desconocido y PIN incorrecto.
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "PIN_INCORRECTO", Message: "usuario o PIN incorrecto"})
		case errors.Is(err, domain.ErrRolNoEncontrado):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ROLE_NOT_FOUND", Message: "el rol del usuario no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.SessionResponse{
		CurrentUser: toCurrentUserResponse(current),
		ActiveShift: toShiftResponse(shift),
	})
}

// Logout godoc
// @Summary      Cerrar sesión y turno (idempotente)
// @Tags         session
// @Produce      json
// @Success      200  {object}  dto.SessionResponse
// @Router       /api/session [delete]
func (h *SessionHandler) Logout(c *fiber.Ctx) error {
	closed, err := h.manager.Logout(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.SessionResponse{ActiveShift: toShiftResponse(closed)})
}

// Current godoc
// @Summary      Estado de la sesión actual
// @Tags         session
// @Produce      json
// @Success      200  {object}  dto.SessionResponse
// @Router       /api/session [get]
func (h *SessionHandler) Current(c *fiber.Ctx) error {
	return c.JSON(dto.SessionResponse{
		CurrentUser: toCurrentUserResponse(h.manager.CurrentUser()),
		ActiveShift: toShiftResponse(h.manager.ActiveShift()),
	})
}

// ── mapeo entidad → DTO ───────────────────────────────────────────────────────

func toCurrentUserResponse(cu *access.CurrentUser) *dto.CurrentUserResponse {
	if cu == nil {
		return nil
	}
	return &dto.CurrentUserResponse{
		UserID:      cu.User.ID,
		Name:        cu.User.Name,
		RoleName:    cu.Role.Name,
		Permissions: cu.Role.Permissions,
	}
}

func toShiftResponse(s *entity.Shift) *dto.ShiftResponse {
	if s == nil {
		return nil
	}
	return &dto.ShiftResponse{
		ID:         s.ID,
		UserID:     s.UserID,
		UserName:   s.UserName,
		StartTime:  s.StartTime,
		EndTime:    s.EndTime,
		TotalSales: s.TotalSales,
		OrderCount: s.OrderCount,
	}
}

func toCartItemResponse(it entity.CartItem) dto.CartItemResponse {
	return dto.CartItemResponse{
		ID:        it.ID,
		ProductID: it.ProductID,
		Name:      it.Name,
		UnitPrice: it.UnitPrice,
		Quantity:  it.Quantity,
		Subtotal:  it.Subtotal(),
		ImageURL:  it.ImageURL,
	}
}

func toCartResponse(items []entity.CartItem) dto.CartResponse {
	out := dto.CartResponse{Items: make([]dto.CartItemResponse, 0, len(items))}
	for _, it := range items {
		out.Items = append(out.Items, toCartItemResponse(it))
		out.Total = out.Total.Add(it.Subtotal())
	}
	return out
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	items := make([]dto.CartItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, toCartItemResponse(it))
	}
	return &dto.OrderResponse{
		ID:            o.ID,
		ShiftID:       o.ShiftID,
		Items:         items,
		Total:         o.Total,
		Status:        string(o.Status),
		PaymentMethod: o.PaymentMethod,
		CustomerName:  o.CustomerName,
		CustomerPhone: o.CustomerPhone,
		EstimatedMin:  o.EstimatedMin,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}
