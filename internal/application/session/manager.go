// Package session implementa el gestor de sesión y pedidos: el árbol de estado
// compartido (usuario de turno, turno de caja, carrito y registro de pedidos)
// que en el diseño original vivía disperso en la capa de presentación.
//
// Es un contenedor de estado explícito: los lectores reciben copias, nunca los
// slices internos, y toda mutación pasa por un método del Manager bajo mutex.
// El estado vivo es volátil; pedidos y turnos confirmados se escriben además a
// la base de datos (write-through) para que los reportes sobrevivan reinicios.
package session

import (
	"context"
	"crypto/subtle"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/caja-rapida/internal/domain"
	"github.com/tu-usuario/caja-rapida/internal/domain/access"
	"github.com/tu-usuario/caja-rapida/internal/domain/entity"
	"github.com/tu-usuario/caja-rapida/internal/domain/order"
	"github.com/tu-usuario/caja-rapida/internal/domain/repository"
	"github.com/tu-usuario/caja-rapida/pkg/logger"
)

// Manager gestor de sesión/turno, carrito y pedidos en memoria.
type Manager struct {
	userRepo    repository.UserRepository
	roleRepo    repository.RoleRepository
	productRepo repository.ProductRepository
	shiftRepo   repository.ShiftRepository
	orderRepo   repository.OrderRepository
	orderTx     OrderTxRunner
	log         *logger.Logger

	mu           sync.Mutex
	currentUser  *access.CurrentUser
	activeShift  *entity.Shift
	closedShifts []entity.Shift
	cart         []entity.CartItem
	orders       []entity.Order
	notifier     *order.ReadyNotifier
}

// NewManager construye el gestor con sus dependencias.
func NewManager(
	userRepo repository.UserRepository,
	roleRepo repository.RoleRepository,
	productRepo repository.ProductRepository,
	shiftRepo repository.ShiftRepository,
	orderRepo repository.OrderRepository,
	orderTx OrderTxRunner,
	log *logger.Logger,
) *Manager {
	return &Manager{
		userRepo:    userRepo,
		roleRepo:    roleRepo,
		productRepo: productRepo,
		shiftRepo:   shiftRepo,
		orderRepo:   orderRepo,
		orderTx:     orderTx,
		log:         log,
		notifier:    order.NewReadyNotifier(),
	}
}

// ── Sesión y turno ────────────────────────────────────────────────────────────

// StartShift autentica a un empleado por PIN, resuelve su rol y, solo si el rol
// incluye el permiso "caja", abre un turno (write-through a la tabla shifts).
//
// El PIN se compara en texto plano contra el registro almacenado, como en el
// diseño original; se usa comparación en tiempo constante pero el valor no está
// hasheado ni hay rate limiting (brecha documentada en DESIGN.md).
func (m *Manager) StartShift(ctx context.Context, userID, pin string) (*access.CurrentUser, *entity.Shift, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.currentUser != nil {
		return nil, nil, domain.ErrTurnoActivo
	}

	user, err := m.userRepo.GetByID(userID)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, domain.ErrUserNotFound
	}
	if subtle.ConstantTimeCompare([]byte(user.PIN), []byte(pin)) != 1 {
		return nil, nil, domain.ErrPINIncorrecto
	}

	role, err := m.roleRepo.GetByID(user.RoleID)
	if err != nil {
		return nil, nil, err
	}
	if role == nil {
		// Rol no resoluble: se reporta y no se toca el estado.
		return nil, nil, domain.ErrRolNoEncontrado
	}

	current := &access.CurrentUser{User: *user, Role: *role}

	var shift *entity.Shift
	if role.HasPermission(entity.PermCaja) {
		shift = &entity.Shift{
			ID:         uuid.New().String(),
			UserID:     user.ID,
			UserName:   user.Name,
			StartTime:  time.Now(),
			TotalSales: decimal.Zero,
		}
		// Persistir antes de mutar memoria: si falla, la operación aborta
		// sin cambio de estado parcial.
		if err := m.shiftRepo.Insert(shift); err != nil {
			return nil, nil, err
		}
	}

	m.currentUser = current
	m.activeShift = shift

	ev := m.log.Info().Str("user_id", user.ID).Str("role", role.Name)
	if shift != nil {
		ev = ev.Str("shift_id", shift.ID)
	}
	ev.Msg("sesión iniciada")

	return copyCurrentUser(current), copyShift(shift), nil
}

// Logout cierra el turno activo (end >= start, write-through) y limpia la
// sesión. Es idempotente: sin sesión activa no hace nada y no devuelve error.
func (m *Manager) Logout(ctx context.Context) (*entity.Shift, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.currentUser == nil {
		return nil, nil
	}

	var closed *entity.Shift
	if m.activeShift != nil {
		end := time.Now()
		m.activeShift.EndTime = &end
		if err := m.shiftRepo.Close(m.activeShift); err != nil {
			// Abortamos dejando la sesión viva: el cajero puede reintentar.
			m.activeShift.EndTime = nil
			return nil, err
		}
		m.closedShifts = append(m.closedShifts, *m.activeShift)
		closed = m.activeShift
	}

	m.log.Info().Str("user_id", m.currentUser.User.ID).Msg("sesión cerrada")

	m.currentUser = nil
	m.activeShift = nil
	m.cart = nil

	return copyShift(closed), nil
}

// CurrentUser devuelve una copia del usuario en sesión, o nil.
func (m *Manager) CurrentUser() *access.CurrentUser {
	m.mu.Lock()
	defer m.mu.Unlock()
	return copyCurrentUser(m.currentUser)
}

// ActiveShift devuelve una copia del turno abierto, o nil.
func (m *Manager) ActiveShift() *entity.Shift {
	m.mu.Lock()
	defer m.mu.Unlock()
	return copyShift(m.activeShift)
}

// ClosedShifts devuelve el histórico de turnos cerrados en esta sesión de proceso.
func (m *Manager) ClosedShifts() []entity.Shift {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]entity.Shift, len(m.closedShifts))
	copy(out, m.closedShifts)
	return out
}

// CanAccess aplica la política de acceso con el usuario en sesión actual.
func (m *Manager) CanAccess(identity *access.Identity, permission string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return access.CanAccess(identity, m.currentUser, permission)
}

// ── Carrito ───────────────────────────────────────────────────────────────────

// AddToCart agrega una unidad del producto al carrito. El ID de línea distingue
// la variante combo; si la línea ya existe se incrementa su cantidad, si no se
// agrega al final (el orden de inserción determina el orden de despliegue).
// Sin sesión activa no muta nada y devuelve ErrSesionRequerida.
func (m *Manager) AddToCart(ctx context.Context, productID string, combo bool) ([]entity.CartItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.currentUser == nil {
		return nil, domain.ErrSesionRequerida
	}

	product, err := m.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	lineID := product.ID
	if combo {
		lineID += "-combo"
	}

	for i := range m.cart {
		if m.cart[i].ID == lineID {
			m.cart[i].Quantity++
			return m.cartSnapshot(), nil
		}
	}

	name := product.Name
	if combo {
		name += " (combo)"
	}
	m.cart = append(m.cart, entity.CartItem{
		ID:        lineID,
		ProductID: product.ID,
		Name:      name,
		UnitPrice: product.UnitPrice(combo),
		Quantity:  1,
		ImageURL:  product.ImageURL,
	})
	return m.cartSnapshot(), nil
}

// UpdateQuantity reemplaza la cantidad de una línea. Cantidad cero elimina
// exactamente esa línea; cantidades negativas se rechazan.
func (m *Manager) UpdateQuantity(lineID string, quantity int) ([]entity.CartItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if quantity < 0 {
		return nil, domain.ErrInvalidInput
	}

	for i := range m.cart {
		if m.cart[i].ID != lineID {
			continue
		}
		if quantity == 0 {
			m.cart = append(m.cart[:i], m.cart[i+1:]...)
		} else {
			m.cart[i].Quantity = quantity
		}
		return m.cartSnapshot(), nil
	}
	return nil, domain.ErrNotFound
}

// ClearCart vacía el carrito incondicionalmente.
func (m *Manager) ClearCart() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cart = nil
}

// Cart devuelve una copia del carrito actual.
func (m *Manager) Cart() []entity.CartItem {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cartSnapshot()
}

func (m *Manager) cartSnapshot() []entity.CartItem {
	out := make([]entity.CartItem, len(m.cart))
	copy(out, m.cart)
	return out
}

// ── Pedidos ───────────────────────────────────────────────────────────────────

// ConfirmPaymentInput datos del diálogo de pago.
type ConfirmPaymentInput struct {
	Method        string
	CustomerName  string
	CustomerPhone string
	EstimatedMin  int
}

// ConfirmPayment convierte el carrito en un pedido en estado pendiente:
// total = Σ cantidad × precio unitario, inserción atómica de cabecera y líneas,
// acumulado de ventas del turno y carrito vacío al terminar.
func (m *Manager) ConfirmPayment(ctx context.Context, in ConfirmPaymentInput) (*entity.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.currentUser == nil {
		return nil, domain.ErrSesionRequerida
	}
	if len(m.cart) == 0 {
		return nil, domain.ErrCarritoVacio
	}
	if in.Method == "" {
		return nil, domain.ErrInvalidInput
	}

	total := decimal.Zero
	items := make([]entity.CartItem, len(m.cart))
	copy(items, m.cart)
	for _, it := range items {
		total = total.Add(it.Subtotal())
	}

	now := time.Now()
	o := &entity.Order{
		ID:            uuid.New().String(),
		Items:         items,
		Total:         total,
		Status:        entity.StatusPendiente,
		PaymentMethod: in.Method,
		CustomerName:  in.CustomerName,
		CustomerPhone: in.CustomerPhone,
		EstimatedMin:  in.EstimatedMin,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if m.activeShift != nil {
		o.ShiftID = m.activeShift.ID
	}

	if err := m.orderTx.RunOrder(ctx, func(orderRepo repository.OrderRepository) error {
		return orderRepo.Insert(o)
	}); err != nil {
		return nil, err
	}

	m.orders = append(m.orders, *o)
	if m.activeShift != nil {
		m.activeShift.TotalSales = m.activeShift.TotalSales.Add(total)
		m.activeShift.OrderCount++
	}
	m.cart = nil

	m.log.Info().
		Str("order_id", o.ID).
		Str("method", in.Method).
		Str("total", total.StringFixed(2)).
		Msg("pedido confirmado")

	return copyOrder(o), nil
}

// AdvanceOrder intenta la transición de estado indicada. Solo se acepta el
// sucesor inmediato; cualquier otra petición se rechaza sin cambio de estado.
func (m *Manager) AdvanceOrder(ctx context.Context, orderID string, next entity.OrderStatus) (*entity.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := -1
	for i := range m.orders {
		if m.orders[i].ID == orderID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, domain.ErrNotFound
	}

	newStatus, err := order.Transition(m.orders[idx].Status, next)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := m.orderRepo.UpdateStatus(orderID, newStatus, now); err != nil {
		return nil, err
	}

	m.orders[idx].Status = newStatus
	m.orders[idx].UpdatedAt = now

	m.log.Debug().Str("order_id", orderID).Str("status", string(newStatus)).Msg("estado de pedido avanzado")

	return copyOrder(&m.orders[idx]), nil
}

// Orders devuelve copias de todos los pedidos del proceso, en orden de creación.
func (m *Manager) Orders() []entity.Order {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]entity.Order, len(m.orders))
	for i := range m.orders {
		out[i] = *copyOrder(&m.orders[i])
	}
	return out
}

// ReadyNotifications devuelve los IDs de pedidos que acaban de pasar a listo,
// exactamente una vez por pedido (detección por flanco, ver order.ReadyNotifier).
func (m *Manager) ReadyNotifications() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.notifier.Observe(m.orders)
}

// ── copias defensivas ─────────────────────────────────────────────────────────

func copyCurrentUser(cu *access.CurrentUser) *access.CurrentUser {
	if cu == nil {
		return nil
	}
	out := *cu
	out.Role.Permissions = append([]string(nil), cu.Role.Permissions...)
	return &out
}

func copyShift(s *entity.Shift) *entity.Shift {
	if s == nil {
		return nil
	}
	out := *s
	if s.EndTime != nil {
		end := *s.EndTime
		out.EndTime = &end
	}
	return &out
}

func copyOrder(o *entity.Order) *entity.Order {
	if o == nil {
		return nil
	}
	out := *o
	out.Items = append([]entity.CartItem(nil), o.Items...)
	return &out
}
