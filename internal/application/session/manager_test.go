package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/caja-rapida/internal/application/session"
	"github.com/tu-usuario/caja-rapida/internal/domain"
	"github.com/tu-usuario/caja-rapida/internal/domain/entity"
	"github.com/tu-usuario/caja-rapida/internal/domain/order"
	"github.com/tu-usuario/caja-rapida/internal/domain/repository"
	"github.com/tu-usuario/caja-rapida/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users map[string]*entity.User
}

func (f *fakeUserRepo) Create(u *entity.User) error { f.users[u.ID] = u; return nil }
func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}
func (f *fakeUserRepo) Update(u *entity.User) error                    { f.users[u.ID] = u; return nil }
func (f *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) { return nil, nil }
func (f *fakeUserRepo) CountByRole(roleID string) (int, error)         { return 0, nil }
func (f *fakeUserRepo) Delete(id string) error                         { delete(f.users, id); return nil }

type fakeRoleRepo struct {
	roles map[string]*entity.Role
}

func (f *fakeRoleRepo) Create(r *entity.Role) error { f.roles[r.ID] = r; return nil }
func (f *fakeRoleRepo) GetByID(id string) (*entity.Role, error) {
	r, ok := f.roles[id]
	if !ok {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}
func (f *fakeRoleRepo) Update(r *entity.Role) error   { f.roles[r.ID] = r; return nil }
func (f *fakeRoleRepo) List() ([]*entity.Role, error) { return nil, nil }
func (f *fakeRoleRepo) Delete(id string) error        { delete(f.roles, id); return nil }

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (f *fakeProductRepo) Create(p *entity.Product) error { f.products[p.ID] = p; return nil }
func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}
func (f *fakeProductRepo) Update(p *entity.Product) error                    { f.products[p.ID] = p; return nil }
func (f *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) { return nil, nil }
func (f *fakeProductRepo) CountByCategory(categoryID string) (int, error)    { return 0, nil }
func (f *fakeProductRepo) Delete(id string) error                            { delete(f.products, id); return nil }

type fakeShiftRepo struct {
	inserted  []*entity.Shift
	closed    []*entity.Shift
	failClose bool
}

func (f *fakeShiftRepo) Insert(s *entity.Shift) error {
	cp := *s
	f.inserted = append(f.inserted, &cp)
	return nil
}
func (f *fakeShiftRepo) Close(s *entity.Shift) error {
	if f.failClose {
		return assert.AnError
	}
	cp := *s
	f.closed = append(f.closed, &cp)
	return nil
}
func (f *fakeShiftRepo) GetByID(id string) (*entity.Shift, error)        { return nil, nil }
func (f *fakeShiftRepo) List(limit, offset int) ([]*entity.Shift, error) { return nil, nil }

type fakeOrderRepo struct {
	inserted      []*entity.Order
	statusUpdates map[string]entity.OrderStatus
}

func (f *fakeOrderRepo) Insert(o *entity.Order) error {
	cp := *o
	f.inserted = append(f.inserted, &cp)
	return nil
}
func (f *fakeOrderRepo) UpdateStatus(id string, status entity.OrderStatus, updatedAt time.Time) error {
	if f.statusUpdates == nil {
		f.statusUpdates = make(map[string]entity.OrderStatus)
	}
	f.statusUpdates[id] = status
	return nil
}
func (f *fakeOrderRepo) GetByID(id string) (*entity.Order, error)                { return nil, nil }
func (f *fakeOrderRepo) ListByRange(from, to time.Time) ([]*entity.Order, error) { return nil, nil }
func (f *fakeOrderRepo) ListByShift(shiftID string) ([]*entity.Order, error)     { return nil, nil }

// fakeTxRunner ejecuta el cuerpo directamente contra el repo en memoria: los
// tests validan la semántica del gestor, no la transaccionalidad de pgx.
type fakeTxRunner struct {
	repo *fakeOrderRepo
}

func (f *fakeTxRunner) RunOrder(ctx context.Context, fn func(repository.OrderRepository) error) error {
	return fn(f.repo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Armado del escenario
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	manager   *session.Manager
	shiftRepo *fakeShiftRepo
	orderRepo *fakeOrderRepo
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	comboBurger := dec("12.50")
	users := &fakeUserRepo{users: map[string]*entity.User{
		"u-caja":   {ID: "u-caja", Name: "Ana", PIN: "1234", RoleID: "r-caja", Status: "active"},
		"u-cocina": {ID: "u-cocina", Name: "Luis", PIN: "5678", RoleID: "r-cocina", Status: "active"},
	}}
	roles := &fakeRoleRepo{roles: map[string]*entity.Role{
		"r-caja":   {ID: "r-caja", Name: "cajero", Permissions: []string{entity.PermCaja}},
		"r-cocina": {ID: "r-cocina", Name: "cocinero", Permissions: []string{entity.PermKitchen}},
	}}
	products := &fakeProductRepo{products: map[string]*entity.Product{
		"p-burger": {ID: "p-burger", Name: "Hamburguesa", Price: dec("8.99"), ComboPrice: &comboBurger, Status: "active"},
		"p-soda":   {ID: "p-soda", Name: "Gaseosa", Price: dec("2.00"), Status: "active"},
	}}
	shifts := &fakeShiftRepo{}
	orders := &fakeOrderRepo{}

	m := session.NewManager(users, roles, products, shifts, orders, &fakeTxRunner{repo: orders}, logger.Nop())
	return &fixture{manager: m, shiftRepo: shifts, orderRepo: orders}
}

func startCashier(t *testing.T, f *fixture) {
	t.Helper()
	_, shift, err := f.manager.StartShift(context.Background(), "u-caja", "1234")
	require.NoError(t, err)
	require.NotNil(t, shift, "el rol cajero debe abrir turno")
}

// ──────────────────────────────────────────────────────────────────────────────
// Sesión y turno
// ──────────────────────────────────────────────────────────────────────────────

func TestStartShift_CajeroAbreTurno(t *testing.T) {
	f := newFixture(t)

	current, shift, err := f.manager.StartShift(context.Background(), "u-caja", "1234")
	require.NoError(t, err)
	require.NotNil(t, current)
	require.NotNil(t, shift)

	assert.Equal(t, "Ana", current.User.Name)
	assert.Equal(t, "u-caja", shift.UserID)
	assert.Nil(t, shift.EndTime, "el turno recién abierto no tiene cierre")
	assert.True(t, shift.TotalSales.IsZero())
	require.Len(t, f.shiftRepo.inserted, 1, "la apertura debe persistirse")
	assert.Equal(t, shift.ID, f.shiftRepo.inserted[0].ID)
}

func TestStartShift_CocineroNoAbreTurno(t *testing.T) {
	f := newFixture(t)

	current, shift, err := f.manager.StartShift(context.Background(), "u-cocina", "5678")
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Nil(t, shift, "sin permiso caja no se abre turno")
	assert.Empty(t, f.shiftRepo.inserted)
}

func TestStartShift_PINIncorrecto(t *testing.T) {
	f := newFixture(t)

	_, _, err := f.manager.StartShift(context.Background(), "u-caja", "0000")
	require.ErrorIs(t, err, domain.ErrPINIncorrecto)
	assert.Nil(t, f.manager.CurrentUser(), "un intento fallido no deja sesión")
}

func TestStartShift_UsuarioInexistente(t *testing.T) {
	f := newFixture(t)

	_, _, err := f.manager.StartShift(context.Background(), "u-nadie", "1234")
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestStartShift_RechazaSesionDoble(t *testing.T) {
	f := newFixture(t)
	startCashier(t, f)

	_, _, err := f.manager.StartShift(context.Background(), "u-cocina", "5678")
	require.ErrorIs(t, err, domain.ErrTurnoActivo,
		"con una sesión activa hay que cerrar antes de abrir otra")
}

func TestLogout_CierraTurnoConFinPosteriorAlInicio(t *testing.T) {
	f := newFixture(t)
	startCashier(t, f)

	closed, err := f.manager.Logout(context.Background())
	require.NoError(t, err)
	require.NotNil(t, closed)
	require.NotNil(t, closed.EndTime)
	assert.False(t, closed.EndTime.Before(closed.StartTime),
		"el cierre no puede ser anterior a la apertura")
	require.Len(t, f.shiftRepo.closed, 1, "el cierre debe persistirse")

	assert.Nil(t, f.manager.CurrentUser())
	assert.Nil(t, f.manager.ActiveShift())
	assert.Len(t, f.manager.ClosedShifts(), 1)
}

func TestLogout_EsIdempotente(t *testing.T) {
	f := newFixture(t)

	closed, err := f.manager.Logout(context.Background())
	require.NoError(t, err, "logout sin sesión no es un error")
	assert.Nil(t, closed)
}

func TestLogout_FalloDePersistenciaMantieneLaSesion(t *testing.T) {
	f := newFixture(t)
	startCashier(t, f)
	f.shiftRepo.failClose = true

	_, err := f.manager.Logout(context.Background())
	require.Error(t, err)

	assert.NotNil(t, f.manager.CurrentUser(), "si el cierre no persiste, la sesión sigue viva")
	shift := f.manager.ActiveShift()
	require.NotNil(t, shift)
	assert.Nil(t, shift.EndTime, "el turno debe quedar sin cierre para reintentar")
}

// ──────────────────────────────────────────────────────────────────────────────
// Carrito
// ──────────────────────────────────────────────────────────────────────────────

func TestAddToCart_RequiereSesion(t *testing.T) {
	f := newFixture(t)

	_, err := f.manager.AddToCart(context.Background(), "p-burger", false)
	require.ErrorIs(t, err, domain.ErrSesionRequerida)
}

func TestAddToCart_AcumulaYDistingueVariantes(t *testing.T) {
	f := newFixture(t)
	startCashier(t, f)
	ctx := context.Background()

	items, err := f.manager.AddToCart(ctx, "p-burger", false)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)

	// Misma variante: incrementa la línea existente
	items, err = f.manager.AddToCart(ctx, "p-burger", false)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)

	// Variante combo: línea separada con su propio precio
	items, err = f.manager.AddToCart(ctx, "p-burger", true)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "p-burger-combo", items[1].ID)
	assert.Equal(t, "Hamburguesa (combo)", items[1].Name)
	assert.True(t, items[1].UnitPrice.Equal(dec("12.50")))
	assert.True(t, items[0].UnitPrice.Equal(dec("8.99")),
		"la línea sencilla conserva el precio base")
}

func TestAddToCart_ProductoInexistente(t *testing.T) {
	f := newFixture(t)
	startCashier(t, f)

	_, err := f.manager.AddToCart(context.Background(), "p-nada", false)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAddToCart_ComboSinPrecioComboUsaPrecioBase(t *testing.T) {
	f := newFixture(t)
	startCashier(t, f)

	items, err := f.manager.AddToCart(context.Background(), "p-soda", true)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, items[0].UnitPrice.Equal(dec("2.00")))
}

func TestUpdateQuantity_CeroEliminaExactamenteLaLinea(t *testing.T) {
	f := newFixture(t)
	startCashier(t, f)
	ctx := context.Background()

	_, err := f.manager.AddToCart(ctx, "p-burger", false)
	require.NoError(t, err)
	_, err = f.manager.AddToCart(ctx, "p-soda", false)
	require.NoError(t, err)

	items, err := f.manager.UpdateQuantity("p-burger", 0)
	require.NoError(t, err)
	require.Len(t, items, 1, "solo la línea afectada desaparece")
	assert.Equal(t, "p-soda", items[0].ID)
}

func TestUpdateQuantity_ReemplazaCantidad(t *testing.T) {
	f := newFixture(t)
	startCashier(t, f)

	_, err := f.manager.AddToCart(context.Background(), "p-burger", false)
	require.NoError(t, err)

	items, err := f.manager.UpdateQuantity("p-burger", 5)
	require.NoError(t, err)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestUpdateQuantity_RechazaNegativosYLineasDesconocidas(t *testing.T) {
	f := newFixture(t)
	startCashier(t, f)

	_, err := f.manager.UpdateQuantity("p-burger", -1)
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.manager.UpdateQuantity("p-fantasma", 2)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClearCart(t *testing.T) {
	f := newFixture(t)
	startCashier(t, f)

	_, err := f.manager.AddToCart(context.Background(), "p-burger", false)
	require.NoError(t, err)

	f.manager.ClearCart()
	assert.Empty(t, f.manager.Cart())
}

// ──────────────────────────────────────────────────────────────────────────────
// Pago y pedidos
// ──────────────────────────────────────────────────────────────────────────────

func TestConfirmPayment_EscenarioEfectivo(t *testing.T) {
	f := newFixture(t)
	startCashier(t, f)
	ctx := context.Background()

	// 2 × 8.99 = 17.98
	_, err := f.manager.AddToCart(ctx, "p-burger", false)
	require.NoError(t, err)
	_, err = f.manager.AddToCart(ctx, "p-burger", false)
	require.NoError(t, err)

	o, err := f.manager.ConfirmPayment(ctx, session.ConfirmPaymentInput{
		Method:       entity.PaymentCash,
		CustomerName: "Pedro",
	})
	require.NoError(t, err)
	require.NotNil(t, o)

	assert.True(t, o.Total.Equal(dec("17.98")), "total esperado 17.98, fue %s", o.Total)
	assert.Equal(t, entity.StatusPendiente, o.Status, "todo pedido nace pendiente")
	assert.Equal(t, entity.PaymentCash, o.PaymentMethod)
	require.Len(t, o.Items, 1)
	assert.Equal(t, 2, o.Items[0].Quantity)

	// Write-through: cabecera y líneas insertadas vía transacción
	require.Len(t, f.orderRepo.inserted, 1)
	assert.Equal(t, o.ID, f.orderRepo.inserted[0].ID)

	// El turno acumula la venta y el carrito queda vacío
	shift := f.manager.ActiveShift()
	require.NotNil(t, shift)
	assert.True(t, shift.TotalSales.Equal(dec("17.98")))
	assert.Equal(t, 1, shift.OrderCount)
	assert.Empty(t, f.manager.Cart())
}

func TestConfirmPayment_CarritoVacio(t *testing.T) {
	f := newFixture(t)
	startCashier(t, f)

	_, err := f.manager.ConfirmPayment(context.Background(), session.ConfirmPaymentInput{Method: entity.PaymentCard})
	require.ErrorIs(t, err, domain.ErrCarritoVacio)
}

func TestConfirmPayment_SinTurnoNoAsociaShiftID(t *testing.T) {
	f := newFixture(t)
	// cocinero: sesión sin turno de caja
	_, _, err := f.manager.StartShift(context.Background(), "u-cocina", "5678")
	require.NoError(t, err)

	_, err = f.manager.AddToCart(context.Background(), "p-soda", false)
	require.NoError(t, err)

	o, err := f.manager.ConfirmPayment(context.Background(), session.ConfirmPaymentInput{Method: entity.PaymentTransfer})
	require.NoError(t, err)
	assert.Empty(t, o.ShiftID, "sin turno abierto el pedido no referencia turno")
}

func TestAdvanceOrder_SoloSucesorInmediato(t *testing.T) {
	f := newFixture(t)
	startCashier(t, f)
	ctx := context.Background()

	_, err := f.manager.AddToCart(ctx, "p-soda", false)
	require.NoError(t, err)
	o, err := f.manager.ConfirmPayment(ctx, session.ConfirmPaymentInput{Method: entity.PaymentCash})
	require.NoError(t, err)

	// Salto pendiente→listo: rechazado sin mutar
	_, err = f.manager.AdvanceOrder(ctx, o.ID, entity.StatusListo)
	require.ErrorIs(t, err, order.ErrTransicionInvalida)
	assert.Equal(t, entity.StatusPendiente, f.manager.Orders()[0].Status)

	// Avance válido
	updated, err := f.manager.AdvanceOrder(ctx, o.ID, entity.StatusEnPreparacion)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusEnPreparacion, updated.Status)
	assert.Equal(t, entity.StatusEnPreparacion, f.orderRepo.statusUpdates[o.ID],
		"el avance debe persistirse")
}

func TestAdvanceOrder_PedidoInexistente(t *testing.T) {
	f := newFixture(t)

	_, err := f.manager.AdvanceOrder(context.Background(), "o-nada", entity.StatusEnPreparacion)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReadyNotifications_UnaVezPorPedido(t *testing.T) {
	f := newFixture(t)
	startCashier(t, f)
	ctx := context.Background()

	_, err := f.manager.AddToCart(ctx, "p-soda", false)
	require.NoError(t, err)
	o, err := f.manager.ConfirmPayment(ctx, session.ConfirmPaymentInput{Method: entity.PaymentCash})
	require.NoError(t, err)

	assert.Empty(t, f.manager.ReadyNotifications(), "pendiente no notifica")

	_, err = f.manager.AdvanceOrder(ctx, o.ID, entity.StatusEnPreparacion)
	require.NoError(t, err)
	_, err = f.manager.AdvanceOrder(ctx, o.ID, entity.StatusListo)
	require.NoError(t, err)

	assert.Equal(t, []string{o.ID}, f.manager.ReadyNotifications())
	assert.Empty(t, f.manager.ReadyNotifications(), "la segunda consulta no repite la notificación")
}

// Los snapshots son copias defensivas: mutarlos no toca el estado interno.
func TestSnapshots_SonCopias(t *testing.T) {
	f := newFixture(t)
	startCashier(t, f)

	_, err := f.manager.AddToCart(context.Background(), "p-burger", false)
	require.NoError(t, err)

	cart := f.manager.Cart()
	cart[0].Quantity = 99

	again := f.manager.Cart()
	assert.Equal(t, 1, again[0].Quantity, "mutar el snapshot no debe afectar el carrito real")
}
