package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/caja-rapida/internal/domain/access"
	"github.com/tu-usuario/caja-rapida/internal/domain/entity"
	apphttp "github.com/tu-usuario/caja-rapida/internal/interfaces/http"
	pkgjwt "github.com/tu-usuario/caja-rapida/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testAdminID   = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "caja-rapida-test"
	testExpMin    = 60
)

// fakeChecker simula el gestor de sesión: un usuario en turno fijo (o ninguno)
// con la política de acceso real.
type fakeChecker struct {
	current *access.CurrentUser
}

func (f *fakeChecker) CanAccess(identity *access.Identity, permission string) bool {
	return access.CanAccess(identity, f.current, permission)
}

func (f *fakeChecker) CurrentUser() *access.CurrentUser { return f.current }

func cashierSession() *access.CurrentUser {
	return &access.CurrentUser{
		User: entity.User{ID: "u1", Name: "Ana"},
		Role: entity.Role{ID: "r1", Name: "cajero", Permissions: []string{entity.PermCaja}},
	}
}

// buildTestApp construye una aplicación Fiber mínima con la cadena de las
// superficies operativas: auth opcional + permiso requerido.
func buildTestApp(permission string, checker *fakeChecker) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.OptionalAuthMiddleware(testJWTSecret),
		apphttp.RequirePermission(permission, checker),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"ok": true, "admin_id": apphttp.GetAdminID(c)})
		},
	)
	return app
}

func adminToken(t *testing.T) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testAdminID, "admin@local", "admin", testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequirePermission
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: rol en turno con el permiso requerido → 200 sin token alguno.
func TestRequirePermission_SesionConPermisoAccede(t *testing.T) {
	app := buildTestApp(entity.PermCaja, &fakeChecker{current: cashierSession()})
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"el cajero en turno debe acceder a la pantalla de caja sin token")
}

// Caso 2: rol en turno sin el permiso → 403 FORBIDDEN.
func TestRequirePermission_SesionSinPermisoBloqueada(t *testing.T) {
	app := buildTestApp(entity.PermKitchen, &fakeChecker{current: cashierSession()})
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"el cajero no debe acceder a la pantalla de cocina")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

// Caso 3: sin sesión ni token → 401 SESSION_REQUIRED.
func TestRequirePermission_SinSesionNiToken(t *testing.T) {
	app := buildTestApp(entity.PermCaja, &fakeChecker{})
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "SESSION_REQUIRED")
}

// Caso 4: token de administración válido → acceso total aunque no haya sesión.
func TestRequirePermission_AdminTokenAccedeSinSesion(t *testing.T) {
	app := buildTestApp(entity.PermAdmin, &fakeChecker{})
	resp := doRequest(t, app, adminToken(t))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"la identidad de administración pasa cualquier permiso")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testAdminID, body["admin_id"])
}

// Caso 5: token inválido en la cadena opcional NO rompe la petición: se ignora
// y decide la sesión de turno.
func TestRequirePermission_TokenInvalidoSeIgnora(t *testing.T) {
	app := buildTestApp(entity.PermCaja, &fakeChecker{current: cashierSession()})
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"con sesión válida, un token basura no debe bloquear")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireAnyPermission — rutas compartidas entre pantallas
// ──────────────────────────────────────────────────────────────────────────────

func buildAnyTestApp(checker *fakeChecker, permissions ...string) *fiber.App {
	app := fiber.New()
	app.Get("/shared",
		apphttp.OptionalAuthMiddleware(testJWTSecret),
		apphttp.RequireAnyPermission(checker, permissions...),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"ok": true})
		},
	)
	return app
}

func doSharedRequest(t *testing.T, app *fiber.App) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/shared", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// El cajero accede a una ruta compartida cocina-o-caja aunque no tenga cocina.
func TestRequireAnyPermission_CajaAccedeARutaCompartida(t *testing.T) {
	app := buildAnyTestApp(&fakeChecker{current: cashierSession()},
		entity.PermKitchen, entity.PermCaja)
	resp := doSharedRequest(t, app)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"basta con uno de los permisos para acceder")
}

// Un rol sin ninguno de los permisos requeridos recibe 403.
func TestRequireAnyPermission_SinNingunPermisoBloqueada(t *testing.T) {
	reportero := &access.CurrentUser{
		User: entity.User{ID: "u2", Name: "Rita"},
		Role: entity.Role{ID: "r2", Name: "reportes", Permissions: []string{entity.PermReports}},
	}
	app := buildAnyTestApp(&fakeChecker{current: reportero},
		entity.PermKitchen, entity.PermCaja)
	resp := doSharedRequest(t, app)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

// Sin sesión ni token la respuesta sigue siendo 401.
func TestRequireAnyPermission_SinSesionNiToken(t *testing.T) {
	app := buildAnyTestApp(&fakeChecker{}, entity.PermKitchen, entity.PermCaja)
	resp := doSharedRequest(t, app)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "SESSION_REQUIRED")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware — frontera estricta del panel de administración
// ──────────────────────────────────────────────────────────────────────────────

func buildStrictApp() *fiber.App {
	app := fiber.New()
	app.Get("/admin", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"admin_id":    apphttp.GetAdminID(c),
			"admin_email": apphttp.GetAdminEmail(c),
		})
	})
	return app
}

func TestAuthMiddleware_ExtraeIdentidad(t *testing.T) {
	app := buildStrictApp()

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", adminToken(t))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testAdminID, body["admin_id"])
	assert.Equal(t, "admin@local", body["admin_email"])
}

func TestAuthMiddleware_SinHeaderRetorna401(t *testing.T) {
	app := buildStrictApp()

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

func TestAuthMiddleware_TokenInvalidoRetorna401(t *testing.T) {
	app := buildStrictApp()

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer token.invalido.aqui")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Un token firmado con otro secreto se rechaza.
func TestAuthMiddleware_FirmaIncorrectaRetorna401(t *testing.T) {
	app := buildStrictApp()

	tok, err := pkgjwt.Generate("otro-secreto", testAdminID, "admin@local", "admin", testIssuer, testExpMin)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests JWT pkg — generate/parse
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testAdminID, "admin@local", "admin", testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	id, email, role, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testAdminID, id)
	assert.Equal(t, "admin@local", email)
	assert.Equal(t, "admin", role)
}

func TestJWT_SecretVacioFalla(t *testing.T) {
	_, err := pkgjwt.Generate("", testAdminID, "a@b", "admin", testIssuer, testExpMin)
	assert.Error(t, err)

	_, _, _, err = pkgjwt.Parse("", "lo-que-sea")
	assert.Error(t, err)
}
