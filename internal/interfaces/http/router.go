package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/caja-rapida/internal/application/auth"
	"github.com/tu-usuario/caja-rapida/internal/application/reports"
	"github.com/tu-usuario/caja-rapida/internal/application/session"
	"github.com/tu-usuario/caja-rapida/internal/application/usecase"
	"github.com/tu-usuario/caja-rapida/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Manager      *session.Manager
	ReportUC     *reports.ReportUseCase
	ShiftPDF     ShiftPDFGenerator
	AuthUC       *auth.AuthUseCase
	UserUC       *usecase.UserUseCase
	RoleUC       *usecase.RoleUseCase
	ProductUC    *usecase.ProductUseCase
	CategoryUC   *usecase.CategoryUseCase
	IngredientUC *usecase.IngredientUseCase
	ExpenseUC    *usecase.ExpenseUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
//
// Hay dos regímenes de autorización:
//   - Panel de administración (/api/auth/me y los CRUD): requiere Bearer Token.
//   - Superficies operativas (caja, cocina, reportes): se autorizan por la
//     sesión de turno del proceso; un token de administración válido también
//     da acceso (OptionalAuthMiddleware + RequirePermission).
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth del panel (público el login, protegido el resto)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Sesión de empleado por PIN (público: es la puerta de entrada del kiosco)
	sessionGroup := api.Group("/session")
	sessionHandler := NewSessionHandler(deps.Manager)
	sessionGroup.Post("/", sessionHandler.Start)
	sessionGroup.Get("/", sessionHandler.Current)
	sessionGroup.Delete("/", sessionHandler.Logout)

	// Carrito (pantalla de caja)
	cartGroup := api.Group("/cart",
		OptionalAuthMiddleware(deps.JWTSecret),
		RequirePermission(entity.PermCaja, deps.Manager))
	cartHandler := NewCartHandler(deps.Manager)
	cartGroup.Get("/", cartHandler.Get)
	cartGroup.Delete("/", cartHandler.Clear)
	cartGroup.Post("/items", cartHandler.Add)
	cartGroup.Put("/items/:lineId", cartHandler.UpdateLine)

	// Pedidos: confirmar exige caja y el tablero de seguimiento es de cocina.
	// Los avisos de "listo" y el avance de estado se comparten con caja, que los
	// usa para anunciar el pedido y confirmar la entrega al cliente (el handler
	// limita un turno sin permiso de cocina a la transición listo → entregado).
	orderHandler := NewOrderHandler(deps.Manager)
	ordersOptAuth := OptionalAuthMiddleware(deps.JWTSecret)
	kitchenOrCaja := RequireAnyPermission(deps.Manager, entity.PermKitchen, entity.PermCaja)
	api.Post("/orders", ordersOptAuth, RequirePermission(entity.PermCaja, deps.Manager), orderHandler.Confirm)
	api.Get("/orders", ordersOptAuth, RequirePermission(entity.PermKitchen, deps.Manager), orderHandler.List)
	api.Get("/orders/notifications", ordersOptAuth, kitchenOrCaja, orderHandler.Notifications)
	api.Put("/orders/:id/status", ordersOptAuth, kitchenOrCaja, orderHandler.Advance)

	// Reportes y gastos (pantalla de reportes)
	reportsGroup := api.Group("/reports",
		OptionalAuthMiddleware(deps.JWTSecret),
		RequirePermission(entity.PermReports, deps.Manager))
	reportHandler := NewReportHandler(deps.ReportUC, deps.ShiftPDF)
	reportsGroup.Get("/daily", reportHandler.Daily)
	reportsGroup.Get("/sales", reportHandler.Sales)
	reportsGroup.Get("/shifts/:id/pdf", reportHandler.ShiftPDF)

	expensesGroup := api.Group("/expenses",
		OptionalAuthMiddleware(deps.JWTSecret),
		RequirePermission(entity.PermReports, deps.Manager))
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expensesGroup.Post("/", expenseHandler.Create)
	expensesGroup.Get("/", expenseHandler.List)
	expensesGroup.Delete("/:id", expenseHandler.Delete)

	// Menú e insumos (pantalla de inventario)
	invAuth := OptionalAuthMiddleware(deps.JWTSecret)
	invPerm := RequirePermission(entity.PermInventory, deps.Manager)

	productsGroup := api.Group("/products", invAuth, invPerm)
	productHandler := NewProductHandler(deps.ProductUC)
	productsGroup.Post("/", productHandler.Create)
	productsGroup.Get("/", productHandler.List)
	productsGroup.Get("/:id", productHandler.GetByID)
	productsGroup.Put("/:id", productHandler.Update)
	productsGroup.Delete("/:id", productHandler.Delete)

	categoriesGroup := api.Group("/categories", invAuth, invPerm)
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categoriesGroup.Post("/", categoryHandler.Create)
	categoriesGroup.Get("/", categoryHandler.List)
	categoriesGroup.Get("/:id", categoryHandler.GetByID)
	categoriesGroup.Put("/:id", categoryHandler.Update)
	categoriesGroup.Delete("/:id", categoryHandler.Delete)

	ingredientsGroup := api.Group("/ingredients", invAuth, invPerm)
	ingredientHandler := NewIngredientHandler(deps.IngredientUC)
	ingredientsGroup.Post("/", ingredientHandler.Create)
	ingredientsGroup.Get("/", ingredientHandler.List)
	ingredientsGroup.Get("/low-stock", ingredientHandler.LowStock)
	ingredientsGroup.Get("/:id", ingredientHandler.GetByID)
	ingredientsGroup.Put("/:id", ingredientHandler.Update)
	ingredientsGroup.Delete("/:id", ingredientHandler.Delete)

	// Empleados y roles (pantalla de administración)
	adminAuth := OptionalAuthMiddleware(deps.JWTSecret)
	adminPerm := RequirePermission(entity.PermAdmin, deps.Manager)

	usersGroup := api.Group("/users", adminAuth, adminPerm)
	userHandler := NewUserHandler(deps.UserUC)
	usersGroup.Post("/", userHandler.Create)
	usersGroup.Get("/", userHandler.List)
	usersGroup.Get("/:id", userHandler.GetByID)
	usersGroup.Put("/:id", userHandler.Update)
	usersGroup.Delete("/:id", userHandler.Delete)

	rolesGroup := api.Group("/roles", adminAuth, adminPerm)
	roleHandler := NewRoleHandler(deps.RoleUC)
	rolesGroup.Post("/", roleHandler.Create)
	rolesGroup.Get("/", roleHandler.List)
	rolesGroup.Get("/:id", roleHandler.GetByID)
	rolesGroup.Put("/:id", roleHandler.Update)
	rolesGroup.Delete("/:id", roleHandler.Delete)
}
