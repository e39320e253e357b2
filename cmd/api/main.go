package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/caja-rapida/internal/application/auth"
	"github.com/tu-usuario/caja-rapida/internal/application/reports"
	"github.com/tu-usuario/caja-rapida/internal/application/session"
	"github.com/tu-usuario/caja-rapida/internal/application/usecase"
	infrapdf "github.com/tu-usuario/caja-rapida/internal/infrastructure/pdf"
	"github.com/tu-usuario/caja-rapida/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/caja-rapida/internal/interfaces/http"
	"github.com/tu-usuario/caja-rapida/pkg/config"
	"github.com/tu-usuario/caja-rapida/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	roleRepo := postgres.NewRoleRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	ingredientRepo := postgres.NewIngredientRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	shiftRepo := postgres.NewShiftRepository(pool)
	adminRepo := postgres.NewAdminRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Gestor de sesión: el estado vivo de caja, cocina y pedidos del proceso.
	manager := session.NewManager(userRepo, roleRepo, productRepo, shiftRepo, orderRepo, txRunner, log.Component("session"))

	reportUC := reports.NewReportUseCase(manager, orderRepo, expenseRepo, shiftRepo)
	userUC := usecase.NewUserUseCase(userRepo, roleRepo)
	roleUC := usecase.NewRoleUseCase(roleRepo, userRepo)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, productRepo)
	ingredientUC := usecase.NewIngredientUseCase(ingredientRepo)
	expenseUC := usecase.NewExpenseUseCase(expenseRepo)
	authUC := auth.NewAuthUseCase(adminRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// PDF: cierre de caja del turno
	pdfGenerator := infrapdf.NewShiftReportGenerator(cfg.App.Name)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Caja Rápida API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Manager:      manager,
		ReportUC:     reportUC,
		ShiftPDF:     pdfGenerator,
		AuthUC:       authUC,
		UserUC:       userUC,
		RoleUC:       roleUC,
		ProductUC:    productUC,
		CategoryUC:   categoryUC,
		IngredientUC: ingredientUC,
		ExpenseUC:    expenseUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
