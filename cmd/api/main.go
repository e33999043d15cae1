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

	"github.com/jhoicas/stockboard-api/internal/application/auth"
	"github.com/jhoicas/stockboard-api/internal/application/reporting"
	"github.com/jhoicas/stockboard-api/internal/infrastructure/cache"
	"github.com/jhoicas/stockboard-api/internal/infrastructure/excel"
	infrapdf "github.com/jhoicas/stockboard-api/internal/infrastructure/pdf"
	"github.com/jhoicas/stockboard-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/stockboard-api/internal/interfaces/http"
	"github.com/jhoicas/stockboard-api/pkg/config"
	"github.com/jhoicas/stockboard-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	priceRepo := postgres.NewPriceHistoryRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	// Caché del resumen: si Redis no responde arrancamos igual, sin caché.
	summaryCache, err := cache.NewSummaryCache(cfg.Cache)
	if err != nil {
		log.Warn().Err(err).Msg("caché Redis no disponible, se sigue sin caché")
		summaryCache = cache.NewNoopSummaryCache()
	}

	workbookGen := excel.NewInventoryWorkbookGenerator()
	pdfGen := infrapdf.NewMarotoMovementReport()

	authUC := auth.NewAuthUseCase(userRepo, nil, cfg.Auth.LoginRedirect)
	dashboardUC := reporting.NewDashboardUseCase(productRepo, supplierRepo, userRepo, priceRepo, summaryCache)
	inventoryUC := reporting.NewInventoryUseCase(productRepo, movementRepo, cfg.Report.WindowDays)
	exportUC := reporting.NewExportUseCase(productRepo, movementRepo, workbookGen, pdfGen)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30, // los exports XLSX/PDF pueden tardar
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Zerolog()))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Stockboard API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		DashboardUC: dashboardUC,
		InventoryUC: inventoryUC,
		ExportUC:    exportUC,
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
