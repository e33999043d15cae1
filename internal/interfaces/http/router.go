package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockboard-api/internal/application/auth"
	"github.com/jhoicas/stockboard-api/internal/application/reporting"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	DashboardUC *reporting.DashboardUseCase
	InventoryUC *reporting.InventoryUseCase
	ExportUC    *reporting.ExportUseCase
}

// Router registra las rutas de la API. Todas las consultas son de solo
// lectura; el único POST es el gate de login.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Dashboard y widgets
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard/summary", dashboardHandler.GetSummary)
	api.Get("/suppliers", dashboardHandler.SupplierRollups)
	api.Get("/users/by-role", dashboardHandler.UsersByRole)
	api.Get("/prices/recent", dashboardHandler.RecentPriceChanges)

	// Inventario y exportaciones
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	exportHandler := NewExportHandler(deps.ExportUC)
	api.Get("/inventory", inventoryHandler.List)
	api.Get("/inventory/export.xlsx", exportHandler.InventoryXLSX)

	// Categorías: /critical va antes que /:key/products para que "critical"
	// no se interprete como clave de categoría.
	api.Get("/categories", dashboardHandler.CategoryCounts)
	api.Get("/categories/critical", dashboardHandler.CategoryRollups)
	api.Get("/categories/:key/products", inventoryHandler.ProductsByCategory)

	// Productos: la ruta fija /critical primero, después las de :sku.
	api.Get("/products/critical", dashboardHandler.CriticalProducts)
	api.Get("/products/:sku/report.csv", exportHandler.MovementCSV)
	api.Get("/products/:sku/report.pdf", exportHandler.MovementPDF)
	api.Get("/products/:sku", inventoryHandler.Detail)
}
