package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockboard-api/internal/application/reporting"
)

// DashboardHandler maneja los widgets del tablero.
type DashboardHandler struct {
	uc *reporting.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *reporting.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve los KPIs globales del inventario.
// GET /api/dashboard/summary
//
// Respuesta: DashboardSummaryDTO (total_stock, inventory_value redondeado a 2
// decimales, critical_count). Pasa por el caché de resumen cuando está
// habilitado.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(summary)
}

// CriticalProducts lista los productos en estado crítico según la regla del
// KPI, los de menor stock primero.
// GET /api/products/critical
func (h *DashboardHandler) CriticalProducts(c *fiber.Ctx) error {
	rows, err := h.uc.CriticalProducts(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(rows)
}

// CategoryCounts devuelve el conteo de productos por categoría.
// GET /api/categories
func (h *DashboardHandler) CategoryCounts(c *fiber.Ctx) error {
	counts, err := h.uc.CategoryCounts(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(counts)
}

// CategoryRollups devuelve las categorías con productos críticos, las más
// urgentes primero.
// GET /api/categories/critical
func (h *DashboardHandler) CategoryRollups(c *fiber.Ctx) error {
	rollups, err := h.uc.CategoryRollups(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(rollups)
}

// SupplierRollups devuelve los proveedores con sus conteos de productos y de
// críticos, incluyendo los que no suministran nada.
// GET /api/suppliers
func (h *DashboardHandler) SupplierRollups(c *fiber.Ctx) error {
	rollups, err := h.uc.SupplierRollups(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(rollups)
}

// UsersByRole devuelve el conteo de usuarios por rol.
// GET /api/users/by-role
func (h *DashboardHandler) UsersByRole(c *fiber.Ctx) error {
	counts, err := h.uc.UsersByRole(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(counts)
}

// RecentPriceChanges devuelve los últimos cambios de precio registrados.
// GET /api/prices/recent
func (h *DashboardHandler) RecentPriceChanges(c *fiber.Ctx) error {
	changes, err := h.uc.RecentPriceChanges(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(changes)
}
