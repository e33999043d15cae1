package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockboard-api/internal/application/reporting"
)

// InventoryHandler maneja los listados de inventario y la ficha de producto.
type InventoryHandler struct {
	uc *reporting.InventoryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *reporting.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// List godoc
// @Summary      Listar el inventario
// @Tags         inventory
// @Produce      json
// @Param        supplier  query  string  false  "ID del proveedor (filtro opcional)"
// @Success      200  {array}  dto.ProductRowDTO
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	rows, err := h.uc.List(c.Context(), c.Query("supplier"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(rows)
}

// ProductsByCategory lista los productos de una categoría. La clave acepta ID
// numérico o nombre; una clave sin coincidencias devuelve lista vacía.
// GET /api/categories/:key/products
func (h *InventoryHandler) ProductsByCategory(c *fiber.Ctx) error {
	rows, err := h.uc.ProductsByCategory(c.Context(), c.Params("key"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(rows)
}

// Detail godoc
// @Summary      Ficha de producto con su ventana de movimientos
// @Tags         inventory
// @Produce      json
// @Param        sku  path  string  true  "SKU del producto"
// @Success      200  {object}  dto.ProductDetailDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{sku} [get]
func (h *InventoryHandler) Detail(c *fiber.Ctx) error {
	detail, err := h.uc.Detail(c.Context(), c.Params("sku"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(detail)
}
