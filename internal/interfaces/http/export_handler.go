package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockboard-api/internal/application/reporting"
)

// ExportHandler maneja las descargas: CSV y PDF de movimientos por producto,
// XLSX del inventario completo.
type ExportHandler struct {
	uc *reporting.ExportUseCase
}

// NewExportHandler construye el handler.
func NewExportHandler(uc *reporting.ExportUseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// MovementCSV godoc
// @Summary      Reporte CSV de movimientos de un producto
// @Tags         reports
// @Produce      text/csv
// @Param        sku   path   string  true   "SKU del producto"
// @Param        from  query  string  false  "Fecha inicial (YYYY-MM-DD)"
// @Param        to    query  string  false  "Fecha final (YYYY-MM-DD)"
// @Success      200  {string}  string
// @Router       /api/products/{sku}/report.csv [get]
func (h *ExportHandler) MovementCSV(c *fiber.Ctx) error {
	filename, body, err := h.uc.MovementCSV(c.Context(), c.Params("sku"), c.Query("from"), c.Query("to"))
	if err != nil {
		return fail(c, err)
	}
	asAttachment(c, filename, "text/csv; charset=utf-8")
	return c.SendString(body)
}

// MovementPDF genera la versión imprimible del mismo reporte. Un SKU
// inexistente responde 404: el encabezado del PDF necesita los datos del
// producto.
// GET /api/products/:sku/report.pdf
func (h *ExportHandler) MovementPDF(c *fiber.Ctx) error {
	filename, body, err := h.uc.MovementPDF(c.Context(), c.Params("sku"), c.Query("from"), c.Query("to"))
	if err != nil {
		return fail(c, err)
	}
	asAttachment(c, filename, "application/pdf")
	return c.Send(body)
}

// InventoryXLSX descarga el inventario completo como libro de cálculo.
// GET /api/inventory/export.xlsx
func (h *ExportHandler) InventoryXLSX(c *fiber.Ctx) error {
	filename, body, err := h.uc.InventoryXLSX(c.Context())
	if err != nil {
		return fail(c, err)
	}
	asAttachment(c, filename, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return c.Send(body)
}

func asAttachment(c *fiber.Ctx, filename, contentType string) {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
}
