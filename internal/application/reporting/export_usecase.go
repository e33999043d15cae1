package reporting

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jhoicas/stockboard-api/internal/domain"
	"github.com/jhoicas/stockboard-api/internal/domain/report"
	"github.com/jhoicas/stockboard-api/internal/domain/repository"
)

// Columnas del reporte de movimientos. Los nombres son el contrato fijo del
// archivo exportado (los consumen planillas existentes); no traducir.
var movementColumns = []string{"SKU", "Nombre", "FechaMov", "Tipo", "Cantidad", "Usuario", "Observacion"}

// ExportUseCase produce los archivos descargables: CSV y PDF del reporte de
// movimientos por producto, y XLSX del inventario completo.
type ExportUseCase struct {
	products  repository.ProductRepository
	movements repository.MovementRepository
	workbook  WorkbookGenerator
	pdf       MovementPDFGenerator
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(
	products repository.ProductRepository,
	movements repository.MovementRepository,
	workbook WorkbookGenerator,
	pdf MovementPDFGenerator,
) *ExportUseCase {
	return &ExportUseCase{products: products, movements: movements, workbook: workbook, pdf: pdf}
}

// MovementCSV genera el CSV de movimientos del producto. from/to son cotas
// opcionales de fecha; una cota malformada se ignora (sin cota), no es error.
// Un SKU sin movimientos (o inexistente) produce un CSV vacío: el cliente
// distingue "nada que exportar" por el cuerpo, no por el status.
func (uc *ExportUseCase) MovementCSV(ctx context.Context, sku, from, to string) (filename, body string, err error) {
	rng := report.ParseDateRange(from, to)
	movements, err := uc.movements.ListBySKU(ctx, sku, rng.From, rng.To)
	if err != nil {
		return "", "", fmt.Errorf("export: movimientos de %s: %w", sku, err)
	}

	t := report.Table{Columns: movementColumns, Rows: make([][]any, 0, len(movements))}
	for _, m := range movements {
		t.Rows = append(t.Rows, []any{m.SKU, m.Product, m.Date, m.TypeName, m.Quantity, m.User, m.Note})
	}
	return fmt.Sprintf("reporte_%s.csv", strings.TrimSpace(sku)), t.CSV(), nil
}

// MovementPDF genera la versión PDF del mismo reporte. A diferencia del CSV,
// acá el encabezado necesita los datos del producto, así que un SKU
// inexistente devuelve domain.ErrNotFound.
func (uc *ExportUseCase) MovementPDF(ctx context.Context, sku, from, to string) (filename string, body []byte, err error) {
	product, err := uc.products.GetBySKU(ctx, sku)
	if err != nil {
		return "", nil, fmt.Errorf("export: buscar producto: %w", err)
	}
	if product == nil {
		return "", nil, domain.ErrNotFound
	}

	rng := report.ParseDateRange(from, to)
	movements, err := uc.movements.ListBySKU(ctx, sku, rng.From, rng.To)
	if err != nil {
		return "", nil, fmt.Errorf("export: movimientos de %s: %w", sku, err)
	}
	body, err = uc.pdf.MovementReport(*product, movements, rng)
	if err != nil {
		return "", nil, fmt.Errorf("export: generar PDF: %w", err)
	}
	return fmt.Sprintf("reporte_%s.pdf", product.SKU), body, nil
}

// InventoryXLSX genera el libro XLSX con el inventario completo, ordenado por
// nombre como el listado.
func (uc *ExportUseCase) InventoryXLSX(ctx context.Context) (filename string, body []byte, err error) {
	products, err := uc.products.List(ctx)
	if err != nil {
		return "", nil, fmt.Errorf("export: listar productos: %w", err)
	}
	rows := toProductRows(products)
	sort.Slice(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })

	body, err = uc.workbook.InventoryWorkbook(rows)
	if err != nil {
		return "", nil, fmt.Errorf("export: generar XLSX: %w", err)
	}
	return "inventario.xlsx", body, nil
}
