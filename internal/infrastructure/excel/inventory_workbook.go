// Package excel genera el libro XLSX del inventario con excelize.
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/stockboard-api/internal/application/dto"
	"github.com/jhoicas/stockboard-api/internal/application/reporting"
)

const sheetName = "Inventario"

// Encabezados en español, como el CSV: el archivo lo abren las mismas planillas.
var headers = []string{"SKU", "Nombre", "Categoría", "Stock", "Stock mínimo", "Precio", "Estado"}

var _ reporting.WorkbookGenerator = (*InventoryWorkbookGenerator)(nil)

// InventoryWorkbookGenerator implementa reporting.WorkbookGenerator.
type InventoryWorkbookGenerator struct{}

// NewInventoryWorkbookGenerator construye el generador.
func NewInventoryWorkbookGenerator() *InventoryWorkbookGenerator {
	return &InventoryWorkbookGenerator{}
}

// InventoryWorkbook arma una hoja con una fila por producto y devuelve los
// bytes del archivo.
func (g *InventoryWorkbookGenerator) InventoryWorkbook(rows []dto.ProductRowDTO) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("renombrar hoja: %w", err)
	}

	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, fmt.Errorf("escribir encabezado: %w", err)
		}
	}

	for i, r := range rows {
		values := []any{r.SKU, r.Name, r.Category, r.Stock, r.MinStock, r.Price.InexactFloat64(), r.Severity}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, fmt.Errorf("escribir fila %d: %w", i+1, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serializar libro: %w", err)
	}
	return buf.Bytes(), nil
}
