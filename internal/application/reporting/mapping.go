package reporting

import (
	"github.com/jhoicas/stockboard-api/internal/application/dto"
	"github.com/jhoicas/stockboard-api/internal/domain/entity"
	"github.com/jhoicas/stockboard-api/internal/domain/stock"
)

// toProductRow proyecta un producto al DTO de listado, con el rótulo de
// categoría por defecto y la severidad ya calculada.
func toProductRow(p entity.Product) dto.ProductRowDTO {
	category := p.CategoryName
	if category == "" {
		category = entity.CategoryNone
	}
	return dto.ProductRowDTO{
		SKU:        p.SKU,
		Name:       p.Name,
		Category:   category,
		Stock:      p.Stock,
		MinStock:   stock.Threshold(p),
		Price:      p.Price,
		SupplierID: p.SupplierID,
		Severity:   string(stock.ClassifyProduct(p)),
	}
}

func toProductRows(products []entity.Product) []dto.ProductRowDTO {
	rows := make([]dto.ProductRowDTO, 0, len(products))
	for _, p := range products {
		rows = append(rows, toProductRow(p))
	}
	return rows
}

func toDailyFlows(flows []stock.DailyFlow) []dto.DailyFlowDTO {
	out := make([]dto.DailyFlowDTO, 0, len(flows))
	for _, f := range flows {
		out = append(out, dto.DailyFlowDTO{Day: f.Day, Inbound: f.Inbound, Outbound: f.Outbound})
	}
	return out
}
