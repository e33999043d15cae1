// Package pdf implementa la versión imprimible del reporte de movimientos de
// un producto usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del producto + SKU  │  Rango del reporte    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Tipo | Cantidad | Usuario | Observación      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Entradas / Salidas                                 │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/stockboard-api/internal/application/reporting"
	"github.com/jhoicas/stockboard-api/internal/domain/entity"
	"github.com/jhoicas/stockboard-api/internal/domain/report"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ reporting.MovementPDFGenerator = (*MarotoMovementReport)(nil)

// MarotoMovementReport implementa reporting.MovementPDFGenerator usando Maroto v2.
type MarotoMovementReport struct{}

// NewMarotoMovementReport construye el generador.
func NewMarotoMovementReport() *MarotoMovementReport { return &MarotoMovementReport{} }

// MovementReport genera el PDF y devuelve sus bytes.
func (g *MarotoMovementReport) MovementReport(
	product entity.Product,
	movements []entity.StockMovement,
	rng report.DateRange,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de movimientos "+product.SKU, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(product, rng))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableDetailRows(movements) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(movements))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre + SKU (izq) y rango del reporte (der).
func headerRow(product entity.Product, rng report.DateRange) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(product.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("SKU: "+product.SKU, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("REPORTE DE MOVIMIENTOS", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(rangeLabel(rng), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de movimientos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 3, align.Left),
		h("Tipo", 2, align.Left),
		h("Cantidad", 2, align.Right),
		h("Usuario", 2, align.Left),
		h("Observación", 3, align.Left),
	)
}

// tableDetailRows: una fila por movimiento, con la cantidad firmada según el
// signo del tipo.
func tableDetailRows(movements []entity.StockMovement) []core.Row {
	result := make([]core.Row, 0, len(movements))
	for _, mv := range movements {
		qty := fmt.Sprintf("%s%d", mv.Sign, mv.Quantity)
		result = append(result, row.New(6).Add(
			col.New(3).Add(text.New(
				mv.Date.Format("2006-01-02 15:04"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				mv.TypeName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				qty,
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				nonEmpty(mv.User, "—"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				nonEmpty(mv.Note, ""),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
		))
	}
	return result
}

// totalsRow: entradas y salidas acumuladas del período.
func totalsRow(movements []entity.StockMovement) core.Row {
	var inbound, outbound int
	for _, mv := range movements {
		if mv.Inbound() {
			inbound += mv.Quantity
		} else {
			outbound += mv.Quantity
		}
	}
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	return row.New(14).Add(
		col.New(6), // espacio izquierdo
		col.New(3).Add(
			label("Entradas:"),
			label("Salidas:"),
		),
		col.New(3).Add(
			value(fmt.Sprintf("%d", inbound)),
			value(fmt.Sprintf("%d", outbound)),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func rangeLabel(rng report.DateRange) string {
	if rng.Unbounded() {
		return "Historial completo"
	}
	from, to := "inicio", "hoy"
	if rng.From != nil {
		from = rng.From.Format("2006-01-02")
	}
	if rng.To != nil {
		to = rng.To.Format("2006-01-02")
	}
	return from + " — " + to
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
