package stock

import (
	"sort"
	"time"

	"github.com/jhoicas/stockboard-api/internal/domain/entity"
)

// DefaultWindowDays es la ventana por defecto de la ficha de producto.
const DefaultWindowDays = 30

// DailyFlow son las entradas y salidas acumuladas de un día calendario.
type DailyFlow struct {
	Day      string // "2006-01-02"
	Inbound  int
	Outbound int
}

// WindowedDaily filtra los movimientos a la ventana [asOf−windowDays, asOf]
// (ambos extremos inclusive) y los acumula por día calendario del timestamp
// persistido, sin conversión de zona horaria. Resultado ordenado por día
// descendente. Sin movimientos en la ventana devuelve slice vacío; el
// llamador es quien pinta el estado "sin movimientos".
func WindowedDaily(movements []entity.StockMovement, asOf time.Time, windowDays int) []DailyFlow {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	lower := asOf.AddDate(0, 0, -windowDays)

	byDay := make(map[string]*DailyFlow)
	for _, m := range movements {
		if m.Date.Before(lower) || m.Date.After(asOf) {
			continue
		}
		day := m.Date.Format("2006-01-02")
		f, ok := byDay[day]
		if !ok {
			f = &DailyFlow{Day: day}
			byDay[day] = f
		}
		if m.Inbound() {
			f.Inbound += m.Quantity
		} else {
			f.Outbound += m.Quantity
		}
	}

	out := make([]DailyFlow, 0, len(byDay))
	for _, f := range byDay {
		out = append(out, *f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day > out[j].Day })
	return out
}
