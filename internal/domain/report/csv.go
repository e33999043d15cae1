// Package report serializa conjuntos de resultados rectangulares a CSV para
// descarga. El contrato de salida (CRLF, comillas dobladas, campos vacíos
// para null) es fijo por compatibilidad con hojas de cálculo.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Table es un conjunto de resultados con esquema explícito: las columnas
// mandan sobre el orden y la cantidad de campos de cada fila. Que toda fila
// tenga len(Columns) celdas es precondición del constructor de la tabla, no
// algo que se reconcilie acá.
type Table struct {
	Columns []string
	Rows    [][]any
}

// CSV serializa la tabla. Sin filas devuelve cadena vacía — el llamador
// distingue "nada que exportar" de una petición malformada. Las líneas se
// unen con CRLF y un campo se envuelve en comillas (doblando las internas)
// cuando contiene coma, comilla doble o salto de línea.
func (t Table) CSV() string {
	if len(t.Rows) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(strings.Join(t.Columns, ","))
	for _, row := range t.Rows {
		b.WriteString("\r\n")
		for i, cell := range row {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(escapeField(CellString(cell)))
		}
	}
	return b.String()
}

func escapeField(s string) string {
	if !strings.ContainsAny(s, ",\"\n\r") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// CellString es la forma textual de una celda; nil/ausente queda vacío.
func CellString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case *string:
		if x == nil {
			return ""
		}
		return *x
	case time.Time:
		return x.Format("2006-01-02 15:04:05")
	case decimal.Decimal:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}
