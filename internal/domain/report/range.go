package report

import (
	"strings"
	"time"
)

// Formatos de fecha aceptados en los query params de exportación.
var rangeLayouts = []string{"2006-01-02 15:04:05", "2006-01-02"}

// DateRange es un rango [From, To] inclusive. Un extremo nil significa
// "sin cota" por ese lado.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// ParseDateRange interpreta las cotas recibidas como texto. Una cota vacía o
// imparseable se trata como "sin cota", nunca como error: la exportación es
// permisiva a propósito.
func ParseDateRange(from, to string) DateRange {
	return DateRange{From: parseBound(from), To: parseBound(to)}
}

func parseBound(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	for _, layout := range rangeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}

// Contains indica si t cae dentro del rango (extremos inclusive).
func (r DateRange) Contains(t time.Time) bool {
	if r.From != nil && t.Before(*r.From) {
		return false
	}
	if r.To != nil && t.After(*r.To) {
		return false
	}
	return true
}

// Unbounded indica que ningún extremo tiene cota.
func (r DateRange) Unbounded() bool { return r.From == nil && r.To == nil }
