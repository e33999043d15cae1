// Package lookup canonicaliza las claves de texto libre (SKU, nombre de
// categoría) para que las comparaciones sean insensibles a mayúsculas y
// espacios, igual que hacía el esquema original con UPPER(LTRIM(RTRIM(...))).
package lookup

import "strings"

// NormalizeKey recorta espacios y pasa a mayúsculas. Debe aplicarse a ambos
// lados de toda comparación (valor guardado y valor consultado).
func NormalizeKey(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// CategoryKey es el resultado de resolver una clave de categoría: o un ID
// numérico o un nombre ya normalizado, nunca ambos.
type CategoryKey struct {
	ID   int64
	Name string
	byID bool
}

// ByID indica si la clave se resolvió como identificador numérico.
func (k CategoryKey) ByID() bool { return k.byID }

// ResolveCategoryKey decide el modo de búsqueda: si la entrada recortada es
// solo dígitos se trata como ID de categoría; cualquier otra cosa es un
// nombre a comparar vía NormalizeKey. Toda entrada no vacía resuelve a
// exactamente uno de los dos modos.
func ResolveCategoryKey(raw string) CategoryKey {
	trimmed := strings.TrimSpace(raw)
	if id, ok := parseAllDigits(trimmed); ok {
		return CategoryKey{ID: id, byID: true}
	}
	return CategoryKey{Name: NormalizeKey(raw)}
}

// parseAllDigits acepta únicamente cadenas no vacías compuestas por dígitos
// ASCII (sin signo, sin espacios internos).
func parseAllDigits(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}
	var n int64
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int64(r-'0')
	}
	return n, true
}
