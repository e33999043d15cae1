package stock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/stockboard-api/internal/domain/entity"
	"github.com/jhoicas/stockboard-api/internal/domain/stock"
)

// ──────────────────────────────────────────────────────────────────────────────
// Classify — política de dos niveles: piso global primero, umbral del
// producto después.
// ──────────────────────────────────────────────────────────────────────────────

func TestClassify_PisoGlobalGanaAlUmbral(t *testing.T) {
	// Con stock ≤ 2 el producto es crítico aunque su umbral sea 0.
	assert.Equal(t, stock.SeverityCritical, stock.Classify(0, 0))
	assert.Equal(t, stock.SeverityCritical, stock.Classify(1, 0))
	assert.Equal(t, stock.SeverityCritical, stock.Classify(2, 0))
}

func TestClassify_BajoEntreElPisoYElUmbral(t *testing.T) {
	assert.Equal(t, stock.SeverityLow, stock.Classify(3, 5))
	assert.Equal(t, stock.SeverityLow, stock.Classify(5, 5), "umbral inclusive")
}

func TestClassify_NormalPorEncimaDelUmbral(t *testing.T) {
	assert.Equal(t, stock.SeverityNormal, stock.Classify(6, 5))
	assert.Equal(t, stock.SeverityNormal, stock.Classify(100, 5))
}

func TestClassify_UmbralMenorAlPiso(t *testing.T) {
	// Umbral 1 no puede bajar el piso global: stock 2 sigue siendo crítico y
	// stock 3 ya es normal (3 > 1).
	assert.Equal(t, stock.SeverityCritical, stock.Classify(2, 1))
	assert.Equal(t, stock.SeverityNormal, stock.Classify(3, 1))
}

func TestClassify_StockNegativo(t *testing.T) {
	// Un stock negativo (ajustes mal cargados) cae en crítico, no explota.
	assert.Equal(t, stock.SeverityCritical, stock.Classify(-4, 9))
}

// ──────────────────────────────────────────────────────────────────────────────
// Threshold / ClassifyProduct / IsCritical — default del umbral y la regla
// del KPI.
// ──────────────────────────────────────────────────────────────────────────────

func TestThreshold_DefaultCuandoNoHayUmbral(t *testing.T) {
	assert.Equal(t, stock.DefaultMinThreshold, stock.Threshold(entity.Product{}))

	min := 4
	assert.Equal(t, 4, stock.Threshold(entity.Product{MinStock: &min}))
}

func TestClassifyProduct_UsaElDefault(t *testing.T) {
	// Sin umbral propio, stock 9 queda bajo (9 ≤ 9) y stock 10 normal.
	assert.Equal(t, stock.SeverityLow, stock.ClassifyProduct(entity.Product{Stock: 9}))
	assert.Equal(t, stock.SeverityNormal, stock.ClassifyProduct(entity.Product{Stock: 10}))
}

func TestIsCritical_ReglaDelKPI(t *testing.T) {
	min := 5
	// La regla del KPI compara contra el umbral propio, sin piso global.
	assert.True(t, stock.IsCritical(entity.Product{Stock: 5, MinStock: &min}))
	assert.False(t, stock.IsCritical(entity.Product{Stock: 6, MinStock: &min}))
}

func TestIsCritical_DifiereDeClassifyEnElPiso(t *testing.T) {
	// Con umbral 1 y stock 2: Classify dice crítico (piso global) pero el KPI
	// no lo cuenta (2 > 1). Las dos reglas conviven a propósito.
	min := 1
	p := entity.Product{Stock: 2, MinStock: &min}
	assert.Equal(t, stock.SeverityCritical, stock.ClassifyProduct(p))
	assert.False(t, stock.IsCritical(p))
}
