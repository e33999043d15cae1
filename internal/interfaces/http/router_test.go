package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/stockboard-api/internal/application/auth"
	"github.com/jhoicas/stockboard-api/internal/application/dto"
	"github.com/jhoicas/stockboard-api/internal/application/reporting"
	"github.com/jhoicas/stockboard-api/internal/domain/entity"
	"github.com/jhoicas/stockboard-api/internal/domain/report"
	"github.com/jhoicas/stockboard-api/internal/domain/repository"
	apphttp "github.com/jhoicas/stockboard-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes mínimos de los puertos para montar la app completa
// ──────────────────────────────────────────────────────────────────────────────

type stubProductRepo struct{ products []entity.Product }

func (s *stubProductRepo) List(context.Context) ([]entity.Product, error) {
	return s.products, nil
}

func (s *stubProductRepo) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	for i := range s.products {
		if s.products[i].SKU == sku {
			return &s.products[i], nil
		}
	}
	return nil, nil
}

type stubMovementRepo struct{ movements []entity.StockMovement }

func (s *stubMovementRepo) ListBySKU(_ context.Context, sku string, from, to *time.Time) ([]entity.StockMovement, error) {
	rng := report.DateRange{From: from, To: to}
	var out []entity.StockMovement
	for _, m := range s.movements {
		if m.SKU == sku && rng.Contains(m.Date) {
			out = append(out, m)
		}
	}
	return out, nil
}

type stubSupplierRepo struct{}

func (stubSupplierRepo) List(context.Context) ([]entity.Supplier, error) { return nil, nil }

type stubPriceRepo struct{}

func (stubPriceRepo) ListRecent(context.Context, int) ([]entity.PriceHistoryEntry, error) {
	return nil, nil
}

type stubUserRepo struct{ users map[string]*entity.User }

func (s *stubUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	return s.users[username], nil
}

func (s *stubUserRepo) CountByRole(context.Context) ([]repository.RoleCount, error) {
	return nil, nil
}

type stubCache struct{}

func (stubCache) Get(context.Context) (*dto.DashboardSummaryDTO, bool, error) {
	return nil, false, nil
}

func (stubCache) Set(context.Context, *dto.DashboardSummaryDTO) error { return nil }

type stubWorkbook struct{}

func (stubWorkbook) InventoryWorkbook([]dto.ProductRowDTO) ([]byte, error) {
	return []byte("xlsx"), nil
}

type stubPDF struct{}

func (stubPDF) MovementReport(entity.Product, []entity.StockMovement, report.DateRange) ([]byte, error) {
	return []byte("%PDF-stub"), nil
}

func intPtr(n int) *int { return &n }

// buildApp monta la app Fiber con las rutas reales y repos en memoria.
func buildApp(t *testing.T) *fiber.App {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("secreta123"), bcrypt.MinCost)
	require.NoError(t, err)

	products := &stubProductRepo{products: []entity.Product{
		{ID: 1, SKU: "MAR-01", Name: "Martillo", CategoryName: "Herramientas", SupplierID: 1,
			Stock: 2, MinStock: intPtr(5), Price: decimal.RequireFromString("10.00")},
		{ID: 2, SKU: "TOR-02", Name: "Tornillos", CategoryName: "Herramientas", SupplierID: 1,
			Stock: 80, MinStock: intPtr(20), Price: decimal.RequireFromString("0.10")},
	}}
	movements := &stubMovementRepo{movements: []entity.StockMovement{
		{SKU: "MAR-01", Product: "Martillo", Date: time.Now().AddDate(0, 0, -1),
			TypeName: "Entrada", Sign: entity.SignIn, Quantity: 10, User: "ana"},
	}}
	users := &stubUserRepo{users: map[string]*entity.User{
		"ana": {Username: "ana", PasswordHash: string(hash)},
	}}

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:      auth.NewAuthUseCase(users, nil, ""),
		DashboardUC: reporting.NewDashboardUseCase(products, stubSupplierRepo{}, users, stubPriceRepo{}, stubCache{}),
		InventoryUC: reporting.NewInventoryUseCase(products, movements, 0),
		ExportUC:    reporting.NewExportUseCase(products, movements, stubWorkbook{}, stubPDF{}),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, payload any) *http.Response {
	t.Helper()
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_Exitoso(t *testing.T) {
	app := buildApp(t)
	resp := doJSON(t, app, http.MethodPost, "/api/auth/login",
		dto.LoginRequest{Username: "ana", Password: "secreta123"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.True(t, out.Granted)
	assert.Equal(t, "/dashboard.html", out.Redirect)
}

func TestLogin_CamposFaltantes(t *testing.T) {
	app := buildApp(t)
	resp := doJSON(t, app, http.MethodPost, "/api/auth/login",
		dto.LoginRequest{Username: "ana"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_FIELDS")
}

func TestLogin_RechazosIndistinguibles(t *testing.T) {
	// Usuario inexistente y contraseña incorrecta deben producir exactamente
	// la misma respuesta HTTP: mismo status y mismo cuerpo.
	app := buildApp(t)

	respInexistente := doJSON(t, app, http.MethodPost, "/api/auth/login",
		dto.LoginRequest{Username: "nadie", Password: "x"})
	defer respInexistente.Body.Close()
	respPassword := doJSON(t, app, http.MethodPost, "/api/auth/login",
		dto.LoginRequest{Username: "ana", Password: "incorrecta"})
	defer respPassword.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, respInexistente.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, respPassword.StatusCode)

	body1, _ := io.ReadAll(respInexistente.Body)
	body2, _ := io.ReadAll(respPassword.Body)
	assert.Equal(t, string(body1), string(body2))
}

// ──────────────────────────────────────────────────────────────────────────────
// Rutas del tablero e inventario
// ──────────────────────────────────────────────────────────────────────────────

func TestDashboardSummary(t *testing.T) {
	app := buildApp(t)
	resp := doJSON(t, app, http.MethodGet, "/api/dashboard/summary", nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.EqualValues(t, 82, out["total_stock"])
	assert.EqualValues(t, 1, out["critical_count"])
	assert.Equal(t, "28.00", out["inventory_value"], "20.00 + 8.00 redondeado a 2 decimales")
}

func TestProductsCritical_NoSeConfundeConSKU(t *testing.T) {
	// "critical" podría matchear la ruta /api/products/:sku; el orden de
	// registro garantiza que llegue al handler de críticos.
	app := buildApp(t)
	resp := doJSON(t, app, http.MethodGet, "/api/products/critical", nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var rows []dto.ProductRowDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "MAR-01", rows[0].SKU)
}

func TestProductDetail_Existente(t *testing.T) {
	app := buildApp(t)
	resp := doJSON(t, app, http.MethodGet, "/api/products/MAR-01", nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.ProductDetailDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "MAR-01", out.Product.SKU)
	require.Len(t, out.Movements, 1)
	assert.Equal(t, 10, out.Movements[0].Inbound)
}

func TestProductDetail_Inexistente404(t *testing.T) {
	app := buildApp(t)
	resp := doJSON(t, app, http.MethodGet, "/api/products/NO-EXISTE", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "NOT_FOUND")
}

func TestCategoriesByKey_ListaVaciaNo404(t *testing.T) {
	app := buildApp(t)
	resp := doJSON(t, app, http.MethodGet, "/api/categories/inexistente/products", nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, "[]", string(body))
}

// ──────────────────────────────────────────────────────────────────────────────
// Descargas
// ──────────────────────────────────────────────────────────────────────────────

func TestMovementCSV_HeadersDeDescarga(t *testing.T) {
	app := buildApp(t)
	resp := doJSON(t, app, http.MethodGet, "/api/products/MAR-01/report.csv", nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.Equal(t, `attachment; filename="reporte_MAR-01.csv"`, resp.Header.Get("Content-Disposition"))

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "SKU,Nombre,FechaMov")
}

func TestMovementCSV_SKUInexistenteDescargaVacia(t *testing.T) {
	app := buildApp(t)
	resp := doJSON(t, app, http.MethodGet, "/api/products/NO-EXISTE/report.csv", nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode, "el CSV vacío sigue siendo 200")

	body, _ := io.ReadAll(resp.Body)
	assert.Empty(t, body)
}

func TestMovementPDF_SKUInexistente404(t *testing.T) {
	app := buildApp(t)
	resp := doJSON(t, app, http.MethodGet, "/api/products/NO-EXISTE/report.pdf", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestInventoryXLSX_HeadersDeDescarga(t *testing.T) {
	app := buildApp(t)
	resp := doJSON(t, app, http.MethodGet, "/api/inventory/export.xlsx", nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		resp.Header.Get("Content-Type"))
	assert.Equal(t, `attachment; filename="inventario.xlsx"`, resp.Header.Get("Content-Disposition"))
}
