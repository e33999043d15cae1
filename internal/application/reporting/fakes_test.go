package reporting_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockboard-api/internal/application/dto"
	"github.com/jhoicas/stockboard-api/internal/domain/entity"
	"github.com/jhoicas/stockboard-api/internal/domain/report"
	"github.com/jhoicas/stockboard-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de lectura
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products []entity.Product
	err      error
}

func (f *fakeProductRepo) List(context.Context) ([]entity.Product, error) {
	return f.products, f.err
}

func (f *fakeProductRepo) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.products {
		if f.products[i].SKU == sku {
			return &f.products[i], nil
		}
	}
	return nil, nil
}

type fakeMovementRepo struct {
	movements []entity.StockMovement
	err       error

	// registrados en la última llamada, para verificar las cotas pedidas
	lastSKU  string
	lastFrom *time.Time
	lastTo   *time.Time
}

func (f *fakeMovementRepo) ListBySKU(_ context.Context, sku string, from, to *time.Time) ([]entity.StockMovement, error) {
	f.lastSKU, f.lastFrom, f.lastTo = sku, from, to
	if f.err != nil {
		return nil, f.err
	}
	rng := report.DateRange{From: from, To: to}
	var out []entity.StockMovement
	for _, m := range f.movements {
		if m.SKU == sku && rng.Contains(m.Date) {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeSupplierRepo struct {
	suppliers []entity.Supplier
	err       error
}

func (f *fakeSupplierRepo) List(context.Context) ([]entity.Supplier, error) {
	return f.suppliers, f.err
}

type fakePriceRepo struct {
	entries   []entity.PriceHistoryEntry
	lastLimit int
}

func (f *fakePriceRepo) ListRecent(_ context.Context, limit int) ([]entity.PriceHistoryEntry, error) {
	f.lastLimit = limit
	if len(f.entries) > limit {
		return f.entries[:limit], nil
	}
	return f.entries, nil
}

type fakeUserRepo struct {
	counts []repository.RoleCount
}

func (f *fakeUserRepo) GetByUsername(context.Context, string) (*entity.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) CountByRole(context.Context) ([]repository.RoleCount, error) {
	return f.counts, nil
}

// fakeCache registra Gets y Sets; sirve para verificar hit, miss y
// mejor-esfuerzo.
type fakeCache struct {
	stored *dto.DashboardSummaryDTO
	getErr error
	setErr error
	gets   int
	sets   int
}

func (f *fakeCache) Get(context.Context) (*dto.DashboardSummaryDTO, bool, error) {
	f.gets++
	if f.getErr != nil {
		return nil, false, f.getErr
	}
	return f.stored, f.stored != nil, nil
}

func (f *fakeCache) Set(_ context.Context, summary *dto.DashboardSummaryDTO) error {
	f.sets++
	if f.setErr != nil {
		return f.setErr
	}
	f.stored = summary
	return nil
}

type fakeWorkbook struct {
	lastRows []dto.ProductRowDTO
}

func (f *fakeWorkbook) InventoryWorkbook(rows []dto.ProductRowDTO) ([]byte, error) {
	f.lastRows = rows
	return []byte("xlsx-bytes"), nil
}

type fakePDF struct {
	lastProduct   entity.Product
	lastMovements []entity.StockMovement
}

func (f *fakePDF) MovementReport(product entity.Product, movements []entity.StockMovement, _ report.DateRange) ([]byte, error) {
	f.lastProduct = product
	f.lastMovements = movements
	return []byte("%PDF-fake"), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Datos de ejemplo compartidos
// ──────────────────────────────────────────────────────────────────────────────

func intPtr(n int) *int { return &n }

func precio(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func productosDeMuestra() []entity.Product {
	return []entity.Product{
		{ID: 1, SKU: "MAR-01", Name: "Martillo", CategoryID: 1, CategoryName: "Herramientas", SupplierID: 1, Stock: 2, MinStock: intPtr(5), Price: precio("10.00")},
		{ID: 2, SKU: "TOR-02", Name: "Tornillos", CategoryID: 1, CategoryName: "Herramientas", SupplierID: 1, Stock: 80, MinStock: intPtr(20), Price: precio("0.10")},
		{ID: 3, SKU: "ESC-03", Name: "Escoba", CategoryID: 2, CategoryName: "Aseo", SupplierID: 2, Stock: 4, MinStock: intPtr(4), Price: precio("3.50")},
		{ID: 4, SKU: "RAR-04", Name: "Rareza", Stock: 7, Price: precio("1.00")}, // sin categoría, sin proveedor, sin umbral
	}
}
