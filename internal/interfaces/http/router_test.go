package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/wine-mart/internal/application/dto"
	"github.com/jhoicas/wine-mart/internal/application/sales"
	"github.com/jhoicas/wine-mart/internal/application/usecase"
	"github.com/jhoicas/wine-mart/internal/domain"
	"github.com/jhoicas/wine-mart/internal/domain/entity"
	"github.com/jhoicas/wine-mart/internal/domain/repository"
	apphttp "github.com/jhoicas/wine-mart/internal/interfaces/http"
	"github.com/jhoicas/wine-mart/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// memDB store en memoria que implementa los dos repositorios y el TxRunner.
type memDB struct {
	wines []*entity.Wine
	sales []*entity.Sale
	err   error
}

func (db *memDB) Create(_ context.Context, w *entity.Wine) error {
	if db.err != nil {
		return db.err
	}
	w.ID = int64(len(db.wines) + 1)
	cp := *w
	db.wines = append(db.wines, &cp)
	return nil
}

func (db *memDB) List(_ context.Context) ([]*entity.Wine, error) {
	if db.err != nil {
		return nil, db.err
	}
	return append([]*entity.Wine(nil), db.wines...), nil
}

func (db *memDB) GetByID(_ context.Context, id int64) (*entity.Wine, error) {
	if db.err != nil {
		return nil, db.err
	}
	for _, w := range db.wines {
		if w.ID == id {
			cp := *w
			return &cp, nil
		}
	}
	return nil, nil
}

func (db *memDB) GetForUpdate(ctx context.Context, id int64) (*entity.Wine, error) {
	return db.GetByID(ctx, id)
}

func (db *memDB) DecrementStock(_ context.Context, id int64, quantity int) error {
	for _, w := range db.wines {
		if w.ID == id {
			if w.Stock < quantity {
				return domain.ErrInsufficientStock
			}
			w.Stock -= quantity
			return nil
		}
	}
	return domain.ErrNotFound
}

type memSales struct{ db *memDB }

func (s memSales) Create(_ context.Context, sale *entity.Sale) error {
	sale.ID = int64(len(s.db.sales) + 1)
	cp := *sale
	s.db.sales = append(s.db.sales, &cp)
	return nil
}

func (s memSales) Report(_ context.Context) ([]*entity.SalesReportRow, error) {
	if s.db.err != nil {
		return nil, s.db.err
	}
	out := make([]*entity.SalesReportRow, 0, len(s.db.sales))
	for _, sale := range s.db.sales {
		out = append(out, &entity.SalesReportRow{
			WineName: s.db.wines[sale.WineID-1].Name, Quantity: sale.Quantity, TotalPrice: sale.TotalPrice, Date: sale.Date,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (db *memDB) RunPurchase(_ context.Context, fn func(repository.WineRepository, repository.SaleRepository) error) error {
	return fn(db, memSales{db})
}

type stubPDF struct{}

func (stubPDF) GenerateSalesReportPDF(context.Context, *dto.SalesReportResponse) ([]byte, error) {
	return []byte("%PDF-1.3 stub"), nil
}

type stubXML struct{}

func (stubXML) ExportSalesReportXML(*dto.SalesReportResponse) ([]byte, error) {
	return []byte(`<salesReport count="0"/>`), nil
}

func buildTestApp(db *memDB) *fiber.App {
	app := fiber.New()
	log := logger.Nop()
	app.Use(apphttp.RequestLogger(log))
	apphttp.Router(app, apphttp.RouterDeps{
		WineUC:     usecase.NewWineUseCase(db),
		PurchaseUC: sales.NewPurchaseUseCase(db),
		ReportUC:   sales.NewReportUseCase(memSales{db}, stubPDF{}, stubXML{}),
		Log:        log,
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestMenu_ListaLasCuatroAcciones(t *testing.T) {
	app := buildTestApp(&memDB{})
	resp := doJSON(t, app, http.MethodGet, "/api/menu", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	items := decode[[]dto.MenuItemResponse](t, resp)
	require.Len(t, items, 4)
	assert.Equal(t, "add-wine", items[0].Key)
	assert.Equal(t, "sales-report", items[3].Key)
	assert.Equal(t, "/api/purchases", items[2].Path)
}

// Escenario Merlot de punta a punta sobre la API.
func TestEscenarioMerlot(t *testing.T) {
	db := &memDB{}
	app := buildTestApp(db)

	resp := doJSON(t, app, http.MethodPost, "/api/wines", map[string]any{"name": "Merlot", "type": "Red", "price": 500.0, "stock": 10})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	added := decode[dto.AddWineResponse](t, resp)
	assert.Equal(t, int64(1), added.Wine.ID)

	resp = doJSON(t, app, http.MethodGet, "/api/wines", nil)
	list := decode[dto.WineListResponse](t, resp)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "Merlot", list.Items[0].Name)
	assert.Equal(t, 10, list.Items[0].Stock)

	resp = doJSON(t, app, http.MethodPost, "/api/purchases", dto.PurchaseRequest{WineID: 1, Quantity: 3})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	bought := decode[dto.PurchaseResponse](t, resp)
	assert.Equal(t, 7, bought.RemainingStock)
	assert.True(t, decimal.NewFromInt(1500).Equal(bought.TotalPrice))

	resp = doJSON(t, app, http.MethodPost, "/api/purchases", dto.PurchaseRequest{WineID: 1, Quantity: 20})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	errBody := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "INSUFFICIENT_STOCK", errBody.Code)
	assert.Equal(t, 7, db.wines[0].Stock)
	assert.Len(t, db.sales, 1)

	resp = doJSON(t, app, http.MethodGet, "/api/sales/report", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	report := decode[dto.SalesReportResponse](t, resp)
	require.Len(t, report.Items, 1)
	assert.Equal(t, "Merlot", report.Items[0].WineName)
	assert.Equal(t, 3, report.Items[0].Quantity)
}

func TestAddWine_Validacion(t *testing.T) {
	app := buildTestApp(&memDB{})
	resp := doJSON(t, app, http.MethodPost, "/api/wines", map[string]any{"name": "Merlot", "type": "Red", "price": -1, "stock": 1})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decode[dto.ErrorResponse](t, resp).Code)
}

func TestAddWine_CuerpoInvalido(t *testing.T) {
	app := buildTestApp(&memDB{})
	req := httptest.NewRequest(http.MethodPost, "/api/wines", bytes.NewBufferString("{no-json"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", decode[dto.ErrorResponse](t, resp).Code)
}

func TestListWines_Vacio(t *testing.T) {
	app := buildTestApp(&memDB{})
	resp := doJSON(t, app, http.MethodGet, "/api/wines", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[dto.WineListResponse](t, resp)
	assert.Empty(t, list.Items)
	assert.Equal(t, usecase.MsgNoWines, list.Message)
}

func TestGetWine(t *testing.T) {
	db := &memDB{wines: []*entity.Wine{{ID: 1, Name: "Malbec", Type: entity.WineTypeRed, Price: decimal.NewFromInt(30), Stock: 5}}}
	app := buildTestApp(db)

	resp := doJSON(t, app, http.MethodGet, "/api/wines/1", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Malbec", decode[dto.WineResponse](t, resp).Name)

	resp = doJSON(t, app, http.MethodGet, "/api/wines/9", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/wines/abc", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPurchase_VinoInexistente(t *testing.T) {
	app := buildTestApp(&memDB{})
	resp := doJSON(t, app, http.MethodPost, "/api/purchases", dto.PurchaseRequest{WineID: 5, Quantity: 1})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPurchase_CantidadInvalida(t *testing.T) {
	app := buildTestApp(&memDB{})
	resp := doJSON(t, app, http.MethodPost, "/api/purchases", dto.PurchaseRequest{WineID: 1, Quantity: 0})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestReport_Formatos(t *testing.T) {
	db := &memDB{
		wines: []*entity.Wine{{ID: 1, Name: "Merlot", Price: decimal.NewFromInt(500), Stock: 7}},
		sales: []*entity.Sale{{ID: 1, WineID: 1, Quantity: 3, TotalPrice: decimal.NewFromInt(1500), Date: time.Now()}},
	}
	app := buildTestApp(db)

	resp := doJSON(t, app, http.MethodGet, "/api/sales/report?format=pdf", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), ".pdf")

	resp = doJSON(t, app, http.MethodGet, "/api/sales/report?format=XML", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/xml")

	resp = doJSON(t, app, http.MethodGet, "/api/sales/report?format=csv", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestReport_Vacio(t *testing.T) {
	app := buildTestApp(&memDB{})
	resp := doJSON(t, app, http.MethodGet, "/api/sales/report", nil)
	report := decode[dto.SalesReportResponse](t, resp)
	assert.Equal(t, 0, report.Count)
	assert.Equal(t, sales.MsgNoSales, report.Message)
}

func TestErrorDeStore_Retorna500(t *testing.T) {
	app := buildTestApp(&memDB{err: errors.New("conexión rechazada")})
	resp := doJSON(t, app, http.MethodGet, "/api/wines", nil)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "INTERNAL", body.Code)
	assert.Contains(t, body.Message, "conexión rechazada")
}
