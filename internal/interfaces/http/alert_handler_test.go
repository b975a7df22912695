package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/stock-alerts/internal/application/alerts"
	"github.com/invorya/stock-alerts/internal/application/dto"
	"github.com/invorya/stock-alerts/internal/domain/repository"
	apphttp "github.com/invorya/stock-alerts/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// stubAlertRepo empresa 1 con una alerta, empresa 99 falla, el resto vacío.
type stubAlertRepo struct{}

func (stubAlertRepo) FindLowStockCandidates(_ context.Context, companyID int64, _ time.Time) ([]repository.LowStockCandidate, error) {
	switch companyID {
	case 1:
		supplierID := int64(1)
		name := "Acme"
		email := "ventas@acme.example"
		return []repository.LowStockCandidate{{
			ProductID:     100,
			ProductName:   "Widget",
			SKU:           "W-1",
			WarehouseID:   10,
			WarehouseName: "Bodega Central",
			Quantity:      3,
			Threshold:     5,
			SupplierID:    &supplierID,
			SupplierName:  &name,
			SupplierEmail: &email,
		}}, nil
	case 99:
		return nil, errors.New("dial tcp: connection refused")
	default:
		return nil, nil
	}
}

// stubGenerator evita depender de Maroto en los tests del handler.
type stubGenerator struct{}

func (stubGenerator) GenerateLowStockReport(_ context.Context, _ int64, _ []dto.LowStockAlertDTO) ([]byte, error) {
	return []byte("%PDF-stub"), nil
}

func buildTestApp() *fiber.App {
	app := fiber.New()
	app.Use(apphttp.RequestID())

	alertsUC := alerts.NewLowStockAlertUseCase(stubAlertRepo{})
	reportUC := alerts.NewReportUseCase(alertsUC, stubGenerator{})
	apphttp.Router(app, apphttp.RouterDeps{AlertsUC: alertsUC, ReportUC: reportUC})
	return app
}

func doRequest(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests GET /api/companies/:company_id/alerts/low-stock
// ──────────────────────────────────────────────────────────────────────────────

func TestGetLowStock_RespuestaOK(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/api/companies/1/alerts/low-stock")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.LowStockAlertListResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	require.Len(t, body.Alerts, 1)
	assert.Equal(t, 1, body.TotalAlerts)
	a := body.Alerts[0]
	assert.Equal(t, int64(100), a.ProductID)
	assert.Equal(t, "W-1", a.SKU)
	assert.Equal(t, int64(3), a.CurrentStock)
	assert.Equal(t, int64(5), a.Threshold)
	assert.Equal(t, int64(2), a.DaysUntilStockout)
	require.NotNil(t, a.Supplier)
	assert.Equal(t, "Acme", a.Supplier.Name)
}

func TestGetLowStock_EmpresaSinInventario_ListaVacia(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/api/companies/2/alerts/low-stock")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode, "empresa inexistente no es error")

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"alerts":[]`, "alerts debe ser [] y no null")
	assert.Contains(t, string(raw), `"total_alerts":0`)
}

func TestGetLowStock_CompanyIDNoNumerico_Retorna400(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/api/companies/abc/alerts/low-stock")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "VALIDATION")
}

func TestGetLowStock_FalloDeStore_Retorna500Generico(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/api/companies/99/alerts/low-stock")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "An internal server error occurred.", body["message"])
	assert.NotContains(t, body, "code", "el 500 expone solo message")
	assert.NotContains(t, body["message"], "connection refused", "no se filtra el detalle del store")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests exports y middleware
// ──────────────────────────────────────────────────────────────────────────────

func TestGetLowStockCSV_ContentType(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/api/companies/1/alerts/low-stock/csv")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/csv")

	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "product_id")
	assert.Contains(t, string(raw), "W-1")
}

func TestGetLowStockPDF_Descarga(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/api/companies/1/alerts/low-stock/pdf")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "attachment")
}

func TestRequestID_SeGeneraYSePropaga(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/api/companies/2/alerts/low-stock")
	defer resp.Body.Close()

	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))
}

func TestRequestID_RespetaElEntrante(t *testing.T) {
	app := buildTestApp()
	req := httptest.NewRequest(http.MethodGet, "/api/companies/2/alerts/low-stock", nil)
	req.Header.Set(fiber.HeaderXRequestID, "req-fijo-123")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "req-fijo-123", resp.Header.Get(fiber.HeaderXRequestID))
}
