package alerts_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/stock-alerts/internal/application/alerts"
	"github.com/invorya/stock-alerts/internal/application/dto"
)

// fakeGenerator implementa alerts.ReportGenerator para probar el caso de uso sin Maroto.
type fakeGenerator struct {
	out     []byte
	err     error
	gotRows int
}

func (f *fakeGenerator) GenerateLowStockReport(_ context.Context, _ int64, rows []dto.LowStockAlertDTO) ([]byte, error) {
	f.gotRows = len(rows)
	return f.out, f.err
}

func TestDownloadLowStockPDF_NombreYContenido(t *testing.T) {
	repo := &fakeAlertRepo{fixtures: []fixture{widgetFixture()}}
	gen := &fakeGenerator{out: []byte("%PDF-fake")}
	uc := alerts.NewReportUseCase(alerts.NewLowStockAlertUseCase(repo), gen)

	pdfBytes, filename, err := uc.DownloadLowStockPDF(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, []byte("%PDF-fake"), pdfBytes)
	assert.Equal(t, 1, gen.gotRows, "el generador recibe las mismas alertas del resolver")
	assert.True(t, strings.HasPrefix(filename, "stock_bajo_1_"), "filename: %s", filename)
	assert.True(t, strings.HasSuffix(filename, ".pdf"), "filename: %s", filename)
}

func TestDownloadLowStockPDF_ErrorDelGenerador(t *testing.T) {
	repo := &fakeAlertRepo{fixtures: []fixture{widgetFixture()}}
	gen := &fakeGenerator{err: errors.New("sin espacio en disco")}
	uc := alerts.NewReportUseCase(alerts.NewLowStockAlertUseCase(repo), gen)

	_, _, err := uc.DownloadLowStockPDF(context.Background(), 1)
	assert.Error(t, err)
}

func TestWriteLowStockCSV_CabeceraYFilas(t *testing.T) {
	fxConProveedor := widgetFixture()
	fxSinProveedor := widgetFixture()
	fxSinProveedor.row.ProductID = 101
	fxSinProveedor.row.SKU = "G-7"
	fxSinProveedor.row.SupplierID = nil
	fxSinProveedor.row.SupplierName = nil
	fxSinProveedor.row.SupplierEmail = nil

	repo := &fakeAlertRepo{fixtures: []fixture{fxConProveedor, fxSinProveedor}}
	uc := alerts.NewReportUseCase(alerts.NewLowStockAlertUseCase(repo), &fakeGenerator{})

	var buf bytes.Buffer
	require.NoError(t, uc.WriteLowStockCSV(context.Background(), 1, &buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3, "cabecera + dos alertas")

	assert.Equal(t, "product_id", records[0][0])
	assert.Equal(t, "supplier_name", records[0][8])

	// Orden determinista: producto 100 antes que 101 en la misma bodega.
	assert.Equal(t, "100", records[1][0])
	assert.Equal(t, "Acme", records[1][8])
	assert.Equal(t, "101", records[2][0])
	assert.Equal(t, "", records[2][8], "sin proveedor las columnas van vacías")
	assert.Equal(t, "", records[2][9])
}

func TestWriteLowStockCSV_EmpresaSinAlertas(t *testing.T) {
	uc := alerts.NewReportUseCase(alerts.NewLowStockAlertUseCase(&fakeAlertRepo{}), &fakeGenerator{})

	var buf bytes.Buffer
	require.NoError(t, uc.WriteLowStockCSV(context.Background(), 3, &buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 1, "solo la cabecera")
}
