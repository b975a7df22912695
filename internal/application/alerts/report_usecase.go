package alerts

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"
)

// csvHeader columnas del export CSV, en el mismo orden que el JSON del endpoint.
var csvHeader = []string{
	"product_id", "product_name", "sku",
	"warehouse_id", "warehouse_name",
	"current_stock", "threshold", "days_until_stockout",
	"supplier_name", "supplier_contact_email",
}

// ReportUseCase exporta el reporte de alertas de stock bajo (PDF y CSV).
// Reutiliza el resolver: mismas reglas de negocio, otra representación.
type ReportUseCase struct {
	alerts    *LowStockAlertUseCase
	generator ReportGenerator
}

// NewReportUseCase construye el caso de uso de exportación.
func NewReportUseCase(alerts *LowStockAlertUseCase, generator ReportGenerator) *ReportUseCase {
	return &ReportUseCase{alerts: alerts, generator: generator}
}

// DownloadLowStockPDF genera el PDF del reporte y el nombre de archivo sugerido.
func (uc *ReportUseCase) DownloadLowStockPDF(ctx context.Context, companyID int64) (pdfBytes []byte, filename string, err error) {
	out, err := uc.alerts.GetLowStockAlerts(ctx, companyID)
	if err != nil {
		return nil, "", err
	}

	pdfBytes, err = uc.generator.GenerateLowStockReport(ctx, companyID, out.Alerts)
	if err != nil {
		return nil, "", fmt.Errorf("report: generación de PDF: %w", err)
	}

	filename = fmt.Sprintf("stock_bajo_%d_%s.pdf", companyID, time.Now().Format("20060102"))
	return pdfBytes, filename, nil
}

// WriteLowStockCSV escribe el reporte como CSV en w (cabecera + una fila por alerta).
// El reporte es pequeño (un snapshot por empresa), por lo que no hace streaming por lotes.
func (uc *ReportUseCase) WriteLowStockCSV(ctx context.Context, companyID int64, w io.Writer) error {
	out, err := uc.alerts.GetLowStockAlerts(ctx, companyID)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("report: cabecera CSV: %w", err)
	}
	for _, a := range out.Alerts {
		supplierName, supplierEmail := "", ""
		if a.Supplier != nil {
			supplierName = a.Supplier.Name
			supplierEmail = a.Supplier.ContactEmail
		}
		record := []string{
			strconv.FormatInt(a.ProductID, 10),
			a.ProductName,
			a.SKU,
			strconv.FormatInt(a.WarehouseID, 10),
			a.WarehouseName,
			strconv.FormatInt(a.CurrentStock, 10),
			strconv.FormatInt(a.Threshold, 10),
			strconv.FormatInt(a.DaysUntilStockout, 10),
			supplierName,
			supplierEmail,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("report: fila CSV: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
