package alerts

import (
	"context"

	"github.com/invorya/stock-alerts/internal/application/dto"
)

// ReportGenerator genera la representación descargable (PDF) del reporte de stock bajo.
// Implementado en infrastructure/pdf; el caso de uso no conoce la librería concreta.
type ReportGenerator interface {
	GenerateLowStockReport(ctx context.Context, companyID int64, alerts []dto.LowStockAlertDTO) ([]byte, error)
}
