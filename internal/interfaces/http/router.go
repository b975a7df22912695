package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/invorya/stock-alerts/internal/application/alerts"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AlertsUC *alerts.LowStockAlertUseCase
	ReportUC *alerts.ReportUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	companies := api.Group("/companies")
	alertHandler := NewAlertHandler(deps.AlertsUC, deps.ReportUC)
	companies.Get("/:company_id/alerts/low-stock", alertHandler.GetLowStock)
	companies.Get("/:company_id/alerts/low-stock/pdf", alertHandler.GetLowStockPDF)
	companies.Get("/:company_id/alerts/low-stock/csv", alertHandler.GetLowStockCSV)
}
