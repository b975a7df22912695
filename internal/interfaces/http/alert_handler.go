package http

import (
	"bytes"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/invorya/stock-alerts/internal/application/alerts"
	"github.com/invorya/stock-alerts/internal/application/dto"
	"github.com/invorya/stock-alerts/internal/domain"
)

// internalErrorMessage cuerpo fijo del 500: no se filtran detalles del store al cliente.
const internalErrorMessage = "An internal server error occurred."

// AlertHandler maneja las peticiones HTTP de alertas de stock bajo.
type AlertHandler struct {
	uc     *alerts.LowStockAlertUseCase
	report *alerts.ReportUseCase
}

// NewAlertHandler construye el handler.
func NewAlertHandler(uc *alerts.LowStockAlertUseCase, report *alerts.ReportUseCase) *AlertHandler {
	return &AlertHandler{uc: uc, report: report}
}

// GetLowStock godoc
// @Summary      Alertas de stock bajo
// @Description  Combinaciones (producto, bodega) de la empresa con stock en o bajo el
//
//	umbral del tipo de producto y al menos una venta en los últimos 30 días.
//
// @Tags         alerts
// @Produce      json
// @Param        company_id  path  int  true  "ID de la empresa"
// @Success      200  {object}  dto.LowStockAlertListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/companies/{company_id}/alerts/low-stock [get]
func (h *AlertHandler) GetLowStock(c *fiber.Ctx) error {
	companyID, err := parseCompanyID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "company_id debe ser un entero"})
	}

	out, err := h.uc.GetLowStockAlerts(c.Context(), companyID)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(out)
}

// GetLowStockPDF godoc
// @Summary      Reporte de stock bajo en PDF
// @Tags         alerts
// @Produce      application/pdf
// @Param        company_id  path  int  true  "ID de la empresa"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/companies/{company_id}/alerts/low-stock/pdf [get]
func (h *AlertHandler) GetLowStockPDF(c *fiber.Ctx) error {
	companyID, err := parseCompanyID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "company_id debe ser un entero"})
	}

	pdfBytes, filename, err := h.report.DownloadLowStockPDF(c.Context(), companyID)
	if err != nil {
		return h.mapError(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

// GetLowStockCSV godoc
// @Summary      Reporte de stock bajo en CSV
// @Tags         alerts
// @Produce      text/csv
// @Param        company_id  path  int  true  "ID de la empresa"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/companies/{company_id}/alerts/low-stock/csv [get]
func (h *AlertHandler) GetLowStockCSV(c *fiber.Ctx) error {
	companyID, err := parseCompanyID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "company_id debe ser un entero"})
	}

	var buf bytes.Buffer
	if err := h.report.WriteLowStockCSV(c.Context(), companyID, &buf); err != nil {
		return h.mapError(c, err)
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="stock_bajo.csv"`)
	return c.Send(buf.Bytes())
}

// mapError traduce errores del caso de uso a estados HTTP: validación → 400,
// cualquier otro (infraestructura) → 500 con mensaje genérico, sin resultados parciales.
func (h *AlertHandler) mapError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "company_id inválido"})
	}
	log.Error().
		Err(err).
		Str("request_id", GetRequestID(c)).
		Str("path", c.Path()).
		Msg("alertas de stock bajo")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: internalErrorMessage})
}

func parseCompanyID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("company_id"), 10, 64)
}
