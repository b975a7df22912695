package alerts

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/invorya/stock-alerts/internal/application/dto"
	"github.com/invorya/stock-alerts/internal/domain"
	"github.com/invorya/stock-alerts/internal/domain/repository"
)

// recentSalesWindow ventana de "ventas recientes": 30 días hacia atrás desde el momento de la llamada.
const recentSalesWindow = 30 * 24 * time.Hour

// averageDailySales constante fija que sustituye la métrica real de velocidad de venta.
// Es un placeholder reconocido del modelo de datos origen, no una decisión de diseño:
// si se extiende el servicio debe reemplazarse por un promedio móvil sobre sales.
var averageDailySales = decimal.NewFromInt(2)

// LowStockAlertUseCase calcula las alertas de stock bajo de una empresa.
// Lectura pura: no escribe, no guarda estado entre invocaciones, sin caché en proceso.
type LowStockAlertUseCase struct {
	repo repository.AlertRepository
}

// NewLowStockAlertUseCase construye el caso de uso.
func NewLowStockAlertUseCase(repo repository.AlertRepository) *LowStockAlertUseCase {
	return &LowStockAlertUseCase{repo: repo}
}

// GetLowStockAlerts devuelve las combinaciones (producto, bodega) de la empresa donde
// el stock actual está en o bajo el umbral del tipo de producto Y el producto registra
// al menos una venta en los últimos 30 días.
//
// Empresa inexistente o sin bodegas/inventario => lista vacía, nunca error.
// companyID <= 0 => domain.ErrInvalidInput (el caller lo mapea a 400).
func (uc *LowStockAlertUseCase) GetLowStockAlerts(ctx context.Context, companyID int64) (*dto.LowStockAlertListResponse, error) {
	if companyID <= 0 {
		return nil, fmt.Errorf("%w: company_id debe ser un entero positivo", domain.ErrInvalidInput)
	}

	// 1. Candidatos: inventario de la empresa con ventas dentro de la ventana.
	//    El repositorio aplica empresa y recencia; el umbral se decide aquí.
	since := time.Now().Add(-recentSalesWindow)
	candidates, err := uc.repo.FindLowStockCandidates(ctx, companyID, since)
	if err != nil {
		return nil, fmt.Errorf("alerts: consultar candidatos: %w", err)
	}

	// 2. Retener solo las filas en o bajo el umbral del tipo de producto.
	alerts := make([]dto.LowStockAlertDTO, 0, len(candidates))
	for _, c := range candidates {
		if c.Quantity > c.Threshold {
			continue
		}
		alerts = append(alerts, dto.LowStockAlertDTO{
			ProductID:         c.ProductID,
			ProductName:       c.ProductName,
			SKU:               c.SKU,
			WarehouseID:       c.WarehouseID,
			WarehouseName:     c.WarehouseName,
			CurrentStock:      c.Quantity,
			Threshold:         c.Threshold,
			DaysUntilStockout: daysUntilStockout(c.Quantity),
			Supplier:          toSupplierDTO(c),
		})
	}

	// 3. Orden reproducible aunque el plan del store cambie: bodega asc, producto asc.
	sort.SliceStable(alerts, func(i, j int) bool {
		if alerts[i].WarehouseID != alerts[j].WarehouseID {
			return alerts[i].WarehouseID < alerts[j].WarehouseID
		}
		return alerts[i].ProductID < alerts[j].ProductID
	})

	return &dto.LowStockAlertListResponse{
		Alerts:      alerts,
		TotalAlerts: len(alerts),
	}, nil
}

// daysUntilStockout = ceil(quantity / averageDailySales), siempre >= 0.
func daysUntilStockout(quantity int64) int64 {
	return decimal.NewFromInt(quantity).Div(averageDailySales).Ceil().IntPart()
}

// toSupplierDTO arma el proveedor representativo; nil si el producto no tiene enlaces.
func toSupplierDTO(c repository.LowStockCandidate) *dto.SupplierDTO {
	if c.SupplierID == nil {
		return nil
	}
	s := &dto.SupplierDTO{ID: *c.SupplierID}
	if c.SupplierName != nil {
		s.Name = *c.SupplierName
	}
	if c.SupplierEmail != nil {
		s.ContactEmail = *c.SupplierEmail
	}
	return s
}
