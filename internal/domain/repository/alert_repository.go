package repository

import (
	"context"
	"time"
)

// LowStockCandidate fila cruda del repositorio para el cálculo de alertas de stock bajo:
// inventario × bodega × producto × tipo de producto, más el proveedor representativo
// (menor id) si existe. Los campos Supplier* son nil cuando el producto no tiene
// enlaces en product_suppliers.
type LowStockCandidate struct {
	ProductID     int64
	ProductName   string
	SKU           string
	WarehouseID   int64
	WarehouseName string
	Quantity      int64
	Threshold     int64
	SupplierID    *int64
	SupplierName  *string
	SupplierEmail *string
}

// AlertRepository define el puerto de consulta para las alertas de stock bajo (DIP).
// Una sola operación de lectura compuesta; el resolver no escribe nunca.
type AlertRepository interface {
	// FindLowStockCandidates devuelve las filas de inventario de las bodegas de la
	// empresa cuyos productos registran al menos una venta con sale_date >= since
	// (el filtro de recencia es por producto, no por bodega). Orden determinista:
	// bodega asc, producto asc. Empresa inexistente o sin inventario => slice vacío.
	FindLowStockCandidates(ctx context.Context, companyID int64, since time.Time) ([]LowStockCandidate, error)
}
