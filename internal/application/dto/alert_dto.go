package dto

// SupplierDTO proveedor representativo de un producto en alerta (nullable en la respuesta).
type SupplierDTO struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	ContactEmail string `json:"contact_email"`
}

// LowStockAlertDTO describe un producto bajo umbral y con ventas recientes en una bodega.
type LowStockAlertDTO struct {
	ProductID         int64        `json:"product_id"`
	ProductName       string       `json:"product_name"`
	SKU               string       `json:"sku"`
	WarehouseID       int64        `json:"warehouse_id"`
	WarehouseName     string       `json:"warehouse_name"`
	CurrentStock      int64        `json:"current_stock"`
	Threshold         int64        `json:"threshold"`
	DaysUntilStockout int64        `json:"days_until_stockout"` // ceil(stock / ventas diarias promedio)
	Supplier          *SupplierDTO `json:"supplier"`            // null si el producto no tiene proveedores
}

// LowStockAlertListResponse respuesta de GET /api/companies/{id}/alerts/low-stock.
type LowStockAlertListResponse struct {
	Alerts      []LowStockAlertDTO `json:"alerts"`
	TotalAlerts int                `json:"total_alerts"`
}
