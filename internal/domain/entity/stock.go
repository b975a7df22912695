package entity

import "time"

// Stock representa la existencia actual de un producto en una bodega.
// Una fila por par (producto, bodega); quantity >= 0.
type Stock struct {
	ProductID   int64
	WarehouseID int64
	Quantity    int64
	UpdatedAt   time.Time
}
