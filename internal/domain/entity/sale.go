package entity

import "time"

// Sale es el registro append-only de un evento de demanda sobre un producto.
type Sale struct {
	ID        int64
	ProductID int64
	SaleDate  time.Time
}
