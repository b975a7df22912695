package entity

import "time"

// ProductType agrupa productos bajo un umbral común de stock bajo.
// LowStockThreshold aplica a todos los productos del tipo (entero no negativo).
type ProductType struct {
	ID                int64
	Name              string
	LowStockThreshold int64
}

// Product representa un producto identificado por SKU (único global, lo garantiza la BD).
type Product struct {
	ID            int64
	SKU           string
	Name          string
	ProductTypeID int64
	CreatedAt     time.Time
}
