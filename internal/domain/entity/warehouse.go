package entity

import "time"

// Warehouse representa una bodega donde se almacena inventario.
// Pertenece exactamente a una Company.
type Warehouse struct {
	ID        int64
	CompanyID int64
	Name      string
	Address   string
	CreatedAt time.Time
}
