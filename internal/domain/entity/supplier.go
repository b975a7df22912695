package entity

// Supplier representa un proveedor que puede reabastecer productos.
type Supplier struct {
	ID           int64
	Name         string
	ContactEmail string
}

// ProductSupplier enlaza productos con proveedores (muchos a muchos).
// El modelo de datos no define orden entre proveedores de un mismo producto;
// las consultas que necesitan uno representativo desempatan por menor id.
type ProductSupplier struct {
	ProductID  int64
	SupplierID int64
}
