// seed carga un dataset de demostración para la API de alertas de stock bajo.
//
// Uso: go run ./cmd/seed
// Requiere el esquema de internal/infrastructure/postgres/migrations/001_init_schema.sql
// ya aplicado. Usa la misma configuración (env vars) que cmd/api.
//
// El dataset incluye los casos canónicos del dominio: un producto bajo umbral
// con venta reciente y proveedor, uno sin proveedor, uno con última venta
// fuera de la ventana de 30 días y uno por encima del umbral.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/invorya/stock-alerts/internal/domain/entity"
	"github.com/invorya/stock-alerts/internal/infrastructure/postgres"
	"github.com/invorya/stock-alerts/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	now := time.Now()

	companies := []entity.Company{
		{ID: 1, Name: "Acme Retail"},
		{ID: 2, Name: "Nova Distribuciones"}, // sin inventario: debe responder lista vacía
	}
	warehouses := []entity.Warehouse{
		{ID: 10, CompanyID: 1, Name: "Bodega Central", Address: "Calle 10 #5-20"},
		{ID: 11, CompanyID: 1, Name: "Bodega Norte", Address: "Av. 68 #90-11"},
	}
	types := []entity.ProductType{
		{ID: 1, Name: "Ferretería", LowStockThreshold: 5},
		{ID: 2, Name: "Eléctricos", LowStockThreshold: 10},
	}
	products := []entity.Product{
		{ID: 100, SKU: "W-1", Name: "Widget", ProductTypeID: 1},
		{ID: 101, SKU: "G-7", Name: "Gadget", ProductTypeID: 1},   // sin proveedor
		{ID: 102, SKU: "C-3", Name: "Cable 3m", ProductTypeID: 2}, // última venta fuera de ventana
		{ID: 103, SKU: "T-9", Name: "Taladro", ProductTypeID: 1},  // por encima del umbral
	}
	stock := []entity.Stock{
		{ProductID: 100, WarehouseID: 10, Quantity: 3},
		{ProductID: 101, WarehouseID: 10, Quantity: 1},
		{ProductID: 102, WarehouseID: 11, Quantity: 4},
		{ProductID: 103, WarehouseID: 10, Quantity: 40},
	}
	sales := []entity.Sale{
		{ProductID: 100, SaleDate: now.AddDate(0, 0, -5)},
		{ProductID: 101, SaleDate: now.AddDate(0, 0, -1)},
		{ProductID: 102, SaleDate: now.AddDate(0, 0, -40)},
		{ProductID: 103, SaleDate: now.AddDate(0, 0, -2)},
	}
	suppliers := []entity.Supplier{
		{ID: 1, Name: "Acme", ContactEmail: "ventas@acme.example"},
		{ID: 2, Name: "Bolt Supply", ContactEmail: "contacto@bolt.example"},
	}
	links := []entity.ProductSupplier{
		{ProductID: 100, SupplierID: 2},
		{ProductID: 100, SupplierID: 1}, // dos proveedores: el representativo es el de menor id
		{ProductID: 103, SupplierID: 2},
	}

	for _, c := range companies {
		mustExec(ctx, pool, `INSERT INTO companies (id, name) VALUES ($1, $2) ON CONFLICT (id) DO NOTHING`, c.ID, c.Name)
	}
	for _, w := range warehouses {
		mustExec(ctx, pool, `INSERT INTO warehouses (id, company_id, name, address) VALUES ($1, $2, $3, $4) ON CONFLICT (id) DO NOTHING`,
			w.ID, w.CompanyID, w.Name, w.Address)
	}
	for _, t := range types {
		mustExec(ctx, pool, `INSERT INTO product_types (id, name, low_stock_threshold) VALUES ($1, $2, $3) ON CONFLICT (id) DO NOTHING`,
			t.ID, t.Name, t.LowStockThreshold)
	}
	for _, p := range products {
		mustExec(ctx, pool, `INSERT INTO products (id, sku, name, product_type_id) VALUES ($1, $2, $3, $4) ON CONFLICT (id) DO NOTHING`,
			p.ID, p.SKU, p.Name, p.ProductTypeID)
	}
	for _, s := range stock {
		mustExec(ctx, pool, `INSERT INTO stock (product_id, warehouse_id, quantity) VALUES ($1, $2, $3)
			ON CONFLICT (product_id, warehouse_id) DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = now()`,
			s.ProductID, s.WarehouseID, s.Quantity)
	}
	for _, s := range sales {
		mustExec(ctx, pool, `INSERT INTO sales (product_id, sale_date) VALUES ($1, $2)`, s.ProductID, s.SaleDate)
	}
	for _, s := range suppliers {
		mustExec(ctx, pool, `INSERT INTO suppliers (id, name, contact_email) VALUES ($1, $2, $3) ON CONFLICT (id) DO NOTHING`,
			s.ID, s.Name, s.ContactEmail)
	}
	for _, l := range links {
		mustExec(ctx, pool, `INSERT INTO product_suppliers (product_id, supplier_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			l.ProductID, l.SupplierID)
	}

	// Reposicionar las secuencias tras los inserts con id explícito.
	for _, stmt := range []string{
		`SELECT setval('companies_id_seq',     (SELECT MAX(id) FROM companies))`,
		`SELECT setval('warehouses_id_seq',    (SELECT MAX(id) FROM warehouses))`,
		`SELECT setval('product_types_id_seq', (SELECT MAX(id) FROM product_types))`,
		`SELECT setval('products_id_seq',      (SELECT MAX(id) FROM products))`,
		`SELECT setval('suppliers_id_seq',     (SELECT MAX(id) FROM suppliers))`,
	} {
		mustExec(ctx, pool, stmt)
	}

	fmt.Printf("Dataset cargado: %d empresas, %d bodegas, %d productos, %d ventas\n",
		len(companies), len(warehouses), len(products), len(sales))
}

func mustExec(ctx context.Context, pool *pgxpool.Pool, sql string, args ...any) {
	if _, err := pool.Exec(ctx, sql, args...); err != nil {
		fmt.Fprintf(os.Stderr, "seed: %v\nSQL: %s\n", err, sql)
		os.Exit(1)
	}
}
