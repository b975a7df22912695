package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/invorya/stock-alerts/internal/domain/repository"
)

var _ repository.AlertRepository = (*AlertRepo)(nil)

// AlertRepo implementación de AlertRepository sobre PostgreSQL.
// Solo lectura: una consulta compuesta por invocación, sin estado propio.
type AlertRepo struct {
	q Querier
}

// NewAlertRepository construye el adaptador. Acepta pool o tx (Querier).
func NewAlertRepository(q Querier) *AlertRepo {
	return &AlertRepo{q: q}
}

// FindLowStockCandidates devuelve las filas de inventario de las bodegas de la empresa
// cuyos productos tienen al menos una venta con sale_date >= since.
//
// El proveedor representativo se resuelve con LATERAL ordenando por menor id
// (el modelo origen no define orden entre proveedores; el desempate fijo hace
// la salida reproducible). El umbral NO se filtra aquí: esa regla vive en el
// resolver para mantenerlo desacoplado del store.
func (r *AlertRepo) FindLowStockCandidates(ctx context.Context, companyID int64, since time.Time) ([]repository.LowStockCandidate, error) {
	const query = `
	SELECT
	    p.id,
	    p.name,
	    p.sku,
	    w.id                      AS warehouse_id,
	    w.name                    AS warehouse_name,
	    s.quantity,
	    pt.low_stock_threshold,
	    sup.id                    AS supplier_id,
	    sup.name                  AS supplier_name,
	    sup.contact_email         AS supplier_email
	FROM stock s
	JOIN warehouses    w  ON w.id  = s.warehouse_id
	JOIN products      p  ON p.id  = s.product_id
	JOIN product_types pt ON pt.id = p.product_type_id
	LEFT JOIN LATERAL (
	    SELECT su.id, su.name, su.contact_email
	    FROM product_suppliers ps
	    JOIN suppliers su ON su.id = ps.supplier_id
	    WHERE ps.product_id = p.id
	    ORDER BY su.id
	    LIMIT 1
	) sup ON TRUE
	WHERE w.company_id = $1
	  AND EXISTS (
	      SELECT 1 FROM sales sa
	      WHERE sa.product_id = p.id
	        AND sa.sale_date >= $2
	  )
	ORDER BY w.id, p.id`

	rows, err := r.q.Query(ctx, query, companyID, since)
	if err != nil {
		return nil, fmt.Errorf("alerts.FindLowStockCandidates: %w", err)
	}
	defer rows.Close()

	var candidates []repository.LowStockCandidate
	for rows.Next() {
		var c repository.LowStockCandidate
		if err := rows.Scan(
			&c.ProductID, &c.ProductName, &c.SKU,
			&c.WarehouseID, &c.WarehouseName,
			&c.Quantity, &c.Threshold,
			&c.SupplierID, &c.SupplierName, &c.SupplierEmail,
		); err != nil {
			return nil, fmt.Errorf("alerts.FindLowStockCandidates scan: %w", err)
		}
		candidates = append(candidates, c)
	}
	return candidates, rows.Err()
}
