package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/tienda-pro/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de lectura para reportes sobre PostgreSQL.
// El costo sale del snapshot purchase_price de invoice_items, nunca del
// precio vivo del producto.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el repo de lectura.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// GetSalesMetrics devuelve ingresos y COGS de las facturas del rango [start, end).
func (r *AnalyticsRepo) GetSalesMetrics(ctx context.Context, startDate, endDate time.Time) (decimal.Decimal, decimal.Decimal, error) {
	query := `
		SELECT
			COALESCE((SELECT SUM(total) FROM invoices WHERE date >= $1 AND date < $2), 0),
			COALESCE((
				SELECT SUM(ii.purchase_price * ii.quantity)
				FROM invoice_items ii
				JOIN invoices i ON i.id = ii.invoice_id
				WHERE i.date >= $1 AND i.date < $2
			), 0)`
	var revenue, cost decimal.Decimal
	if err := r.q.QueryRow(ctx, query, startDate, endDate).Scan(&revenue, &cost); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("sales metrics: %w", err)
	}
	return revenue, cost, nil
}

// GetTopProducts devuelve los productos con mayor ingreso en el período.
func (r *AnalyticsRepo) GetTopProducts(ctx context.Context, startDate, endDate time.Time, limit int) ([]repository.TopProductResult, error) {
	query := `
		SELECT ii.product_id, MAX(ii.product_name),
			SUM(ii.quantity), SUM(ii.total), SUM(ii.purchase_price * ii.quantity)
		FROM invoice_items ii
		JOIN invoices i ON i.id = ii.invoice_id
		WHERE i.date >= $1 AND i.date < $2
		GROUP BY ii.product_id
		ORDER BY SUM(ii.total) DESC
		LIMIT $3`
	rows, err := r.q.Query(ctx, query, startDate, endDate, limit)
	if err != nil {
		return nil, fmt.Errorf("top products: %w", err)
	}
	defer rows.Close()

	var out []repository.TopProductResult
	for rows.Next() {
		var t repository.TopProductResult
		if err := rows.Scan(&t.ProductID, &t.ProductName, &t.UnitsSold, &t.Revenue, &t.COGS); err != nil {
			return nil, fmt.Errorf("scan top product: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// GetOutstandingTotals devuelve la suma de saldos por cobrar y por pagar.
func (r *AnalyticsRepo) GetOutstandingTotals(ctx context.Context) (decimal.Decimal, decimal.Decimal, error) {
	query := `
		SELECT
			COALESCE((SELECT SUM(total_outstanding) FROM customers), 0),
			COALESCE((SELECT SUM(total_balance) FROM vendors), 0)`
	var receivable, payable decimal.Decimal
	if err := r.q.QueryRow(ctx, query).Scan(&receivable, &payable); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("outstanding totals: %w", err)
	}
	return receivable, payable, nil
}
