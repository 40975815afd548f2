package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// TopProductResult resultado crudo de la consulta de productos más vendidos.
// Lo produce el almacén; el use case lo convierte en DTO.
type TopProductResult struct {
	ProductID   string
	ProductName string // nombre snapshot de las líneas de factura
	UnitsSold   decimal.Decimal
	Revenue     decimal.Decimal // suma de Item.Total
	COGS        decimal.Decimal // qty * PurchasePrice snapshot de la línea
}

// AnalyticsRepository define las consultas de lectura para reportes.
// Las implementaciones son read-only (no modifican datos). El costo siempre
// sale del snapshot de PurchasePrice en las líneas de factura, nunca del
// precio vivo del producto: así los reportes sobreviven a ediciones y borrados.
type AnalyticsRepository interface {
	// GetSalesMetrics devuelve ingresos brutos y COGS total de las facturas
	// emitidas en el rango de fechas dado (cero si no hay facturas).
	GetSalesMetrics(ctx context.Context, startDate, endDate time.Time) (revenue, cost decimal.Decimal, err error)

	// GetTopProducts devuelve los `limit` productos con mayor ingreso en el período.
	GetTopProducts(ctx context.Context, startDate, endDate time.Time, limit int) ([]TopProductResult, error)

	// GetOutstandingTotals devuelve la suma de saldos de clientes (por cobrar)
	// y de proveedores (por pagar).
	GetOutstandingTotals(ctx context.Context) (receivable, payable decimal.Decimal, err error)
}
