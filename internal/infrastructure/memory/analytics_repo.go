package memory

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/tienda-pro/internal/domain/repository"
)

// AnalyticsRepo implementa repository.AnalyticsRepository con escaneos sobre
// facturas y líneas. El costo sale siempre del snapshot de PurchasePrice de
// cada línea, nunca del precio vivo del producto.
type AnalyticsRepo struct {
	s *Store
}

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// NewAnalyticsRepo construye el repo de lectura.
func NewAnalyticsRepo(s *Store) *AnalyticsRepo { return &AnalyticsRepo{s: s} }

func (r *AnalyticsRepo) GetSalesMetrics(ctx context.Context, startDate, endDate time.Time) (decimal.Decimal, decimal.Decimal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	revenue, cost := decimal.Zero, decimal.Zero
	for _, inv := range r.s.d.invoices {
		if inv.Date.Before(startDate) || !inv.Date.Before(endDate) {
			continue
		}
		revenue = revenue.Add(inv.Total)
	}
	for i := range r.s.d.invoiceItems {
		item := &r.s.d.invoiceItems[i]
		inv, ok := r.s.d.invoices[item.InvoiceID]
		if !ok || inv.Date.Before(startDate) || !inv.Date.Before(endDate) {
			continue
		}
		cost = cost.Add(item.PurchasePrice.Mul(item.Quantity))
	}
	return revenue, cost, nil
}

func (r *AnalyticsRepo) GetTopProducts(ctx context.Context, startDate, endDate time.Time, limit int) ([]repository.TopProductResult, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	byProduct := map[string]*repository.TopProductResult{}
	var order []string
	for i := range r.s.d.invoiceItems {
		item := &r.s.d.invoiceItems[i]
		inv, ok := r.s.d.invoices[item.InvoiceID]
		if !ok || inv.Date.Before(startDate) || !inv.Date.Before(endDate) {
			continue
		}
		agg, ok := byProduct[item.ProductID]
		if !ok {
			agg = &repository.TopProductResult{
				ProductID:   item.ProductID,
				ProductName: item.ProductName,
				UnitsSold:   decimal.Zero,
				Revenue:     decimal.Zero,
				COGS:        decimal.Zero,
			}
			byProduct[item.ProductID] = agg
			order = append(order, item.ProductID)
		}
		agg.UnitsSold = agg.UnitsSold.Add(item.Quantity)
		agg.Revenue = agg.Revenue.Add(item.Total)
		agg.COGS = agg.COGS.Add(item.PurchasePrice.Mul(item.Quantity))
	}
	out := make([]repository.TopProductResult, 0, len(order))
	for _, id := range order {
		out = append(out, *byProduct[id])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Revenue.GreaterThan(out[j].Revenue)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *AnalyticsRepo) GetOutstandingTotals(ctx context.Context) (decimal.Decimal, decimal.Decimal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	receivable, payable := decimal.Zero, decimal.Zero
	for _, c := range r.s.d.customers {
		receivable = receivable.Add(c.TotalOutstanding)
	}
	for _, v := range r.s.d.vendors {
		payable = payable.Add(v.TotalBalance)
	}
	return receivable, payable, nil
}
