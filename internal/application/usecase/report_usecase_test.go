package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/tienda-pro/internal/domain/entity"
	"github.com/tu-usuario/tienda-pro/internal/infrastructure/memory"
)

// Test en caja blanca para poder fijar el reloj del caso de uso.

func rdec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func seedInvoice(t *testing.T, store *memory.Store, id string, date time.Time, total, cost, qty string) {
	t.Helper()
	repo := memory.NewInvoiceRepo(store)
	require.NoError(t, repo.Create(&entity.Invoice{
		ID:          id,
		Number:      "INV-" + id,
		CustomerID:  "c-1",
		Date:        date,
		Subtotal:    rdec(total),
		Total:       rdec(total),
		PaidAmount:  rdec(total),
		PaymentType: entity.PaymentTypeCash,
		CreatedAt:   date,
	}))
	require.NoError(t, repo.CreateItem(&entity.InvoiceItem{
		ID:            id + "-item",
		InvoiceID:     id,
		ProductID:     "p-1",
		ProductName:   "Arroz 1kg",
		Quantity:      rdec(qty),
		PurchasePrice: rdec(cost).Div(rdec(qty)),
		SalePrice:     rdec(total).Div(rdec(qty)),
		Total:         rdec(total),
	}))
}

// El resumen separa el día del mes en curso y la utilidad sale de los
// snapshots de costo de las líneas.
func TestSummary_DiaYMes(t *testing.T) {
	store := memory.New()
	fixed := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)

	// Hoy: 10000 de venta con 6000 de costo
	seedInvoice(t, store, "f1", fixed.Add(-2*time.Hour), "10000", "6000", "2")
	// Antes en el mismo mes: 5000 de venta con 2000 de costo
	seedInvoice(t, store, "f2", time.Date(2026, time.August, 3, 9, 0, 0, 0, time.UTC), "5000", "2000", "1")
	// Mes anterior: fuera de ambos rangos
	seedInvoice(t, store, "f3", time.Date(2026, time.July, 20, 9, 0, 0, 0, time.UTC), "99999", "99999", "1")

	customers := memory.NewCustomerRepo(store)
	require.NoError(t, customers.Create(&entity.Customer{ID: "c-1", Name: "Ana", TotalOutstanding: rdec("7000")}))
	vendors := memory.NewVendorRepo(store)
	require.NoError(t, vendors.Create(&entity.Vendor{ID: "v-1", Name: "Central", TotalBalance: rdec("12000")}))

	uc := NewReportUseCase(memory.NewAnalyticsRepo(store), memory.NewProductRepo(store))
	uc.now = func() time.Time { return fixed }

	report, err := uc.Summary(context.Background())
	require.NoError(t, err)

	assert.True(t, report.TodaySales.Equal(rdec("10000")))
	assert.True(t, report.TodayProfit.Equal(rdec("4000")))
	assert.True(t, report.MonthlySales.Equal(rdec("15000")))
	assert.True(t, report.MonthlyProfit.Equal(rdec("7000")))
	assert.True(t, report.Receivable.Equal(rdec("7000")))
	assert.True(t, report.Payable.Equal(rdec("12000")))
	assert.Equal(t, "2026-08-15", report.DateLabel)

	require.Len(t, report.TopProducts, 1)
	assert.Equal(t, "Arroz 1kg", report.TopProducts[0].ProductName)
	assert.True(t, report.TopProducts[0].UnitsSold.Equal(rdec("3")))
	assert.True(t, report.TopProducts[0].Revenue.Equal(rdec("15000")))
	assert.True(t, report.TopProducts[0].Profit.Equal(rdec("7000")))
}

// Solo alertan los productos con umbral configurado y stock en o bajo él.
func TestLowStock_SoloBajoElUmbral(t *testing.T) {
	store := memory.New()
	products := memory.NewProductRepo(store)
	require.NoError(t, products.Create(&entity.Product{
		ID: "p-1", Name: "Arroz", StockQuantity: rdec("3"), LowStockThreshold: rdec("10"),
	}))
	require.NoError(t, products.Create(&entity.Product{
		ID: "p-2", Name: "Aceite", StockQuantity: rdec("50"), LowStockThreshold: rdec("10"),
	}))
	require.NoError(t, products.Create(&entity.Product{
		ID: "p-3", Name: "Sin umbral", StockQuantity: rdec("0"),
	}))

	uc := NewReportUseCase(memory.NewAnalyticsRepo(store), products)

	alerts, err := uc.LowStock(context.Background())
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, "p-1", alerts[0].ProductID)
	assert.True(t, alerts[0].Threshold.Equal(rdec("10")))
}
