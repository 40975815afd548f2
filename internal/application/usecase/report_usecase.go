package usecase

import (
	"context"
	"time"

	"github.com/tu-usuario/tienda-pro/internal/application/dto"
	"github.com/tu-usuario/tienda-pro/internal/domain/repository"
)

// ReportUseCase reportes de lectura: resumen financiero del día/mes y alertas
// de stock bajo. Todo el costo sale de los snapshots de PurchasePrice en las
// líneas de factura, de modo que los números históricos no cambian aunque el
// producto se edite o se borre.
type ReportUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	productRepo   repository.ProductRepository
	now           func() time.Time
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(analyticsRepo repository.AnalyticsRepository, productRepo repository.ProductRepository) *ReportUseCase {
	return &ReportUseCase{
		analyticsRepo: analyticsRepo,
		productRepo:   productRepo,
		now:           time.Now,
	}
}

// Summary devuelve ventas y utilidad de hoy y del mes en curso, los totales
// por cobrar/por pagar y el top 5 de productos del mes.
func (uc *ReportUseCase) Summary(ctx context.Context) (*dto.SummaryReportDTO, error) {
	now := uc.now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	todayRevenue, todayCost, err := uc.analyticsRepo.GetSalesMetrics(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	monthRevenue, monthCost, err := uc.analyticsRepo.GetSalesMetrics(ctx, monthStart, dayEnd)
	if err != nil {
		return nil, err
	}
	receivable, payable, err := uc.analyticsRepo.GetOutstandingTotals(ctx)
	if err != nil {
		return nil, err
	}
	top, err := uc.analyticsRepo.GetTopProducts(ctx, monthStart, dayEnd, 5)
	if err != nil {
		return nil, err
	}

	topDTOs := make([]dto.TopProductDTO, 0, len(top))
	for _, t := range top {
		topDTOs = append(topDTOs, dto.TopProductDTO{
			ProductID:   t.ProductID,
			ProductName: t.ProductName,
			UnitsSold:   t.UnitsSold,
			Revenue:     t.Revenue,
			Profit:      t.Revenue.Sub(t.COGS),
		})
	}

	return &dto.SummaryReportDTO{
		TodaySales:    todayRevenue,
		TodayProfit:   todayRevenue.Sub(todayCost),
		MonthlySales:  monthRevenue,
		MonthlyProfit: monthRevenue.Sub(monthCost),
		Receivable:    receivable,
		Payable:       payable,
		TopProducts:   topDTOs,
		DateLabel:     now.Format("2006-01-02"),
	}, nil
}

// LowStock devuelve los productos con stock vivo en o bajo su umbral de alerta.
func (uc *ReportUseCase) LowStock(ctx context.Context) ([]dto.LowStockDTO, error) {
	products, err := uc.productRepo.ListBelowThreshold()
	if err != nil {
		return nil, err
	}
	out := make([]dto.LowStockDTO, 0, len(products))
	for _, p := range products {
		out = append(out, dto.LowStockDTO{
			ProductID:     p.ID,
			Name:          p.Name,
			StockQuantity: p.StockQuantity,
			Threshold:     p.LowStockThreshold,
			VendorName:    p.VendorName,
		})
	}
	return out, nil
}
