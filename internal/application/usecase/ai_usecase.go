package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/tienda-pro/internal/application/dto"
	"github.com/tu-usuario/tienda-pro/internal/application/ports"
)

// AIUseCase genera un consejo de negocio a partir del resumen financiero.
// Aplica un timeout de 10 segundos en cada llamada al LLM para evitar que las
// latencias externas bloqueen los goroutines del servidor.
type AIUseCase struct {
	llm     ports.LLMService
	reports *ReportUseCase
}

// NewAIUseCase construye el caso de uso inyectando el puerto LLMService.
func NewAIUseCase(llm ports.LLMService, reports *ReportUseCase) *AIUseCase {
	return &AIUseCase{llm: llm, reports: reports}
}

// BusinessInsight arma el resumen del negocio, lo envía al LLM y devuelve el
// consejo. El resumen va formateado en español con separadores de miles.
func (uc *AIUseCase) BusinessInsight(ctx context.Context) (*dto.InsightResponse, error) {
	summary, err := uc.reports.Summary(ctx)
	if err != nil {
		return nil, err
	}
	lowStock, err := uc.reports.LowStock(ctx)
	if err != nil {
		return nil, err
	}

	// Timeout de 10 s: las llamadas a LLMs pueden demorar varios segundos.
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	insight, err := uc.llm.GenerateInsight(ctx, buildBusinessSummary(summary, lowStock))
	if err != nil {
		return nil, fmt.Errorf("insight IA: %w", err)
	}
	return &dto.InsightResponse{Insight: insight}, nil
}

// buildBusinessSummary serializa el resumen en texto plano para el prompt.
func buildBusinessSummary(s *dto.SummaryReportDTO, lowStock []dto.LowStockDTO) string {
	p := message.NewPrinter(language.Spanish)
	var b strings.Builder
	p.Fprintf(&b, "Fecha: %s\n", s.DateLabel)
	p.Fprintf(&b, "Ventas de hoy: $%s (utilidad $%s)\n", money(s.TodaySales), money(s.TodayProfit))
	p.Fprintf(&b, "Ventas del mes: $%s (utilidad $%s)\n", money(s.MonthlySales), money(s.MonthlyProfit))
	p.Fprintf(&b, "Por cobrar a clientes: $%s\n", money(s.Receivable))
	p.Fprintf(&b, "Por pagar a proveedores: $%s\n", money(s.Payable))
	if len(s.TopProducts) > 0 {
		b.WriteString("Productos más vendidos del mes:\n")
		for _, t := range s.TopProducts {
			p.Fprintf(&b, "- %s: %s unidades, $%s en ventas\n", t.ProductName, t.UnitsSold.String(), money(t.Revenue))
		}
	}
	if len(lowStock) > 0 {
		b.WriteString("Productos con stock bajo:\n")
		for _, l := range lowStock {
			p.Fprintf(&b, "- %s: quedan %s (umbral %s)\n", l.Name, l.StockQuantity.String(), l.Threshold.String())
		}
	}
	return b.String()
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
