// Package scheduler corre tareas programadas del backend. Por ahora una sola:
// el barrido diario de stock bajo, que deja en el log los productos en o bajo
// su umbral para que el operador reponga a tiempo.
package scheduler

import (
	"context"

	cron "github.com/robfig/cron/v3"

	"github.com/tu-usuario/tienda-pro/internal/application/usecase"
	"github.com/tu-usuario/tienda-pro/pkg/logger"
)

// LowStockSweeper programa el barrido de stock bajo con una expresión cron.
type LowStockSweeper struct {
	reports *usecase.ReportUseCase
	log     *logger.Logger
	c       *cron.Cron
}

// NewLowStockSweeper construye el barrido.
func NewLowStockSweeper(reports *usecase.ReportUseCase, log *logger.Logger) *LowStockSweeper {
	return &LowStockSweeper{reports: reports, log: log, c: cron.New()}
}

// Start programa el barrido con la expresión dada (vacía = deshabilitado) y
// arranca el scheduler en su propia goroutine.
func (s *LowStockSweeper) Start(spec string) error {
	if spec == "" {
		s.log.Info().Msg("barrido de stock bajo deshabilitado (LOW_STOCK_CRON vacío)")
		return nil
	}
	if _, err := s.c.AddFunc(spec, s.sweep); err != nil {
		return err
	}
	s.c.Start()
	s.log.Info().Str("cron", spec).Msg("barrido de stock bajo programado")
	return nil
}

// Stop detiene el scheduler y espera a que termine el barrido en curso.
func (s *LowStockSweeper) Stop() {
	<-s.c.Stop().Done()
}

func (s *LowStockSweeper) sweep() {
	items, err := s.reports.LowStock(context.Background())
	if err != nil {
		s.log.Error().Err(err).Msg("barrido de stock bajo falló")
		return
	}
	if len(items) == 0 {
		s.log.Info().Msg("barrido de stock bajo: sin alertas")
		return
	}
	for _, it := range items {
		s.log.Warn().
			Str("producto", it.Name).
			Str("stock", it.StockQuantity.String()).
			Str("umbral", it.Threshold.String()).
			Str("proveedor", it.VendorName).
			Msg("stock bajo")
	}
}
