package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/tienda-pro/internal/application/usecase"
)

// ReportHandler maneja las peticiones HTTP de reportes (protegido).
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Summary devuelve el resumen financiero del día y del mes.
// GET /api/reports/summary
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.uc.Summary(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(summary)
}

// LowStock devuelve los productos en o bajo su umbral de alerta.
// GET /api/reports/low-stock
func (h *ReportHandler) LowStock(c *fiber.Ctx) error {
	items, err := h.uc.LowStock(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(items)
}
