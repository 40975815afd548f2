package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/tienda-pro/internal/application/usecase"
)

// AIHandler maneja las peticiones HTTP del asistente de insights (protegido).
type AIHandler struct {
	uc *usecase.AIUseCase
}

// NewAIHandler construye el handler.
func NewAIHandler(uc *usecase.AIUseCase) *AIHandler {
	return &AIHandler{uc: uc}
}

// Insight genera un consejo de negocio a partir del resumen financiero.
// GET /api/ai/insight
func (h *AIHandler) Insight(c *fiber.Ctx) error {
	out, err := h.uc.BusinessInsight(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
