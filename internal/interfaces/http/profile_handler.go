package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/tienda-pro/internal/application/dto"
	"github.com/tu-usuario/tienda-pro/internal/application/usecase"
)

// ProfileHandler maneja las peticiones HTTP del perfil de la tienda (protegido).
type ProfileHandler struct {
	uc *usecase.ProfileUseCase
}

// NewProfileHandler construye el handler.
func NewProfileHandler(uc *usecase.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

// Get devuelve el perfil.
// GET /api/profile
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	profile, err := h.uc.Get(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(profile)
}

// Update edita el perfil, incluida la configuración del consecutivo.
// PUT /api/profile
func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	profile, err := h.uc.Update(c.Context(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(profile)
}
