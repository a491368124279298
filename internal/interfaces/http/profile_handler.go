package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/invoice-studio/internal/application/dto"
	"github.com/jhoicas/invoice-studio/internal/application/usecase"
)

// ProfileHandler datos del emisor guardados localmente.
type ProfileHandler struct {
	uc *usecase.ProfileUseCase
}

// NewProfileHandler construye el handler.
func NewProfileHandler(uc *usecase.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

// Get godoc
// @Summary      Perfil del emisor
// @Tags         profile
// @Produce      json
// @Success      200  {object}  dto.SellerDTO
// @Router       /api/profile [get]
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	return c.JSON(h.uc.Get(c.UserContext()))
}

// Put godoc
// @Summary      Guardar perfil del emisor (sin logo)
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SellerDTO  true  "Emisor"
// @Success      200   {object}  dto.SellerDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/profile [put]
func (h *ProfileHandler) Put(c *fiber.Ctx) error {
	var in dto.SellerDTO
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Save(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
