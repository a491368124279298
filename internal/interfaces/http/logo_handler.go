package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/invoice-studio/internal/application/billing"
	"github.com/jhoicas/invoice-studio/internal/application/dto"
	"github.com/jhoicas/invoice-studio/internal/domain"
)

// LogoFormField campo multipart con el archivo.
const LogoFormField = "logo"

// LogoHandler recibe el logo del emisor.
type LogoHandler struct {
	uc *billing.LogoUseCase
}

// NewLogoHandler construye el handler.
func NewLogoHandler(uc *billing.LogoUseCase) *LogoHandler {
	return &LogoHandler{uc: uc}
}

// Upload godoc
// @Summary      Subir logo (imagen ≤ 5 MiB) y obtenerlo como data URL
// @Tags         logo
// @Accept       multipart/form-data
// @Produce      json
// @Param        logo  formData  file  true  "Imagen"
// @Success      200   {object}  dto.LogoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      413   {object}  dto.ErrorResponse
// @Failure      415   {object}  dto.ErrorResponse
// @Router       /api/logo [post]
func (h *LogoHandler) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile(LogoFormField)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "campo 'logo' requerido"})
	}
	if fh.Size > h.uc.MaxBytes() {
		return respondError(c, fmt.Errorf("%w: %d bytes", domain.ErrLogoTooLarge, fh.Size))
	}
	f, err := fh.Open()
	if err != nil {
		return respondError(c, err)
	}
	defer f.Close()

	url, err := h.uc.Accept(f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.LogoResponse{Logo: url})
}
