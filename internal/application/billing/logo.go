package billing

import (
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/jhoicas/invoice-studio/internal/domain"
)

// DefaultLogoMaxBytes límite de tamaño del logo (5 MiB).
const DefaultLogoMaxBytes int64 = 5 * 1024 * 1024

// LogoUseCase valida el logo subido y lo convierte en data URL para incrustarlo en la factura.
type LogoUseCase struct {
	maxBytes int64
}

// NewLogoUseCase construye el caso de uso. maxBytes <= 0 usa DefaultLogoMaxBytes.
func NewLogoUseCase(maxBytes int64) *LogoUseCase {
	if maxBytes <= 0 {
		maxBytes = DefaultLogoMaxBytes
	}
	return &LogoUseCase{maxBytes: maxBytes}
}

// MaxBytes límite vigente.
func (uc *LogoUseCase) MaxBytes() int64 { return uc.maxBytes }

// Accept lee el archivo completo y devuelve "data:<mime>;base64,<datos>".
// El tipo se detecta por contenido, no por extensión ni cabeceras del cliente.
func (uc *LogoUseCase) Accept(r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, uc.maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("logo: lectura: %w", err)
	}
	if int64(len(data)) > uc.maxBytes {
		return "", fmt.Errorf("%w: máximo %d bytes", domain.ErrLogoTooLarge, uc.maxBytes)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("%w: archivo vacío", domain.ErrInvalidLogo)
	}

	mt := mimetype.Detect(data)
	if !strings.HasPrefix(mt.String(), "image/") {
		return "", fmt.Errorf("%w: tipo %s no es una imagen", domain.ErrInvalidLogo, mt.String())
	}
	return "data:" + mt.String() + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
