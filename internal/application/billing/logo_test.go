package billing

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoice-studio/internal/domain"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestLogo_AceptaPNG(t *testing.T) {
	uc := NewLogoUseCase(0)

	url, err := uc.Accept(bytes.NewReader(pngBytes(t)))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "data:image/png;base64,"))
	assert.Equal(t, DefaultLogoMaxBytes, uc.MaxBytes())
}

func TestLogo_RechazaNoImagen(t *testing.T) {
	uc := NewLogoUseCase(0)

	_, err := uc.Accept(strings.NewReader("%PDF-1.4 no soy una imagen"))

	assert.ErrorIs(t, err, domain.ErrInvalidLogo)
}

func TestLogo_RechazaVacio(t *testing.T) {
	_, err := NewLogoUseCase(0).Accept(bytes.NewReader(nil))

	assert.ErrorIs(t, err, domain.ErrInvalidLogo)
}

func TestLogo_RechazaDemasiadoGrande(t *testing.T) {
	data := pngBytes(t)
	uc := NewLogoUseCase(int64(len(data) - 1))

	_, err := uc.Accept(bytes.NewReader(data))

	assert.ErrorIs(t, err, domain.ErrLogoTooLarge)
}

func TestLogo_JustoEnElLimite(t *testing.T) {
	data := pngBytes(t)
	uc := NewLogoUseCase(int64(len(data)))

	_, err := uc.Accept(bytes.NewReader(data))

	assert.NoError(t, err)
}
