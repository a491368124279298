package pdf

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
)

// maxLogoSide lado máximo (px) del logo incrustado.
const maxLogoSide = 600

type logoImage struct {
	data []byte
	ext  extension.Type
}

// logo decodifica el data URL del emisor. Un logo ilegible se omite con un warning:
// la factura se exporta igual.
func (g *MarotoPDFGenerator) logo(dataURL string) (logoImage, bool) {
	if dataURL == "" {
		return logoImage{}, false
	}
	img, err := decodeLogo(dataURL)
	if err != nil {
		g.log.Warn().Err(err).Msg("logo omitido en el PDF")
		return logoImage{}, false
	}
	return img, true
}

// decodeLogo acepta "data:<mime>;base64,<datos>". PNG y JPEG pasan tal cual si no exceden
// maxLogoSide; cualquier otro formato que imaging sepa leer se re-codifica a PNG.
func decodeLogo(dataURL string) (logoImage, error) {
	meta, payload, ok := strings.Cut(strings.TrimPrefix(dataURL, "data:"), ",")
	if !ok || !strings.HasSuffix(meta, ";base64") {
		return logoImage{}, fmt.Errorf("pdf: logo: data URL inválido")
	}
	mime := strings.TrimSuffix(meta, ";base64")
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return logoImage{}, fmt.Errorf("pdf: logo: base64: %w", err)
	}

	img, err := imaging.Decode(bytes.NewReader(raw), imaging.AutoOrientation(true))
	if err != nil {
		return logoImage{}, fmt.Errorf("pdf: logo: decodificar %s: %w", mime, err)
	}
	b := img.Bounds()
	oversized := b.Dx() > maxLogoSide || b.Dy() > maxLogoSide

	switch {
	case mime == "image/png" && !oversized:
		return logoImage{data: raw, ext: extension.Png}, nil
	case mime == "image/jpeg" && !oversized:
		return logoImage{data: raw, ext: extension.Jpg}, nil
	}

	if oversized {
		img = imaging.Fit(img, maxLogoSide, maxLogoSide, imaging.Lanczos)
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return logoImage{}, fmt.Errorf("pdf: logo: re-codificar: %w", err)
	}
	return logoImage{data: buf.Bytes(), ext: extension.Png}, nil
}
