// Package cli implementa invoicectl: exportación y vista previa de facturas desde archivos
// JSON y administración de monedas personalizadas.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/invoice-studio/internal/application/dto"
	"github.com/jhoicas/invoice-studio/internal/bootstrap"
)

// Version se sobreescribe con -ldflags en los builds de release.
var Version = "dev"

// NewRootCommand construye el árbol de comandos sobre el contenedor ya armado.
func NewRootCommand(c *bootstrap.Container) *cobra.Command {
	root := &cobra.Command{
		Use:   "invoicectl",
		Short: "Invoice Studio: facturas en PDF desde la terminal",
		Long: `invoicectl comparte el almacén local con la API de Invoice Studio:
las monedas personalizadas y el perfil del emisor son los mismos en ambos.

Variables de entorno (también desde .env):
  STORAGE_DIR        directorio del almacén local (por defecto ./.invoice-data)
  DEFAULT_CURRENCY   moneda seleccionada al arrancar (USD)
  LOG_LEVEL          trace, debug, info, warn, error`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newDraftCommand(c),
		newRenderCommand(c),
		newPreviewCommand(c),
		newNumberCommand(c),
		newCurrencyCommand(c),
	)
	return root
}

// readInvoice lee una factura JSON (mismo formato que el formulario). "-" = stdin.
func readInvoice(cmd *cobra.Command, path string) (dto.InvoiceRequest, error) {
	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return dto.InvoiceRequest{}, fmt.Errorf("abrir %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}

	var req dto.InvoiceRequest
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return dto.InvoiceRequest{}, fmt.Errorf("leer factura %s: %w", path, err)
	}
	return req, nil
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
