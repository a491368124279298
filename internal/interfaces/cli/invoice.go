package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/invoice-studio/internal/application/billing"
	"github.com/jhoicas/invoice-studio/internal/bootstrap"
)

func newDraftCommand(c *bootstrap.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "draft",
		Short:   "Imprime una factura nueva con valores por defecto (punto de partida para editar)",
		Example: `  invoicectl draft > invoice.json`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printJSON(cmd, c.Invoices.NewDraft(cmd.Context()))
		},
	}
}

func newRenderCommand(c *bootstrap.Container) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "render <invoice.json>",
		Short: "Exporta la factura a PDF",
		Example: `  invoicectl render invoice.json
  invoicectl render invoice.json -o marzo.pdf
  cat invoice.json | invoicectl render - -o marzo.pdf`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := readInvoice(cmd, args[0])
			if err != nil {
				return err
			}
			rec, err := c.Invoices.ToRecord(req)
			if err != nil {
				return err
			}

			select {
			case res := <-c.PDF.ExportAsync(cmd.Context(), rec):
				if res.Err != nil {
					return res.Err
				}
				if err := os.WriteFile(output, res.PDF, 0o644); err != nil {
					return fmt.Errorf("escribir %s: %w", output, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%s, %d bytes)\n", output, rec.Number, len(res.PDF))
				return nil
			case <-cmd.Context().Done():
				return cmd.Context().Err()
			}
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", billing.ExportFilename, "archivo PDF de salida")
	return cmd
}

func newPreviewCommand(c *bootstrap.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "preview <invoice.json>",
		Short: "Muestra totales y montos formateados sin generar el PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := readInvoice(cmd, args[0])
			if err != nil {
				return err
			}
			out, err := c.Invoices.Preview(req)
			if err != nil {
				return err
			}
			return printJSON(cmd, out)
		},
	}
}

func newNumberCommand(c *bootstrap.Container) *cobra.Command {
	var company, date string

	cmd := &cobra.Command{
		Use:     "number",
		Short:   "Sugiere el número de factura a partir del emisor y la fecha",
		Example: `  invoicectl number --company "Acme Web Studio" --date 2024-03-05`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if company == "" {
				company = c.Profile.Seller(cmd.Context()).Company
			}
			out, err := c.Invoices.Number(company, date)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out.InvoiceNumber)
			return nil
		},
	}
	cmd.Flags().StringVar(&company, "company", "", "nombre del emisor (por defecto el del perfil guardado)")
	cmd.Flags().StringVar(&date, "date", "", "fecha de emisión YYYY-MM-DD (por defecto hoy)")
	return cmd
}
