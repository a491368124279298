package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jhoicas/invoice-studio/internal/bootstrap"
	"github.com/jhoicas/invoice-studio/internal/domain/entity"
)

func newCurrencyCommand(c *bootstrap.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "currency",
		Short: "Administra las monedas personalizadas",
	}
	cmd.AddCommand(
		newCurrencyListCommand(c),
		newCurrencyAddCommand(c),
		newCurrencyRemoveCommand(c),
	)
	return cmd
}

func newCurrencyListCommand(c *bootstrap.Container) *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Lista monedas agrupadas (comunes, personalizadas, otras)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g := c.Currencies.Search(query)
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			writeGroup(w, "Most used", g.Common)
			writeGroup(w, "Custom", g.Custom)
			writeGroup(w, "Others", g.Others)
			return w.Flush()
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "filtra por código, nombre o plural")
	return cmd
}

func writeGroup(w *tabwriter.Writer, title string, list []entity.Currency) {
	if len(list) == 0 {
		return
	}
	fmt.Fprintf(w, "%s\n", title)
	for _, cur := range list {
		fmt.Fprintf(w, "  %s\t%s\t%s\n", cur.Code, cur.DisplaySymbol(), cur.Name)
	}
}

func newCurrencyAddCommand(c *bootstrap.Container) *cobra.Command {
	var native string

	cmd := &cobra.Command{
		Use:     "add <CODE> <SYMBOL> <NAME>",
		Short:   "Registra (o reemplaza) una moneda personalizada",
		Example: `  invoicectl currency add BTC ₿ Bitcoin`,
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cur, err := c.Currencies.Add(cmd.Context(), args[0], args[1], native, args[2])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s) registrada\n", cur.Code, cur.DisplaySymbol(), cur.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&native, "native", "", "símbolo nativo (por defecto el símbolo)")
	return cmd
}

func newCurrencyRemoveCommand(c *bootstrap.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <CODE>",
		Short: "Elimina una moneda personalizada",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.Currencies.Remove(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s eliminada\n", args[0])
			return nil
		},
	}
}
