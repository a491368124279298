package billing

import (
	domainbilling "github.com/jhoicas/invoice-studio/internal/domain/billing"
	"github.com/jhoicas/invoice-studio/internal/domain/currency"
	"github.com/jhoicas/invoice-studio/internal/domain/entity"
)

// BuildDocument deriva la factura lista para mostrar: totales sin redondear y todos los
// montos formateados con la moneda indicada. Vista previa y PDF usan este resultado.
func BuildDocument(rec *entity.InvoiceRecord, cur entity.Currency) *entity.InvoiceDocument {
	totals := domainbilling.CalculateTotals(rec.Items)

	lines := make([]entity.DocumentLine, 0, len(rec.Items))
	for _, item := range rec.Items {
		subtotal := domainbilling.LineSubtotal(item)
		lines = append(lines, entity.DocumentLine{
			Product:       item.Product,
			Quantity:      item.Quantity,
			UnitPrice:     item.UnitPrice,
			Tax:           domainbilling.LineTax(item),
			Subtotal:      subtotal,
			UnitPriceText: currency.Format(item.UnitPrice, cur),
			TaxText:       taxLabel(item, cur),
			SubtotalText:  currency.Format(subtotal, cur),
		})
	}

	return &entity.InvoiceDocument{
		Number:         rec.Number,
		IssueDate:      rec.IssueDate,
		DueDate:        rec.DueDate,
		Currency:       cur,
		From:           rec.From,
		To:             rec.To,
		Lines:          lines,
		Subtotal:       totals.Subtotal,
		TaxTotal:       totals.TaxTotal,
		GrandTotal:     totals.GrandTotal,
		SubtotalText:   currency.Format(totals.Subtotal, cur),
		TaxTotalText:   currency.Format(totals.TaxTotal, cur),
		GrandTotalText: currency.Format(totals.GrandTotal, cur),
	}
}

// taxLabel "10%" en modo porcentaje; en modo fijo el monto formateado.
func taxLabel(item entity.LineItem, cur entity.Currency) string {
	if item.TaxMode == entity.TaxModePercentage {
		return item.Tax.String() + "%"
	}
	return currency.Format(item.Tax, cur)
}
