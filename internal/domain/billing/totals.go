package billing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/invoice-studio/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// Totals totales de la factura, sin redondear. El redondeo a los decimales de la
// moneda ocurre solo al formatear (domain/currency.Format).
type Totals struct {
	Subtotal   decimal.Decimal
	TaxTotal   decimal.Decimal
	GrandTotal decimal.Decimal
}

// LineSubtotal = Cantidad × PrecioUnitario.
func LineSubtotal(item entity.LineItem) decimal.Decimal {
	return item.Quantity.Mul(item.UnitPrice)
}

// LineTax impuesto de la línea.
// Porcentaje: Subtotal × Tax / 100. Fijo: Tax tal cual, sin importar cantidad ni precio.
// Un TaxMode vacío o desconocido se trata como fijo.
func LineTax(item entity.LineItem) decimal.Decimal {
	if item.TaxMode == entity.TaxModePercentage {
		return LineSubtotal(item).Mul(item.Tax).Div(hundred)
	}
	return item.Tax
}

// CalculateTotals suma subtotales e impuestos de las líneas (servicio de dominio).
// GrandTotal = Subtotal + TaxTotal; el impuesto no se aplica en ningún otro lugar.
// Cantidades o precios negativos no se rechazan aquí.
func CalculateTotals(items []entity.LineItem) Totals {
	subtotal := decimal.Zero
	taxTotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(LineSubtotal(item))
		taxTotal = taxTotal.Add(LineTax(item))
	}
	return Totals{
		Subtotal:   subtotal,
		TaxTotal:   taxTotal,
		GrandTotal: subtotal.Add(taxTotal),
	}
}
