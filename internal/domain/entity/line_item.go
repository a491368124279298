package entity

import "github.com/shopspring/decimal"

// Modos de impuesto por línea.
const (
	TaxModeFixed      TaxMode = "fixed"      // monto fijo por línea, independiente de cantidad y precio
	TaxModePercentage TaxMode = "percentage" // porcentaje sobre el subtotal de la línea
)

// TaxMode indica cómo interpretar LineItem.Tax.
type TaxMode string

// LineItem representa una línea de la factura.
// Los montos derivados (subtotal, impuesto) no se almacenan: los calcula domain/billing.
type LineItem struct {
	Product   string
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
	Tax       decimal.Decimal // monto fijo o porcentaje según TaxMode
	TaxMode   TaxMode
}
