package entity

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceRecord es la factura capturada en el formulario. Vive solo en memoria durante la sesión.
type InvoiceRecord struct {
	Number       string
	IssueDate    time.Time
	DueDate      time.Time
	CurrencyCode string
	From         Seller
	To           Client
	Items        []LineItem
}

// Clone devuelve una copia profunda; la exportación a PDF trabaja sobre esta instantánea.
func (r *InvoiceRecord) Clone() *InvoiceRecord {
	if r == nil {
		return nil
	}
	out := *r
	out.From.Address = slices.Clone(r.From.Address)
	out.To.Address = slices.Clone(r.To.Address)
	out.Items = slices.Clone(r.Items)
	return &out
}

// InvoiceDocument es la factura ya derivada (totales + formato de moneda) lista para
// previsualizar o exportar. Vista previa y PDF consumen la misma estructura.
type InvoiceDocument struct {
	Number    string
	IssueDate time.Time
	DueDate   time.Time
	Currency  Currency
	From      Seller
	To        Client
	Lines     []DocumentLine

	Subtotal   decimal.Decimal
	TaxTotal   decimal.Decimal
	GrandTotal decimal.Decimal

	SubtotalText   string
	TaxTotalText   string
	GrandTotalText string
}

// DocumentLine línea ya formateada.
type DocumentLine struct {
	Product       string
	Quantity      decimal.Decimal
	UnitPrice     decimal.Decimal
	Tax           decimal.Decimal // impuesto calculado de la línea
	Subtotal      decimal.Decimal // cantidad × precio, sin impuesto
	UnitPriceText string
	TaxText       string // "10%" en modo porcentaje, monto formateado en modo fijo
	SubtotalText  string
}
