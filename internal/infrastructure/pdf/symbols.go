package pdf

import (
	"strings"

	"golang.org/x/text/encoding/charmap"

	"github.com/jhoicas/invoice-studio/internal/domain/entity"
)

// printable devuelve doc listo para la fuente estándar (helvetica, cp1252). Si el símbolo
// de la moneda no existe en cp1252 (₦, ₵, ￥...) los montos se imprimen con el código:
// "￥1235" → "JPY 1235". doc no se modifica.
func printable(doc *entity.InvoiceDocument) *entity.InvoiceDocument {
	sym := doc.Currency.DisplaySymbol()
	if sym == "" || encodable(sym) {
		return doc
	}
	r := strings.NewReplacer(sym, doc.Currency.Code+" ")

	out := *doc
	out.Lines = make([]entity.DocumentLine, len(doc.Lines))
	for i, l := range doc.Lines {
		l.UnitPriceText = r.Replace(l.UnitPriceText)
		l.TaxText = r.Replace(l.TaxText)
		l.SubtotalText = r.Replace(l.SubtotalText)
		out.Lines[i] = l
	}
	out.SubtotalText = r.Replace(doc.SubtotalText)
	out.TaxTotalText = r.Replace(doc.TaxTotalText)
	out.GrandTotalText = r.Replace(doc.GrandTotalText)
	return &out
}

// encodable indica si s se puede escribir con la codificación de las fuentes estándar.
func encodable(s string) bool {
	_, err := charmap.Windows1252.NewEncoder().String(s)
	return err == nil
}
