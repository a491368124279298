package billing

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// DefaultInitials se usa cuando el nombre de la empresa está vacío.
	DefaultInitials = "COM"
	// InvoiceSequence sufijo fijo; no hay control de unicidad (uso de un solo usuario).
	InvoiceSequence = "0001"
)

var upper = cases.Upper(language.Und)

// GenerateInvoiceNumber arma el número de factura: INICIALES-AAMMDD-0001.
// Ej: ("Acme Web Studio", 2024-03-07) → "AWS-240307-0001".
// Dos facturas del mismo día y la misma empresa obtienen el mismo número.
func GenerateInvoiceNumber(companyName string, issueDate time.Time) string {
	var b strings.Builder
	for _, word := range strings.Fields(companyName) {
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteRune(r)
	}
	initials := upper.String(b.String())
	if initials == "" {
		initials = DefaultInitials
	}
	return fmt.Sprintf("%s-%s-%s", initials, issueDate.Format("060102"), InvoiceSequence)
}
