package billing_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/invoice-studio/internal/domain/billing"
)

func TestGenerateInvoiceNumber(t *testing.T) {
	issue := time.Date(2024, time.March, 7, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		company string
		want    string
	}{
		{"tres palabras", "Acme Web Studio", "AWS-240307-0001"},
		{"minúsculas", "acme corp", "AC-240307-0001"},
		{"vacío usa COM", "", "COM-240307-0001"},
		{"solo espacios usa COM", "   ", "COM-240307-0001"},
		{"espacios múltiples", "  Blue   Ocean  ", "BO-240307-0001"},
		{"acentos", "élan ñandú", "ÉÑ-240307-0001"},
		{"una palabra", "Globex", "G-240307-0001"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, billing.GenerateInvoiceNumber(tc.company, issue))
		})
	}
}

func TestGenerateInvoiceNumber_MismoDiaMismoNumero(t *testing.T) {
	morning := time.Date(2025, time.December, 31, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2025, time.December, 31, 22, 0, 0, 0, time.UTC)

	a := billing.GenerateInvoiceNumber("Initech", morning)
	b := billing.GenerateInvoiceNumber("Initech", evening)

	assert.Equal(t, "I-251231-0001", a)
	assert.Equal(t, a, b, "no hay detección de colisiones")
}
