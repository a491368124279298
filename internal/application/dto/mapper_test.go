package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/invoice-studio/internal/application/dto"
	"github.com/jhoicas/invoice-studio/internal/domain"
)

func TestSellerToEntity_CompletaTresLineas(t *testing.T) {
	s := dto.SellerToEntity(dto.SellerDTO{Company: "Acme", Address: []string{"1 Main St"}})

	assert.Equal(t, []string{"1 Main St", "", ""}, s.Address)
}

func TestFromCurrencies_NuncaNil(t *testing.T) {
	assert.NotNil(t, dto.FromCurrencies(nil))
}

func TestValidate_InvoiceRequest(t *testing.T) {
	valid := dto.InvoiceRequest{
		IssueDate: "2024-03-05",
		DueDate:   "2024-04-04",
		Items:     []dto.LineItemRequest{{Product: "Diseño web"}},
	}

	tests := []struct {
		name   string
		mutate func(*dto.InvoiceRequest)
		ok     bool
	}{
		{"válida", func(*dto.InvoiceRequest) {}, true},
		{"sin líneas", func(r *dto.InvoiceRequest) { r.Items = nil }, false},
		{"fecha mal formada", func(r *dto.InvoiceRequest) { r.IssueDate = "05/03/2024" }, false},
		{"taxType desconocido", func(r *dto.InvoiceRequest) { r.Items[0].TaxType = "vat" }, false},
		{"email del receptor inválido", func(r *dto.InvoiceRequest) { r.To.Email = "x" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			req.Items = []dto.LineItemRequest{valid.Items[0]}
			tt.mutate(&req)

			err := dto.Validate(req)
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}
