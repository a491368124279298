package dto

import "github.com/shopspring/decimal"

// El JSON de factura usa camelCase: es el mismo formato que envía el formulario web.

// InvoiceRequest factura completa enviada al generar vista previa o PDF.
// InvoiceNumber vacío se genera a partir del emisor y la fecha de emisión.
type InvoiceRequest struct {
	InvoiceNumber string            `json:"invoiceNumber"`
	IssueDate     string            `json:"issueDate" validate:"required,datetime=2006-01-02"`
	DueDate       string            `json:"dueDate" validate:"required,datetime=2006-01-02"`
	Currency      string            `json:"currency" validate:"omitempty,max=10"`
	From          SellerDTO         `json:"from"`
	To            ClientDTO         `json:"to"`
	Items         []LineItemRequest `json:"items" validate:"required,min=1,dive"`
}

// LineItemRequest línea de la factura. taxType vacío = fijo.
type LineItemRequest struct {
	Product   string          `json:"product"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Tax       decimal.Decimal `json:"tax"`
	TaxType   string          `json:"taxType,omitempty" validate:"omitempty,oneof=fixed percentage"`
}

// SellerDTO datos del emisor (también es el perfil persistido, sin el logo).
type SellerDTO struct {
	Company string   `json:"company"`
	Logo    string   `json:"logo,omitempty"`
	Address []string `json:"address"`
	Email   string   `json:"email" validate:"omitempty,email"`
	Phone   string   `json:"phone"`
	Website string   `json:"website"`
}

// ClientDTO datos del receptor.
type ClientDTO struct {
	Company       string   `json:"company"`
	ContactPerson string   `json:"contactPerson"`
	Address       []string `json:"address"`
	Email         string   `json:"email" validate:"omitempty,email"`
	Phone         string   `json:"phone"`
}

// InvoiceDocumentResponse factura derivada: los mismos valores que se imprimen en el PDF.
type InvoiceDocumentResponse struct {
	InvoiceNumber string                 `json:"invoiceNumber"`
	IssueDate     string                 `json:"issueDate"`
	DueDate       string                 `json:"dueDate"`
	Currency      CurrencyResponse       `json:"currency"`
	From          SellerDTO              `json:"from"`
	To            ClientDTO              `json:"to"`
	Items         []DocumentLineResponse `json:"items"`
	Subtotal      decimal.Decimal        `json:"subtotal"`
	TaxTotal      decimal.Decimal        `json:"taxTotal"`
	GrandTotal    decimal.Decimal        `json:"grandTotal"`
	Formatted     FormattedTotals        `json:"formatted"`
}

// DocumentLineResponse línea derivada.
type DocumentLineResponse struct {
	Product   string          `json:"product"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice string          `json:"unitPrice"`
	Tax       string          `json:"tax"`
	Total     string          `json:"total"`
}

// FormattedTotals totales ya formateados con la moneda.
type FormattedTotals struct {
	Subtotal   string `json:"subtotal"`
	TaxTotal   string `json:"taxTotal"`
	GrandTotal string `json:"grandTotal"`
}

// InvoiceNumberResponse número sugerido para GET /api/invoices/number.
type InvoiceNumberResponse struct {
	InvoiceNumber string `json:"invoiceNumber"`
}

// LogoResponse logo aceptado como data URL.
type LogoResponse struct {
	Logo string `json:"logo"`
}
