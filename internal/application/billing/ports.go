package billing

import (
	"context"

	domaincurrency "github.com/jhoicas/invoice-studio/internal/domain/currency"
	"github.com/jhoicas/invoice-studio/internal/domain/entity"
)

// InvoicePDFGenerator genera la representación gráfica (PDF) de una factura ya derivada.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, doc *entity.InvoiceDocument) ([]byte, error)
}

// CurrencyResolver resuelve códigos de moneda (incorporadas + personalizadas).
type CurrencyResolver interface {
	Resolve(code string) domaincurrency.Resolution
}

// SellerProfile devuelve el emisor guardado para precargar borradores.
type SellerProfile interface {
	Seller(ctx context.Context) entity.Seller
}

// CurrencySelection moneda activa del editor.
type CurrencySelection interface {
	Code() string
}
