package billing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/invoice-studio/internal/application/dto"
	"github.com/jhoicas/invoice-studio/internal/domain"
	domainbilling "github.com/jhoicas/invoice-studio/internal/domain/billing"
	domaincurrency "github.com/jhoicas/invoice-studio/internal/domain/currency"
	"github.com/jhoicas/invoice-studio/internal/domain/entity"
)

// DateLayout formato de fechas en el JSON de factura.
const DateLayout = "2006-01-02"

// DueDays plazo por defecto entre emisión y vencimiento.
const DueDays = 30

// InvoiceUseCase arma borradores, valida facturas del formulario y las deriva para vista previa.
type InvoiceUseCase struct {
	currencies CurrencyResolver
	profile    SellerProfile
	selection  CurrencySelection
	now        func() time.Time
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(currencies CurrencyResolver, profile SellerProfile, selection CurrencySelection) *InvoiceUseCase {
	return &InvoiceUseCase{
		currencies: currencies,
		profile:    profile,
		selection:  selection,
		now:        time.Now,
	}
}

// NewDraft factura nueva: emisión hoy, vencimiento a 30 días, una línea vacía, emisor
// precargado desde el perfil y número sugerido a partir de su nombre.
func (uc *InvoiceUseCase) NewDraft(ctx context.Context) dto.InvoiceRequest {
	today := truncateDay(uc.now())
	seller := uc.profile.Seller(ctx)

	return dto.InvoiceRequest{
		InvoiceNumber: domainbilling.GenerateInvoiceNumber(seller.Company, today),
		IssueDate:     today.Format(DateLayout),
		DueDate:       today.AddDate(0, 0, DueDays).Format(DateLayout),
		Currency:      uc.selection.Code(),
		From:          dto.FromSeller(seller),
		To:            dto.FromClient(entity.Client{}),
		Items: []dto.LineItemRequest{{
			Quantity:  decimal.Zero,
			UnitPrice: decimal.Zero,
			Tax:       decimal.Zero,
			TaxType:   string(entity.TaxModeFixed),
		}},
	}
}

// Number sugiere el número de factura. date vacío = hoy.
func (uc *InvoiceUseCase) Number(company, date string) (dto.InvoiceNumberResponse, error) {
	day := truncateDay(uc.now())
	if date != "" {
		parsed, err := time.Parse(DateLayout, date)
		if err != nil {
			return dto.InvoiceNumberResponse{}, fmt.Errorf("%w: fecha inválida %q", domain.ErrInvalidInput, date)
		}
		day = parsed
	}
	return dto.InvoiceNumberResponse{InvoiceNumber: domainbilling.GenerateInvoiceNumber(company, day)}, nil
}

// ToRecord valida la factura del formulario y la convierte en entidad.
// Sin número se genera uno; sin moneda se usa la seleccionada.
func (uc *InvoiceUseCase) ToRecord(req dto.InvoiceRequest) (*entity.InvoiceRecord, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	issue, err := time.Parse(DateLayout, req.IssueDate)
	if err != nil {
		return nil, fmt.Errorf("%w: issueDate: %v", domain.ErrInvalidInput, err)
	}
	due, err := time.Parse(DateLayout, req.DueDate)
	if err != nil {
		return nil, fmt.Errorf("%w: dueDate: %v", domain.ErrInvalidInput, err)
	}

	code := strings.ToUpper(strings.TrimSpace(req.Currency))
	if code == "" {
		code = uc.selection.Code()
	}

	items := make([]entity.LineItem, 0, len(req.Items))
	for _, it := range req.Items {
		mode := entity.TaxModeFixed
		if it.TaxType == string(entity.TaxModePercentage) {
			mode = entity.TaxModePercentage
		}
		items = append(items, entity.LineItem{
			Product:   it.Product,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Tax:       it.Tax,
			TaxMode:   mode,
		})
	}

	rec := &entity.InvoiceRecord{
		Number:       strings.TrimSpace(req.InvoiceNumber),
		IssueDate:    issue,
		DueDate:      due,
		CurrencyCode: code,
		From:         dto.SellerToEntity(req.From),
		To:           dto.ClientToEntity(req.To),
		Items:        items,
	}
	if rec.Number == "" {
		rec.Number = domainbilling.GenerateInvoiceNumber(rec.From.Company, issue)
	}
	return rec, nil
}

// Document resuelve la moneda del registro y deriva la factura.
func (uc *InvoiceUseCase) Document(rec *entity.InvoiceRecord) *entity.InvoiceDocument {
	return BuildDocument(rec, uc.currencies.Resolve(rec.CurrencyCode).Currency())
}

// Preview valida y deriva la factura para POST /api/invoices/preview.
func (uc *InvoiceUseCase) Preview(req dto.InvoiceRequest) (dto.InvoiceDocumentResponse, error) {
	rec, err := uc.ToRecord(req)
	if err != nil {
		return dto.InvoiceDocumentResponse{}, err
	}
	res := uc.currencies.Resolve(rec.CurrencyCode)
	doc := BuildDocument(rec, res.Currency())
	return toDocumentResponse(doc, res), nil
}

func toDocumentResponse(doc *entity.InvoiceDocument, res domaincurrency.Resolution) dto.InvoiceDocumentResponse {
	_, fallback := res.(domaincurrency.Fallback)
	lines := make([]dto.DocumentLineResponse, 0, len(doc.Lines))
	for _, l := range doc.Lines {
		lines = append(lines, dto.DocumentLineResponse{
			Product:   l.Product,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPriceText,
			Tax:       l.TaxText,
			Total:     l.SubtotalText,
		})
	}
	return dto.InvoiceDocumentResponse{
		InvoiceNumber: doc.Number,
		IssueDate:     doc.IssueDate.Format(DateLayout),
		DueDate:       doc.DueDate.Format(DateLayout),
		Currency:      dto.FromCurrency(doc.Currency, fallback),
		From:          dto.FromSeller(doc.From),
		To:            dto.FromClient(doc.To),
		Items:         lines,
		Subtotal:      doc.Subtotal,
		TaxTotal:      doc.TaxTotal,
		GrandTotal:    doc.GrandTotal,
		Formatted: dto.FormattedTotals{
			Subtotal:   doc.SubtotalText,
			TaxTotal:   doc.TaxTotalText,
			GrandTotal: doc.GrandTotalText,
		},
	}
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
