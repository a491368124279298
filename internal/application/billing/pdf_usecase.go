package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/invoice-studio/internal/application/dto"
	"github.com/jhoicas/invoice-studio/internal/domain/entity"
)

// ExportFilename nombre fijo del archivo descargado.
const ExportFilename = "invoice.pdf"

// ExportResult resultado de una exportación asíncrona.
type ExportResult struct {
	ID       string
	Filename string
	PDF      []byte
	Err      error
}

// PDFUseCase exporta la factura a PDF a partir del mismo documento que la vista previa.
type PDFUseCase struct {
	invoices  *InvoiceUseCase
	generator InvoicePDFGenerator
	log       zerolog.Logger
}

// NewPDFUseCase construye el caso de uso inyectando el generador.
func NewPDFUseCase(invoices *InvoiceUseCase, generator InvoicePDFGenerator, log zerolog.Logger) *PDFUseCase {
	return &PDFUseCase{invoices: invoices, generator: generator, log: log}
}

// Export genera el PDF de la factura del formulario.
//
// Retorna:
//   - (pdfBytes, "invoice.pdf", nil) si todo sale bien.
//   - domain.ErrInvalidInput         si la factura no pasa la validación.
//   - error envuelto "pdf: ..."      si falla la generación.
func (uc *PDFUseCase) Export(ctx context.Context, req dto.InvoiceRequest) ([]byte, string, error) {
	rec, err := uc.invoices.ToRecord(req)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err := uc.ExportRecord(ctx, rec)
	if err != nil {
		return nil, "", err
	}
	return pdfBytes, ExportFilename, nil
}

// ExportRecord genera el PDF de una factura ya validada.
func (uc *PDFUseCase) ExportRecord(ctx context.Context, rec *entity.InvoiceRecord) ([]byte, error) {
	return uc.render(ctx, uc.invoices.Document(rec))
}

// ExportAsync genera el PDF en segundo plano sobre una instantánea de la factura: los
// cambios posteriores del llamador no afectan al archivo. El canal entrega un único
// resultado y se cierra. Si ctx se cancela antes de renderizar, el resultado trae ctx.Err().
func (uc *PDFUseCase) ExportAsync(ctx context.Context, rec *entity.InvoiceRecord) <-chan ExportResult {
	id := uuid.NewString()
	doc := uc.invoices.Document(rec.Clone())
	out := make(chan ExportResult, 1)

	go func() {
		defer close(out)
		res := ExportResult{ID: id, Filename: ExportFilename}
		if err := ctx.Err(); err != nil {
			res.Err = err
			out <- res
			return
		}
		res.PDF, res.Err = uc.render(ctx, doc)
		out <- res
	}()
	return out
}

func (uc *PDFUseCase) render(ctx context.Context, doc *entity.InvoiceDocument) ([]byte, error) {
	start := time.Now()
	pdfBytes, err := uc.generator.GenerateInvoicePDF(ctx, doc)
	if err != nil {
		uc.log.Error().Err(err).Str("invoice_number", doc.Number).Msg("fallo generando PDF")
		return nil, fmt.Errorf("pdf: generación fallida: %w", err)
	}
	uc.log.Info().
		Str("invoice_number", doc.Number).
		Int("bytes", len(pdfBytes)).
		Dur("took", time.Since(start)).
		Msg("PDF generado")
	return pdfBytes, nil
}
