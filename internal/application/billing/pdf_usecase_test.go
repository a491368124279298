package billing

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoice-studio/internal/domain"
	"github.com/jhoicas/invoice-studio/internal/domain/entity"
)

func newPDFUC(gen *fakeGenerator) *PDFUseCase {
	return NewPDFUseCase(newInvoiceUC(entity.Seller{}, "USD"), gen, zerolog.Nop())
}

func TestExport_UsaElMismoDocumentoQueLaVistaPrevia(t *testing.T) {
	gen := &fakeGenerator{}
	uc := newPDFUC(gen)

	pdf, name, err := uc.Export(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "invoice.pdf", name)
	assert.Equal(t, "%PDF-1.3 AWS-240305-0001", string(pdf))
	require.Len(t, gen.docs, 1)
	assert.Equal(t, "$110.00", gen.docs[0].GrandTotalText)
}

func TestExport_FacturaInvalidaNoLlamaAlGenerador(t *testing.T) {
	gen := &fakeGenerator{}
	uc := newPDFUC(gen)
	req := validRequest()
	req.IssueDate = ""

	_, _, err := uc.Export(context.Background(), req)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, gen.docs)
}

func TestExport_ErrorDelGeneradorSePropaga(t *testing.T) {
	boom := errors.New("boom")
	uc := newPDFUC(&fakeGenerator{err: boom})

	_, _, err := uc.Export(context.Background(), validRequest())

	assert.ErrorIs(t, err, boom)
}

func TestExportAsync_TrabajaSobreInstantanea(t *testing.T) {
	gen := &fakeGenerator{}
	uc := newPDFUC(gen)
	rec, err := uc.invoices.ToRecord(validRequest())
	require.NoError(t, err)

	ch := uc.ExportAsync(context.Background(), rec)
	rec.Number = "CAMBIADO"
	rec.Items[0].Quantity = d("1000")

	res := <-ch
	require.NoError(t, res.Err)
	assert.NotEmpty(t, res.ID)
	assert.Equal(t, "invoice.pdf", res.Filename)
	assert.Equal(t, "%PDF-1.3 AWS-240305-0001", string(res.PDF))
	assert.Equal(t, "$110.00", gen.docs[0].GrandTotalText)

	_, open := <-ch
	assert.False(t, open, "el canal se cierra tras el resultado")
}

func TestExportAsync_ContextoCancelado(t *testing.T) {
	gen := &fakeGenerator{}
	uc := newPDFUC(gen)
	rec, err := uc.invoices.ToRecord(validRequest())
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := <-uc.ExportAsync(ctx, rec)

	assert.ErrorIs(t, res.Err, context.Canceled)
	assert.Empty(t, gen.docs)
}
