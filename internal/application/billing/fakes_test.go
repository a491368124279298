package billing

import (
	"context"
	"sync"

	domaincurrency "github.com/jhoicas/invoice-studio/internal/domain/currency"
	"github.com/jhoicas/invoice-studio/internal/domain/entity"
)

type builtinResolver struct{}

func (builtinResolver) Resolve(code string) domaincurrency.Resolution {
	return domaincurrency.Resolve(code, domaincurrency.Builtins(), nil)
}

type fixedProfile struct{ seller entity.Seller }

func (p fixedProfile) Seller(context.Context) entity.Seller { return p.seller }

type fixedSelection string

func (s fixedSelection) Code() string { return string(s) }

// fakeGenerator registra los documentos recibidos.
type fakeGenerator struct {
	mu   sync.Mutex
	docs []*entity.InvoiceDocument
	err  error
}

func (g *fakeGenerator) GenerateInvoicePDF(_ context.Context, doc *entity.InvoiceDocument) ([]byte, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.err != nil {
		return nil, g.err
	}
	g.docs = append(g.docs, doc)
	return []byte("%PDF-1.3 " + doc.Number), nil
}
