// Package pdf implementa la exportación de la factura a PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Logo + Emisor        │  Invoice: N° + fechas        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FROM: emisor                 │  TO: receptor                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Product | Qty | Unit Price | Tax | Total             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Tax / Total                             │
//	└─────────────────────────────────────────────────────────────┘
//
// Todos los montos llegan ya formateados en entity.InvoiceDocument: este paquete no
// calcula ni redondea nada.
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/rs/zerolog"

	appbilling "github.com/jhoicas/invoice-studio/internal/application/billing"
	"github.com/jhoicas/invoice-studio/internal/domain/entity"
)

// dateLayout fechas impresas en el encabezado.
const dateLayout = "Jan 2, 2006"

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 31, Green: 41, Blue: 55}
	colorGray    = &props.Color{Red: 107, Green: 114, Blue: 128}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa billing.InvoicePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	log zerolog.Logger
}

var _ appbilling.InvoicePDFGenerator = (*MarotoPDFGenerator)(nil)

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator(log zerolog.Logger) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{log: log}
}

// GenerateInvoicePDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(ctx context.Context, doc *entity.InvoiceDocument) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("pdf: documento nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	doc = printable(doc)

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Invoice "+doc.Number, true).
		WithAuthor(nonEmpty(doc.From.Company, "Invoice Studio"), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partiesRow(doc.From, doc.To))
	m.AddRows(line.NewRow(4))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableDetailRows(doc.Lines)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(doc))

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: logo + emisor (izq) y número + fechas (der).
func (g *MarotoPDFGenerator) headerRow(doc *entity.InvoiceDocument) core.Row {
	seller := []core.Component{
		text.New(nonEmpty(doc.From.Company, "-"), props.Text{
			Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
		}),
	}
	if doc.From.Website != "" {
		seller = append(seller, text.New(doc.From.Website, props.Text{
			Size: 8, Top: 10, Color: colorGray,
		}))
	}

	cols := make([]core.Col, 0, 3)
	if logo, ok := g.logo(doc.From.Logo); ok {
		cols = append(cols, col.New(2).Add(image.NewFromBytes(logo.data, logo.ext, props.Rect{
			Percent: 90,
			Center:  true,
		})), col.New(5).Add(seller...))
	} else {
		cols = append(cols, col.New(7).Add(seller...))
	}

	cols = append(cols, col.New(5).Add(
		text.New("Invoice: "+doc.Number, props.Text{
			Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 2,
		}),
		text.New("Issue date: "+doc.IssueDate.Format(dateLayout), props.Text{
			Size: 8, Align: align.Right, Top: 10, Color: colorGray,
		}),
		text.New("Due date: "+doc.DueDate.Format(dateLayout), props.Text{
			Size: 8, Align: align.Right, Top: 15, Color: colorGray,
		}),
	))

	return row.New(24).Add(cols...)
}

// partiesRow: bloques From / To.
func partiesRow(from entity.Seller, to entity.Client) core.Row {
	fromLines := append([]string{from.Company}, from.Address...)
	fromLines = append(fromLines, from.Email, from.Phone)

	toLines := []string{to.Company, to.ContactPerson}
	toLines = append(toLines, to.Address...)
	toLines = append(toLines, to.Email, to.Phone)

	return row.New(36).Add(
		col.New(6).Add(partyBlock("From", fromLines)...),
		col.New(6).Add(partyBlock("To", toLines)...),
	)
}

func partyBlock(title string, lines []string) []core.Component {
	out := []core.Component{
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2}),
	}
	top := 8.0
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		out = append(out, text.New(l, props.Text{Size: 8, Top: top, Color: colorGray}))
		top += 4
	}
	return out
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Product", 5, align.Left),
		h("Qty", 1, align.Center),
		h("Unit Price", 2, align.Right),
		h("Tax", 2, align.Right),
		h("Total", 2, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// tableDetailRows: una fila por línea.
func tableDetailRows(lines []entity.DocumentLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		result = append(result, row.New(7).Add(
			col.New(5).Add(text.New(l.Product, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(1).Add(text.New(l.Quantity.String(), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(l.UnitPriceText, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(l.TaxText, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(l.SubtotalText, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(doc *entity.InvoiceDocument) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}

	return row.New(22).Add(
		col.New(6),
		col.New(3).Add(
			label("Subtotal:", 2),
			label("Tax:", 8),
			text.New("Total:", props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorPrimary, Right: 2, Top: 14,
			}),
		),
		col.New(3).Add(
			value(doc.SubtotalText, 2),
			value(doc.TaxTotalText, 8),
			text.New(doc.GrandTotalText, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorPrimary, Right: 1, Top: 14,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
