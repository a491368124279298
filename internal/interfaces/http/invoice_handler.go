package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/invoice-studio/internal/application/billing"
	"github.com/jhoicas/invoice-studio/internal/application/dto"
)

// InvoiceHandler maneja borrador, numeración, vista previa y exportación.
type InvoiceHandler struct {
	invoices *billing.InvoiceUseCase
	pdf      *billing.PDFUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(invoices *billing.InvoiceUseCase, pdf *billing.PDFUseCase) *InvoiceHandler {
	return &InvoiceHandler{invoices: invoices, pdf: pdf}
}

// Draft godoc
// @Summary      Nueva factura con valores por defecto
// @Tags         invoices
// @Produce      json
// @Success      200  {object}  dto.InvoiceRequest
// @Router       /api/invoices/draft [get]
func (h *InvoiceHandler) Draft(c *fiber.Ctx) error {
	return c.JSON(h.invoices.NewDraft(c.UserContext()))
}

// Number godoc
// @Summary      Número de factura sugerido
// @Tags         invoices
// @Produce      json
// @Param        company  query  string  false  "Nombre del emisor"
// @Param        date     query  string  false  "Fecha de emisión (YYYY-MM-DD)"
// @Success      200  {object}  dto.InvoiceNumberResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/invoices/number [get]
func (h *InvoiceHandler) Number(c *fiber.Ctx) error {
	out, err := h.invoices.Number(c.Query("company"), c.Query("date"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Preview godoc
// @Summary      Vista previa (totales y montos formateados)
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        body  body  dto.InvoiceRequest  true  "Factura"
// @Success      200   {object}  dto.InvoiceDocumentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/invoices/preview [post]
func (h *InvoiceHandler) Preview(c *fiber.Ctx) error {
	var in dto.InvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.invoices.Preview(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// PDF godoc
// @Summary      Exportar factura a PDF
// @Tags         invoices
// @Accept       json
// @Produce      application/pdf
// @Param        body  body  dto.InvoiceRequest  true  "Factura"
// @Success      200
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      429   {object}  dto.ErrorResponse
// @Router       /api/invoices/pdf [post]
func (h *InvoiceHandler) PDF(c *fiber.Ctx) error {
	var in dto.InvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	pdfBytes, filename, err := h.pdf.Export(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Attachment(filename)
	return c.Send(pdfBytes)
}
