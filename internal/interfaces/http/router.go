package http

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"

	"github.com/jhoicas/invoice-studio/internal/application/billing"
	appcurrency "github.com/jhoicas/invoice-studio/internal/application/currency"
	"github.com/jhoicas/invoice-studio/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	InvoiceUC     *billing.InvoiceUseCase
	PDFUC         *billing.PDFUseCase
	LogoUC        *billing.LogoUseCase
	ProfileUC     *usecase.ProfileUseCase
	Currencies    *appcurrency.Registry
	Selection     *appcurrency.Selection
	ExportLimiter *rate.Limiter // nil = sin límite
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Invoices
	invoices := api.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.PDFUC)
	invoices.Get("/draft", invoiceHandler.Draft)
	invoices.Get("/number", invoiceHandler.Number)
	invoices.Post("/preview", invoiceHandler.Preview)
	if deps.ExportLimiter != nil {
		invoices.Post("/pdf", RateLimit(deps.ExportLimiter), invoiceHandler.PDF)
	} else {
		invoices.Post("/pdf", invoiceHandler.PDF)
	}

	// Currencies (/selected antes de /:code)
	currencies := api.Group("/currencies")
	currencyHandler := NewCurrencyHandler(deps.Currencies, deps.Selection)
	currencies.Get("/", currencyHandler.Search)
	currencies.Post("/", currencyHandler.Create)
	currencies.Get("/selected", currencyHandler.Selected)
	currencies.Put("/selected", currencyHandler.Select)
	currencies.Get("/:code", currencyHandler.Get)
	currencies.Delete("/:code", currencyHandler.Delete)

	// Seller profile
	profileHandler := NewProfileHandler(deps.ProfileUC)
	api.Get("/profile", profileHandler.Get)
	api.Put("/profile", profileHandler.Put)

	// Logo
	logoHandler := NewLogoHandler(deps.LogoUC)
	api.Post("/logo", logoHandler.Upload)
}
