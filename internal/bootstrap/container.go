// Package bootstrap arma el grafo de dependencias compartido por la API y el CLI.
package bootstrap

import (
	"context"

	"github.com/jhoicas/invoice-studio/internal/application/billing"
	appcurrency "github.com/jhoicas/invoice-studio/internal/application/currency"
	"github.com/jhoicas/invoice-studio/internal/application/storage"
	"github.com/jhoicas/invoice-studio/internal/application/usecase"
	"github.com/jhoicas/invoice-studio/internal/domain/repository"
	infrapdf "github.com/jhoicas/invoice-studio/internal/infrastructure/pdf"
	"github.com/jhoicas/invoice-studio/pkg/config"
	"github.com/jhoicas/invoice-studio/pkg/logger"
)

// Container casos de uso listos para inyectar en handlers o comandos.
type Container struct {
	Storage    *storage.Adapter
	Currencies *appcurrency.Registry
	Selection  *appcurrency.Selection
	Profile    *usecase.ProfileUseCase
	Invoices   *billing.InvoiceUseCase
	PDF        *billing.PDFUseCase
	Logo       *billing.LogoUseCase
}

// New construye el contenedor sobre el almacén dado y carga las monedas personalizadas.
func New(ctx context.Context, cfg *config.Config, store repository.KeyValueStore, log *logger.Logger) *Container {
	adapter := storage.NewAdapter(store, log.Component("storage"))

	registry := appcurrency.NewRegistry(adapter, log.Component("currency"))
	registry.Load(ctx)
	selection := appcurrency.NewSelection(registry, cfg.Invoice.DefaultCurrency)

	profile := usecase.NewProfileUseCase(adapter)
	invoices := billing.NewInvoiceUseCase(registry, profile, selection)
	generator := infrapdf.NewMarotoPDFGenerator(log.Component("pdf"))

	return &Container{
		Storage:    adapter,
		Currencies: registry,
		Selection:  selection,
		Profile:    profile,
		Invoices:   invoices,
		PDF:        billing.NewPDFUseCase(invoices, generator, log.Component("export")),
		Logo:       billing.NewLogoUseCase(cfg.Invoice.LogoMaxBytes),
	}
}

// WatchStorage recarga el registro de monedas cuando otro proceso reescribe su tabla.
func (c *Container) WatchStorage(ctx context.Context, watcher repository.ChangeWatcher) error {
	return watcher.Watch(ctx, func(key string) {
		if key == appcurrency.StorageKey {
			c.Currencies.Reload(ctx)
		}
	})
}

// Close libera suscripciones.
func (c *Container) Close() {
	c.Selection.Close()
}
