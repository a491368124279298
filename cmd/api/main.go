package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"golang.org/x/time/rate"

	"github.com/jhoicas/invoice-studio/internal/bootstrap"
	"github.com/jhoicas/invoice-studio/internal/infrastructure/localstore"
	httpRouter "github.com/jhoicas/invoice-studio/internal/interfaces/http"
	"github.com/jhoicas/invoice-studio/pkg/config"
	"github.com/jhoicas/invoice-studio/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Dir).
		Msg("iniciando aplicación")

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	store, err := localstore.NewOSFileStore(cfg.Storage.Dir)
	if err != nil {
		log.Fatal().Err(err).Msg("almacén local")
	}

	container := bootstrap.New(ctx, cfg, store, log)
	defer container.Close()

	// Cambios hechos por el CLI u otra instancia (equivalente a otra pestaña del navegador).
	if cfg.Storage.Watch {
		if err := container.WatchStorage(ctx, store); err != nil {
			log.Warn().Err(err).Msg("sin sincronización entre procesos")
		}
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    int(cfg.Invoice.LogoMaxBytes) + 1024*1024,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestID())
	app.Use(httpRouter.RequestLogger(log.Component("http")))
	app.Use(cors.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.Invoice.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.Invoice.SwaggerFile,
			Path:     "docs",
			Title:    "Invoice Studio API",
		}))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		InvoiceUC:     container.Invoices,
		PDFUC:         container.PDF,
		LogoUC:        container.Logo,
		ProfileUC:     container.Profile,
		Currencies:    container.Currencies,
		Selection:     container.Selection,
		ExportLimiter: rate.NewLimiter(rate.Limit(cfg.Invoice.ExportsPerSecond), cfg.Invoice.ExportBurst),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
