package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/jhoicas/invoice-studio/internal/bootstrap"
	"github.com/jhoicas/invoice-studio/internal/infrastructure/localstore"
	"github.com/jhoicas/invoice-studio/internal/interfaces/cli"
	"github.com/jhoicas/invoice-studio/pkg/config"
	"github.com/jhoicas/invoice-studio/pkg/logger"
)

func main() {
	// .env opcional; las variables ya definidas en el entorno tienen prioridad
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}

	// stdout queda libre para la salida de los comandos
	log := logger.New(logger.Config{
		Env:    cfg.App.Env,
		Level:  cfg.App.LogLevel,
		Output: os.Stderr,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := localstore.NewOSFileStore(cfg.Storage.Dir)
	if err != nil {
		log.Error().Err(err).Msg("almacén local")
		os.Exit(1)
	}
	container := bootstrap.New(ctx, cfg, store, log)
	defer container.Close()

	if err := cli.NewRootCommand(container).ExecuteContext(ctx); err != nil {
		log.Debug().Err(err).Msg("comando fallido")
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}
