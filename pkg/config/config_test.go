package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoice-studio/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir()) // sin .env en el directorio de trabajo

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "127.0.0.1:8080", cfg.HTTP.Addr())
	assert.Equal(t, "USD", cfg.Invoice.DefaultCurrency)
	assert.Equal(t, int64(5*1024*1024), cfg.Invoice.LogoMaxBytes)
	assert.True(t, cfg.Storage.Watch)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DEFAULT_CURRENCY", "eur")
	t.Setenv("STORAGE_WATCH", "false")
	t.Setenv("PDF_EXPORTS_PER_SECOND", "0.5")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "EUR", cfg.Invoice.DefaultCurrency, "el código se normaliza a mayúsculas")
	assert.False(t, cfg.Storage.Watch)
	assert.InDelta(t, 0.5, cfg.Invoice.ExportsPerSecond, 1e-9)
}

func TestLoad_PuertoInvalido(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HTTP_PORT", "70000")

	_, err := config.Load()
	assert.Error(t, err)
}
