package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponent_AgregaCampo(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Env: "production", Level: "info", Output: &buf})

	sub := l.Component("storage")
	sub.Info().Msg("listo")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "storage", entry["component"])
	assert.Equal(t, "listo", entry["message"])
	assert.Contains(t, entry, "time")
}

func TestNew_NivelFiltra(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Env: "production", Level: "warn", Output: &buf})

	l.Info().Msg("oculto")
	l.Debug().Msg("oculto")
	assert.Empty(t, buf.String())

	l.Warn().Msg("visible")
	l.Error().Msg("visible")
	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("visible")))
}

func TestParseLevel_DesconocidoEsInfo(t *testing.T) {
	assert.Equal(t, "info", parseLevel("verbose").String())
	assert.Equal(t, "trace", parseLevel("trace").String())
}
