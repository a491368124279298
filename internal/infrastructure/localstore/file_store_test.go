package localstore

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoice-studio/internal/domain"
)

func newMemStore(t *testing.T) (*FileStore, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	s, err := NewFileStore(fs, "/data")
	require.NoError(t, err)
	return s, fs
}

func TestFileStore_GetClaveInexistente(t *testing.T) {
	s, _ := newMemStore(t)

	v, err := s.Get(context.Background(), "customCurrencies")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestFileStore_SetGetRemove(t *testing.T) {
	s, fs := newMemStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "invoiceFromDetails", []byte(`{"company":"Acme"}`)))
	require.NoError(t, s.Set(ctx, "invoiceFromDetails", []byte(`{"company":"Globex"}`)))

	v, err := s.Get(ctx, "invoiceFromDetails")
	require.NoError(t, err)
	assert.JSONEq(t, `{"company":"Globex"}`, string(v), "la última escritura gana")

	// no quedan temporales
	_, err = fs.Stat("/data/invoiceFromDetails.json.tmp")
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, s.Remove(ctx, "invoiceFromDetails"))
	require.NoError(t, s.Remove(ctx, "invoiceFromDetails"), "eliminar dos veces no es error")

	v, err = s.Get(ctx, "invoiceFromDetails")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestFileStore_ClaveInvalida(t *testing.T) {
	s, _ := newMemStore(t)
	ctx := context.Background()

	for _, key := range []string{"", "../etc/passwd", "a/b", "con espacio"} {
		_, err := s.Get(ctx, key)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "key=%q", key)
		assert.ErrorIs(t, s.Set(ctx, key, []byte("{}")), domain.ErrInvalidInput)
	}
}

func TestKeyFromPath(t *testing.T) {
	assert.Equal(t, "customCurrencies", keyFromPath("/x/customCurrencies.json"))
	assert.Equal(t, "", keyFromPath("/x/customCurrencies.json.tmp"))
	assert.Equal(t, "", keyFromPath("/x/readme.txt"))
}

func TestFileStore_WatchRequiereDiscoReal(t *testing.T) {
	s, _ := newMemStore(t)
	assert.Error(t, s.Watch(context.Background(), func(string) {}))
}

func TestFileStore_WatchNotificaEscriturasExternas(t *testing.T) {
	dir := t.TempDir()
	s, err := NewOSFileStore(dir)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var mu sync.Mutex
	seen := map[string]bool{}
	require.NoError(t, s.Watch(ctx, func(key string) {
		mu.Lock()
		seen[key] = true
		mu.Unlock()
	}))

	// otro proceso escribe directamente el archivo
	require.NoError(t, os.WriteFile(filepath.Join(dir, "customCurrencies.json"), []byte(`{}`), 0o600))

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return seen["customCurrencies"]
	}, 2*time.Second, 20*time.Millisecond)
}
