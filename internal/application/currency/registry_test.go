package currency_test

import (
	"context"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appcurrency "github.com/jhoicas/invoice-studio/internal/application/currency"
	"github.com/jhoicas/invoice-studio/internal/application/storage"
	"github.com/jhoicas/invoice-studio/internal/domain"
	domaincurrency "github.com/jhoicas/invoice-studio/internal/domain/currency"
	"github.com/jhoicas/invoice-studio/internal/infrastructure/localstore"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func newStore(t *testing.T) *localstore.FileStore {
	t.Helper()
	store, err := localstore.NewFileStore(afero.NewMemMapFs(), "/data")
	require.NoError(t, err)
	return store
}

func newRegistry(t *testing.T, store *localstore.FileStore) *appcurrency.Registry {
	t.Helper()
	reg := appcurrency.NewRegistry(storage.NewAdapter(store, zerolog.Nop()), zerolog.Nop())
	reg.Load(context.Background())
	return reg
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistry_AddYResolve(t *testing.T) {
	reg := newRegistry(t, newStore(t))

	added, err := reg.Add(context.Background(), "XTS", "X$", "X$", "TestCoin")
	require.NoError(t, err)

	res := reg.Resolve("XTS")
	known, ok := res.(domaincurrency.Known)
	require.True(t, ok)
	assert.Equal(t, added, known.Entry)
	assert.Equal(t, "TestCoins", known.Entry.NamePlural)
	assert.Equal(t, int32(2), known.Entry.DecimalDigits)
	assert.True(t, known.Entry.IsCustom)
}

func TestRegistry_PersonalizadaReemplazaIncorporada(t *testing.T) {
	reg := newRegistry(t, newStore(t))
	require.Equal(t, "$", reg.Currency("USD").Symbol)

	_, err := reg.Add(context.Background(), "usd", "US$", "", "Local Dollar")
	require.NoError(t, err)

	c := reg.Currency("USD")
	assert.Equal(t, "US$", c.Symbol)
	assert.Equal(t, "US$", c.NativeSymbol, "el símbolo nativo vacío toma el símbolo")
	assert.True(t, c.IsCustom)
}

func TestRegistry_AddSobrescribeMismoCodigo(t *testing.T) {
	reg := newRegistry(t, newStore(t))
	ctx := context.Background()

	_, err := reg.Add(ctx, "XTS", "X$", "X$", "TestCoin")
	require.NoError(t, err)
	_, err = reg.Add(ctx, "XTS", "T", "T", "Token")
	require.NoError(t, err)

	assert.Len(t, reg.Customs(), 1)
	assert.Equal(t, "Token", reg.Currency("XTS").Name)
}

func TestRegistry_AddValidaEntrada(t *testing.T) {
	reg := newRegistry(t, newStore(t))
	ctx := context.Background()

	cases := []struct{ code, symbol, name string }{
		{"", "$", "Coin"},
		{"AB", "$", "Coin"},
		{"ABCD", "$", "Coin"},
		{"A1C", "$", "Coin"},
		{"ABC", "", "Coin"},
		{"ABC", "$", "  "},
	}
	for _, tc := range cases {
		_, err := reg.Add(ctx, tc.code, tc.symbol, "", tc.name)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "%+v", tc)
	}
	assert.Empty(t, reg.Customs())
}

func TestRegistry_PersisteYRecarga(t *testing.T) {
	store := newStore(t)
	reg := newRegistry(t, store)
	ctx := context.Background()
	_, err := reg.Add(ctx, "XTS", "X$", "X$", "TestCoin")
	require.NoError(t, err)

	raw, err := store.Get(ctx, appcurrency.StorageKey)
	require.NoError(t, err)
	assert.JSONEq(t, `{"XTS":{"code":"XTS","symbol":"X$","symbolNative":"X$","name":"TestCoin","decimalDigits":2,"namePlural":"TestCoins","isCustom":true}}`, string(raw))

	// otra "ventana" arranca con la tabla persistida
	other := newRegistry(t, store)
	assert.Equal(t, "TestCoin", other.Currency("XTS").Name)
}

func TestRegistry_TablaCorruptaSeDescarta(t *testing.T) {
	store := newStore(t)
	require.NoError(t, store.Set(context.Background(), appcurrency.StorageKey, []byte("not json")))

	reg := newRegistry(t, store)

	assert.Empty(t, reg.Customs())
	_, fallback := reg.Resolve("XTS").(domaincurrency.Fallback)
	assert.True(t, fallback)
}

func TestRegistry_Remove(t *testing.T) {
	store := newStore(t)
	reg := newRegistry(t, store)
	ctx := context.Background()
	_, err := reg.Add(ctx, "XTS", "X$", "X$", "TestCoin")
	require.NoError(t, err)

	require.NoError(t, reg.Remove(ctx, "xts"))

	assert.Empty(t, reg.Customs())
	assert.ErrorIs(t, reg.Remove(ctx, "XTS"), domain.ErrNotFound)
	assert.ErrorIs(t, reg.Remove(ctx, "EUR"), domain.ErrNotFound, "las incorporadas no se eliminan")

	raw, err := store.Get(ctx, appcurrency.StorageKey)
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(raw))
}

func TestRegistry_ObservadoresReciben(t *testing.T) {
	reg := newRegistry(t, newStore(t))
	ctx := context.Background()

	var events []appcurrency.Event
	cancel := reg.Subscribe(func(ev appcurrency.Event) { events = append(events, ev) })

	_, err := reg.Add(ctx, "XTS", "X$", "X$", "TestCoin")
	require.NoError(t, err)
	require.NoError(t, reg.Remove(ctx, "XTS"))
	cancel()
	cancel() // idempotente
	_, err = reg.Add(ctx, "XBT", "B", "B", "Bit")
	require.NoError(t, err)

	assert.Equal(t, []appcurrency.Event{
		{Kind: appcurrency.EventAdded, Code: "XTS"},
		{Kind: appcurrency.EventRemoved, Code: "XTS"},
	}, events)
}

func TestRegistry_ReloadNotificaSoloSiCambia(t *testing.T) {
	store := newStore(t)
	reg := newRegistry(t, store)
	other := newRegistry(t, store)
	ctx := context.Background()

	reloads := 0
	reg.Subscribe(func(ev appcurrency.Event) {
		if ev.Kind == appcurrency.EventReloaded {
			reloads++
		}
	})

	reg.Reload(ctx)
	assert.Equal(t, 0, reloads, "sin cambios no hay notificación")

	_, err := other.Add(ctx, "XTS", "X$", "X$", "TestCoin")
	require.NoError(t, err)
	reg.Reload(ctx)

	assert.Equal(t, 1, reloads)
	assert.Equal(t, "TestCoin", reg.Currency("XTS").Name)
}

// Sin locking entre procesos: la última escritura de la tabla gana.
func TestRegistry_UltimoEscritorGana(t *testing.T) {
	store := newStore(t)
	a := newRegistry(t, store)
	b := newRegistry(t, store)
	ctx := context.Background()

	_, err := a.Add(ctx, "AAA", "A", "A", "Alpha")
	require.NoError(t, err)
	_, err = b.Add(ctx, "BBB", "B", "B", "Beta") // b tiene una copia vieja sin AAA
	require.NoError(t, err)

	fresh := newRegistry(t, store)
	codes := []string{}
	for _, c := range fresh.Customs() {
		codes = append(codes, c.Code)
	}
	assert.Equal(t, []string{"BBB"}, codes)
}

func TestRegistry_ResolveSinDistinguirMayusculas(t *testing.T) {
	reg := newRegistry(t, newStore(t))
	_, err := reg.Add(context.Background(), "XTS", "X$", "X$", "TestCoin")
	require.NoError(t, err)

	for _, code := range []string{"usd", " Eur ", "xts"} {
		_, known := reg.Resolve(code).(domaincurrency.Known)
		assert.True(t, known, code)
	}
	assert.Equal(t, "TestCoin", reg.Currency("xts").Name)
}

// Altas concurrentes: lo persistido coincide con lo que hay en memoria.
func TestRegistry_AddConcurrentePersisteTodo(t *testing.T) {
	store := newStore(t)
	reg := newRegistry(t, store)
	ctx := context.Background()

	var wg sync.WaitGroup
	for a := 'A'; a <= 'Z'; a++ {
		for b := 'A'; b <= 'Z'; b++ {
			wg.Add(1)
			go func(code string) {
				defer wg.Done()
				_, err := reg.Add(ctx, code, "Q", "Q", code)
				assert.NoError(t, err)
			}("Q" + string(a) + string(b))
		}
	}
	wg.Wait()

	require.Len(t, reg.Customs(), 26*26)
	assert.Len(t, newRegistry(t, store).Customs(), 26*26)
}
