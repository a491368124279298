package currency

import (
	"context"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jhoicas/invoice-studio/internal/application/storage"
	"github.com/jhoicas/invoice-studio/internal/domain"
	domaincurrency "github.com/jhoicas/invoice-studio/internal/domain/currency"
	"github.com/jhoicas/invoice-studio/internal/domain/entity"
)

const (
	// StorageKey clave del almacén local con la tabla completa de monedas personalizadas.
	StorageKey = "customCurrencies"
	// DefaultCode moneda a la que vuelve la selección si se elimina la seleccionada.
	DefaultCode = "USD"
	// CustomDecimalDigits decimales fijos de toda moneda personalizada.
	CustomDecimalDigits = 2
)

var codePattern = regexp.MustCompile(`^[A-Z]{3}$`)

// Tipos de evento emitidos por el registro.
const (
	EventAdded    EventKind = "added"
	EventRemoved  EventKind = "removed"
	EventReloaded EventKind = "reloaded" // otro proceso reescribió la tabla
)

// EventKind tipo de cambio en el registro.
type EventKind string

// Event notificación de cambio. Code vacío en EventReloaded.
type Event struct {
	Kind EventKind
	Code string
}

// Listener recibe eventos del registro. Se invoca fuera de los locks del registro.
type Listener func(Event)

// record forma persistida de cada moneda (mismo JSON que usa el formulario web).
type record struct {
	Code          string `json:"code"`
	Symbol        string `json:"symbol"`
	SymbolNative  string `json:"symbolNative"`
	Name          string `json:"name"`
	DecimalDigits int32  `json:"decimalDigits"`
	NamePlural    string `json:"namePlural"`
	IsCustom      bool   `json:"isCustom"`
}

// Registry tabla de monedas personalizadas (persistida) + tabla incorporada.
// Se construye una vez al arrancar y se inyecta; no hay estado global.
type Registry struct {
	store    *storage.Adapter
	builtins map[string]entity.Currency
	log      zerolog.Logger

	// persistMu ordena cambio + escritura: el archivo siempre refleja la última mutación.
	persistMu sync.Mutex
	mu        sync.RWMutex
	customs   map[string]entity.Currency

	subMu  sync.Mutex
	subs   map[uint64]Listener
	nextID uint64
}

// NewRegistry construye el registro. Llamar Load antes de usarlo.
func NewRegistry(store *storage.Adapter, log zerolog.Logger) *Registry {
	return &Registry{
		store:    store,
		builtins: domaincurrency.Builtins(),
		log:      log,
		customs:  map[string]entity.Currency{},
		subs:     map[uint64]Listener{},
	}
}

// Load lee la tabla persistida. Un valor corrupto se descarta (tabla vacía).
func (r *Registry) Load(ctx context.Context) {
	r.persistMu.Lock()
	defer r.persistMu.Unlock()
	loaded := r.read(ctx)
	r.mu.Lock()
	r.customs = loaded
	r.mu.Unlock()
	r.log.Debug().Int("custom_currencies", len(loaded)).Msg("monedas personalizadas cargadas")
}

// Reload vuelve a leer la tabla y notifica EventReloaded solo si cambió.
func (r *Registry) Reload(ctx context.Context) {
	r.persistMu.Lock()
	loaded := r.read(ctx)
	r.mu.Lock()
	changed := !maps.Equal(r.customs, loaded)
	r.customs = loaded
	r.mu.Unlock()
	r.persistMu.Unlock()
	if changed {
		r.log.Info().Int("custom_currencies", len(loaded)).Msg("tabla de monedas modificada externamente")
		r.notify(Event{Kind: EventReloaded})
	}
}

func (r *Registry) read(ctx context.Context) map[string]entity.Currency {
	var stored map[string]record
	out := map[string]entity.Currency{}
	if !r.store.Get(ctx, StorageKey, &stored) {
		return out
	}
	for code, rec := range stored {
		if code == "" {
			continue
		}
		out[code] = recordToEntity(code, rec)
	}
	return out
}

// Add registra (o reemplaza) una moneda personalizada y persiste la tabla completa.
// El código se normaliza a mayúsculas y debe tener 3 letras; símbolo y nombre son obligatorios.
// Si nativeSymbol va vacío se usa symbol.
func (r *Registry) Add(ctx context.Context, code, symbol, nativeSymbol, name string) (entity.Currency, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	symbol = strings.TrimSpace(symbol)
	nativeSymbol = strings.TrimSpace(nativeSymbol)
	name = strings.TrimSpace(name)
	if !codePattern.MatchString(code) {
		return entity.Currency{}, fmt.Errorf("%w: código de moneda %q (3 letras)", domain.ErrInvalidInput, code)
	}
	if symbol == "" || name == "" {
		return entity.Currency{}, fmt.Errorf("%w: símbolo y nombre son requeridos", domain.ErrInvalidInput)
	}
	if nativeSymbol == "" {
		nativeSymbol = symbol
	}
	c := entity.Currency{
		Code:          code,
		Symbol:        symbol,
		NativeSymbol:  nativeSymbol,
		Name:          name,
		NamePlural:    name + "s",
		DecimalDigits: CustomDecimalDigits,
		IsCustom:      true,
	}

	r.persistMu.Lock()
	r.mu.Lock()
	r.customs[code] = c
	snapshot := r.snapshotLocked()
	r.mu.Unlock()
	r.store.Set(ctx, StorageKey, snapshot)
	r.persistMu.Unlock()

	r.log.Info().Str("code", code).Msg("moneda personalizada registrada")
	r.notify(Event{Kind: EventAdded, Code: code})
	return c, nil
}

// Remove elimina una moneda personalizada y persiste la tabla.
// Si el código estaba seleccionado, es responsabilidad del llamador volver a DefaultCode
// (ver Selection).
func (r *Registry) Remove(ctx context.Context, code string) error {
	code = strings.ToUpper(strings.TrimSpace(code))

	r.persistMu.Lock()
	r.mu.Lock()
	if _, ok := r.customs[code]; !ok {
		r.mu.Unlock()
		r.persistMu.Unlock()
		return fmt.Errorf("%w: moneda personalizada %q", domain.ErrNotFound, code)
	}
	delete(r.customs, code)
	snapshot := r.snapshotLocked()
	r.mu.Unlock()
	r.store.Set(ctx, StorageKey, snapshot)
	r.persistMu.Unlock()

	r.log.Info().Str("code", code).Msg("moneda personalizada eliminada")
	r.notify(Event{Kind: EventRemoved, Code: code})
	return nil
}

func (r *Registry) snapshotLocked() map[string]record {
	out := make(map[string]record, len(r.customs))
	for code, c := range r.customs {
		out[code] = entityToRecord(c)
	}
	return out
}

// Resolve resuelve un código (sin distinguir mayúsculas); las personalizadas tienen
// prioridad sobre las incorporadas.
func (r *Registry) Resolve(code string) domaincurrency.Resolution {
	code = strings.ToUpper(strings.TrimSpace(code))
	r.mu.RLock()
	defer r.mu.RUnlock()
	return domaincurrency.Resolve(code, r.builtins, r.customs)
}

// Currency atajo de Resolve(code).Currency().
func (r *Registry) Currency(code string) entity.Currency {
	return r.Resolve(code).Currency()
}

// Customs lista las monedas personalizadas ordenadas por código.
func (r *Registry) Customs() []entity.Currency {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := slices.Collect(maps.Values(r.customs))
	sortByCode(out)
	return out
}

// Subscribe registra un observador de cambios. cancel lo da de baja.
func (r *Registry) Subscribe(l Listener) (cancel func()) {
	r.subMu.Lock()
	id := r.nextID
	r.nextID++
	r.subs[id] = l
	r.subMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			r.subMu.Lock()
			delete(r.subs, id)
			r.subMu.Unlock()
		})
	}
}

func (r *Registry) notify(ev Event) {
	r.subMu.Lock()
	listeners := slices.Collect(maps.Values(r.subs))
	r.subMu.Unlock()
	for _, l := range listeners {
		l(ev)
	}
}

func recordToEntity(code string, rec record) entity.Currency {
	return entity.Currency{
		Code:          code,
		Symbol:        rec.Symbol,
		NativeSymbol:  rec.SymbolNative,
		Name:          rec.Name,
		NamePlural:    rec.NamePlural,
		DecimalDigits: rec.DecimalDigits,
		IsCustom:      true,
	}
}

func entityToRecord(c entity.Currency) record {
	return record{
		Code:          c.Code,
		Symbol:        c.Symbol,
		SymbolNative:  c.NativeSymbol,
		Name:          c.Name,
		DecimalDigits: c.DecimalDigits,
		NamePlural:    c.NamePlural,
		IsCustom:      true,
	}
}

func sortByCode(list []entity.Currency) {
	slices.SortFunc(list, func(a, b entity.Currency) int { return strings.Compare(a.Code, b.Code) })
}
