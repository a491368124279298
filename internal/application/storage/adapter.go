package storage

import (
	"context"
	"encoding/json"
	"reflect"

	"github.com/rs/zerolog"

	"github.com/jhoicas/invoice-studio/internal/domain/repository"
)

// Adapter envuelve el almacén clave/valor serializando a JSON.
// Ningún error se propaga: se registra en el log y se trata como "sin valor guardado".
type Adapter struct {
	store repository.KeyValueStore
	log   zerolog.Logger
}

// NewAdapter construye el adaptador de persistencia local.
func NewAdapter(store repository.KeyValueStore, log zerolog.Logger) *Adapter {
	return &Adapter{store: store, log: log}
}

// Get decodifica la clave en dest, que debe ser un puntero. Devuelve false si no existe,
// no se pudo leer o el JSON no encaja con el tipo de dest; en ese caso dest queda sin
// modificar. Se decodifica sobre un valor nuevo y sólo se copia a dest si todo salió bien.
func (a *Adapter) Get(ctx context.Context, key string, dest any) bool {
	target := reflect.ValueOf(dest)
	if target.Kind() != reflect.Pointer || target.IsNil() {
		a.log.Error().Str("key", key).Msgf("destino inválido %T", dest)
		return false
	}
	raw, err := a.store.Get(ctx, key)
	if err != nil {
		a.log.Error().Err(err).Str("key", key).Msg("error leyendo almacenamiento local")
		return false
	}
	if len(raw) == 0 {
		return false
	}
	fresh := reflect.New(target.Elem().Type())
	if err := json.Unmarshal(raw, fresh.Interface()); err != nil {
		a.log.Error().Err(err).Str("key", key).Msg("valor almacenado corrupto, se descarta")
		return false
	}
	target.Elem().Set(fresh.Elem())
	return true
}

// Set serializa value y reemplaza la clave.
func (a *Adapter) Set(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		a.log.Error().Err(err).Str("key", key).Msg("error serializando valor")
		return
	}
	if err := a.store.Set(ctx, key, raw); err != nil {
		a.log.Error().Err(err).Str("key", key).Msg("error guardando en almacenamiento local")
	}
}

// Remove elimina la clave.
func (a *Adapter) Remove(ctx context.Context, key string) {
	if err := a.store.Remove(ctx, key); err != nil {
		a.log.Error().Err(err).Str("key", key).Msg("error eliminando de almacenamiento local")
	}
}
