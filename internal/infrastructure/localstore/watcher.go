package localstore

import (
	"context"
	"fmt"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// Watch observa el directorio del almacén y llama fn con la clave que otro proceso
// (u otra ventana) reescribió o eliminó. Solo funciona sobre el disco real.
// Las escrituras propias también se notifican; el consumidor decide si hubo cambio real.
func (s *FileStore) Watch(ctx context.Context, fn func(key string)) error {
	if _, ok := s.fs.(*afero.OsFs); !ok {
		return fmt.Errorf("localstore: watch requiere el sistema de archivos del SO")
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("localstore: crear watcher: %w", err)
	}
	if err := w.Add(s.dir); err != nil {
		_ = w.Close()
		return fmt.Errorf("localstore: observar %s: %w", s.dir, err)
	}

	go func() {
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				// Create cubre el rename del archivo temporal sobre el definitivo.
				if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Remove) {
					continue
				}
				if key := keyFromPath(ev.Name); key != "" {
					fn(key)
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Warn().Err(err).Str("dir", s.dir).Msg("localstore: error del watcher")
			}
		}
	}()
	return nil
}
