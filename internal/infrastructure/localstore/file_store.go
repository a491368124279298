// Package localstore implementa el almacén clave/valor local sobre el sistema de archivos:
// un archivo <dir>/<clave>.json por clave, escrito con archivo temporal + rename para que
// cada clave se reemplace de forma atómica.
package localstore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/spf13/afero"

	"github.com/jhoicas/invoice-studio/internal/domain"
	"github.com/jhoicas/invoice-studio/internal/domain/repository"
)

// Asegura que FileStore implementa los puertos del dominio.
var (
	_ repository.KeyValueStore = (*FileStore)(nil)
	_ repository.ChangeWatcher = (*FileStore)(nil)
)

const (
	fileExt   = ".json"
	tmpSuffix = ".tmp"
)

var validKey = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// FileStore almacén clave/valor en archivos.
type FileStore struct {
	fs  afero.Fs
	dir string
	mu  sync.Mutex // serializa escrituras de este proceso; entre procesos gana la última escritura
}

// NewFileStore construye el almacén sobre fs y crea dir si no existe.
func NewFileStore(fs afero.Fs, dir string) (*FileStore, error) {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("localstore: crear directorio %s: %w", dir, err)
	}
	return &FileStore{fs: fs, dir: dir}, nil
}

// NewOSFileStore almacén sobre el disco real.
func NewOSFileStore(dir string) (*FileStore, error) {
	return NewFileStore(afero.NewOsFs(), dir)
}

// Dir devuelve el directorio del almacén.
func (s *FileStore) Dir() string { return s.dir }

// Get lee el valor de la clave. (nil, nil) si no existe.
func (s *FileStore) Get(_ context.Context, key string) ([]byte, error) {
	path, err := s.path(key)
	if err != nil {
		return nil, err
	}
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("localstore: leer %s: %w", key, err)
	}
	return data, nil
}

// Set reemplaza el valor completo de la clave.
func (s *FileStore) Set(_ context.Context, key string, value []byte) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	tmp := path + tmpSuffix
	if err := afero.WriteFile(s.fs, tmp, value, 0o600); err != nil {
		return fmt.Errorf("localstore: escribir %s: %w", key, err)
	}
	if err := s.fs.Rename(tmp, path); err != nil {
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("localstore: reemplazar %s: %w", key, err)
	}
	return nil
}

// Remove elimina la clave. No es error si no existe.
func (s *FileStore) Remove(_ context.Context, key string) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fs.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("localstore: eliminar %s: %w", key, err)
	}
	return nil
}

func (s *FileStore) path(key string) (string, error) {
	if !validKey.MatchString(key) {
		return "", fmt.Errorf("%w: clave %q", domain.ErrInvalidInput, key)
	}
	return filepath.Join(s.dir, key+fileExt), nil
}

// keyFromPath devuelve la clave de un archivo del almacén, o "" si no corresponde a una clave.
func keyFromPath(path string) string {
	name := filepath.Base(path)
	if !strings.HasSuffix(name, fileExt) {
		return ""
	}
	key := strings.TrimSuffix(name, fileExt)
	if !validKey.MatchString(key) {
		return ""
	}
	return key
}
