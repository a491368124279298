package repository

import "context"

// KeyValueStore define el puerto del almacén clave/valor local (equivalente al
// localStorage del navegador). La implementación vive en infrastructure.
// Get devuelve (nil, nil) si la clave no existe. Cada clave se lee y escribe de forma atómica;
// no hay transacciones entre claves.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}

// ChangeWatcher notifica cambios de claves hechos por otros procesos.
// fn recibe la clave modificada; Watch retorna cuando el observador quedó registrado.
type ChangeWatcher interface {
	Watch(ctx context.Context, fn func(key string)) error
}
