package repository

import "context"

// DocumentStore define el puerto de persistencia de recursos con nombre (un documento de texto por recurso).
// Read devuelve domain.ErrResourceMissing (envuelto) si el recurso no existe.
// Write reemplaza el recurso completo.
type DocumentStore interface {
	Read(ctx context.Context, name string) ([]byte, error)
	Write(ctx context.Context, name string, data []byte) error
}
