// Package recordstore implementa el Record Store: colecciones JSON (arreglo de objetos)
// persistidas completas en un recurso con nombre, sobre distintos drivers.
package recordstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

var (
	_ repository.ProductRepository = (*Collection[entity.Product])(nil)
	_ repository.CartRepository    = (*Collection[entity.Cart])(nil)
)

// Collection liga un recurso con nombre a un tipo de registro.
// No hay bloqueo entre LoadAll y SaveAll: dos pares concurrentes sobre el mismo recurso
// pueden perder actualizaciones (gana la última escritura).
type Collection[T any] struct {
	store repository.DocumentStore
	name  string
}

// NewCollection construye la colección para el recurso name.
func NewCollection[T any](store repository.DocumentStore, name string) *Collection[T] {
	return &Collection[T]{store: store, name: name}
}

// Name devuelve el nombre del recurso.
func (c *Collection[T]) Name() string { return c.name }

// LoadAll lee y decodifica el recurso completo conservando el orden almacenado.
func (c *Collection[T]) LoadAll(ctx context.Context) ([]T, error) {
	data, err := c.store.Read(ctx, c.name)
	if err != nil {
		return nil, err
	}
	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrResourceCorrupt, c.name, err)
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

// SaveAll reescribe el recurso con JSON indentado (2 espacios).
func (c *Collection[T]) SaveAll(ctx context.Context, records []T) error {
	data, err := encode(records)
	if err != nil {
		return fmt.Errorf("codificar %s: %w", c.name, err)
	}
	return c.store.Write(ctx, c.name, data)
}

func encode[T any](records []T) ([]byte, error) {
	if records == nil {
		records = []T{}
	}
	return json.MarshalIndent(records, "", "  ")
}

// missing envuelve ErrResourceMissing con el nombre del recurso.
func missing(name string) error {
	return fmt.Errorf("%w: %s", domain.ErrResourceMissing, name)
}
