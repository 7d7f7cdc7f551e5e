package repository

import (
	"context"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Cada operación trabaja sobre la colección completa: LoadAll lee, SaveAll reescribe.
type ProductRepository interface {
	LoadAll(ctx context.Context) ([]entity.Product, error)
	SaveAll(ctx context.Context, products []entity.Product) error
}
