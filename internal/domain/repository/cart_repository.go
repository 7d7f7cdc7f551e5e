package repository

import (
	"context"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

// CartRepository define el puerto de persistencia para Cart.
type CartRepository interface {
	LoadAll(ctx context.Context) ([]entity.Cart, error)
	SaveAll(ctx context.Context, carts []entity.Cart) error
}
