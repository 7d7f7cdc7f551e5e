package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

// CartUseCase casos de uso de carritos. No difunde eventos realtime.
type CartUseCase struct {
	repo  repository.CartRepository
	newID func() string
}

// NewCartUseCase construye el caso de uso.
func NewCartUseCase(repo repository.CartRepository) *CartUseCase {
	return &CartUseCase{repo: repo, newID: uuid.NewString}
}

// WithIDGenerator reemplaza el generador de identificadores (tests).
func (uc *CartUseCase) WithIDGenerator(gen func() string) *CartUseCase {
	uc.newID = gen
	return uc
}

// Create agrega un carrito vacío.
func (uc *CartUseCase) Create(ctx context.Context) (*dto.CartResponse, error) {
	carts, err := uc.repo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	cart := entity.Cart{ID: uc.freshID(carts), Products: []entity.CartItem{}}
	carts = append(carts, cart)
	if err := uc.repo.SaveAll(ctx, carts); err != nil {
		return nil, err
	}
	return toCartResponse(&cart), nil
}

// GetByID obtiene un carrito por ID o domain.ErrNotFound.
func (uc *CartUseCase) GetByID(ctx context.Context, id string) (*dto.CartResponse, error) {
	carts, err := uc.repo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	i := entity.FindCart(carts, id)
	if i < 0 {
		return nil, domain.ErrNotFound
	}
	return toCartResponse(&carts[i]), nil
}

// AddProduct incrementa la línea de productID en el carrito (o la agrega con cantidad 1).
// No verifica que el producto exista en el catálogo. Si el carrito no existe no se escribe nada.
func (uc *CartUseCase) AddProduct(ctx context.Context, cartID, productID string) (*dto.CartResponse, error) {
	carts, err := uc.repo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	i := entity.FindCart(carts, cartID)
	if i < 0 {
		return nil, domain.ErrNotFound
	}
	carts[i].AddProduct(productID)
	if err := uc.repo.SaveAll(ctx, carts); err != nil {
		return nil, err
	}
	return toCartResponse(&carts[i]), nil
}

func (uc *CartUseCase) freshID(carts []entity.Cart) string {
	for {
		id := uc.newID()
		if entity.FindCart(carts, id) < 0 {
			return id
		}
	}
}

func toCartResponse(c *entity.Cart) *dto.CartResponse {
	items := make([]dto.CartItemResponse, 0, len(c.Products))
	for _, it := range c.Products {
		items = append(items, dto.CartItemResponse{ID: it.ID, Quantity: it.Quantity})
	}
	return &dto.CartResponse{ID: c.ID, Products: items}
}
