package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/application/ports"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD del catálogo. Cada operación carga la colección completa,
// la modifica en memoria y la reescribe; las mutaciones difunden la lista resultante.
type ProductUseCase struct {
	repo     repository.ProductRepository
	notifier ports.Broadcaster
	newID    func() string
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, notifier ports.Broadcaster) *ProductUseCase {
	if notifier == nil {
		notifier = ports.NopBroadcaster{}
	}
	return &ProductUseCase{repo: repo, notifier: notifier, newID: uuid.NewString}
}

// WithIDGenerator reemplaza el generador de identificadores (tests).
func (uc *ProductUseCase) WithIDGenerator(gen func() string) *ProductUseCase {
	uc.newID = gen
	return uc
}

// List devuelve todos los productos en el orden almacenado.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := uc.repo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

// GetByID obtiene un producto por ID o domain.ErrNotFound.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	products, err := uc.repo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	i := entity.FindProduct(products, id)
	if i < 0 {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(&products[i]), nil
}

// Create agrega un producto con id nuevo, status true y thumbnails vacío si no se envía.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	products, err := uc.repo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	thumbnails := in.Thumbnails
	if thumbnails == nil {
		thumbnails = []string{}
	}
	product := entity.Product{
		ID:          uc.freshID(products),
		Title:       in.Title,
		Description: in.Description,
		Code:        in.Code,
		Price:       in.Price,
		Status:      true,
		Stock:       in.Stock,
		Category:    in.Category,
		Thumbnails:  thumbnails,
	}
	products = append(products, product)
	if err := uc.repo.SaveAll(ctx, products); err != nil {
		return nil, err
	}
	uc.publish(products)
	return toProductResponse(&product), nil
}

// Update aplica los campos presentes sobre el producto existente. El id nunca cambia.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	products, err := uc.repo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	i := entity.FindProduct(products, id)
	if i < 0 {
		return nil, domain.ErrNotFound
	}
	product := &products[i]
	if in.Title != nil {
		product.Title = *in.Title
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Code != nil {
		product.Code = *in.Code
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Status != nil {
		product.Status = *in.Status
	}
	if in.Stock != nil {
		product.Stock = *in.Stock
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Thumbnails != nil {
		product.Thumbnails = *in.Thumbnails
		if product.Thumbnails == nil {
			product.Thumbnails = []string{}
		}
	}
	if err := uc.repo.SaveAll(ctx, products); err != nil {
		return nil, err
	}
	uc.publish(products)
	return toProductResponse(product), nil
}

// Delete elimina un producto por ID. Si no existe devuelve domain.ErrNotFound sin escribir ni difundir.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	products, err := uc.repo.LoadAll(ctx)
	if err != nil {
		return err
	}
	i := entity.FindProduct(products, id)
	if i < 0 {
		return domain.ErrNotFound
	}
	products = append(products[:i], products[i+1:]...)
	if err := uc.repo.SaveAll(ctx, products); err != nil {
		return err
	}
	uc.publish(products)
	return nil
}

func (uc *ProductUseCase) freshID(products []entity.Product) string {
	for {
		id := uc.newID()
		if entity.FindProduct(products, id) < 0 {
			return id
		}
	}
}

func (uc *ProductUseCase) publish(products []entity.Product) {
	uc.notifier.Broadcast(ports.EventUpdateProducts, toProductResponses(products))
}

func toProductResponses(products []entity.Product) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, *toProductResponse(&products[i]))
	}
	return out
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	thumbnails := p.Thumbnails
	if thumbnails == nil {
		thumbnails = []string{}
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Code:        p.Code,
		Price:       p.Price,
		Status:      p.Status,
		Stock:       p.Stock,
		Category:    p.Category,
		Thumbnails:  thumbnails,
	}
}
