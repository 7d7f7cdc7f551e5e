package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada para crear un producto. No se valida: los campos se aceptan tal cual.
type CreateProductRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Code        string          `json:"code"`
	Price       decimal.Decimal `json:"price"`
	Stock       decimal.Decimal `json:"stock"`
	Category    string          `json:"category"`
	Thumbnails  []string        `json:"thumbnails"`
}

// UpdateProductRequest entrada para actualizar un producto (merge parcial).
// Solo se aplican los campos presentes; el id no es modificable.
type UpdateProductRequest struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	Code        *string          `json:"code"`
	Price       *decimal.Decimal `json:"price"`
	Status      *bool            `json:"status"`
	Stock       *decimal.Decimal `json:"stock"`
	Category    *string          `json:"category"`
	Thumbnails  *[]string        `json:"thumbnails"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Code        string          `json:"code"`
	Price       decimal.Decimal `json:"price"`
	Status      bool            `json:"status"`
	Stock       decimal.Decimal `json:"stock"`
	Category    string          `json:"category"`
	Thumbnails  []string        `json:"thumbnails"`
}
