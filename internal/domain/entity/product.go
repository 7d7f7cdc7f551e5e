package entity

import "github.com/shopspring/decimal"

func init() {
	// price y stock viajan como número JSON, igual que en los recursos persistidos.
	decimal.MarshalJSONWithoutQuotes = true
}

// Product representa un producto del catálogo tal como se persiste en el recurso de productos.
// ID es inmutable y único dentro de la colección.
type Product struct {
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

// FindProduct devuelve el índice del producto con id o -1.
func FindProduct(products []Product, id string) int {
	for i := range products {
		if products[i].ID == id {
			return i
		}
	}
	return -1
}
