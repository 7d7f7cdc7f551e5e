package dto

// CartItemResponse línea de carrito.
type CartItemResponse struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

// CartResponse salida de un carrito.
type CartResponse struct {
	ID       string             `json:"id"`
	Products []CartItemResponse `json:"products"`
}
