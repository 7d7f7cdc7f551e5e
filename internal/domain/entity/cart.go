package entity

// CartItem línea de un carrito: referencia a un producto y su cantidad (>= 1).
type CartItem struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

// Cart carrito con sus líneas. Cada producto aparece a lo sumo una vez.
type Cart struct {
	ID       string     `json:"id"`
	Products []CartItem `json:"products"`
}

// AddProduct incrementa la cantidad de la línea de productID o agrega una nueva con cantidad 1.
// No valida que productID exista en el catálogo.
func (c *Cart) AddProduct(productID string) {
	for i := range c.Products {
		if c.Products[i].ID == productID {
			c.Products[i].Quantity++
			return
		}
	}
	c.Products = append(c.Products, CartItem{ID: productID, Quantity: 1})
}

// FindCart devuelve el índice del carrito con id o -1.
func FindCart(carts []Cart, id string) int {
	for i := range carts {
		if carts[i].ID == id {
			return i
		}
	}
	return -1
}
