// internal/models/cart.go
package models

// CartItem is one line of a session cart. Price is captured from the catalog
// at add time so the cart view needs no further catalog lookups.
type CartItem struct {
	ID        string  `json:"id"`
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	ImageURL  string  `json:"image_url"`
	Slug      string  `json:"slug"`
}

// Cart is the derived view of a session cart, totals included.
type Cart struct {
	Items        []CartItem `json:"items"`
	ItemCount    int        `json:"item_count"`
	Subtotal     float64    `json:"subtotal"`
	ShippingCost float64    `json:"shipping_cost"`
	Total        float64    `json:"total"`
}
