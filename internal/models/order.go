// internal/models/order.go
package models

import "time"

// Order is the confirmation produced by a successful checkout. Orders live in
// memory for the lifetime of the process only.
type Order struct {
	ID             string         `json:"id"`
	Email          string         `json:"email"`
	FullName       string         `json:"full_name"`
	Address        string         `json:"address"`
	City           string         `json:"city"`
	Country        string         `json:"country"`
	PostalCode     string         `json:"postal_code"`
	ShippingMethod ShippingMethod `json:"shipping_method"`
	Items          []CartItem     `json:"items"`
	Subtotal       float64        `json:"subtotal"`
	ShippingCost   float64        `json:"shipping_cost"`
	Total          float64        `json:"total"`
	Status         OrderStatus    `json:"status"`
	PlacedAt       time.Time      `json:"placed_at"`
}
