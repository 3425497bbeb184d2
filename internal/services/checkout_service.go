// internal/services/checkout_service.go
package services

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/labubu-world/storefront/internal/config"
	"github.com/labubu-world/storefront/internal/models"
	"github.com/labubu-world/storefront/internal/utils"
)

var (
	ErrEmptyCart     = errors.New("cart is empty")
	ErrOrderNotFound = errors.New("order not found")
)

// CheckoutService turns a session cart into an order confirmation. Payment is
// simulated: card fields are validated for shape and then discarded, never
// stored or charged.
type CheckoutService struct {
	cartService *CartService
	config      *config.Config

	orders map[string]*models.Order
	mtx    sync.Mutex
}

type CheckoutRequest struct {
	Email      string `json:"email" validate:"required,email"`
	FullName   string `json:"full_name" validate:"required,min=2"`
	Address    string `json:"address" validate:"required,min=5"`
	Apartment  string `json:"apartment,omitempty"`
	City       string `json:"city" validate:"required,min=2"`
	Country    string `json:"country" validate:"required,min=2"`
	PostalCode string `json:"postal_code" validate:"required,min=3"`

	ShippingMethod models.ShippingMethod `json:"shipping_method" validate:"required,oneof=standard express"`

	CardName   string `json:"card_name" validate:"required,min=2"`
	CardNumber string `json:"card_number" validate:"required,card_number"`
	ExpiryDate string `json:"expiry_date" validate:"required,card_expiry"`
	CVV        string `json:"cvv" validate:"required,cvv"`

	AgreeToTerms bool `json:"agree_to_terms" validate:"eq=true"`
}

func NewCheckoutService(cartService *CartService, cfg *config.Config) *CheckoutService {
	return &CheckoutService{
		cartService: cartService,
		config:      cfg,
		orders:      make(map[string]*models.Order),
	}
}

// PlaceOrder validates the checkout form, snapshots the cart into an order,
// and empties the cart. The returned order is the confirmation view.
func (s *CheckoutService) PlaceOrder(sessionID string, req *CheckoutRequest) (*models.Order, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	cart := s.cartService.GetCart(sessionID)
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	shipping := s.config.Checkout.StandardShippingCost
	if req.ShippingMethod == models.ShippingMethodExpress {
		shipping = s.config.Checkout.ExpressShippingCost
	}

	order := &models.Order{
		Email:          req.Email,
		FullName:       req.FullName,
		Address:        req.Address,
		City:           req.City,
		Country:        req.Country,
		PostalCode:     req.PostalCode,
		ShippingMethod: req.ShippingMethod,
		Items:          cart.Items,
		Subtotal:       cart.Subtotal,
		ShippingCost:   shipping,
		Total:          cart.Subtotal + shipping,
		Status:         models.OrderStatusConfirmed,
		PlacedAt:       time.Now().UTC(),
	}

	// Draw the confirmation number and store the order under one lock so a
	// concurrent checkout can never be handed the same number.
	s.mtx.Lock()
	order.ID = s.newOrderID()
	s.orders[order.ID] = order
	s.mtx.Unlock()

	s.cartService.Clear(sessionID)

	return order, nil
}

// newOrderID picks an unused LABUBU<nnnn> confirmation number. Callers must
// hold s.mtx so the number is reserved the moment it is chosen.
func (s *CheckoutService) newOrderID() string {
	for {
		id := fmt.Sprintf("LABUBU%04d", rand.Intn(10000))
		if _, taken := s.orders[id]; !taken {
			return id
		}
	}
}

func (s *CheckoutService) GetOrder(orderID string) (*models.Order, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	order, ok := s.orders[orderID]
	if !ok {
		return nil, ErrOrderNotFound
	}
	return order, nil
}
