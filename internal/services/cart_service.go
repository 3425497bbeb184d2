// internal/services/cart_service.go
package services

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/labubu-world/storefront/internal/catalog"
	"github.com/labubu-world/storefront/internal/config"
	"github.com/labubu-world/storefront/internal/models"
	"github.com/labubu-world/storefront/internal/utils"
)

var ErrCartItemNotFound = errors.New("cart item not found")

// CartService keeps one in-memory cart per visitor session, with the same
// idle eviction as listing sessions. No cross-session durability.
type CartService struct {
	source       *catalog.Source
	shippingCost float64
	ttl          time.Duration

	carts map[string]*cartSession
	mtx   sync.Mutex
}

type cartSession struct {
	items    []models.CartItem
	lastSeen time.Time
}

type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"min=1"`
}

// UpdateQuantityRequest carries no validation tags: any integer is accepted
// and UpdateQuantity clamps values below one.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func NewCartService(source *catalog.Source, cfg *config.Config) *CartService {
	s := &CartService{
		source:       source,
		shippingCost: cfg.Checkout.StandardShippingCost,
		ttl:          time.Duration(cfg.Session.IdleTTLMinutes) * time.Minute,
		carts:        make(map[string]*cartSession),
	}

	go s.cleanupCarts()

	return s
}

func (s *CartService) cleanupCarts() {
	for {
		time.Sleep(time.Minute)
		s.mtx.Lock()
		for id, cart := range s.carts {
			if time.Since(cart.lastSeen) > s.ttl {
				delete(s.carts, id)
			}
		}
		s.mtx.Unlock()
	}
}

func (s *CartService) cart(sessionID string) *cartSession {
	cart, exists := s.carts[sessionID]
	if !exists {
		cart = &cartSession{}
		s.carts[sessionID] = cart
	}
	cart.lastSeen = time.Now()
	return cart
}

// AddItem puts a catalog product into the session cart, capturing its price
// at add time. Adding a product already in the cart bumps its quantity.
func (s *CartService) AddItem(sessionID string, req *AddItemRequest) (models.Cart, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return models.Cart{}, fmt.Errorf("validation failed: %w", err)
	}

	product, err := s.source.GetByID(req.ProductID)
	if err != nil {
		return models.Cart{}, err
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	cart := s.cart(sessionID)
	for i := range cart.items {
		if cart.items[i].ProductID == product.ID {
			cart.items[i].Quantity += req.Quantity
			return s.view(cart), nil
		}
	}

	cart.items = append(cart.items, models.CartItem{
		ID:        uuid.New().String(),
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Quantity:  req.Quantity,
		ImageURL:  product.ImageURL,
		Slug:      product.Slug,
	})

	return s.view(cart), nil
}

// UpdateQuantity sets an item's quantity, clamped to at least 1; removing a
// line is a separate, explicit operation.
func (s *CartService) UpdateQuantity(sessionID, itemID string, quantity int) (models.Cart, error) {
	if quantity < 1 {
		quantity = 1
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	cart := s.cart(sessionID)
	for i := range cart.items {
		if cart.items[i].ID == itemID {
			cart.items[i].Quantity = quantity
			return s.view(cart), nil
		}
	}

	return models.Cart{}, ErrCartItemNotFound
}

func (s *CartService) RemoveItem(sessionID, itemID string) (models.Cart, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	cart := s.cart(sessionID)
	for i := range cart.items {
		if cart.items[i].ID == itemID {
			cart.items = append(cart.items[:i], cart.items[i+1:]...)
			return s.view(cart), nil
		}
	}

	return models.Cart{}, ErrCartItemNotFound
}

func (s *CartService) GetCart(sessionID string) models.Cart {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.view(s.cart(sessionID))
}

// Clear empties the session cart, e.g. after a successful checkout.
func (s *CartService) Clear(sessionID string) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	cart := s.cart(sessionID)
	cart.items = nil
}

// view derives the cart totals. Shipping is a flat rate and only charged on a
// non-empty cart.
func (s *CartService) view(cart *cartSession) models.Cart {
	items := append([]models.CartItem(nil), cart.items...)

	var subtotal float64
	var count int
	for _, item := range items {
		subtotal += item.Price * float64(item.Quantity)
		count += item.Quantity
	}

	var shipping float64
	if len(items) > 0 {
		shipping = s.shippingCost
	}

	return models.Cart{
		Items:        items,
		ItemCount:    count,
		Subtotal:     subtotal,
		ShippingCost: shipping,
		Total:        subtotal + shipping,
	}
}
