// internal/services/checkout_service_test.go
package services

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labubu-world/storefront/internal/catalog"
	"github.com/labubu-world/storefront/internal/models"
)

func validCheckoutRequest() *CheckoutRequest {
	return &CheckoutRequest{
		Email:          "collector@example.com",
		FullName:       "Mina Park",
		Address:        "12 Blossom Lane",
		City:           "Singapore",
		Country:        "Singapore",
		PostalCode:     "049315",
		ShippingMethod: models.ShippingMethodStandard,
		CardName:       "Mina Park",
		CardNumber:     "4242424242424242",
		ExpiryDate:     "12/27",
		CVV:            "123",
		AgreeToTerms:   true,
	}
}

func TestPlaceOrder(t *testing.T) {
	cfg := testConfig()
	carts := NewCartService(catalog.NewSource(), cfg)
	svc := NewCheckoutService(carts, cfg)

	cart, err := carts.AddItem("visitor", &AddItemRequest{ProductID: "1", Quantity: 2})
	require.NoError(t, err)

	order, err := svc.PlaceOrder("visitor", validCheckoutRequest())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(order.ID, "LABUBU"))
	assert.Len(t, order.ID, len("LABUBU")+4)
	assert.Equal(t, models.OrderStatusConfirmed, order.Status)
	assert.Equal(t, cart.Items, order.Items)
	assert.Equal(t, cart.Subtotal, order.Subtotal)
	assert.Equal(t, 5.00, order.ShippingCost)
	assert.Equal(t, cart.Subtotal+5.00, order.Total)
	assert.False(t, order.PlacedAt.IsZero())

	// Checkout empties the cart
	assert.Empty(t, carts.GetCart("visitor").Items)
}

func TestPlaceOrderExpressShipping(t *testing.T) {
	cfg := testConfig()
	carts := NewCartService(catalog.NewSource(), cfg)
	svc := NewCheckoutService(carts, cfg)

	_, err := carts.AddItem("visitor", &AddItemRequest{ProductID: "3", Quantity: 1})
	require.NoError(t, err)

	req := validCheckoutRequest()
	req.ShippingMethod = models.ShippingMethodExpress

	order, err := svc.PlaceOrder("visitor", req)
	require.NoError(t, err)
	assert.Equal(t, 15.00, order.ShippingCost)
	assert.Equal(t, order.Subtotal+15.00, order.Total)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	cfg := testConfig()
	carts := NewCartService(catalog.NewSource(), cfg)
	svc := NewCheckoutService(carts, cfg)

	_, err := svc.PlaceOrder("visitor", validCheckoutRequest())
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestPlaceOrderValidation(t *testing.T) {
	cfg := testConfig()
	carts := NewCartService(catalog.NewSource(), cfg)
	svc := NewCheckoutService(carts, cfg)

	_, err := carts.AddItem("visitor", &AddItemRequest{ProductID: "1", Quantity: 1})
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(*CheckoutRequest)
	}{
		{"missing email", func(r *CheckoutRequest) { r.Email = "" }},
		{"malformed email", func(r *CheckoutRequest) { r.Email = "not-an-email" }},
		{"short address", func(r *CheckoutRequest) { r.Address = "x" }},
		{"unknown shipping method", func(r *CheckoutRequest) { r.ShippingMethod = "overnight" }},
		{"bad card number", func(r *CheckoutRequest) { r.CardNumber = "1234" }},
		{"bad expiry", func(r *CheckoutRequest) { r.ExpiryDate = "13/27" }},
		{"bad cvv", func(r *CheckoutRequest) { r.CVV = "12" }},
		{"terms not accepted", func(r *CheckoutRequest) { r.AgreeToTerms = false }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCheckoutRequest()
			tt.mutate(req)

			_, err := svc.PlaceOrder("visitor", req)
			assert.Error(t, err)
		})
	}

	// Failed checkouts leave the cart alone
	assert.Len(t, carts.GetCart("visitor").Items, 1)
}

func TestPlaceOrderConcurrentSessions(t *testing.T) {
	cfg := testConfig()
	carts := NewCartService(catalog.NewSource(), cfg)
	svc := NewCheckoutService(carts, cfg)

	const n = 50
	placed := make(chan *models.Order, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			session := fmt.Sprintf("visitor-%d", i)
			_, err := carts.AddItem(session, &AddItemRequest{ProductID: "1", Quantity: 1})
			assert.NoError(t, err)

			req := validCheckoutRequest()
			req.Email = fmt.Sprintf("collector-%d@example.com", i)

			order, err := svc.PlaceOrder(session, req)
			assert.NoError(t, err)
			placed <- order
		}(i)
	}
	wg.Wait()
	close(placed)

	// Every checkout got its own confirmation number, and each number still
	// resolves to the order it was issued for
	seen := make(map[string]bool, n)
	for order := range placed {
		assert.False(t, seen[order.ID], "confirmation number %s handed out twice", order.ID)
		seen[order.ID] = true

		stored, err := svc.GetOrder(order.ID)
		require.NoError(t, err)
		assert.Equal(t, order.Email, stored.Email)
	}
	assert.Len(t, seen, n)
}

func TestGetOrder(t *testing.T) {
	cfg := testConfig()
	carts := NewCartService(catalog.NewSource(), cfg)
	svc := NewCheckoutService(carts, cfg)

	_, err := carts.AddItem("visitor", &AddItemRequest{ProductID: "1", Quantity: 1})
	require.NoError(t, err)

	placed, err := svc.PlaceOrder("visitor", validCheckoutRequest())
	require.NoError(t, err)

	got, err := svc.GetOrder(placed.ID)
	require.NoError(t, err)
	assert.Equal(t, placed, got)

	_, err = svc.GetOrder("LABUBU9999X")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}
