// internal/services/cart_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labubu-world/storefront/internal/catalog"
)

func TestCartAddItem(t *testing.T) {
	svc := NewCartService(catalog.NewSource(), testConfig())

	cart, err := svc.AddItem("visitor", &AddItemRequest{ProductID: "1", Quantity: 2})
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	item := cart.Items[0]
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, "1", item.ProductID)
	assert.Equal(t, 2, item.Quantity)
	assert.Equal(t, item.Price*2, cart.Subtotal)
	assert.Equal(t, 5.00, cart.ShippingCost)
	assert.Equal(t, cart.Subtotal+5.00, cart.Total)
	assert.Equal(t, 2, cart.ItemCount)
}

func TestCartAddSameProductMergesLines(t *testing.T) {
	svc := NewCartService(catalog.NewSource(), testConfig())

	_, err := svc.AddItem("visitor", &AddItemRequest{ProductID: "1", Quantity: 1})
	require.NoError(t, err)
	cart, err := svc.AddItem("visitor", &AddItemRequest{ProductID: "1", Quantity: 3})
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 4, cart.Items[0].Quantity)
}

func TestCartAddUnknownProduct(t *testing.T) {
	svc := NewCartService(catalog.NewSource(), testConfig())

	_, err := svc.AddItem("visitor", &AddItemRequest{ProductID: "999", Quantity: 1})
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestCartAddItemValidation(t *testing.T) {
	svc := NewCartService(catalog.NewSource(), testConfig())

	_, err := svc.AddItem("visitor", &AddItemRequest{ProductID: "", Quantity: 1})
	assert.Error(t, err)

	_, err = svc.AddItem("visitor", &AddItemRequest{ProductID: "1", Quantity: 0})
	assert.Error(t, err)
}

func TestCartUpdateQuantity(t *testing.T) {
	svc := NewCartService(catalog.NewSource(), testConfig())

	cart, err := svc.AddItem("visitor", &AddItemRequest{ProductID: "1", Quantity: 2})
	require.NoError(t, err)
	itemID := cart.Items[0].ID

	cart, err = svc.UpdateQuantity("visitor", itemID, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, cart.Items[0].Quantity)

	// Quantities below one clamp to one rather than removing the line
	cart, err = svc.UpdateQuantity("visitor", itemID, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, cart.Items[0].Quantity)

	_, err = svc.UpdateQuantity("visitor", "no-such-item", 2)
	assert.ErrorIs(t, err, ErrCartItemNotFound)
}

func TestCartRemoveItem(t *testing.T) {
	svc := NewCartService(catalog.NewSource(), testConfig())

	cart, err := svc.AddItem("visitor", &AddItemRequest{ProductID: "1", Quantity: 1})
	require.NoError(t, err)
	_, err = svc.AddItem("visitor", &AddItemRequest{ProductID: "2", Quantity: 1})
	require.NoError(t, err)

	got, err := svc.RemoveItem("visitor", cart.Items[0].ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "2", got.Items[0].ProductID)

	_, err = svc.RemoveItem("visitor", "no-such-item")
	assert.ErrorIs(t, err, ErrCartItemNotFound)
}

func TestCartEmptyHasNoShipping(t *testing.T) {
	svc := NewCartService(catalog.NewSource(), testConfig())

	cart := svc.GetCart("visitor")
	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.Subtotal)
	assert.Zero(t, cart.ShippingCost)
	assert.Zero(t, cart.Total)
}

func TestCartClear(t *testing.T) {
	svc := NewCartService(catalog.NewSource(), testConfig())

	_, err := svc.AddItem("visitor", &AddItemRequest{ProductID: "1", Quantity: 2})
	require.NoError(t, err)

	svc.Clear("visitor")

	cart := svc.GetCart("visitor")
	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.Total)
}

func TestCartsAreSessionScoped(t *testing.T) {
	svc := NewCartService(catalog.NewSource(), testConfig())

	_, err := svc.AddItem("visitor-a", &AddItemRequest{ProductID: "1", Quantity: 1})
	require.NoError(t, err)

	assert.Empty(t, svc.GetCart("visitor-b").Items)
}
