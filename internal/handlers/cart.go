// internal/handlers/cart.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/labubu-world/storefront/internal/catalog"
	"github.com/labubu-world/storefront/internal/services"
	"github.com/labubu-world/storefront/internal/utils"
)

type CartHandler struct {
	cartService *services.CartService
}

func NewCartHandler(cartService *services.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

// GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	sessionID, exists := utils.GetSessionIDFromContext(c)
	if !exists {
		utils.InternalErrorResponse(c, "Session not initialized")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"cart": h.cartService.GetCart(sessionID),
	})
}

// POST /cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	sessionID, exists := utils.GetSessionIDFromContext(c)
	if !exists {
		utils.InternalErrorResponse(c, "Session not initialized")
		return
	}

	var req services.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	cart, err := h.cartService.AddItem(sessionID, &req)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			utils.NotFoundResponse(c, "Product not found")
			return
		}
		if validationErrors := utils.GetValidationErrors(errors.Unwrap(err)); len(validationErrors) > 0 {
			utils.ValidationErrorResponse(c, validationErrors)
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"cart": cart,
	})
}

// PUT /cart/items/:id
func (h *CartHandler) UpdateItem(c *gin.Context) {
	sessionID, exists := utils.GetSessionIDFromContext(c)
	if !exists {
		utils.InternalErrorResponse(c, "Session not initialized")
		return
	}

	var req services.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	cart, err := h.cartService.UpdateQuantity(sessionID, c.Param("id"), req.Quantity)
	if err != nil {
		if errors.Is(err, services.ErrCartItemNotFound) {
			utils.NotFoundResponse(c, "Cart item not found")
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"cart": cart,
	})
}

// DELETE /cart/items/:id
func (h *CartHandler) RemoveItem(c *gin.Context) {
	sessionID, exists := utils.GetSessionIDFromContext(c)
	if !exists {
		utils.InternalErrorResponse(c, "Session not initialized")
		return
	}

	cart, err := h.cartService.RemoveItem(sessionID, c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrCartItemNotFound) {
			utils.NotFoundResponse(c, "Cart item not found")
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"cart": cart,
	})
}
