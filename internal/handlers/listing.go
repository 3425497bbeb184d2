// internal/handlers/listing.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/labubu-world/storefront/internal/listing"
	"github.com/labubu-world/storefront/internal/services"
	"github.com/labubu-world/storefront/internal/utils"
)

type ListingHandler struct {
	listingService *services.ListingService
}

func NewListingHandler(listingService *services.ListingService) *ListingHandler {
	return &ListingHandler{
		listingService: listingService,
	}
}

type SetSortRequest struct {
	Sort string `json:"sort" binding:"required"`
}

type SetDraftFilterRequest struct {
	Dimension string `json:"dimension" binding:"required"`
	Value     string `json:"value" binding:"required"`
	// Pointer so an explicit false is distinguishable from a missing field.
	Included *bool `json:"included" binding:"required"`
}

type GoToPageRequest struct {
	Page int `json:"page" binding:"required"`
}

// GET /listing
func (h *ListingHandler) GetListing(c *gin.Context) {
	sessionID, exists := utils.GetSessionIDFromContext(c)
	if !exists {
		utils.InternalErrorResponse(c, "Session not initialized")
		return
	}

	h.respondWithView(c, h.listingService.GetView(sessionID))
}

// PUT /listing/sort
func (h *ListingHandler) SetSort(c *gin.Context) {
	sessionID, exists := utils.GetSessionIDFromContext(c)
	if !exists {
		utils.InternalErrorResponse(c, "Session not initialized")
		return
	}

	var req SetSortRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	view, err := h.listingService.SetSortKey(sessionID, listing.SortKey(req.Sort))
	if err != nil {
		if errors.Is(err, listing.ErrInvalidSortKey) {
			utils.BadRequestResponse(c, err.Error(), gin.H{"valid_keys": listing.SortKeys()})
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	h.respondWithView(c, view)
}

// POST /listing/filters/editor
func (h *ListingHandler) OpenFilterEditor(c *gin.Context) {
	sessionID, exists := utils.GetSessionIDFromContext(c)
	if !exists {
		utils.InternalErrorResponse(c, "Session not initialized")
		return
	}

	h.respondWithView(c, h.listingService.OpenFilterEditor(sessionID))
}

// PATCH /listing/filters/draft
func (h *ListingHandler) SetDraftFilter(c *gin.Context) {
	sessionID, exists := utils.GetSessionIDFromContext(c)
	if !exists {
		utils.InternalErrorResponse(c, "Session not initialized")
		return
	}

	var req SetDraftFilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	view, err := h.listingService.SetDraftFilter(sessionID, listing.Dimension(req.Dimension), req.Value, *req.Included)
	if err != nil {
		if errors.Is(err, listing.ErrInvalidDimension) {
			utils.BadRequestResponse(c, err.Error(), gin.H{
				"valid_dimensions": []listing.Dimension{listing.DimensionSeries, listing.DimensionType},
			})
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	h.respondWithView(c, view)
}

// POST /listing/filters/apply
func (h *ListingHandler) ApplyFilters(c *gin.Context) {
	sessionID, exists := utils.GetSessionIDFromContext(c)
	if !exists {
		utils.InternalErrorResponse(c, "Session not initialized")
		return
	}

	h.respondWithView(c, h.listingService.ApplyDraftFilters(sessionID))
}

// DELETE /listing/filters
func (h *ListingHandler) ClearFilters(c *gin.Context) {
	sessionID, exists := utils.GetSessionIDFromContext(c)
	if !exists {
		utils.InternalErrorResponse(c, "Session not initialized")
		return
	}

	h.respondWithView(c, h.listingService.ClearAllFilters(sessionID))
}

// PUT /listing/page
//
// Out-of-range page numbers are not an error: navigation controls can race a
// result set that shrank between render and click, so the state is simply
// left unchanged and re-rendered.
func (h *ListingHandler) GoToPage(c *gin.Context) {
	sessionID, exists := utils.GetSessionIDFromContext(c)
	if !exists {
		utils.InternalErrorResponse(c, "Session not initialized")
		return
	}

	var req GoToPageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	h.respondWithView(c, h.listingService.GoToPage(sessionID, req.Page))
}

// respondWithView renders the full listing state, with the pagination both in
// the response meta and mirrored as headers.
func (h *ListingHandler) respondWithView(c *gin.Context, view listing.View) {
	utils.SetListingHeaders(c, view)
	utils.SuccessResponseWithMeta(c, gin.H{
		"listing": view,
	}, gin.H{
		"page":        view.Page,
		"per_page":    view.PageSize,
		"total_pages": view.TotalPages,
		"total_count": view.TotalItems,
	})
}
