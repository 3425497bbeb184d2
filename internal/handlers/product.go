// internal/handlers/product.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/labubu-world/storefront/internal/catalog"
	"github.com/labubu-world/storefront/internal/config"
	"github.com/labubu-world/storefront/internal/utils"
)

type ProductHandler struct {
	source *catalog.Source
	config *config.Config
}

func NewProductHandler(source *catalog.Source, cfg *config.Config) *ProductHandler {
	return &ProductHandler{
		source: source,
		config: cfg,
	}
}

// GET /products/:slug
func (h *ProductHandler) GetProduct(c *gin.Context) {
	slug := c.Param("slug")

	product, err := h.source.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			utils.NotFoundResponse(c, "Product not found")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"product": product,
		"related": h.source.Related(slug, h.config.Catalog.RelatedLimit),
	})
}
