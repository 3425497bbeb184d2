// internal/handlers/home.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/labubu-world/storefront/internal/catalog"
	"github.com/labubu-world/storefront/internal/config"
	"github.com/labubu-world/storefront/internal/utils"
)

type HomeHandler struct {
	source *catalog.Source
	config *config.Config
}

func NewHomeHandler(source *catalog.Source, cfg *config.Config) *HomeHandler {
	return &HomeHandler{
		source: source,
		config: cfg,
	}
}

// GET /home
func (h *HomeHandler) GetHome(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"banners":  h.source.HeroBanners(),
		"featured": h.source.Featured(h.config.Catalog.FeaturedLimit),
	})
}
