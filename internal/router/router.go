// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/labubu-world/storefront/internal/catalog"
	"github.com/labubu-world/storefront/internal/config"
	"github.com/labubu-world/storefront/internal/handlers"
	"github.com/labubu-world/storefront/internal/middleware"
	"github.com/labubu-world/storefront/internal/services"
)

func Initialize(source *catalog.Source, cfg *config.Config) *gin.Engine {
	// Initialize services
	listingService := services.NewListingService(source, cfg)
	cartService := services.NewCartService(source, cfg)
	checkoutService := services.NewCheckoutService(cartService, cfg)

	// Initialize handlers
	listingHandler := handlers.NewListingHandler(listingService)
	productHandler := handlers.NewProductHandler(source, cfg)
	homeHandler := handlers.NewHomeHandler(source, cfg)
	cartHandler := handlers.NewCartHandler(cartService)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(cfg.Frontend.BaseURL))
	r.Use(middleware.Session())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Homepage content
		v1.GET("/home", homeHandler.GetHome)

		// Product listing: one route per engine operation, every response
		// carrying the full derived view
		listingRoutes := v1.Group("/listing")
		{
			listingRoutes.GET("", listingHandler.GetListing)
			listingRoutes.PUT("/sort", listingHandler.SetSort)
			listingRoutes.PUT("/page", listingHandler.GoToPage)
			listingRoutes.POST("/filters/editor", listingHandler.OpenFilterEditor)
			listingRoutes.PATCH("/filters/draft", listingHandler.SetDraftFilter)
			listingRoutes.POST("/filters/apply", listingHandler.ApplyFilters)
			listingRoutes.DELETE("/filters", listingHandler.ClearFilters)
		}

		// Product detail
		products := v1.Group("/products")
		{
			products.GET("/:slug", productHandler.GetProduct)
		}

		// Cart routes
		cart := v1.Group("/cart")
		{
			cart.GET("", cartHandler.GetCart)
			cart.POST("/items", cartHandler.AddItem)
			cart.PUT("/items/:id", cartHandler.UpdateItem)
			cart.DELETE("/items/:id", cartHandler.RemoveItem)
		}

		// Checkout routes
		checkout := v1.Group("/checkout")
		checkout.Use(middleware.CheckoutRateLimit())
		{
			checkout.POST("", checkoutHandler.PlaceOrder)
		}

		orders := v1.Group("/orders")
		{
			orders.GET("/:id", checkoutHandler.GetOrder)
		}
	}

	return r
}
