// internal/middleware/cors.go
package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS allows the storefront frontend origin and exposes the session and
// pagination headers the client reads.
func CORS(frontendBaseURL string) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins: []string{frontendBaseURL},
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", SessionHeader},
		ExposeHeaders: []string{
			SessionHeader,
			"X-Total-Count", "X-Page", "X-Per-Page", "X-Total-Pages",
		},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
