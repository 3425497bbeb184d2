// internal/utils/pagination.go
package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/labubu-world/storefront/internal/listing"
)

// SetListingHeaders mirrors the pagination state of a listing view into
// response headers so clients can render controls without parsing the body.
func SetListingHeaders(c *gin.Context, view listing.View) {
	c.Header("X-Total-Count", strconv.Itoa(view.TotalItems))
	c.Header("X-Page", strconv.Itoa(view.Page))
	c.Header("X-Per-Page", strconv.Itoa(view.PageSize))
	c.Header("X-Total-Pages", strconv.Itoa(view.TotalPages))
}
