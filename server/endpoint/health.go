// Package endpoint provides the unauthenticated operational endpoints.
package endpoint

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health returns the health-check handler. It is unauthenticated and exempt
// from rate limiting.
func Health() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
