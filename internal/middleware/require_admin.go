package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"velora_back_end/internal/models"
)

// RequireAdmin allows the request through only when the authenticated role
// is "admin". Must run after AuthRequired.
func RequireAdmin(c *gin.Context) {
	role, exists := c.Get("role")
	if !exists || role != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"message": "Admin access required"})
		c.Abort()
		return
	}
	c.Next()
}
