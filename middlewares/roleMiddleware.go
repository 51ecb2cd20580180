package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRole blocks callers whose token role does not match. Must run after
// AuthMiddleware.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get("role")
		if !exists {
			c.JSON(http.StatusForbidden, gin.H{"error": "Role not present in token"})
			c.Abort()
			return
		}

		if roleStr, ok := roleVal.(string); !ok || roleStr != role {
			c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			c.Abort()
			return
		}

		c.Next()
	}
}
