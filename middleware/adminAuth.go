package middleware

import (
	"net/http"

	"medibook/models"

	"github.com/gin-gonic/gin"
)

// RequireAdmin gates admin endpoints on the role claim set by
// JWTAuthMiddleware, which must run earlier in the chain.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get("role")
		if role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}
