package middleware

import (
	"net/http"

	"helpnest/models"

	"github.com/gin-gonic/gin"
)

// requireRole passes requests through only when the attached account holds
// the given role.
func requireRole(role, denied string) gin.HandlerFunc {
	return func(c *gin.Context) {
		acc := AccountFromContext(c)
		if acc == nil || acc.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": denied})
			return
		}
		c.Next()
	}
}

// RequireDriver restricts a route to driver accounts.
func RequireDriver() gin.HandlerFunc {
	return requireRole(models.RoleDriver, "Access denied. Drivers only.")
}

// RequireMaid restricts a route to maid accounts.
func RequireMaid() gin.HandlerFunc {
	return requireRole(models.RoleMaid, "Access denied. Maids only.")
}

// RequireServiceProvider restricts a route to either provider kind.
func RequireServiceProvider() gin.HandlerFunc {
	return func(c *gin.Context) {
		acc := AccountFromContext(c)
		if acc == nil || !models.ValidRole(acc.Role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied. Service providers only."})
			return
		}
		c.Next()
	}
}
