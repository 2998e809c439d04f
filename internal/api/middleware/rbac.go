package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RoleAdmin can manage approval rules and view all company data.
const RoleAdmin = "ADMIN"

// RequireRole returns a middleware that rejects requests whose authenticated
// role is neither the required role nor ADMIN. It must run after JWTAuth.
func RequireRole(required string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		if role == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    "UNAUTHORIZED",
				"message": "authentication required",
			})
			return
		}

		if role != required && role != RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"code":    "FORBIDDEN",
				"message": "insufficient permissions",
			})
			return
		}

		c.Next()
	}
}
