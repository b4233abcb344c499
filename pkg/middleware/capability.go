package middleware

import (
	"net/http"

	"funfans/internal/entity"

	"github.com/gin-gonic/gin"
)

// RequireCapability gates a route on the caller's role capabilities. Must run
// after AuthMiddleware, which puts the role claim on the context.
func RequireCapability(cap entity.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := entity.ParseRole(c.GetString("role"))
		if !role.Can(cap) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			c.Abort()
			return
		}
		c.Next()
	}
}
