package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/publication-cms-api/internal/models"
	"github.com/publication-cms-api/internal/service"
)

// principalKey is the gin context key the authenticated principal is
// stored under
const principalKey = "principal"

// authMiddleware validates the bearer token on protected operations.
// No token at all is 401; a token that fails signature or expiry
// verification is 403. The check runs before any storage access.
func authMiddleware(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   "unauthenticated",
				"message": "authentication required",
			})
			return
		}

		rawToken := strings.TrimPrefix(header, "Bearer ")
		rawToken = strings.TrimSpace(rawToken)
		if rawToken == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   "unauthenticated",
				"message": "authentication required",
			})
			return
		}

		principal, err := auth.ParseToken(rawToken)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":   "forbidden",
				"message": "invalid or expired token",
			})
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

// requireEditorRole gates editorial mutation behind the editor/admin
// roles. Must run after authMiddleware.
func requireEditorRole() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := currentPrincipal(c)
		if principal == nil || !models.EditorRoles[principal.Role] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":   "forbidden",
				"message": "editor role required",
			})
			return
		}
		c.Next()
	}
}

// currentPrincipal returns the authenticated principal, or nil when the
// route is unauthenticated
func currentPrincipal(c *gin.Context) *models.Principal {
	value, ok := c.Get(principalKey)
	if !ok {
		return nil
	}
	principal, _ := value.(*models.Principal)
	return principal
}
