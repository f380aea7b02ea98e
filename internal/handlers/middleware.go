package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"showroom_manager/internal/auth"
)

const contextUserKey = "current_user"

// RequireAuth rejects requests without a valid bearer token and stores the
// claims on the context for downstream handlers.
func RequireAuth(jwtManager *auth.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header"})
			return
		}

		claims, err := jwtManager.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(contextUserKey, claims)
		c.Next()
	}
}

// CurrentUser returns the claims set by RequireAuth, or nil on public routes.
func CurrentUser(c *gin.Context) *auth.Claims {
	value, exists := c.Get(contextUserKey)
	if !exists {
		return nil
	}
	claims, _ := value.(*auth.Claims)
	return claims
}
