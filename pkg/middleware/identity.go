package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/MOTAHAR124/AI-Trip-Planner/pkg/utils"
)

// ContextFullNameKey is the gin context key holding the caller's display name.
const ContextFullNameKey = "full_name"

// IdentityMiddleware resolves an optional display name from a bearer token.
// A missing or invalid token is not an error; downstream handlers substitute
// a generic placeholder.
func IdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.Next()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateToken(tokenString)
		if err == nil && claims != nil && claims.FullName != "" {
			c.Set(ContextFullNameKey, claims.FullName)
		}

		c.Next()
	}
}
