package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"autores-backend/internal/shared/response"
	"autores-backend/pkg/jwt"
)

// AuthMiddleware validates the bearer token and stores the authenticated
// email in the gin context under "email".
func AuthMiddleware(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := manager.Validate(parts[1])
		if err != nil {
			response.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		c.Set("email", claims.Email)
		c.Next()
	}
}
