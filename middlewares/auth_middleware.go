package middlewares

import (
	"net/http"
	"strings"

	"github.com/i-ansh-pandey/HealthGenniebyAnsh-Pandey/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer token and puts the phone number
// claim on the context as "phone".
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		phone, err := utils.ParseJWT(tokenString, jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set("phone", phone)
		c.Next()
	}
}

// OptionalAuth sets "phone" when a valid token is present but lets
// anonymous requests through. The command endpoint uses it so the agent
// can identify users by body param instead.
func OptionalAuth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			if phone, err := utils.ParseJWT(strings.TrimPrefix(authHeader, "Bearer "), jwtSecret); err == nil {
				c.Set("phone", phone)
			}
		}
		c.Next()
	}
}
