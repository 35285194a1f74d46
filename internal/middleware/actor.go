package middleware

import (
	"net/http"
	"strings"

	"multikanban/internal/auth"

	"github.com/gin-gonic/gin"
)

// ActorKey holds the acting user's name in the gin context.
const ActorKey = "actor"

// ActorMiddleware names the user an intent is stamped with. A bearer token
// signed with secret names the user; without a token, or with an empty
// secret, the request acts as defaultActor. Tokens that fail to verify are
// rejected.
func ActorMiddleware(secret, defaultActor string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || secret == "" {
			c.Set(ActorKey, defaultActor)
			c.Next()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		user, err := auth.ParseToken(secret, parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(ActorKey, user)
		c.Next()
	}
}

// Actor returns the acting user resolved by ActorMiddleware.
func Actor(c *gin.Context) string {
	return c.GetString(ActorKey)
}
