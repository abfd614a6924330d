package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devfolio/api/internal/auth"
)

// IdentityKey is the gin context key carrying the verified caller identity.
const IdentityKey = "identity"

// Verifier is the minimal interface the middleware depends on.
type Verifier interface {
	ValidateToken(raw string) (auth.Identity, error)
}

// RequireAuth returns a Gin middleware that verifies Bearer tokens using the
// provided verifier and stores the identity in the request context.
func RequireAuth(ver Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing Authorization header"})
			return
		}
		// Expect 'Bearer <token>'
		var token string
		if n, _ := fmt.Sscanf(header, "Bearer %s", &token); n != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid Authorization header"})
			return
		}

		id, err := ver.ValidateToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		c.Set(IdentityKey, id)
		c.Next()
	}
}

// IdentityFrom extracts the verified identity placed by RequireAuth.
func IdentityFrom(c *gin.Context) (auth.Identity, bool) {
	v, ok := c.Get(IdentityKey)
	if !ok {
		return auth.Identity{}, false
	}
	id, ok := v.(auth.Identity)
	return id, ok
}
