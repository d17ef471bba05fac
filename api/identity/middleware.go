package identity

import (
	"net/http"
	"strings"

	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
)

const (
	// ContextSessionClaims is the key used to store token claims in the Gin context.
	ContextSessionClaims = "sessionClaims"

	// SessionParam is the route parameter naming the addressed session.
	SessionParam = "ID"
)

// Authoriz admits a request only when it carries a bearer token issued for
// the session named in the route.
func Authoriz(ts i.Tokenizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Retrieve the access token from the Authorization header.
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			return
		}

		// Split the "Bearer" prefix from the token.
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "malformed authorization header"})
			return
		}

		claims, err := ts.Decode(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		// The token unlocks exactly one session.
		sessionID, _ := claims[service.ClaimSessionID].(string)
		if sessionID == "" || sessionID != c.Param(SessionParam) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token not valid for this session"})
			return
		}

		// Attach session claims to the request context for further use.
		c.Set(ContextSessionClaims, claims)
		c.Next()
	}
}
