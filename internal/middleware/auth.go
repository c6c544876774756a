// Package middleware provides HTTP middleware for the API.
package middleware

import (
	"strings"
	"time"

	"frent-client/pkg/auth"
	"frent-client/pkg/response"

	"github.com/gin-gonic/gin"
)

// Context keys for storing request data
const (
	SessionKey = "session"
)

// Auth returns a middleware that builds a session from the bearer token.
// The signature is not checked here; the rental service verifies every token
// it receives. Expired or undecodable tokens are refused up front so no
// remote call is made on their behalf.
func Auth() gin.HandlerFunc {
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

		sess, err := auth.NewSession(parts[1])
		if err != nil || !sess.Valid(time.Now()) {
			response.Unauthorized(c, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(SessionKey, sess)

		c.Next()
	}
}

// GetSession retrieves the session from the context.
// Returns nil if not found.
func GetSession(c *gin.Context) *auth.Session {
	value, exists := c.Get(SessionKey)
	if !exists {
		return nil
	}
	sess, _ := value.(*auth.Session)
	return sess
}
