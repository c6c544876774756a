package middleware

import (
	"errors"

	"frent-client/internal/authz"
	apperrors "frent-client/internal/errors"
	"frent-client/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequireAction returns a middleware that checks the session role against
// action. It must run after Auth.
func RequireAction(authorizer authz.Authorizer, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := authorizer.Authorize(GetSession(c), action)
		switch {
		case err == nil:
			c.Next()
		case errors.Is(err, apperrors.ErrForbidden):
			response.Forbidden(c, "insufficient permissions")
			c.Abort()
		default:
			response.Unauthorized(c, "user not authenticated")
			c.Abort()
		}
	}
}

// RequireAdmin returns a middleware that only lets administrators through.
func RequireAdmin(authorizer authz.Authorizer) gin.HandlerFunc {
	return RequireAction(authorizer, authz.ActionUserManage)
}
