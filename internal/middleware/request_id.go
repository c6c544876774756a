package middleware

import (
	"frent-client/internal/api"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

// RequestIDKey is the gin context key for the request id.
const RequestIDKey = "requestID"

// RequestID returns a middleware that tags every request with an id. An id
// sent by the caller is kept; otherwise a new one is generated. The id is
// forwarded to the rental service on every outgoing call.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}

		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Request = c.Request.WithContext(api.WithRequestID(c.Request.Context(), id))

		c.Next()
	}
}
