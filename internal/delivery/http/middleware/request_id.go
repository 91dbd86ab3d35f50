package middleware

import (
	"portfolio-contact-api/internal/delivery/http/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader is read from the request and echoed on the response
const RequestIDHeader = "X-Request-ID"

// RequestID keeps an upstream X-Request-ID or generates a UUID, then stores it
// in the gin context for the response envelope.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader(RequestIDHeader)
		if reqID == "" || len(reqID) > 128 {
			reqID = uuid.NewString()
		}

		c.Set(response.RequestIDKey, reqID)
		c.Header(RequestIDHeader, reqID)

		c.Next()
	}
}
