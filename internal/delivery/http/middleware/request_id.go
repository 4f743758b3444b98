package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestID assigns a unique ID to every request. The ID is echoed in
// the X-Request-ID header and in the JSON response envelope so a client
// report can be matched against server logs.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader("X-Request-ID")
		if reqID == "" {
			reqID = uuid.NewString()
		}

		c.Set("RequestID", reqID)
		c.Header("X-Request-ID", reqID)

		c.Next()
	}
}
