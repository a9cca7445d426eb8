package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIdHeader = "X-Request-Id"

const requestIdKey = "request_id"

// RequestId makes sure every request has an id, reusing the caller's if one was sent,
// and echoes it back in the response headers
func RequestId() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIdHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(requestIdKey, id)
		c.Header(RequestIdHeader, id)
		c.Next()
	}
}

// GetRequestId returns the id RequestId assigned, or "" if the middleware did not run
func GetRequestId(c *gin.Context) string {
	return c.GetString(requestIdKey)
}
