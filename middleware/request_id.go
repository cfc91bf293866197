package middleware

import (
	"context"

	"github.com/Sathvikcoderr02/saas-contracts-dashboard/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// maxRequestIDLen caps client-supplied request ids
const maxRequestIDLen = 64

// RequestID reuses a sane incoming X-Request-ID or generates one, and makes it
// available to handlers and to the context logger
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if !validRequestID(requestID) {
			requestID = uuid.New().String()
		}

		c.Header("X-Request-ID", requestID)
		c.Set("request_id", requestID)

		ctx := context.WithValue(c.Request.Context(), logger.RequestIDKey, requestID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLen {
		return false
	}
	for _, r := range id {
		if r < 0x21 || r > 0x7e {
			return false
		}
	}
	return true
}

// GetRequestID gets the request ID from gin context
func GetRequestID(c *gin.Context) string {
	return c.GetString("request_id")
}
