package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/Sathvikcoderr02/saas-contracts-dashboard/pkg/logger"
	"github.com/gin-gonic/gin"
)

// Recovery turns a handler panic into a 500 carrying the request id
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error(c.Request.Context(), "panic recovered",
					"error", err,
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"stack", string(debug.Stack()),
				)

				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error":      "Internal server error",
					"request_id": GetRequestID(c),
				})
			}
		}()

		c.Next()
	}
}
