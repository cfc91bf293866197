package handler

import (
	"errors"
	"net/http"

	"github.com/Sathvikcoderr02/saas-contracts-dashboard/pkg/logger"
	"github.com/Sathvikcoderr02/saas-contracts-dashboard/service"
	"github.com/gin-gonic/gin"
)

// respondServiceError maps service errors onto HTTP responses. Fixture fetch
// failures are flagged retryable so clients can offer a manual retry.
func respondServiceError(c *gin.Context, err error) {
	ctx := c.Request.Context()
	switch {
	case errors.Is(err, service.ErrFetchDetails):
		logger.Warn(ctx, "fixture fetch failed", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": service.ErrFetchDetails.Error(), "retryable": true})
	case errors.Is(err, service.ErrFetchContracts):
		logger.Warn(ctx, "fixture fetch failed", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": service.ErrFetchContracts.Error(), "retryable": true})
	default:
		logger.Error(ctx, "request failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
