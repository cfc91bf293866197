package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Sathvikcoderr02/saas-contracts-dashboard/model"
	"github.com/Sathvikcoderr02/saas-contracts-dashboard/pkg/logger"
	"github.com/Sathvikcoderr02/saas-contracts-dashboard/service"
	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reports *service.ReportService
	archive bool
}

func NewReportHandler(reports *service.ReportService, archive bool) *ReportHandler {
	return &ReportHandler{reports: reports, archive: archive}
}

// Generate builds a report. JSON is returned inline, csv and markdown as a
// download. An archived report's presigned URL is sent in X-Report-URL.
func (h *ReportHandler) Generate(c *gin.Context) {
	var req service.ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if req.Format == "" {
		req.Format = model.FormatJSON
	}

	ctx := c.Request.Context()
	report, err := h.reports.Generate(ctx, req)
	switch {
	case errors.Is(err, service.ErrUnsupportedReport),
		errors.Is(err, service.ErrUnsupportedFormat),
		errors.Is(err, service.ErrInvalidDateRange):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case err != nil:
		respondServiceError(c, err)
		return
	}

	if h.archive {
		// the report is still served when archiving fails
		if err := h.reports.Archive(ctx, report, req.Format); err != nil {
			logger.Warn(ctx, "report archive failed", "report_id", report.ID, "error", err)
		} else {
			c.Header("X-Report-URL", report.URL)
		}
	}

	if req.Format == model.FormatJSON {
		c.JSON(http.StatusOK, report)
		return
	}

	data, contentType, ext, err := service.Render(report, req.Format)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	filename := fmt.Sprintf("%s-report-%s%s", report.Type, report.AsOf.String(), ext)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, contentType+"; charset=utf-8", data)
}
