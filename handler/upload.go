package handler

import (
	"errors"
	"net/http"

	"github.com/Sathvikcoderr02/saas-contracts-dashboard/middleware"
	"github.com/Sathvikcoderr02/saas-contracts-dashboard/service"
	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	uploads *service.UploadService
}

func NewUploadHandler(uploads *service.UploadService) *UploadHandler {
	return &UploadHandler{uploads: uploads}
}

// Upload accepts one multipart "file" field
func (h *UploadHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}
	defer file.Close()

	record, err := h.uploads.Upload(c.Request.Context(), middleware.GetUsername(c), header.Filename, header.Size, file)
	switch {
	case errors.Is(err, service.ErrUnsupportedFileType):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrFileTooLarge):
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUploadFailed):
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":     service.ErrUploadFailed.Error(),
			"retryable": true,
			"upload":    record,
		})
	case err != nil:
		respondServiceError(c, err)
	default:
		c.JSON(http.StatusCreated, record)
	}
}

// List returns the caller's uploads, newest first
func (h *UploadHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"uploads": h.uploads.List(middleware.GetUsername(c))})
}

// Delete removes one of the caller's uploads
func (h *UploadHandler) Delete(c *gin.Context) {
	err := h.uploads.Delete(c.Request.Context(), middleware.GetUsername(c), c.Param("id"))
	if errors.Is(err, service.ErrUploadNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Upload not found"})
		return
	}
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Upload deleted"})
}
