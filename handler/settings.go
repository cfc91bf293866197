package handler

import (
	"errors"
	"net/http"

	"github.com/Sathvikcoderr02/saas-contracts-dashboard/middleware"
	"github.com/Sathvikcoderr02/saas-contracts-dashboard/service"
	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	store *service.SettingsStore
}

func NewSettingsHandler(store *service.SettingsStore) *SettingsHandler {
	return &SettingsHandler{store: store}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.store.Get(c.Request.Context(), middleware.GetUsername(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// Update replaces the caller's settings. Fields missing from the body keep
// their current values.
func (h *SettingsHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	username := middleware.GetUsername(c)

	current, err := h.store.Get(ctx, username)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	settings := current
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if err := h.store.Save(ctx, username, settings); err != nil {
		if errors.Is(err, service.ErrInvalidSettings) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}
