package handler

import (
	"net/http"
	"time"

	"github.com/Sathvikcoderr02/saas-contracts-dashboard/config"
	"github.com/Sathvikcoderr02/saas-contracts-dashboard/middleware"
	"github.com/Sathvikcoderr02/saas-contracts-dashboard/pkg/logger"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	config *config.Config
}

func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{config: cfg}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
	Username  string `json:"username"`
	Name      string `json:"name"`
}

// Login checks the credentials against the configured demo users
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	user := h.config.FindUser(req.Username)
	// Plain comparison: the user list is demo data, not a credential store
	if user == nil || user.Password != req.Password {
		logger.Warn(c.Request.Context(), "login rejected", "username", req.Username)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	name := user.Name
	if name == "" {
		name = user.Username
	}

	token, expiresAt, err := middleware.GenerateToken(user.Username, name, &h.config.Auth)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	logger.Info(c.Request.Context(), "user logged in", "username", user.Username)
	c.JSON(http.StatusOK, LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.Format(time.RFC3339),
		Username:  user.Username,
		Name:      name,
	})
}

// GetCurrentUser returns the current user info
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"username": middleware.GetUsername(c),
		"name":     middleware.GetDisplayName(c),
	})
}
