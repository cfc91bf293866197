package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/Sathvikcoderr02/saas-contracts-dashboard/config"
	"github.com/Sathvikcoderr02/saas-contracts-dashboard/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Claims represents the JWT claims
type Claims struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	jwt.RegisteredClaims
}

// GenerateToken signs a token for the user, valid for cfg.TokenExpireHours
func GenerateToken(username, name string, cfg *config.AuthConfig) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(time.Duration(cfg.TokenExpireHours) * time.Hour)

	claims := Claims{
		Username: username,
		Name:     name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(cfg.JWTSecret))
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}

// AuthMiddleware validates the bearer token and stores the user in both the
// gin context and the request context used by the logger
func AuthMiddleware(cfg *config.AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(cfg.JWTSecret), nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set("username", claims.Username)
		c.Set("name", claims.Name)

		ctx := context.WithValue(c.Request.Context(), logger.UsernameKey, claims.Username)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetUsername gets the username from context
func GetUsername(c *gin.Context) string {
	return c.GetString("username")
}

// GetDisplayName gets the user's display name from context
func GetDisplayName(c *gin.Context) string {
	return c.GetString("name")
}
