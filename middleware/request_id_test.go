package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Sathvikcoderr02/saas-contracts-dashboard/pkg/logger"
	"github.com/gin-gonic/gin"
)

func requestIDRouter() *gin.Engine {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/test", func(c *gin.Context) {
		ctxID, _ := c.Request.Context().Value(logger.RequestIDKey).(string)
		c.JSON(http.StatusOK, gin.H{"request_id": GetRequestID(c), "ctx_id": ctxID})
	})
	return router
}

func TestRequestIDMiddleware(t *testing.T) {
	req := httptest.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()

	requestIDRouter().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	responseID := w.Header().Get("X-Request-ID")
	if responseID == "" {
		t.Fatal("Expected X-Request-ID header to be set")
	}
	if !strings.Contains(w.Body.String(), `"ctx_id":"`+responseID+`"`) {
		t.Errorf("Expected request context to carry %s, got %s", responseID, w.Body.String())
	}
}

func TestRequestIDMiddlewareIncomingHeader(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		reused   bool
	}{
		{"reuses a sane id", "existing-request-id-123", true},
		{"rejects spaces", "has space", false},
		{"rejects oversized ids", strings.Repeat("a", maxRequestIDLen+1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/test", nil)
			req.Header.Set("X-Request-ID", tt.incoming)
			w := httptest.NewRecorder()

			requestIDRouter().ServeHTTP(w, req)

			responseID := w.Header().Get("X-Request-ID")
			if (responseID == tt.incoming) != tt.reused {
				t.Errorf("Expected reused=%v, got response id %q", tt.reused, responseID)
			}
			if responseID == "" {
				t.Error("Expected a request id")
			}
		})
	}
}

func TestGetRequestIDEmpty(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	if requestID := GetRequestID(c); requestID != "" {
		t.Errorf("Expected empty string, got '%s'", requestID)
	}
}
