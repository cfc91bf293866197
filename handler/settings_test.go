package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/Sathvikcoderr02/saas-contracts-dashboard/model"
	"github.com/Sathvikcoderr02/saas-contracts-dashboard/service"
	"github.com/gin-gonic/gin"
)

func settingsRouter(t *testing.T) *gin.Engine {
	t.Helper()
	store, err := service.NewSettingsStore(filepath.Join(t.TempDir(), "settings.db"))
	if err != nil {
		t.Fatalf("Failed to open settings store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	h := NewSettingsHandler(store)
	router := gin.New()
	router.Use(withUser("demo"))
	router.GET("/settings", h.Get)
	router.PUT("/settings", h.Update)
	return router
}

func TestSettingsHandlerDefaults(t *testing.T) {
	router := settingsRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/settings", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	var got model.Settings
	decodeBody(t, w, &got)
	if got != model.DefaultSettings("demo") {
		t.Errorf("Expected defaults, got %+v", got)
	}
}

func TestSettingsHandlerPartialUpdate(t *testing.T) {
	router := settingsRouter(t)

	body := `{"preferences":{"theme":"dark"},"security":{"sessionTimeout":120}}`
	req := httptest.NewRequest("PUT", "/settings", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/settings", nil))

	var got model.Settings
	decodeBody(t, w, &got)
	if got.Preferences.Theme != "dark" || got.Security.SessionTimeout != 120 {
		t.Errorf("Expected update to persist, got %+v", got)
	}
	if got.Preferences.Language != "en" || !got.Notifications.RiskAlerts {
		t.Errorf("Expected untouched fields to keep defaults, got %+v", got)
	}
}

func TestSettingsHandlerInvalid(t *testing.T) {
	router := settingsRouter(t)

	for _, body := range []string{
		`{"preferences":{"theme":"neon"}}`,
		`{"security":{"sessionTimeout":1}}`,
		`not json`,
	} {
		req := httptest.NewRequest("PUT", "/settings", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected status 400, got %d", body, w.Code)
		}
	}
}
