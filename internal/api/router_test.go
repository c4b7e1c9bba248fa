package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"go-progression/internal/config"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Server.JWTSecret = "test-secret"
	return cfg
}

func TestSetupRouter_BasicRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := testConfig()
	r := SetupRouter(cfg, nil, nil)

	// Health route should exist and return 200
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("GET /health should return 200, got %d", w.Code)
	}

	// Config route should exist and return 200
	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest("GET", "/config", nil)
	r.ServeHTTP(w2, req2)
	if w2.Code != http.StatusOK {
		t.Errorf("GET /config should return 200, got %d", w2.Code)
	}

	// Achievement catalog is public
	w3 := httptest.NewRecorder()
	req3 := httptest.NewRequest("GET", "/achievements", nil)
	r.ServeHTTP(w3, req3)
	if w3.Code != http.StatusOK {
		t.Errorf("GET /achievements should return 200, got %d", w3.Code)
	}
	if !contains(w3.Body.String(), "first_words") {
		t.Errorf("catalog should include first_words, got: %s", w3.Body.String())
	}
}

func TestSetupRouter_Subpath(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := testConfig()
	cfg.Server.Subpath = "/api"
	r := SetupRouter(cfg, nil, nil)

	// Should correctly prefix routes with subpath
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/health", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("GET /api/health should return 200, got %d", w.Code)
	}
}

func TestSetupRouter_AgentRoutesRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := testConfig()
	r := SetupRouter(cfg, nil, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/agents", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("GET /agents without token should return 401, got %d", w.Code)
	}
}
