package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"deeprealties/backend/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() { gin.SetMode(gin.TestMode) }

func testConfig() config.Config {
	return config.Config{JWTSecret: "test-secret", TokenTTL: time.Minute, GeminiModel: "gemini-2.5-flash"}
}

func TestRegisterRoutesWithoutConflicts(t *testing.T) {
	r := gin.New()
	require.NotPanics(t, func() { Register(r, testConfig()) })

	have := map[string]bool{}
	for _, ri := range r.Routes() {
		have[ri.Method+" "+ri.Path] = true
	}
	for _, want := range []string{
		"POST /api/auth/login",
		"GET /api/properties/seller/my-properties",
		"GET /api/properties/:id",
		"PUT /api/properties/:id/approve",
		"GET /api/enquiries/seller/enquiries",
		"GET /api/admin/dashboard",
		"GET /api/admin/export/:dataset",
		"GET /api/projects/ongoing",
		"POST /api/events/:id/register",
		"PUT /api/investments/registrations/:id/contacted",
		"GET /api/recommendations/:id/properties",
		"GET /api/statistics",
	} {
		assert.True(t, have[want], want)
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	r := gin.New()
	Register(r, testConfig())

	for _, path := range []string{"/api/auth/me", "/api/admin/dashboard", "/api/enquiries/my-enquiries", "/api/recommendations"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
		assert.JSONEq(t, `{"detail":"Not authenticated"}`, w.Body.String())
	}
}
