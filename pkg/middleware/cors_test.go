package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/assert"
)

var testOrigins = []string{
	"http://localhost:3000",
	"https://menshealthfinder.com",
	"https://www.menshealthfinder.com",
}

func newCORSTestServer() *echo.Echo {
	e := echo.New()
	e.Use(echomw.CORSWithConfig(CORSConfig(testOrigins)))
	e.GET("/test", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.POST("/test", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	return e
}

func TestCORS_AllowedOrigins(t *testing.T) {
	e := newCORSTestServer()

	for _, origin := range testOrigins {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("Origin", origin)
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.Equal(t, origin, rec.Header().Get("Access-Control-Allow-Origin"),
			"origin %s should be allowed", origin)
	}
}

func TestCORS_BlockedOrigins(t *testing.T) {
	e := newCORSTestServer()

	blocked := []string{
		"https://evil.com",
		"https://menshealthfinder.com.evil.com",
		"https://app.menshealthfinder.com",
		"http://menshealthfinder.com",
	}

	for _, origin := range blocked {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("Origin", origin)
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"),
			"origin %s should be blocked", origin)
	}
}

func TestCORS_PreflightAllowedOrigin(t *testing.T) {
	e := newCORSTestServer()

	req := httptest.NewRequest(http.MethodOptions, "/test", nil)
	req.Header.Set("Origin", "https://menshealthfinder.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://menshealthfinder.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORS_PreflightBlockedOrigin(t *testing.T) {
	e := newCORSTestServer()

	req := httptest.NewRequest(http.MethodOptions, "/test", nil)
	req.Header.Set("Origin", "https://evil.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSConfig_Values(t *testing.T) {
	cfg := CORSConfig(testOrigins)

	assert.Equal(t, testOrigins, cfg.AllowOrigins)
	assert.True(t, cfg.AllowCredentials)
	assert.NotContains(t, cfg.AllowOrigins, "*",
		"wildcard origin must never be combined with credentials")
	assert.Contains(t, cfg.AllowHeaders, "Authorization")
}

func TestCORS_RequestWithoutOrigin(t *testing.T) {
	e := newCORSTestServer()

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	// Same-origin / non-browser requests pass straight through.
	assert.Equal(t, http.StatusOK, rec.Code)
}
