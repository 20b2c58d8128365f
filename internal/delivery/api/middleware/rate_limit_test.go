package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"jobly/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestLoginRateLimiter(t *testing.T) {
	e := echo.New()
	cfg := &config.Config{RateLimit: &config.RateLimitConfig{LoginPerSecond: 0.001, LoginBurst: 2}}
	e.POST("/api/login/", okHandler, LoginRateLimiter(cfg))

	codes := make([]int, 0, 3)
	for range 3 {
		req := httptest.NewRequest(http.MethodPost, "/api/login/", nil)
		req.RemoteAddr = "10.0.0.1:4000"
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, codes)
}

func TestLoginRateLimiter_DisabledWithoutRate(t *testing.T) {
	e := echo.New()
	e.POST("/api/login/", okHandler, LoginRateLimiter(&config.Config{}))

	for range 5 {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/login/", nil))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	}
}
