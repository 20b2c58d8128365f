package middleware

import (
	"net/http"
	"time"

	"jobly/config"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

const rateLimitExpiry = 3 * time.Minute

// LoginRateLimiter throttles login attempts per client IP.
// A zero rate disables throttling.
func LoginRateLimiter(cfg *config.Config) echo.MiddlewareFunc {
	if cfg.RateLimit == nil || cfg.RateLimit.LoginPerSecond <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}

	burst := cfg.RateLimit.LoginBurst
	if burst <= 0 {
		burst = 1
	}

	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(cfg.RateLimit.LoginPerSecond),
			Burst:     burst,
			ExpiresIn: rateLimitExpiry,
		}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(_ echo.Context, _ string, _ error) error {
			return echo.NewHTTPError(http.StatusTooManyRequests, "Demasiados intentos de inicio de sesión")
		},
	})
}
