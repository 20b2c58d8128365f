package middleware

import (
	"log/slog"
	"slices"

	deliverycontext "jobly/internal/delivery/context"
	"jobly/internal/domain/entity"
	domainerrors "jobly/internal/domain/errors"
	"jobly/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// SessionMiddleware resolves the session cookie into a session user.
type SessionMiddleware struct {
	store  service.SessionStore
	logger *slog.Logger
}

// NewSessionMiddleware creates a new session middleware
func NewSessionMiddleware(store service.SessionStore, logger *slog.Logger) *SessionMiddleware {
	return &SessionMiddleware{
		store:  store,
		logger: logger,
	}
}

// Load attaches the session user when the request carries a valid session.
// Anonymous requests pass through; handlers decide whether they need a session.
func (m *SessionMiddleware) Load(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := m.store.Load(c.Request())
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Error("Failed to load session", slog.Any("error", err))
		}
		if user != nil {
			deliverycontext.SetSessionUser(c, user)
		}

		return next(c)
	}
}

// RequireSession rejects anonymous requests.
func (m *SessionMiddleware) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if deliverycontext.GetSessionUser(c) == nil {
			return domainerrors.ErrUnauthenticated
		}

		return next(c)
	}
}

// RequireRole rejects anonymous requests and sessions holding none of the roles.
func (m *SessionMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := deliverycontext.GetSessionUser(c)
			if user == nil {
				return domainerrors.ErrUnauthenticated
			}
			if !slices.Contains(roles, user.Role) {
				return domainerrors.ErrForbidden
			}

			return next(c)
		}
	}
}
