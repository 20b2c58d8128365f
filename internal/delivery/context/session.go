package context

import (
	"github.com/labstack/echo/v4"

	"jobly/internal/domain/entity"
)

// KeySessionUser is the key for the authenticated identity in echo.Context.
const KeySessionUser ContextKey = "session_user"

// SetSessionUser stores the authenticated identity for the rest of the request.
func SetSessionUser(c echo.Context, user *entity.SessionUser) {
	c.Set(string(KeySessionUser), user)
}

// GetSessionUser returns the authenticated identity, or nil for anonymous requests.
func GetSessionUser(c echo.Context) *entity.SessionUser {
	if user, ok := c.Get(string(KeySessionUser)).(*entity.SessionUser); ok {
		return user
	}

	return nil
}
