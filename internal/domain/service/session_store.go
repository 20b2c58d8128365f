package service

import (
	"net/http"

	"jobly/internal/domain/entity"
)

// SessionStore keeps the authenticated identity between requests.
type SessionStore interface {
	// Load returns the session user, or nil when the request carries no valid session.
	Load(r *http.Request) (*entity.SessionUser, error)

	// Save binds user to the response.
	Save(w http.ResponseWriter, r *http.Request, user *entity.SessionUser) error

	// Clear drops the session.
	Clear(w http.ResponseWriter, r *http.Request) error
}
