package entity

import "time"

// AccountStatus is the lifecycle flag of an account.
type AccountStatus string

const (
	AccountStatusActive    AccountStatus = "Activo"
	AccountStatusInactive  AccountStatus = "Inactivo"
	AccountStatusSuspended AccountStatus = "Suspendido"
)

// Account is a login identity. Exactly one role profile hangs off it.
type Account struct {
	ID         uint          `json:"id"`
	Email      string        `json:"email"`
	Credential string        `json:"-"` // stored credential value: a hash, or plaintext for rows not yet migrated
	Role       Role          `json:"role"`
	Status     AccountStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
}

// IsActive reports whether the account may log in.
func (a *Account) IsActive() bool {
	return a.Status == "" || a.Status == AccountStatusActive
}

// SessionUser is the identity carried by an authenticated session.
type SessionUser struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
}

// HasRole reports whether the session belongs to the given role.
func (u *SessionUser) HasRole(role Role) bool {
	return u != nil && u.Role == role
}
