// Package entity contains the core business objects of the job board.
package entity

import "strings"

// Role is the immutable account type chosen at registration.
type Role string

const (
	// RoleCandidate is a job seeker.
	RoleCandidate Role = "Candidato"
	// RoleEmployer is a company publishing vacancies.
	RoleEmployer Role = "Empresa"
	// RoleAdmin is a platform administrator.
	RoleAdmin Role = "Administrador"
)

var roleAliases = map[string]Role{
	"candidato":     RoleCandidate,
	"candidate":     RoleCandidate,
	"empresa":       RoleEmployer,
	"employer":      RoleEmployer,
	"administrador": RoleAdmin,
	"admin":         RoleAdmin,
}

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCandidate, RoleEmployer, RoleAdmin:
		return true
	default:
		return false
	}
}

// HomePath is where the client lands after a successful login.
func (r Role) HomePath() string {
	switch r {
	case RoleEmployer:
		return "/empresa/home"
	case RoleAdmin:
		return "/admin/home"
	default:
		return "/candidato/home"
	}
}

// ParseRole accepts the stored role names and their English aliases, case-insensitively.
func ParseRole(s string) (Role, bool) {
	role, ok := roleAliases[strings.ToLower(strings.TrimSpace(s))]

	return role, ok
}
