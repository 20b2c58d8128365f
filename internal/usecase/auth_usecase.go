// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"jobly/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput is the minimal registration: an account plus a placeholder role profile.
type RegisterInput struct {
	Email    string
	Password string
	Role     string
}

// RegisterEmployerInput defines the data required to register a company.
type RegisterEmployerInput struct {
	Email       string
	Password    string
	CompanyName string
	TaxID       string
	Category    string
	Description string
	Logo        []byte
}

// RegisterCandidateInput defines the data required to register a job seeker.
type RegisterCandidateInput struct {
	Email    string
	Password string
	FullName string
	CV       []byte
	Photo    []byte
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// RegisterOutput identifies the rows created by a registration.
type RegisterOutput struct {
	UserID     uint `json:"user_id"`
	EmployerID uint `json:"employer_id,omitempty"`
}

// LoginOutput is returned after a successful login.
type LoginOutput struct {
	UserID   uint        `json:"user_id"`
	Email    string      `json:"email"`
	Role     entity.Role `json:"role"`
	Redirect string      `json:"redirect"`
}

// SessionUser is the identity to bind to the session.
func (o *LoginOutput) SessionUser() *entity.SessionUser {
	return &entity.SessionUser{
		UserID: o.UserID,
		Email:  o.Email,
		Role:   o.Role,
	}
}

// AuthUsecase defines registration and login.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	RegisterEmployer(ctx context.Context, input *RegisterEmployerInput) (*RegisterOutput, error)
	RegisterCandidate(ctx context.Context, input *RegisterCandidateInput) (*RegisterOutput, error)

	// Login verifies the password against whatever scheme the stored credential uses,
	// upgrading older credentials to the current hash on success.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
