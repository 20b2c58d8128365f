package repository

import (
	"context"
	"errors"

	"jobly/internal/domain/entity"
)

var (
	// ErrCandidateNotFound is returned when an account has no candidate profile.
	ErrCandidateNotFound = errors.New("candidate profile not found")
	// ErrEmployerNotFound is returned when an account has no employer profile.
	ErrEmployerNotFound = errors.New("employer profile not found")
)

// CandidateRepository persists candidate profiles and their binary assets.
type CandidateRepository interface {
	Create(ctx context.Context, profile *entity.CandidateProfile) error
	FindByAccountID(ctx context.Context, accountID uint) (*entity.CandidateProfile, error)
	Update(ctx context.Context, accountID uint, patch *entity.CandidateProfilePatch) error

	// SetPhoto and SetCV replace the stored content wholesale.
	SetPhoto(ctx context.Context, accountID uint, photo []byte) error
	SetCV(ctx context.Context, accountID uint, cv []byte) error

	// GetPhoto and GetCV return nil content when nothing was uploaded.
	GetPhoto(ctx context.Context, accountID uint) ([]byte, error)
	GetCV(ctx context.Context, accountID uint) ([]byte, error)
}

// EmployerRepository persists employer profiles.
type EmployerRepository interface {
	// Create inserts the profile. A duplicate tax ID is reported as ErrTaxIDAlreadyRegistered.
	Create(ctx context.Context, profile *entity.EmployerProfile) error

	FindByAccountID(ctx context.Context, accountID uint) (*entity.EmployerProfile, error)
	FindByAccountEmail(ctx context.Context, email string) (*entity.EmployerProfile, error)
	ExistsByTaxID(ctx context.Context, taxID string) (bool, error)

	SetLogo(ctx context.Context, accountID uint, logo []byte) error
	GetLogo(ctx context.Context, accountID uint) ([]byte, error)
}

// AdminRepository persists administrator profiles.
type AdminRepository interface {
	Create(ctx context.Context, profile *entity.AdminProfile) error
}
