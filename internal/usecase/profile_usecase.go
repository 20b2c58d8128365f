package usecase

import (
	"context"

	"jobly/internal/domain/entity"
)

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	// GetCandidateProfile creates the profile on first access.
	GetCandidateProfile(ctx context.Context, actor *entity.SessionUser) (*entity.CandidateProfile, error)
	UpdateCandidateProfile(ctx context.Context, actor *entity.SessionUser, patch *entity.CandidateProfilePatch) (*entity.CandidateProfile, error)
	UploadCandidatePhoto(ctx context.Context, actor *entity.SessionUser, content []byte) error
	GetCandidatePhoto(ctx context.Context, actor *entity.SessionUser) ([]byte, error)
	UploadCandidateCV(ctx context.Context, actor *entity.SessionUser, content []byte) error
	GetCandidateCV(ctx context.Context, actor *entity.SessionUser) ([]byte, error)

	GetEmployerProfile(ctx context.Context, actor *entity.SessionUser) (*entity.EmployerProfile, error)
	UploadEmployerLogo(ctx context.Context, actor *entity.SessionUser, content []byte) error
	GetEmployerLogo(ctx context.Context, actor *entity.SessionUser) ([]byte, error)
}
