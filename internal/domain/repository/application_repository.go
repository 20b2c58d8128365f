package repository

import (
	"context"
	"errors"

	"jobly/internal/domain/entity"
)

// ErrApplicationNotFound is returned when no application matches the lookup.
var ErrApplicationNotFound = errors.New("application not found")

// ApplicationRepository persists applications and the hiring records attached to them.
type ApplicationRepository interface {
	// Create inserts the application. A second application of the same
	// candidate to the same vacancy is reported as ErrAlreadyApplied.
	Create(ctx context.Context, application *entity.Application) error

	FindByID(ctx context.Context, id uint) (*entity.Application, error)
	ListByCandidate(ctx context.Context, candidateID uint) ([]*entity.ApplicationSummary, error)
	ListByVacancy(ctx context.Context, vacancyID uint) ([]*entity.ApplicantSummary, error)
	UpdateState(ctx context.Context, id uint, state entity.ApplicationState) error

	CreateNote(ctx context.Context, note *entity.InternalNote) error
	ListNotes(ctx context.Context, applicationID uint) ([]*entity.InternalNote, error)

	CreateInterview(ctx context.Context, interview *entity.Interview) error
	ListInterviews(ctx context.Context, applicationID uint) ([]*entity.Interview, error)
}
