package usecase

import (
	"context"
	"time"

	"jobly/internal/domain/entity"
)

// ProposeInterviewInput defines the data required to propose an interview.
type ProposeInterviewInput struct {
	ScheduledAt time.Time
	MeetingLink string
}

// ApplicationUsecase defines the hiring pipeline operations.
type ApplicationUsecase interface {
	Apply(ctx context.Context, actor *entity.SessionUser, vacancyID uint) (*entity.Application, error)
	ListMine(ctx context.Context, actor *entity.SessionUser) ([]*entity.ApplicationSummary, error)

	// Employer side. Applications to vacancies the actor does not own are reported as not found.
	ListForVacancy(ctx context.Context, actor *entity.SessionUser, vacancyID uint) ([]*entity.ApplicantSummary, error)
	UpdateState(ctx context.Context, actor *entity.SessionUser, applicationID uint, state entity.ApplicationState) (*entity.Application, error)
	AddNote(ctx context.Context, actor *entity.SessionUser, applicationID uint, content string) (*entity.InternalNote, error)
	ListNotes(ctx context.Context, actor *entity.SessionUser, applicationID uint) ([]*entity.InternalNote, error)
	ProposeInterview(ctx context.Context, actor *entity.SessionUser, applicationID uint, input *ProposeInterviewInput) (*entity.Interview, error)

	// ListInterviews is open to the vacancy owner and to the applying candidate.
	ListInterviews(ctx context.Context, actor *entity.SessionUser, applicationID uint) ([]*entity.Interview, error)
}
