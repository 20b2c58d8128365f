package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "jobly/internal/delivery/context"
	"jobly/internal/domain/entity"
	domainerrors "jobly/internal/domain/errors"
	"jobly/internal/domain/repository"
	"jobly/internal/errors"
	"jobly/internal/usecase"
)

type applicationService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewApplicationService is the constructor for applicationService.
func NewApplicationService(txManager repository.TransactionManager, logger *slog.Logger) usecase.ApplicationUsecase {
	return &applicationService{
		txManager: txManager,
		logger:    logger,
	}
}

func (srv *applicationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Apply submits the candidate to a published vacancy. Applying twice fails with ErrAlreadyApplied.
func (srv *applicationService) Apply(ctx context.Context, actor *entity.SessionUser, vacancyID uint) (*entity.Application, error) {
	if err := requireRole(actor, entity.RoleCandidate); err != nil {
		return nil, err
	}

	var application *entity.Application
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		candidate, err := ensureCandidateProfile(ctx, repoFactory, actor)
		if err != nil {
			return err
		}

		vacancy, err := repoFactory.VacancyRepo().FindByID(ctx, vacancyID)
		if err != nil {
			return mapNotFound(err, repository.ErrVacancyNotFound, domainerrors.ErrVacancyNotAvailable)
		}
		if vacancy.State != entity.VacancyStatePublished {
			return domainerrors.ErrVacancyNotAvailable
		}

		application = &entity.Application{
			CandidateID: candidate.ID,
			VacancyID:   vacancy.ID,
			State:       entity.ApplicationStateReceived,
		}

		return errors.Wrap(repoFactory.ApplicationRepo().Create(ctx, application), "failed to create application")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute apply transaction")
	}

	srv.log(ctx).Info("Application submitted",
		slog.Uint64("applicationID", uint64(application.ID)),
		slog.Uint64("vacancyID", uint64(vacancyID)),
		slog.Uint64("userID", uint64(actor.UserID)),
	)

	return application, nil
}

// ListMine returns the candidate's applications, most recent first.
func (srv *applicationService) ListMine(ctx context.Context, actor *entity.SessionUser) ([]*entity.ApplicationSummary, error) {
	if err := requireRole(actor, entity.RoleCandidate); err != nil {
		return nil, err
	}

	applications := []*entity.ApplicationSummary{}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		candidate, err := repoFactory.CandidateRepo().FindByAccountID(ctx, actor.UserID)
		if errors.Is(err, repository.ErrCandidateNotFound) {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to find candidate profile")
		}

		applications, err = repoFactory.ApplicationRepo().ListByCandidate(ctx, candidate.ID)

		return errors.Wrap(err, "failed to list candidate applications")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute list applications transaction")
	}

	return applications, nil
}

func (srv *applicationService) ListForVacancy(ctx context.Context, actor *entity.SessionUser, vacancyID uint) ([]*entity.ApplicantSummary, error) {
	var applicants []*entity.ApplicantSummary
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		employer, err := ownerEmployer(ctx, repoFactory, actor)
		if err != nil {
			return err
		}

		vacancy, err := repoFactory.VacancyRepo().FindByID(ctx, vacancyID)
		if err != nil {
			return mapNotFound(err, repository.ErrVacancyNotFound, domainerrors.ErrVacancyNotFound)
		}
		if vacancy.EmployerID != employer.ID {
			return domainerrors.ErrVacancyNotFound
		}

		applicants, err = repoFactory.ApplicationRepo().ListByVacancy(ctx, vacancyID)

		return errors.Wrap(err, "failed to list applicants")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute list applicants transaction")
	}

	return applicants, nil
}

func (srv *applicationService) UpdateState(ctx context.Context, actor *entity.SessionUser, applicationID uint, state entity.ApplicationState) (*entity.Application, error) {
	if !state.IsValid() {
		return nil, domainerrors.ErrInvalidApplicationState.WithDetails("state must be one of Recibida, Revision, Entrevista, Oferta, Rechazada")
	}

	var application *entity.Application
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		_, application, err = ownedApplication(ctx, repoFactory, actor, applicationID)
		if err != nil {
			return err
		}

		if err := repoFactory.ApplicationRepo().UpdateState(ctx, applicationID, state); err != nil {
			return mapNotFound(err, repository.ErrApplicationNotFound, domainerrors.ErrApplicationNotFound)
		}
		application.State = state

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute update application state transaction")
	}

	srv.log(ctx).Info("Application state changed", slog.Uint64("applicationID", uint64(applicationID)), slog.String("state", string(state)))

	return application, nil
}

func (srv *applicationService) AddNote(ctx context.Context, actor *entity.SessionUser, applicationID uint, content string) (*entity.InternalNote, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("content is required")
	}

	var note *entity.InternalNote
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		employer, _, err := ownedApplication(ctx, repoFactory, actor, applicationID)
		if err != nil {
			return err
		}

		note = &entity.InternalNote{
			ApplicationID: applicationID,
			EmployerID:    employer.ID,
			Content:       content,
		}

		return errors.Wrap(repoFactory.ApplicationRepo().CreateNote(ctx, note), "failed to create note")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute add note transaction")
	}

	return note, nil
}

func (srv *applicationService) ListNotes(ctx context.Context, actor *entity.SessionUser, applicationID uint) ([]*entity.InternalNote, error) {
	var notes []*entity.InternalNote
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, _, err := ownedApplication(ctx, repoFactory, actor, applicationID); err != nil {
			return err
		}

		var err error
		notes, err = repoFactory.ApplicationRepo().ListNotes(ctx, applicationID)

		return errors.Wrap(err, "failed to list notes")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute list notes transaction")
	}

	return notes, nil
}

// ProposeInterview schedules an interview and moves the application to the interview stage.
func (srv *applicationService) ProposeInterview(ctx context.Context, actor *entity.SessionUser, applicationID uint, input *usecase.ProposeInterviewInput) (*entity.Interview, error) {
	if input.ScheduledAt.IsZero() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("scheduled_at is required")
	}

	var interview *entity.Interview
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, _, err := ownedApplication(ctx, repoFactory, actor, applicationID); err != nil {
			return err
		}

		applicationRepo := repoFactory.ApplicationRepo()
		interview = &entity.Interview{
			ApplicationID: applicationID,
			ScheduledAt:   input.ScheduledAt,
			MeetingLink:   strings.TrimSpace(input.MeetingLink),
			State:         entity.InterviewStateProposed,
		}
		if err := applicationRepo.CreateInterview(ctx, interview); err != nil {
			return errors.Wrap(err, "failed to create interview")
		}

		return errors.Wrap(applicationRepo.UpdateState(ctx, applicationID, entity.ApplicationStateInterview), "failed to move application to interview")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute propose interview transaction")
	}

	srv.log(ctx).Info("Interview proposed", slog.Uint64("applicationID", uint64(applicationID)), slog.Time("scheduledAt", interview.ScheduledAt))

	return interview, nil
}

func (srv *applicationService) ListInterviews(ctx context.Context, actor *entity.SessionUser, applicationID uint) ([]*entity.Interview, error) {
	if actor == nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	var interviews []*entity.Interview
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		switch actor.Role {
		case entity.RoleEmployer:
			if _, _, err := ownedApplication(ctx, repoFactory, actor, applicationID); err != nil {
				return err
			}
		case entity.RoleCandidate:
			if err := checkApplicant(ctx, repoFactory, actor, applicationID); err != nil {
				return err
			}
		default:
			return domainerrors.ErrForbidden
		}

		var err error
		interviews, err = repoFactory.ApplicationRepo().ListInterviews(ctx, applicationID)

		return errors.Wrap(err, "failed to list interviews")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute list interviews transaction")
	}

	return interviews, nil
}

// ownedApplication loads an application to one of the actor's vacancies.
// Applications to other employers' vacancies are reported as not found.
func ownedApplication(ctx context.Context, repoFactory repository.RepositoryFactory, actor *entity.SessionUser, applicationID uint) (*entity.EmployerProfile, *entity.Application, error) {
	employer, err := ownerEmployer(ctx, repoFactory, actor)
	if err != nil {
		return nil, nil, err
	}

	application, err := repoFactory.ApplicationRepo().FindByID(ctx, applicationID)
	if err != nil {
		return nil, nil, mapNotFound(err, repository.ErrApplicationNotFound, domainerrors.ErrApplicationNotFound)
	}

	vacancy, err := repoFactory.VacancyRepo().FindByID(ctx, application.VacancyID)
	if err != nil {
		return nil, nil, mapNotFound(err, repository.ErrVacancyNotFound, domainerrors.ErrApplicationNotFound)
	}
	if vacancy.EmployerID != employer.ID {
		return nil, nil, domainerrors.ErrApplicationNotFound
	}

	return employer, application, nil
}

func checkApplicant(ctx context.Context, repoFactory repository.RepositoryFactory, actor *entity.SessionUser, applicationID uint) error {
	candidate, err := repoFactory.CandidateRepo().FindByAccountID(ctx, actor.UserID)
	if err != nil {
		return mapNotFound(err, repository.ErrCandidateNotFound, domainerrors.ErrApplicationNotFound)
	}

	application, err := repoFactory.ApplicationRepo().FindByID(ctx, applicationID)
	if err != nil {
		return mapNotFound(err, repository.ErrApplicationNotFound, domainerrors.ErrApplicationNotFound)
	}
	if application.CandidateID != candidate.ID {
		return domainerrors.ErrApplicationNotFound
	}

	return nil
}
