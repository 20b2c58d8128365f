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

type vacancyService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewVacancyService is the constructor for vacancyService.
func NewVacancyService(txManager repository.TransactionManager, logger *slog.Logger) usecase.VacancyUsecase {
	return &vacancyService{
		txManager: txManager,
		logger:    logger,
	}
}

func (srv *vacancyService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create publishes a vacancy for the employer registered under ownerEmail.
func (srv *vacancyService) Create(ctx context.Context, ownerEmail string, input *usecase.CreateVacancyInput) (*entity.Vacancy, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("title is required")
	}
	if input.Salary != nil && *input.Salary < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("salary must not be negative")
	}

	vacancy := &entity.Vacancy{
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		Salary:      input.Salary,
		WorkMode:    strings.TrimSpace(input.WorkMode),
		State:       entity.VacancyStatePublished,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		employer, err := findEmployerByEmail(ctx, repoFactory, ownerEmail, domainerrors.ErrEmployerNotFound)
		if err != nil {
			return err
		}
		vacancy.EmployerID = employer.ID

		return errors.Wrap(repoFactory.VacancyRepo().Create(ctx, vacancy), "failed to create vacancy")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute create vacancy transaction")
	}

	srv.log(ctx).Info("Vacancy created", slog.Uint64("vacancyID", uint64(vacancy.ID)), slog.Uint64("employerID", uint64(vacancy.EmployerID)))

	return vacancy, nil
}

// ListForOwner returns the owner's vacancies with live application counts.
func (srv *vacancyService) ListForOwner(ctx context.Context, ownerEmail string) ([]*entity.VacancySummary, error) {
	var vacancies []*entity.VacancySummary
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		employer, err := findEmployerByEmail(ctx, repoFactory, ownerEmail, domainerrors.ErrEmployerNotFound)
		if err != nil {
			return err
		}

		vacancies, err = repoFactory.VacancyRepo().ListByEmployer(ctx, employer.ID)

		return errors.Wrap(err, "failed to list employer vacancies")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute list vacancies transaction")
	}

	return vacancies, nil
}

func (srv *vacancyService) ListPublished(ctx context.Context, search string) ([]*entity.VacancySummary, error) {
	var vacancies []*entity.VacancySummary
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		vacancies, err = repoFactory.VacancyRepo().ListPublished(ctx, search)

		return errors.Wrap(err, "failed to list published vacancies")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute list published transaction")
	}

	return vacancies, nil
}

func (srv *vacancyService) GetPublished(ctx context.Context, id uint) (*entity.VacancySummary, error) {
	var vacancy *entity.VacancySummary
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		vacancy, err = repoFactory.VacancyRepo().FindPublished(ctx, id)

		return mapNotFound(err, repository.ErrVacancyNotFound, domainerrors.ErrVacancyNotFound)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get published vacancy")
	}

	return vacancy, nil
}

func (srv *vacancyService) GetByID(ctx context.Context, id uint, ownerEmail string) (*entity.Vacancy, error) {
	var vacancy *entity.Vacancy
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		vacancy, err = findOwnedVacancy(ctx, repoFactory, id, ownerEmail)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get vacancy")
	}

	return vacancy, nil
}

// Update applies the non-nil patch fields to an owned vacancy and returns the stored result.
func (srv *vacancyService) Update(ctx context.Context, id uint, ownerEmail string, patch *entity.VacancyPatch) (*entity.Vacancy, error) {
	if err := validateVacancyPatch(patch); err != nil {
		return nil, err
	}

	var vacancy *entity.Vacancy
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := findOwnedVacancy(ctx, repoFactory, id, ownerEmail); err != nil {
			return err
		}

		vacancyRepo := repoFactory.VacancyRepo()
		if err := vacancyRepo.Update(ctx, id, patch); err != nil {
			return mapNotFound(err, repository.ErrVacancyNotFound, domainerrors.ErrVacancyNotFound)
		}

		var err error
		vacancy, err = vacancyRepo.FindByID(ctx, id)

		return mapNotFound(err, repository.ErrVacancyNotFound, domainerrors.ErrVacancyNotFound)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute update vacancy transaction")
	}

	srv.log(ctx).Info("Vacancy updated", slog.Uint64("vacancyID", uint64(id)))

	return vacancy, nil
}

func validateVacancyPatch(patch *entity.VacancyPatch) error {
	if patch.IsEmpty() {
		return domainerrors.ErrNothingToUpdate
	}
	if patch.State != nil && !patch.State.IsValid() {
		return domainerrors.ErrInvalidVacancyState.WithDetails("state must be one of Borrador, Publicada, Cerrada")
	}
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return domainerrors.ErrValidationFailed.WithDetails("title must not be empty")
		}
		patch.Title = &title
	}
	if patch.Salary != nil && *patch.Salary < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("salary must not be negative")
	}

	return nil
}

// findEmployerByEmail resolves the employer profile behind an account email.
func findEmployerByEmail(ctx context.Context, repoFactory repository.RepositoryFactory, email string, notFound *domainerrors.BaseError) (*entity.EmployerProfile, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, notFound
	}

	employer, err := repoFactory.EmployerRepo().FindByAccountEmail(ctx, email)
	if err != nil {
		return nil, mapNotFound(err, repository.ErrEmployerNotFound, notFound)
	}

	return employer, nil
}

// findOwnedVacancy reports vacancies of other employers exactly like missing ones.
func findOwnedVacancy(ctx context.Context, repoFactory repository.RepositoryFactory, id uint, ownerEmail string) (*entity.Vacancy, error) {
	employer, err := findEmployerByEmail(ctx, repoFactory, ownerEmail, domainerrors.ErrVacancyNotFound)
	if err != nil {
		return nil, err
	}

	vacancy, err := repoFactory.VacancyRepo().FindByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, repository.ErrVacancyNotFound, domainerrors.ErrVacancyNotFound)
	}
	if vacancy.EmployerID != employer.ID {
		return nil, domainerrors.ErrVacancyNotFound
	}

	return vacancy, nil
}
