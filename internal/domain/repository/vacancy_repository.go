package repository

import (
	"context"
	"errors"

	"jobly/internal/domain/entity"
)

// ErrVacancyNotFound is returned when no vacancy matches the lookup.
var ErrVacancyNotFound = errors.New("vacancy not found")

// VacancyRepository persists job postings.
type VacancyRepository interface {
	Create(ctx context.Context, vacancy *entity.Vacancy) error
	FindByID(ctx context.Context, id uint) (*entity.Vacancy, error)

	// ListByEmployer returns the employer's vacancies with live application counts, newest first.
	ListByEmployer(ctx context.Context, employerID uint) ([]*entity.VacancySummary, error)

	// ListPublished returns published vacancies, newest first. A non-empty search
	// matches title, description, work mode or employer name case-insensitively.
	ListPublished(ctx context.Context, search string) ([]*entity.VacancySummary, error)

	// FindPublished returns the published vacancy with the given ID.
	FindPublished(ctx context.Context, id uint) (*entity.VacancySummary, error)

	// Update applies the non-nil fields of the patch.
	Update(ctx context.Context, id uint, patch *entity.VacancyPatch) error
}
