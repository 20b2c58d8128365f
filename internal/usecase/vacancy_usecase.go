package usecase

import (
	"context"

	"jobly/internal/domain/entity"
)

// CreateVacancyInput defines the data required to publish a vacancy.
type CreateVacancyInput struct {
	Title       string
	Description string
	Salary      *float64
	WorkMode    string
}

// VacancyUsecase defines job posting operations. Owner-scoped operations
// identify the owner by the account email of the employer.
type VacancyUsecase interface {
	Create(ctx context.Context, ownerEmail string, input *CreateVacancyInput) (*entity.Vacancy, error)
	ListForOwner(ctx context.Context, ownerEmail string) ([]*entity.VacancySummary, error)
	ListPublished(ctx context.Context, search string) ([]*entity.VacancySummary, error)
	GetPublished(ctx context.Context, id uint) (*entity.VacancySummary, error)

	// GetByID and Update report vacancies owned by someone else as not found.
	GetByID(ctx context.Context, id uint, ownerEmail string) (*entity.Vacancy, error)
	Update(ctx context.Context, id uint, ownerEmail string, patch *entity.VacancyPatch) (*entity.Vacancy, error)
}
