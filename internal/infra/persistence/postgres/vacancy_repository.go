package postgres

import (
	"context"
	"strings"
	"time"

	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"jobly/internal/domain/entity"
	domainerrors "jobly/internal/domain/errors"
	"jobly/internal/domain/repository"
	"jobly/internal/errors"
	"jobly/internal/infra/persistence/model"
)

const vacancySummaryColumns = "v.id, v.employer_id, v.title, v.description, v.salary, v.work_mode, v.state, v.created_at, " +
	"e.company_name AS employer_name, COUNT(a.id) AS application_count"

// vacancySummaryRow is one listing row: the vacancy, its employer name and a live application count.
type vacancySummaryRow struct {
	ID               uint      `gorm:"column:id"`
	EmployerID       uint      `gorm:"column:employer_id"`
	Title            string    `gorm:"column:title"`
	Description      string    `gorm:"column:description"`
	Salary           *float64  `gorm:"column:salary"`
	WorkMode         string    `gorm:"column:work_mode"`
	State            string    `gorm:"column:state"`
	CreatedAt        time.Time `gorm:"column:created_at"`
	EmployerName     string    `gorm:"column:employer_name"`
	ApplicationCount int64     `gorm:"column:application_count"`
}

func (r *vacancySummaryRow) toDomain() *entity.VacancySummary {
	return &entity.VacancySummary{
		Vacancy: entity.Vacancy{
			ID:          r.ID,
			EmployerID:  r.EmployerID,
			Title:       r.Title,
			Description: r.Description,
			Salary:      r.Salary,
			WorkMode:    r.WorkMode,
			State:       entity.VacancyState(r.State),
			CreatedAt:   r.CreatedAt,
		},
		EmployerName:     r.EmployerName,
		ApplicationCount: r.ApplicationCount,
	}
}

type vacancyRepository struct {
	db *gorm.DB
}

// NewVacancyRepository is the constructor for vacancyRepository.
func NewVacancyRepository(db *gorm.DB) repository.VacancyRepository {
	return &vacancyRepository{db: db}
}

func (repo *vacancyRepository) Create(ctx context.Context, vacancy *entity.Vacancy) error {
	vacancyM := fromVacancyDomain(vacancy)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(vacancyM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidVacancyState.WrapMessage("state rejected by the database")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrEmployerNotFound.WrapMessage("employer does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create vacancy")
	}

	vacancy.ID = vacancyM.ID
	vacancy.State = entity.VacancyState(vacancyM.State)
	vacancy.CreatedAt = vacancyM.CreatedAt

	return nil
}

func (repo *vacancyRepository) FindByID(ctx context.Context, id uint) (*entity.Vacancy, error) {
	var vacancyM model.VacancyModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).Take(&vacancyM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVacancyNotFound
		}

		return nil, errors.Wrap(err, "failed to find vacancy")
	}

	return toVacancyDomain(&vacancyM), nil
}

func (repo *vacancyRepository) ListByEmployer(ctx context.Context, employerID uint) ([]*entity.VacancySummary, error) {
	return repo.listSummaries(repo.summaries(ctx).Where("v.employer_id = ?", employerID))
}

// likeEscaper makes the search term match literally inside a LIKE pattern.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

func (repo *vacancyRepository) ListPublished(ctx context.Context, search string) ([]*entity.VacancySummary, error) {
	query := repo.summaries(ctx).Where("v.state = ?", string(entity.VacancyStatePublished))

	if term := strings.TrimSpace(search); term != "" {
		like := "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
		query = query.Where(
			`(LOWER(v.title) LIKE ? ESCAPE '\' OR LOWER(COALESCE(v.description, '')) LIKE ? ESCAPE '\' OR `+
				`LOWER(COALESCE(v.work_mode, '')) LIKE ? ESCAPE '\' OR LOWER(e.company_name) LIKE ? ESCAPE '\')`,
			like, like, like, like,
		)
	}

	return repo.listSummaries(query)
}

func (repo *vacancyRepository) FindPublished(ctx context.Context, id uint) (*entity.VacancySummary, error) {
	summaries, err := repo.listSummaries(repo.summaries(ctx).
		Where("v.id = ? AND v.state = ?", id, string(entity.VacancyStatePublished)))
	if err != nil {
		return nil, err
	}
	if len(summaries) == 0 {
		return nil, repository.ErrVacancyNotFound
	}

	return summaries[0], nil
}

func (repo *vacancyRepository) Update(ctx context.Context, id uint, patch *entity.VacancyPatch) error {
	if patch.IsEmpty() {
		return nil
	}

	updates := map[string]any{}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Salary != nil {
		updates["salary"] = *patch.Salary
	}
	if patch.WorkMode != nil {
		updates["work_mode"] = *patch.WorkMode
	}
	if patch.State != nil {
		updates["state"] = string(*patch.State)
	}

	result := repo.db.WithContext(ctx).Model(&model.VacancyModel{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrInvalidVacancyState.WrapMessage("state rejected by the database")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update vacancy")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVacancyNotFound
	}

	return nil
}

// summaries is the shared listing query. Newest first, ties broken by ID.
func (repo *vacancyRepository) summaries(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Table("vacancies AS v").
		Select(vacancySummaryColumns).
		Joins("JOIN employer_profiles AS e ON e.id = v.employer_id").
		Joins("LEFT JOIN applications AS a ON a.vacancy_id = v.id").
		Group("v.id, e.company_name").
		Order("v.created_at DESC, v.id DESC")
}

func (repo *vacancyRepository) listSummaries(query *gorm.DB) ([]*entity.VacancySummary, error) {
	var rows []vacancySummaryRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list vacancies")
	}

	return lo.Map(rows, func(row vacancySummaryRow, _ int) *entity.VacancySummary {
		return row.toDomain()
	}), nil
}
