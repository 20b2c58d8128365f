package postgres

import (
	"context"
	"time"

	"jobly/internal/domain/entity"
	domainerrors "jobly/internal/domain/errors"
	"jobly/internal/domain/repository"
	"jobly/internal/errors"
	"jobly/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const candidateColumns = "id, account_id, full_name, birth_date, gender, linkedin_url, github_url, portfolio_url, " +
	"cv_pdf IS NOT NULL AS has_cv, photo IS NOT NULL AS has_photo"

// candidateRow is a candidate profile without its binary columns.
type candidateRow struct {
	ID           uint       `gorm:"column:id"`
	AccountID    uint       `gorm:"column:account_id"`
	FullName     string     `gorm:"column:full_name"`
	BirthDate    *time.Time `gorm:"column:birth_date"`
	Gender       string     `gorm:"column:gender"`
	LinkedInURL  string     `gorm:"column:linkedin_url"`
	GitHubURL    string     `gorm:"column:github_url"`
	PortfolioURL string     `gorm:"column:portfolio_url"`
	HasCV        bool       `gorm:"column:has_cv"`
	HasPhoto     bool       `gorm:"column:has_photo"`
}

func (r *candidateRow) toDomain() *entity.CandidateProfile {
	return &entity.CandidateProfile{
		ID:           r.ID,
		AccountID:    r.AccountID,
		FullName:     r.FullName,
		BirthDate:    r.BirthDate,
		Gender:       r.Gender,
		LinkedInURL:  r.LinkedInURL,
		GitHubURL:    r.GitHubURL,
		PortfolioURL: r.PortfolioURL,
		HasCV:        r.HasCV,
		HasPhoto:     r.HasPhoto,
	}
}

type candidateRepository struct {
	db *gorm.DB
}

// NewCandidateRepository is the constructor for candidateRepository.
func NewCandidateRepository(db *gorm.DB) repository.CandidateRepository {
	return &candidateRepository{db: db}
}

func (repo *candidateRepository) Create(ctx context.Context, profile *entity.CandidateProfile) error {
	profileM := fromCandidateDomain(profile)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(profileM).Error; err != nil {
		if conflictErr, ok := classifyConflict(err, domainerrors.ErrConflict); ok {
			return conflictErr
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WrapMessage("account does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create candidate profile")
	}

	profile.ID = profileM.ID
	profile.HasCV = len(profile.CV) > 0
	profile.HasPhoto = len(profile.Photo) > 0

	return nil
}

func (repo *candidateRepository) FindByAccountID(ctx context.Context, accountID uint) (*entity.CandidateProfile, error) {
	var row candidateRow
	err := repo.db.WithContext(ctx).
		Model(&model.CandidateProfileModel{}).
		Select(candidateColumns).
		Where("account_id = ?", accountID).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCandidateNotFound
		}

		return nil, errors.Wrap(err, "failed to find candidate profile")
	}

	return row.toDomain(), nil
}

func (repo *candidateRepository) Update(ctx context.Context, accountID uint, patch *entity.CandidateProfilePatch) error {
	if patch.IsEmpty() {
		return nil
	}

	updates := map[string]any{}
	if patch.FullName != nil {
		updates["full_name"] = *patch.FullName
	}
	if patch.BirthDate != nil {
		updates["birth_date"] = *patch.BirthDate
	}
	if patch.Gender != nil {
		updates["gender"] = *patch.Gender
	}
	if patch.LinkedInURL != nil {
		updates["linkedin_url"] = *patch.LinkedInURL
	}
	if patch.GitHubURL != nil {
		updates["github_url"] = *patch.GitHubURL
	}
	if patch.PortfolioURL != nil {
		updates["portfolio_url"] = *patch.PortfolioURL
	}

	return repo.update(ctx, accountID, updates)
}

func (repo *candidateRepository) SetPhoto(ctx context.Context, accountID uint, photo []byte) error {
	return repo.update(ctx, accountID, map[string]any{"photo": photo})
}

func (repo *candidateRepository) SetCV(ctx context.Context, accountID uint, cv []byte) error {
	return repo.update(ctx, accountID, map[string]any{"cv_pdf": cv})
}

func (repo *candidateRepository) GetPhoto(ctx context.Context, accountID uint) ([]byte, error) {
	return repo.blob(ctx, accountID, "photo")
}

func (repo *candidateRepository) GetCV(ctx context.Context, accountID uint) ([]byte, error) {
	return repo.blob(ctx, accountID, "cv_pdf")
}

func (repo *candidateRepository) update(ctx context.Context, accountID uint, updates map[string]any) error {
	result := repo.db.WithContext(ctx).Model(&model.CandidateProfileModel{}).Where("account_id = ?", accountID).Updates(updates)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update candidate profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCandidateNotFound
	}

	return nil
}

func (repo *candidateRepository) blob(ctx context.Context, accountID uint, column string) ([]byte, error) {
	return selectBlob(ctx, repo.db, &model.CandidateProfileModel{}, column, accountID, repository.ErrCandidateNotFound)
}

// selectBlob reads one binary column of the profile owned by accountID.
func selectBlob(ctx context.Context, db *gorm.DB, profile any, column string, accountID uint, notFound error) ([]byte, error) {
	var row struct {
		Data []byte `gorm:"column:data"`
	}
	err := db.WithContext(ctx).
		Model(profile).
		Select(column+" AS data").
		Where("account_id = ?", accountID).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound
		}

		return nil, errors.Wrapf(err, "failed to read %s", column)
	}

	return row.Data, nil
}
