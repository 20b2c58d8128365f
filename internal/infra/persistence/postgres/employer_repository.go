package postgres

import (
	"context"

	"jobly/internal/domain/entity"
	domainerrors "jobly/internal/domain/errors"
	"jobly/internal/domain/repository"
	"jobly/internal/errors"
	"jobly/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const employerColumns = "employer_profiles.id, employer_profiles.account_id, employer_profiles.company_name, " +
	"employer_profiles.tax_id, employer_profiles.category, employer_profiles.description, " +
	"employer_profiles.logo IS NOT NULL AS has_logo"

type employerRow struct {
	ID          uint   `gorm:"column:id"`
	AccountID   uint   `gorm:"column:account_id"`
	CompanyName string `gorm:"column:company_name"`
	TaxID       string `gorm:"column:tax_id"`
	Category    string `gorm:"column:category"`
	Description string `gorm:"column:description"`
	HasLogo     bool   `gorm:"column:has_logo"`
}

func (r *employerRow) toDomain() *entity.EmployerProfile {
	return &entity.EmployerProfile{
		ID:          r.ID,
		AccountID:   r.AccountID,
		CompanyName: r.CompanyName,
		TaxID:       r.TaxID,
		Category:    r.Category,
		Description: r.Description,
		HasLogo:     r.HasLogo,
	}
}

type employerRepository struct {
	db *gorm.DB
}

// NewEmployerRepository is the constructor for employerRepository.
func NewEmployerRepository(db *gorm.DB) repository.EmployerRepository {
	return &employerRepository{db: db}
}

func (repo *employerRepository) Create(ctx context.Context, profile *entity.EmployerProfile) error {
	profileM := fromEmployerDomain(profile)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(profileM).Error; err != nil {
		if conflictErr, ok := classifyConflict(err, domainerrors.ErrTaxIDAlreadyRegistered); ok {
			return conflictErr
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WrapMessage("account does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create employer profile")
	}

	profile.ID = profileM.ID
	profile.HasLogo = len(profile.Logo) > 0

	return nil
}

func (repo *employerRepository) FindByAccountID(ctx context.Context, accountID uint) (*entity.EmployerProfile, error) {
	return repo.findOne(ctx, repo.db.WithContext(ctx).Where("employer_profiles.account_id = ?", accountID))
}

func (repo *employerRepository) FindByAccountEmail(ctx context.Context, email string) (*entity.EmployerProfile, error) {
	return repo.findOne(ctx, repo.db.WithContext(ctx).
		Joins("JOIN accounts ON accounts.id = employer_profiles.account_id").
		Where("accounts.email = ?", email))
}

func (repo *employerRepository) findOne(_ context.Context, scoped *gorm.DB) (*entity.EmployerProfile, error) {
	var row employerRow
	err := scoped.Model(&model.EmployerProfileModel{}).Select(employerColumns).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEmployerNotFound
		}

		return nil, errors.Wrap(err, "failed to find employer profile")
	}

	return row.toDomain(), nil
}

func (repo *employerRepository) ExistsByTaxID(ctx context.Context, taxID string) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.EmployerProfileModel{}).Where("tax_id = ?", taxID).Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check tax id")
	}

	return count > 0, nil
}

func (repo *employerRepository) SetLogo(ctx context.Context, accountID uint, logo []byte) error {
	result := repo.db.WithContext(ctx).Model(&model.EmployerProfileModel{}).Where("account_id = ?", accountID).Update("logo", logo)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update logo")
	}
	if result.RowsAffected == 0 {
		return repository.ErrEmployerNotFound
	}

	return nil
}

func (repo *employerRepository) GetLogo(ctx context.Context, accountID uint) ([]byte, error) {
	return selectBlob(ctx, repo.db, &model.EmployerProfileModel{}, "logo", accountID, repository.ErrEmployerNotFound)
}
