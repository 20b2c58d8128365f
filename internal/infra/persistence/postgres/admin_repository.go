package postgres

import (
	"context"

	"jobly/internal/domain/entity"
	domainerrors "jobly/internal/domain/errors"
	"jobly/internal/domain/repository"
	"jobly/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository is the constructor for adminRepository.
func NewAdminRepository(db *gorm.DB) repository.AdminRepository {
	return &adminRepository{db: db}
}

func (repo *adminRepository) Create(ctx context.Context, profile *entity.AdminProfile) error {
	profileM := &model.AdminProfileModel{AccountID: profile.AccountID}

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(profileM).Error; err != nil {
		if conflictErr, ok := classifyConflict(err, domainerrors.ErrConflict); ok {
			return conflictErr
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create admin profile")
	}
	profile.ID = profileM.ID

	return nil
}
