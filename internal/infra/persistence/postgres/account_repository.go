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

// accountRepository implements the repository.AccountRepository interface using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// Create persists a new account. The uniqueness constraint on email is the source of truth for duplicates.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(accountM).Error; err != nil {
		if conflictErr, ok := classifyConflict(err, domainerrors.ErrEmailAlreadyRegistered); ok {
			return conflictErr
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidRole.WrapMessage("role rejected by the database")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	account.ID = accountM.ID
	account.Status = entity.AccountStatus(accountM.Status)
	account.CreatedAt = accountM.CreatedAt

	return nil
}

func (repo *accountRepository) FindByID(ctx context.Context, id uint) (*entity.Account, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	return repo.findOne(ctx, "email = ?", email)
}

func (repo *accountRepository) findOne(ctx context.Context, query string, arg any) (*entity.Account, error) {
	var accountM model.AccountModel
	if err := repo.db.WithContext(ctx).Where(query, arg).Take(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	return toAccountDomain(&accountM), nil
}

func (repo *accountRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.AccountModel{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check account email")
	}

	return count > 0, nil
}

func (repo *accountRepository) UpdateCredential(ctx context.Context, id uint, credential string) error {
	result := repo.db.WithContext(ctx).Model(&model.AccountModel{}).Where("id = ?", id).Update("password", credential)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update credential")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}
