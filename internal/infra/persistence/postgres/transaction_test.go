package postgres

import (
	"context"
	"testing"

	"jobly/internal/domain/entity"
	"jobly/internal/domain/repository"
	"jobly/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	txManager := NewTransactionManager(db)
	ctx := context.Background()
	boom := errors.New("boom")

	err := txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.AccountRepo().Create(ctx, &entity.Account{Email: "a@b.com", Credential: "x", Role: entity.RoleAdmin}); err != nil {
			return err
		}

		return boom
	})
	require.ErrorIs(t, err, boom)

	exists, err := NewAccountRepository(db).ExistsByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestTransactionManager_SavepointKeepsOuterWork(t *testing.T) {
	db := newTestDB(t)
	txManager := NewTransactionManager(db)
	ctx := context.Background()

	err := txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		account := &entity.Account{Email: "a@b.com", Credential: "plain", Role: entity.RoleCandidate}
		if err := repoFactory.AccountRepo().Create(ctx, account); err != nil {
			return err
		}

		nestedErr := repoFactory.Savepoint(ctx, func(nested repository.RepositoryFactory) error {
			if err := nested.AccountRepo().UpdateCredential(ctx, account.ID, "$2a$10$fresh"); err != nil {
				return err
			}

			return errors.New("abort nested")
		})
		assert.Error(t, nestedErr)

		return nil
	})
	require.NoError(t, err)

	found, err := NewAccountRepository(db).FindByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, "plain", found.Credential)
}
