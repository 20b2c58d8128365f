package postgres

import (
	"context"
	"testing"

	"jobly/internal/domain/entity"
	domainerrors "jobly/internal/domain/errors"
	"jobly/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewAccountRepository(db)
	ctx := context.Background()

	account := &entity.Account{Email: "acme@co.com", Credential: "$2a$10$hash", Role: entity.RoleEmployer}
	require.NoError(t, repo.Create(ctx, account))
	assert.NotZero(t, account.ID)
	assert.Equal(t, entity.AccountStatusActive, account.Status)

	found, err := repo.FindByEmail(ctx, "acme@co.com")
	require.NoError(t, err)
	assert.Equal(t, account.ID, found.ID)
	assert.Equal(t, "$2a$10$hash", found.Credential)
	assert.Equal(t, entity.RoleEmployer, found.Role)

	exists, err := repo.ExistsByEmail(ctx, "acme@co.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByEmail(ctx, "other@co.com")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestAccountRepository_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewAccountRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.Account{Email: "acme@co.com", Credential: "x", Role: entity.RoleEmployer}))

	err := repo.Create(ctx, &entity.Account{Email: "acme@co.com", Credential: "y", Role: entity.RoleCandidate})

	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
}

func TestAccountRepository_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewAccountRepository(db)
	ctx := context.Background()

	_, err := repo.FindByEmail(ctx, "ghost@co.com")
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)

	_, err = repo.FindByID(ctx, 404)
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)

	err = repo.UpdateCredential(ctx, 404, "hash")
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)
}

func TestAccountRepository_UpdateCredential(t *testing.T) {
	db := newTestDB(t)
	repo := NewAccountRepository(db)
	ctx := context.Background()
	account := seedAccount(t, db, "old@co.com", entity.RoleCandidate)

	require.NoError(t, repo.UpdateCredential(ctx, account.ID, "$2a$10$fresh"))

	found, err := repo.FindByID(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, "$2a$10$fresh", found.Credential)
}
