package postgres

import (
	"context"
	"testing"

	"jobly/internal/domain/entity"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory SQLite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared&_pragma=foreign_keys(1)"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Migrate(context.Background(), db))

	return db
}

func seedAccount(t *testing.T, db *gorm.DB, email string, role entity.Role) *entity.Account {
	t.Helper()

	account := &entity.Account{Email: email, Credential: "$2a$10$seed", Role: role}
	require.NoError(t, NewAccountRepository(db).Create(context.Background(), account))

	return account
}

func seedEmployer(t *testing.T, db *gorm.DB, email, company, taxID string) *entity.EmployerProfile {
	t.Helper()

	account := seedAccount(t, db, email, entity.RoleEmployer)
	profile := &entity.EmployerProfile{AccountID: account.ID, CompanyName: company, TaxID: taxID}
	require.NoError(t, NewEmployerRepository(db).Create(context.Background(), profile))

	return profile
}

func seedCandidate(t *testing.T, db *gorm.DB, email, name string) *entity.CandidateProfile {
	t.Helper()

	account := seedAccount(t, db, email, entity.RoleCandidate)
	profile := &entity.CandidateProfile{AccountID: account.ID, FullName: name}
	require.NoError(t, NewCandidateRepository(db).Create(context.Background(), profile))

	return profile
}

func seedVacancy(t *testing.T, db *gorm.DB, employerID uint, title string, state entity.VacancyState) *entity.Vacancy {
	t.Helper()

	vacancy := &entity.Vacancy{EmployerID: employerID, Title: title, State: state, WorkMode: "Remoto"}
	require.NoError(t, NewVacancyRepository(db).Create(context.Background(), vacancy))

	return vacancy
}
