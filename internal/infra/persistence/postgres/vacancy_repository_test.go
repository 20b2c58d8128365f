package postgres

import (
	"context"
	"testing"

	"jobly/internal/domain/entity"
	"jobly/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVacancyRepository_ListingsCountApplications(t *testing.T) {
	db := newTestDB(t)
	repo := NewVacancyRepository(db)
	ctx := context.Background()

	employer := seedEmployer(t, db, "acme@co.com", "Acme", "0190012345001")
	backend := seedVacancy(t, db, employer.ID, "Backend Engineer", entity.VacancyStatePublished)
	seedVacancy(t, db, employer.ID, "Draft role", entity.VacancyStateDraft)
	candidate := seedCandidate(t, db, "ana@mail.com", "Ana")

	require.NoError(t, NewApplicationRepository(db).Create(ctx, &entity.Application{
		CandidateID: candidate.ID,
		VacancyID:   backend.ID,
	}))

	owned, err := repo.ListByEmployer(ctx, employer.ID)
	require.NoError(t, err)
	require.Len(t, owned, 2)

	counts := map[string]int64{}
	for _, summary := range owned {
		counts[summary.Title] = summary.ApplicationCount
		assert.Equal(t, "Acme", summary.EmployerName)
	}
	assert.Equal(t, map[string]int64{"Backend Engineer": 1, "Draft role": 0}, counts)

	published, err := repo.ListPublished(ctx, "")
	require.NoError(t, err)
	require.Len(t, published, 1)
	assert.Equal(t, backend.ID, published[0].ID)
	assert.EqualValues(t, 1, published[0].ApplicationCount)
}

func TestVacancyRepository_ListPublishedSearch(t *testing.T) {
	db := newTestDB(t)
	repo := NewVacancyRepository(db)
	ctx := context.Background()

	acme := seedEmployer(t, db, "acme@co.com", "Acme", "0190012345001")
	globex := seedEmployer(t, db, "globex@co.com", "Globex", "1790012345001")
	seedVacancy(t, db, acme.ID, "Backend Engineer", entity.VacancyStatePublished)
	seedVacancy(t, db, globex.ID, "Data Analyst", entity.VacancyStatePublished)

	byTitle, err := repo.ListPublished(ctx, "backend")
	require.NoError(t, err)
	require.Len(t, byTitle, 1)
	assert.Equal(t, "Backend Engineer", byTitle[0].Title)

	byCompany, err := repo.ListPublished(ctx, "GLOBEX")
	require.NoError(t, err)
	require.Len(t, byCompany, 1)
	assert.Equal(t, "Data Analyst", byCompany[0].Title)

	none, err := repo.ListPublished(ctx, "rust")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestVacancyRepository_ListPublishedSearchIsLiteral(t *testing.T) {
	db := newTestDB(t)
	repo := NewVacancyRepository(db)
	ctx := context.Background()

	employer := seedEmployer(t, db, "acme@co.com", "Acme", "0190012345001")
	seedVacancy(t, db, employer.ID, "Backend Engineer", entity.VacancyStatePublished)
	seedVacancy(t, db, employer.ID, "100% Remote QA", entity.VacancyStatePublished)

	tests := []struct {
		search string
		want   []string
	}{
		{search: "%", want: []string{"100% Remote QA"}},
		{search: "0%", want: []string{"100% Remote QA"}},
		{search: "_", want: nil},
		{search: "back_nd", want: nil},
		{search: `\`, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.search, func(t *testing.T) {
			found, err := repo.ListPublished(ctx, tt.search)
			require.NoError(t, err)

			var titles []string
			for _, summary := range found {
				titles = append(titles, summary.Title)
			}
			assert.Equal(t, tt.want, titles)
		})
	}
}

func TestVacancyRepository_FindPublishedAndUpdate(t *testing.T) {
	db := newTestDB(t)
	repo := NewVacancyRepository(db)
	ctx := context.Background()

	employer := seedEmployer(t, db, "acme@co.com", "Acme", "0190012345001")
	vacancy := seedVacancy(t, db, employer.ID, "Backend Engineer", entity.VacancyStatePublished)

	summary, err := repo.FindPublished(ctx, vacancy.ID)
	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer", summary.Title)

	closed := entity.VacancyStateClosed
	salary := 1800.0
	require.NoError(t, repo.Update(ctx, vacancy.ID, &entity.VacancyPatch{State: &closed, Salary: &salary}))

	stored, err := repo.FindByID(ctx, vacancy.ID)
	require.NoError(t, err)
	assert.Equal(t, closed, stored.State)
	require.NotNil(t, stored.Salary)
	assert.InDelta(t, 1800.0, *stored.Salary, 0.001)

	_, err = repo.FindPublished(ctx, vacancy.ID)
	assert.ErrorIs(t, err, repository.ErrVacancyNotFound)

	err = repo.Update(ctx, 404, &entity.VacancyPatch{State: &closed})
	assert.ErrorIs(t, err, repository.ErrVacancyNotFound)
}

func TestVacancyRepository_UpdateSalaryOnly(t *testing.T) {
	db := newTestDB(t)
	repo := NewVacancyRepository(db)
	ctx := context.Background()

	employer := seedEmployer(t, db, "acme@co.com", "Acme", "0190012345001")
	vacancy := &entity.Vacancy{
		EmployerID:  employer.ID,
		Title:       "Backend Engineer",
		Description: "Go",
		WorkMode:    "Remoto",
		State:       entity.VacancyStatePublished,
	}
	require.NoError(t, repo.Create(ctx, vacancy))

	salary := 1500.0
	require.NoError(t, repo.Update(ctx, vacancy.ID, &entity.VacancyPatch{Salary: &salary}))

	stored, err := repo.FindByID(ctx, vacancy.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.Salary)
	assert.InDelta(t, 1500.0, *stored.Salary, 0.001)
	assert.Equal(t, "Backend Engineer", stored.Title)
	assert.Equal(t, "Go", stored.Description)
	assert.Equal(t, "Remoto", stored.WorkMode)
	assert.Equal(t, entity.VacancyStatePublished, stored.State)
}
