package impl

import (
	"context"
	"testing"
	"time"

	"jobly/internal/domain/entity"
	domainerrors "jobly/internal/domain/errors"
	"jobly/internal/domain/repository"
	mockRepo "jobly/internal/mocks/repository"
	"jobly/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type applicationServiceFixtures struct {
	service   usecase.ApplicationUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestApplicationService(t *testing.T) applicationServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)

	return applicationServiceFixtures{
		service:   NewApplicationService(txManager, newDiscardLogger()),
		txManager: txManager,
	}
}

var (
	candidateActor = &entity.SessionUser{UserID: 2, Email: "ana@mail.com", Role: entity.RoleCandidate}
	employerActor  = &entity.SessionUser{UserID: 1, Email: "acme@co.com", Role: entity.RoleEmployer}
)

func TestApplicationService_Apply_CreatesProfileOnFirstUse(t *testing.T) {
	fx := createTestApplicationService(t)

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		candidateRepo := mockRepo.NewMockCandidateRepository(t)
		vacancyRepo := mockRepo.NewMockVacancyRepository(t)
		applicationRepo := mockRepo.NewMockApplicationRepository(t)
		factory.EXPECT().CandidateRepo().Return(candidateRepo)
		factory.EXPECT().VacancyRepo().Return(vacancyRepo)
		factory.EXPECT().ApplicationRepo().Return(applicationRepo)

		candidateRepo.EXPECT().FindByAccountID(mock.Anything, uint(2)).Return(nil, repository.ErrCandidateNotFound)
		candidateRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.CandidateProfile")).
			Run(func(_ context.Context, profile *entity.CandidateProfile) {
				assert.Equal(t, "ana@mail.com", profile.FullName)
				profile.ID = 5
			}).
			Return(nil)
		vacancyRepo.EXPECT().FindByID(mock.Anything, uint(11)).
			Return(&entity.Vacancy{ID: 11, EmployerID: 7, State: entity.VacancyStatePublished}, nil)
		applicationRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Application")).
			Run(func(_ context.Context, application *entity.Application) {
				assert.Equal(t, uint(5), application.CandidateID)
				assert.Equal(t, entity.ApplicationStateReceived, application.State)
				application.ID = 21
			}).
			Return(nil)
	})

	application, err := fx.service.Apply(context.Background(), candidateActor, 11)

	require.NoError(t, err)
	assert.Equal(t, uint(21), application.ID)
	assert.Equal(t, uint(11), application.VacancyID)
}

func TestApplicationService_Apply_Duplicate(t *testing.T) {
	fx := createTestApplicationService(t)

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		candidateRepo := mockRepo.NewMockCandidateRepository(t)
		vacancyRepo := mockRepo.NewMockVacancyRepository(t)
		applicationRepo := mockRepo.NewMockApplicationRepository(t)
		factory.EXPECT().CandidateRepo().Return(candidateRepo)
		factory.EXPECT().VacancyRepo().Return(vacancyRepo)
		factory.EXPECT().ApplicationRepo().Return(applicationRepo)

		candidateRepo.EXPECT().FindByAccountID(mock.Anything, uint(2)).Return(&entity.CandidateProfile{ID: 5, AccountID: 2}, nil)
		vacancyRepo.EXPECT().FindByID(mock.Anything, uint(11)).
			Return(&entity.Vacancy{ID: 11, State: entity.VacancyStatePublished}, nil)
		applicationRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domainerrors.ErrAlreadyApplied)
	})

	_, err := fx.service.Apply(context.Background(), candidateActor, 11)

	assert.ErrorIs(t, err, domainerrors.ErrAlreadyApplied)
	assert.Equal(t, domainerrors.KindConflict, domainerrors.KindOf(err))
}

func TestApplicationService_Apply_UnpublishedVacancy(t *testing.T) {
	fx := createTestApplicationService(t)

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		candidateRepo := mockRepo.NewMockCandidateRepository(t)
		vacancyRepo := mockRepo.NewMockVacancyRepository(t)
		factory.EXPECT().CandidateRepo().Return(candidateRepo)
		factory.EXPECT().VacancyRepo().Return(vacancyRepo)

		candidateRepo.EXPECT().FindByAccountID(mock.Anything, uint(2)).Return(&entity.CandidateProfile{ID: 5}, nil)
		vacancyRepo.EXPECT().FindByID(mock.Anything, uint(11)).
			Return(&entity.Vacancy{ID: 11, State: entity.VacancyStateClosed}, nil)
	})

	_, err := fx.service.Apply(context.Background(), candidateActor, 11)

	assert.ErrorIs(t, err, domainerrors.ErrVacancyNotAvailable)
}

func TestApplicationService_Apply_RequiresCandidate(t *testing.T) {
	fx := createTestApplicationService(t)

	_, err := fx.service.Apply(context.Background(), employerActor, 11)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = fx.service.Apply(context.Background(), nil, 11)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestApplicationService_ListMine_WithoutProfile(t *testing.T) {
	fx := createTestApplicationService(t)

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		candidateRepo := mockRepo.NewMockCandidateRepository(t)
		factory.EXPECT().CandidateRepo().Return(candidateRepo)
		candidateRepo.EXPECT().FindByAccountID(mock.Anything, uint(2)).Return(nil, repository.ErrCandidateNotFound)
	})

	applications, err := fx.service.ListMine(context.Background(), candidateActor)

	require.NoError(t, err)
	assert.NotNil(t, applications)
	assert.Empty(t, applications)
}

// expectOwnedApplication prepares the lookups that prove application 21 belongs to Acme.
func expectOwnedApplication(t *testing.T, factory *mockRepo.MockRepositoryFactory, vacancyOwner uint) *mockRepo.MockApplicationRepository {
	employerRepo := mockRepo.NewMockEmployerRepository(t)
	vacancyRepo := mockRepo.NewMockVacancyRepository(t)
	applicationRepo := mockRepo.NewMockApplicationRepository(t)
	factory.EXPECT().EmployerRepo().Return(employerRepo)
	factory.EXPECT().VacancyRepo().Return(vacancyRepo)
	factory.EXPECT().ApplicationRepo().Return(applicationRepo)

	employerRepo.EXPECT().FindByAccountID(mock.Anything, uint(1)).Return(acme, nil)
	applicationRepo.EXPECT().FindByID(mock.Anything, uint(21)).
		Return(&entity.Application{ID: 21, CandidateID: 5, VacancyID: 11, State: entity.ApplicationStateReceived}, nil)
	vacancyRepo.EXPECT().FindByID(mock.Anything, uint(11)).Return(&entity.Vacancy{ID: 11, EmployerID: vacancyOwner}, nil)

	return applicationRepo
}

func TestApplicationService_UpdateState_Success(t *testing.T) {
	fx := createTestApplicationService(t)

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		applicationRepo := expectOwnedApplication(t, factory, 7)
		applicationRepo.EXPECT().UpdateState(mock.Anything, uint(21), entity.ApplicationStateReview).Return(nil)
	})

	application, err := fx.service.UpdateState(context.Background(), employerActor, 21, entity.ApplicationStateReview)

	require.NoError(t, err)
	assert.Equal(t, entity.ApplicationStateReview, application.State)
}

func TestApplicationService_UpdateState_ForeignVacancy(t *testing.T) {
	fx := createTestApplicationService(t)

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		expectOwnedApplication(t, factory, 8)
	})

	_, err := fx.service.UpdateState(context.Background(), employerActor, 21, entity.ApplicationStateOffer)

	assert.ErrorIs(t, err, domainerrors.ErrApplicationNotFound)
}

func TestApplicationService_UpdateState_InvalidState(t *testing.T) {
	fx := createTestApplicationService(t)

	_, err := fx.service.UpdateState(context.Background(), employerActor, 21, "Contratada")

	assert.ErrorIs(t, err, domainerrors.ErrInvalidApplicationState)
}

func TestApplicationService_AddNote(t *testing.T) {
	fx := createTestApplicationService(t)

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		applicationRepo := expectOwnedApplication(t, factory, 7)
		applicationRepo.EXPECT().CreateNote(mock.Anything, mock.MatchedBy(func(note *entity.InternalNote) bool {
			return note.ApplicationID == 21 && note.EmployerID == 7 && note.Content == "Strong Go background"
		})).Return(nil)
	})

	note, err := fx.service.AddNote(context.Background(), employerActor, 21, "  Strong Go background ")

	require.NoError(t, err)
	assert.Equal(t, "Strong Go background", note.Content)
}

func TestApplicationService_AddNote_EmptyContent(t *testing.T) {
	fx := createTestApplicationService(t)

	_, err := fx.service.AddNote(context.Background(), employerActor, 21, "   ")

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestApplicationService_ProposeInterview_MovesToInterview(t *testing.T) {
	fx := createTestApplicationService(t)
	at := time.Date(2026, 11, 2, 15, 0, 0, 0, time.UTC)

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		applicationRepo := expectOwnedApplication(t, factory, 7)
		applicationRepo.EXPECT().CreateInterview(mock.Anything, mock.AnythingOfType("*entity.Interview")).
			Run(func(_ context.Context, interview *entity.Interview) {
				assert.Equal(t, entity.InterviewStateProposed, interview.State)
				interview.ID = 31
			}).
			Return(nil)
		applicationRepo.EXPECT().UpdateState(mock.Anything, uint(21), entity.ApplicationStateInterview).Return(nil)
	})

	interview, err := fx.service.ProposeInterview(context.Background(), employerActor, 21, &usecase.ProposeInterviewInput{
		ScheduledAt: at,
		MeetingLink: "https://meet.example.com/abc",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(31), interview.ID)
	assert.Equal(t, at, interview.ScheduledAt)
}

func TestApplicationService_ListInterviews_Candidate(t *testing.T) {
	fx := createTestApplicationService(t)
	interviews := []*entity.Interview{{ID: 31, ApplicationID: 21, State: entity.InterviewStateProposed}}

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		candidateRepo := mockRepo.NewMockCandidateRepository(t)
		applicationRepo := mockRepo.NewMockApplicationRepository(t)
		factory.EXPECT().CandidateRepo().Return(candidateRepo)
		factory.EXPECT().ApplicationRepo().Return(applicationRepo)

		candidateRepo.EXPECT().FindByAccountID(mock.Anything, uint(2)).Return(&entity.CandidateProfile{ID: 5}, nil)
		applicationRepo.EXPECT().FindByID(mock.Anything, uint(21)).Return(&entity.Application{ID: 21, CandidateID: 5}, nil)
		applicationRepo.EXPECT().ListInterviews(mock.Anything, uint(21)).Return(interviews, nil)
	})

	got, err := fx.service.ListInterviews(context.Background(), candidateActor, 21)

	require.NoError(t, err)
	assert.Equal(t, interviews, got)
}

func TestApplicationService_ListInterviews_OtherCandidate(t *testing.T) {
	fx := createTestApplicationService(t)

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		candidateRepo := mockRepo.NewMockCandidateRepository(t)
		applicationRepo := mockRepo.NewMockApplicationRepository(t)
		factory.EXPECT().CandidateRepo().Return(candidateRepo)
		factory.EXPECT().ApplicationRepo().Return(applicationRepo)

		candidateRepo.EXPECT().FindByAccountID(mock.Anything, uint(2)).Return(&entity.CandidateProfile{ID: 6}, nil)
		applicationRepo.EXPECT().FindByID(mock.Anything, uint(21)).Return(&entity.Application{ID: 21, CandidateID: 5}, nil)
	})

	_, err := fx.service.ListInterviews(context.Background(), candidateActor, 21)

	assert.ErrorIs(t, err, domainerrors.ErrApplicationNotFound)
}

func TestApplicationService_ListInterviews_AdminForbidden(t *testing.T) {
	fx := createTestApplicationService(t)
	admin := &entity.SessionUser{UserID: 9, Role: entity.RoleAdmin}

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {})

	_, err := fx.service.ListInterviews(context.Background(), admin, 21)

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}
