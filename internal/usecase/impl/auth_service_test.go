package impl

import (
	"context"
	"testing"

	"jobly/internal/domain/entity"
	domainerrors "jobly/internal/domain/errors"
	"jobly/internal/domain/repository"
	"jobly/internal/domain/service"
	"jobly/internal/errors"
	mockRepo "jobly/internal/mocks/repository"
	mockSvc "jobly/internal/mocks/service"
	"jobly/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service   usecase.AuthUsecase
	txManager *mockRepo.MockTransactionManager
	codec     *mockSvc.MockCredentialCodec
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	codec := mockSvc.NewMockCredentialCodec(t)

	return authServiceFixtures{
		service:   NewAuthService(txManager, codec, newDiscardLogger()),
		txManager: txManager,
		codec:     codec,
	}
}

func TestAuthService_RegisterEmployer_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	input := &usecase.RegisterEmployerInput{
		Email:       " acme@co.com ",
		Password:    "Passw0rd",
		CompanyName: "Acme",
		TaxID:       "0190012345001",
		Category:    "Software",
	}

	fx.codec.EXPECT().ValidatePasswordStrength("Passw0rd").Return(nil)
	fx.codec.EXPECT().Hash("Passw0rd").Return("$2a$10$hash", nil)

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		accountRepo := mockRepo.NewMockAccountRepository(t)
		employerRepo := mockRepo.NewMockEmployerRepository(t)

		factory.EXPECT().AccountRepo().Return(accountRepo)
		factory.EXPECT().EmployerRepo().Return(employerRepo)

		accountRepo.EXPECT().ExistsByEmail(mock.Anything, "acme@co.com").Return(false, nil)
		employerRepo.EXPECT().ExistsByTaxID(mock.Anything, "0190012345001").Return(false, nil)
		accountRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Account")).
			Run(func(_ context.Context, account *entity.Account) {
				assert.Equal(t, "acme@co.com", account.Email)
				assert.Equal(t, "$2a$10$hash", account.Credential)
				assert.Equal(t, entity.RoleEmployer, account.Role)
				assert.Equal(t, entity.AccountStatusActive, account.Status)
				account.ID = 1
			}).
			Return(nil)
		employerRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.EmployerProfile")).
			Run(func(_ context.Context, profile *entity.EmployerProfile) {
				assert.Equal(t, uint(1), profile.AccountID)
				assert.Equal(t, "Acme", profile.CompanyName)
				profile.ID = 7
			}).
			Return(nil)
	})

	output, err := fx.service.RegisterEmployer(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, uint(1), output.UserID)
	assert.Equal(t, uint(7), output.EmployerID)
}

func TestAuthService_RegisterEmployer_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.codec.EXPECT().ValidatePasswordStrength(mock.Anything).Return(nil)
	fx.codec.EXPECT().Hash(mock.Anything).Return("hash", nil)

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		accountRepo := mockRepo.NewMockAccountRepository(t)
		factory.EXPECT().AccountRepo().Return(accountRepo)
		accountRepo.EXPECT().ExistsByEmail(mock.Anything, "acme@co.com").Return(true, nil)
	})

	_, err := fx.service.RegisterEmployer(ctx, &usecase.RegisterEmployerInput{
		Email:       "acme@co.com",
		Password:    "Passw0rd",
		CompanyName: "Acme",
		TaxID:       "0190012345001",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
	assert.Equal(t, domainerrors.KindConflict, domainerrors.KindOf(err))
}

func TestAuthService_RegisterEmployer_DuplicateTaxID(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.codec.EXPECT().ValidatePasswordStrength(mock.Anything).Return(nil)
	fx.codec.EXPECT().Hash(mock.Anything).Return("hash", nil)

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		accountRepo := mockRepo.NewMockAccountRepository(t)
		employerRepo := mockRepo.NewMockEmployerRepository(t)
		factory.EXPECT().AccountRepo().Return(accountRepo)
		factory.EXPECT().EmployerRepo().Return(employerRepo)
		accountRepo.EXPECT().ExistsByEmail(mock.Anything, "other@co.com").Return(false, nil)
		employerRepo.EXPECT().ExistsByTaxID(mock.Anything, "0190012345001").Return(true, nil)
	})

	_, err := fx.service.RegisterEmployer(ctx, &usecase.RegisterEmployerInput{
		Email:       "other@co.com",
		Password:    "Passw0rd",
		CompanyName: "Other",
		TaxID:       "0190012345001",
	})

	assert.ErrorIs(t, err, domainerrors.ErrTaxIDAlreadyRegistered)
}

func TestAuthService_RegisterEmployer_InvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		input   *usecase.RegisterEmployerInput
		strong  bool
		wantErr error
	}{
		{
			name:    "malformed email",
			input:   &usecase.RegisterEmployerInput{Email: "acme.co.com", Password: "Passw0rd", CompanyName: "Acme", TaxID: "0190012345001"},
			wantErr: domainerrors.ErrInvalidEmail,
		},
		{
			name:    "invalid tax id",
			input:   &usecase.RegisterEmployerInput{Email: "acme@co.com", Password: "Passw0rd", CompanyName: "Acme", TaxID: "123"},
			strong:  true,
			wantErr: domainerrors.ErrInvalidTaxID,
		},
		{
			name:    "missing company name",
			input:   &usecase.RegisterEmployerInput{Email: "acme@co.com", Password: "Passw0rd", TaxID: "0190012345001"},
			strong:  true,
			wantErr: domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t)
			if tt.strong {
				fx.codec.EXPECT().ValidatePasswordStrength(tt.input.Password).Return(nil)
			}

			_, err := fx.service.RegisterEmployer(context.Background(), tt.input)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, domainerrors.KindInvalidArgument, domainerrors.KindOf(err))
		})
	}
}

func TestAuthService_RegisterCandidate_WeakPassword(t *testing.T) {
	fx := createTestAuthService(t)

	weak := domainerrors.ErrPasswordStrength.WithDetails("password must be at least 8 characters long")
	fx.codec.EXPECT().ValidatePasswordStrength("abc").Return(weak)

	_, err := fx.service.RegisterCandidate(context.Background(), &usecase.RegisterCandidateInput{
		Email:    "ana@mail.com",
		Password: "abc",
		FullName: "Ana",
	})

	assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
}

func TestAuthService_RegisterCandidate_StoresAssets(t *testing.T) {
	fx := createTestAuthService(t)
	cv := []byte("%PDF-1.4")

	fx.codec.EXPECT().ValidatePasswordStrength(mock.Anything).Return(nil)
	fx.codec.EXPECT().Hash(mock.Anything).Return("hash", nil)

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		accountRepo := mockRepo.NewMockAccountRepository(t)
		candidateRepo := mockRepo.NewMockCandidateRepository(t)
		factory.EXPECT().AccountRepo().Return(accountRepo)
		factory.EXPECT().CandidateRepo().Return(candidateRepo)
		accountRepo.EXPECT().ExistsByEmail(mock.Anything, "ana@mail.com").Return(false, nil)
		accountRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Account")).
			Run(func(_ context.Context, account *entity.Account) { account.ID = 3 }).
			Return(nil)
		candidateRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(profile *entity.CandidateProfile) bool {
			return profile.AccountID == 3 && profile.FullName == "Ana Pérez" && string(profile.CV) == string(cv)
		})).Return(nil)
	})

	output, err := fx.service.RegisterCandidate(context.Background(), &usecase.RegisterCandidateInput{
		Email:    "ana@mail.com",
		Password: "Passw0rd",
		FullName: " Ana Pérez ",
		CV:       cv,
	})

	require.NoError(t, err)
	assert.Equal(t, uint(3), output.UserID)
	assert.Zero(t, output.EmployerID)
}

func TestAuthService_Register_InvalidRole(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Email:    "x@y.com",
		Password: "Passw0rd",
		Role:     "Superuser",
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidRole)
}

func TestAuthService_Register_AdminCreatesBareProfile(t *testing.T) {
	fx := createTestAuthService(t)

	fx.codec.EXPECT().ValidatePasswordStrength(mock.Anything).Return(nil)
	fx.codec.EXPECT().Hash(mock.Anything).Return("hash", nil)

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		accountRepo := mockRepo.NewMockAccountRepository(t)
		adminRepo := mockRepo.NewMockAdminRepository(t)
		factory.EXPECT().AccountRepo().Return(accountRepo)
		factory.EXPECT().AdminRepo().Return(adminRepo)
		accountRepo.EXPECT().ExistsByEmail(mock.Anything, "root@jobly.ec").Return(false, nil)
		accountRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Account")).
			Run(func(_ context.Context, account *entity.Account) {
				assert.Equal(t, entity.RoleAdmin, account.Role)
				account.ID = 9
			}).
			Return(nil)
		adminRepo.EXPECT().Create(mock.Anything, &entity.AdminProfile{AccountID: 9}).Return(nil)
	})

	output, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Email:    "root@jobly.ec",
		Password: "Passw0rd",
		Role:     "admin",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(9), output.UserID)
}

func TestAuthService_Register_HashFailure(t *testing.T) {
	fx := createTestAuthService(t)

	fx.codec.EXPECT().ValidatePasswordStrength(mock.Anything).Return(nil)
	fx.codec.EXPECT().Hash(mock.Anything).Return("", errors.New("cost out of range"))

	_, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Email:    "x@y.com",
		Password: "Passw0rd",
		Role:     "Candidato",
	})

	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
	assert.Equal(t, domainerrors.KindInfrastructure, domainerrors.KindOf(err))
}

func TestAuthService_Login_CurrentScheme(t *testing.T) {
	fx := createTestAuthService(t)
	account := &entity.Account{
		ID:         1,
		Email:      "acme@co.com",
		Credential: "$2a$10$hash",
		Role:       entity.RoleEmployer,
		Status:     entity.AccountStatusActive,
	}

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		accountRepo := mockRepo.NewMockAccountRepository(t)
		factory.EXPECT().AccountRepo().Return(accountRepo)
		accountRepo.EXPECT().FindByEmail(mock.Anything, "acme@co.com").Return(account, nil)
	})
	fx.codec.EXPECT().IdentifyScheme("$2a$10$hash").Return(service.SchemeBcrypt, true)
	fx.codec.EXPECT().Verify("Passw0rd", "$2a$10$hash").Return(true)

	output, err := fx.service.Login(context.Background(), &usecase.LoginInput{Email: "acme@co.com", Password: "Passw0rd"})

	require.NoError(t, err)
	assert.Equal(t, uint(1), output.UserID)
	assert.Equal(t, entity.RoleEmployer, output.Role)
	assert.Equal(t, "/empresa/home", output.Redirect)
	assert.Equal(t, &entity.SessionUser{UserID: 1, Email: "acme@co.com", Role: entity.RoleEmployer}, output.SessionUser())
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)
	account := &entity.Account{ID: 1, Email: "acme@co.com", Credential: "$2a$10$hash", Role: entity.RoleEmployer}

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		accountRepo := mockRepo.NewMockAccountRepository(t)
		factory.EXPECT().AccountRepo().Return(accountRepo)
		accountRepo.EXPECT().FindByEmail(mock.Anything, "acme@co.com").Return(account, nil)
	})
	fx.codec.EXPECT().IdentifyScheme(mock.Anything).Return(service.SchemeBcrypt, true)
	fx.codec.EXPECT().Verify("wrong", "$2a$10$hash").Return(false)

	_, err := fx.service.Login(context.Background(), &usecase.LoginInput{Email: "acme@co.com", Password: "wrong"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Equal(t, domainerrors.KindUnauthenticated, domainerrors.KindOf(err))
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		accountRepo := mockRepo.NewMockAccountRepository(t)
		factory.EXPECT().AccountRepo().Return(accountRepo)
		accountRepo.EXPECT().FindByEmail(mock.Anything, "ghost@co.com").Return(nil, repository.ErrAccountNotFound)
	})

	_, err := fx.service.Login(context.Background(), &usecase.LoginInput{Email: "ghost@co.com", Password: "Passw0rd"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.Login(context.Background(), &usecase.LoginInput{Email: "  ", Password: "x"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	_, err = fx.service.Login(context.Background(), &usecase.LoginInput{Email: "a@b.com"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_MigratesPlaintextCredential(t *testing.T) {
	fx := createTestAuthService(t)
	account := &entity.Account{ID: 4, Email: "old@co.com", Credential: "Passw0rd", Role: entity.RoleCandidate}

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		accountRepo := mockRepo.NewMockAccountRepository(t)
		factory.EXPECT().AccountRepo().Return(accountRepo)
		accountRepo.EXPECT().FindByEmail(mock.Anything, "old@co.com").Return(account, nil)

		factory.EXPECT().
			Savepoint(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
			RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
				nested := mockRepo.NewMockRepositoryFactory(t)
				nestedAccounts := mockRepo.NewMockAccountRepository(t)
				nested.EXPECT().AccountRepo().Return(nestedAccounts)
				nestedAccounts.EXPECT().UpdateCredential(mock.Anything, uint(4), "$2a$10$fresh").Return(nil)

				return fn(nested)
			})
	})
	fx.codec.EXPECT().IdentifyScheme("Passw0rd").Return("", false)
	fx.codec.EXPECT().IsPlaintext("Passw0rd").Return(true)
	fx.codec.EXPECT().Hash("Passw0rd").Return("$2a$10$fresh", nil)

	output, err := fx.service.Login(context.Background(), &usecase.LoginInput{Email: "old@co.com", Password: "Passw0rd"})

	require.NoError(t, err)
	assert.Equal(t, "/candidato/home", output.Redirect)
	assert.Equal(t, "$2a$10$fresh", account.Credential)
}

func TestAuthService_Login_PlaintextMismatch(t *testing.T) {
	fx := createTestAuthService(t)
	account := &entity.Account{ID: 4, Email: "old@co.com", Credential: "Passw0rd", Role: entity.RoleCandidate}

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		accountRepo := mockRepo.NewMockAccountRepository(t)
		factory.EXPECT().AccountRepo().Return(accountRepo)
		accountRepo.EXPECT().FindByEmail(mock.Anything, "old@co.com").Return(account, nil)
	})
	fx.codec.EXPECT().IdentifyScheme("Passw0rd").Return("", false)
	fx.codec.EXPECT().IsPlaintext("Passw0rd").Return(true)

	_, err := fx.service.Login(context.Background(), &usecase.LoginInput{Email: "old@co.com", Password: "Passw0rd!"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Equal(t, "Passw0rd", account.Credential)
}

func TestAuthService_Login_LegacyMigrationFailureStillLogsIn(t *testing.T) {
	fx := createTestAuthService(t)
	legacy := "sha256$salt$digest"
	account := &entity.Account{ID: 5, Email: "legacy@co.com", Credential: legacy, Role: entity.RoleAdmin}

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		accountRepo := mockRepo.NewMockAccountRepository(t)
		factory.EXPECT().AccountRepo().Return(accountRepo)
		accountRepo.EXPECT().FindByEmail(mock.Anything, "legacy@co.com").Return(account, nil)
		factory.EXPECT().
			Savepoint(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
			Return(errors.New("connection reset"))
	})
	fx.codec.EXPECT().IdentifyScheme(legacy).Return("", false)
	fx.codec.EXPECT().IsPlaintext(legacy).Return(false)
	fx.codec.EXPECT().VerifyLegacy("Passw0rd", legacy).Return(true)
	fx.codec.EXPECT().Hash("Passw0rd").Return("$2a$10$fresh", nil)

	output, err := fx.service.Login(context.Background(), &usecase.LoginInput{Email: "legacy@co.com", Password: "Passw0rd"})

	require.NoError(t, err)
	assert.Equal(t, "/admin/home", output.Redirect)
	assert.Equal(t, legacy, account.Credential)
}

func TestAuthService_Login_InactiveAccount(t *testing.T) {
	fx := createTestAuthService(t)
	account := &entity.Account{
		ID:         6,
		Email:      "off@co.com",
		Credential: "$2a$10$hash",
		Role:       entity.RoleCandidate,
		Status:     entity.AccountStatusSuspended,
	}

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		accountRepo := mockRepo.NewMockAccountRepository(t)
		factory.EXPECT().AccountRepo().Return(accountRepo)
		accountRepo.EXPECT().FindByEmail(mock.Anything, "off@co.com").Return(account, nil)
	})
	fx.codec.EXPECT().IdentifyScheme(mock.Anything).Return(service.SchemeBcrypt, true)
	fx.codec.EXPECT().Verify(mock.Anything, mock.Anything).Return(true)

	_, err := fx.service.Login(context.Background(), &usecase.LoginInput{Email: "off@co.com", Password: "Passw0rd"})

	assert.ErrorIs(t, err, domainerrors.ErrAccountDisabled)
	assert.Equal(t, domainerrors.KindForbidden, domainerrors.KindOf(err))
}
