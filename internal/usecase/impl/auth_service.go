// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"strings"

	deliverycontext "jobly/internal/delivery/context"
	"jobly/internal/domain/entity"
	domainerrors "jobly/internal/domain/errors"
	"jobly/internal/domain/repository"
	"jobly/internal/domain/service"
	"jobly/internal/errors"
	"jobly/internal/usecase"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager repository.TransactionManager
	codec     service.CredentialCodec
	logger    *slog.Logger
}

// registrationConfig captures what differs between the registration flows.
type registrationConfig struct {
	Email    string
	Password string
	Role     entity.Role

	// Validate checks role specific fields before anything is hashed or stored.
	Validate func() error
	// CheckDuplicates runs inside the transaction ahead of the inserts.
	CheckDuplicates func(ctx context.Context, repoFactory repository.RepositoryFactory) error
	// CreateProfile inserts the role profile for the new account.
	CreateProfile func(ctx context.Context, repoFactory repository.RepositoryFactory, account *entity.Account, output *usecase.RegisterOutput) error
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	txManager repository.TransactionManager,
	codec service.CredentialCodec,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		txManager: txManager,
		codec:     codec,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an account with a placeholder profile for the requested role.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	role, ok := entity.ParseRole(input.Role)
	if !ok {
		return nil, domainerrors.ErrInvalidRole.WithDetails(fmt.Sprintf("unknown role %q", input.Role))
	}

	cfg := &registrationConfig{
		Email:         input.Email,
		Password:      input.Password,
		Role:          role,
		CreateProfile: placeholderProfile(role),
	}

	return srv.executeRegistration(ctx, cfg)
}

// RegisterEmployer creates an employer account and its company profile atomically.
func (srv *authService) RegisterEmployer(ctx context.Context, input *usecase.RegisterEmployerInput) (*usecase.RegisterOutput, error) {
	taxID := strings.TrimSpace(input.TaxID)
	companyName := strings.TrimSpace(input.CompanyName)

	cfg := &registrationConfig{
		Email:    input.Email,
		Password: input.Password,
		Role:     entity.RoleEmployer,
		Validate: func() error {
			if companyName == "" {
				return domainerrors.ErrValidationFailed.WithDetails("company_name is required")
			}
			if !entity.IsValidTaxID(taxID) {
				return domainerrors.ErrInvalidTaxID
			}

			return nil
		},
		CheckDuplicates: func(ctx context.Context, repoFactory repository.RepositoryFactory) error {
			exists, err := repoFactory.EmployerRepo().ExistsByTaxID(ctx, taxID)
			if err != nil {
				return errors.Wrap(err, "failed to check tax ID")
			}
			if exists {
				return domainerrors.ErrTaxIDAlreadyRegistered
			}

			return nil
		},
		CreateProfile: func(ctx context.Context, repoFactory repository.RepositoryFactory, account *entity.Account, output *usecase.RegisterOutput) error {
			profile := &entity.EmployerProfile{
				AccountID:   account.ID,
				CompanyName: companyName,
				TaxID:       taxID,
				Category:    strings.TrimSpace(input.Category),
				Description: strings.TrimSpace(input.Description),
				Logo:        input.Logo,
			}
			if err := repoFactory.EmployerRepo().Create(ctx, profile); err != nil {
				return errors.Wrap(err, "failed to create employer profile")
			}
			output.EmployerID = profile.ID

			return nil
		},
	}

	return srv.executeRegistration(ctx, cfg)
}

// RegisterCandidate creates a candidate account and its profile atomically.
func (srv *authService) RegisterCandidate(ctx context.Context, input *usecase.RegisterCandidateInput) (*usecase.RegisterOutput, error) {
	fullName := strings.TrimSpace(input.FullName)

	cfg := &registrationConfig{
		Email:    input.Email,
		Password: input.Password,
		Role:     entity.RoleCandidate,
		Validate: func() error {
			if fullName == "" {
				return domainerrors.ErrValidationFailed.WithDetails("full_name is required")
			}

			return nil
		},
		CreateProfile: func(ctx context.Context, repoFactory repository.RepositoryFactory, account *entity.Account, _ *usecase.RegisterOutput) error {
			profile := &entity.CandidateProfile{
				AccountID: account.ID,
				FullName:  fullName,
				CV:        input.CV,
				Photo:     input.Photo,
			}

			return errors.Wrap(repoFactory.CandidateRepo().Create(ctx, profile), "failed to create candidate profile")
		},
	}

	return srv.executeRegistration(ctx, cfg)
}

func placeholderProfile(role entity.Role) func(context.Context, repository.RepositoryFactory, *entity.Account, *usecase.RegisterOutput) error {
	return func(ctx context.Context, repoFactory repository.RepositoryFactory, account *entity.Account, output *usecase.RegisterOutput) error {
		switch role {
		case entity.RoleEmployer:
			profile := &entity.EmployerProfile{
				AccountID:   account.ID,
				CompanyName: fmt.Sprintf("Empresa-%d", account.ID),
				TaxID:       fmt.Sprintf("RUC-%d", account.ID),
			}
			if err := repoFactory.EmployerRepo().Create(ctx, profile); err != nil {
				return errors.Wrap(err, "failed to create employer profile")
			}
			output.EmployerID = profile.ID

			return nil
		case entity.RoleAdmin:
			return errors.Wrap(repoFactory.AdminRepo().Create(ctx, &entity.AdminProfile{AccountID: account.ID}), "failed to create admin profile")
		default:
			profile := &entity.CandidateProfile{
				AccountID: account.ID,
				FullName:  account.Email,
			}

			return errors.Wrap(repoFactory.CandidateRepo().Create(ctx, profile), "failed to create candidate profile")
		}
	}
}

func (srv *authService) executeRegistration(ctx context.Context, cfg *registrationConfig) (*usecase.RegisterOutput, error) {
	email := strings.TrimSpace(cfg.Email)
	if !entity.IsValidEmail(email) {
		return nil, domainerrors.ErrInvalidEmail
	}
	if err := srv.codec.ValidatePasswordStrength(cfg.Password); err != nil {
		return nil, err
	}
	if cfg.Validate != nil {
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	// Hash outside the transaction.
	credential, err := srv.codec.Hash(cfg.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	srv.log(ctx).Info("Starting registration", slog.String("role", cfg.Role.String()), slog.String("email", email))

	output := &usecase.RegisterOutput{}
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		exists, err := accountRepo.ExistsByEmail(ctx, email)
		if err != nil {
			return errors.Wrap(err, "failed to check email")
		}
		if exists {
			return domainerrors.ErrEmailAlreadyRegistered
		}
		if cfg.CheckDuplicates != nil {
			if err := cfg.CheckDuplicates(ctx, repoFactory); err != nil {
				return err
			}
		}

		account := &entity.Account{
			Email:      email,
			Credential: credential,
			Role:       cfg.Role,
			Status:     entity.AccountStatusActive,
		}
		if err := accountRepo.Create(ctx, account); err != nil {
			return errors.Wrap(err, "failed to create account")
		}
		output.UserID = account.ID

		return cfg.CreateProfile(ctx, repoFactory, account, output)
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("role", cfg.Role.String()), slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	srv.log(ctx).Info("Registration completed", slog.String("role", cfg.Role.String()), slog.Uint64("userID", uint64(output.UserID)))

	return output, nil
}

// Login authenticates by email and password. Credentials stored as plaintext or
// under the legacy digest are rehashed once they verify.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" || input.Password == "" {
		return nil, domainerrors.ErrInvalidCredentials
	}

	var account *entity.Account
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.AccountRepo().FindByEmail(ctx, email)
		if err != nil {
			return mapNotFound(err, repository.ErrAccountNotFound, domainerrors.ErrInvalidCredentials)
		}

		verified, outdated := srv.verifyCredential(input.Password, found.Credential)
		if !verified {
			return domainerrors.ErrInvalidCredentials
		}
		if outdated {
			srv.migrateCredential(ctx, repoFactory, found, input.Password)
		}
		account = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Info("Login rejected", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to log in")
	}

	if !account.IsActive() {
		srv.log(ctx).Info("Login of inactive account", slog.Uint64("userID", uint64(account.ID)), slog.String("status", string(account.Status)))

		return nil, domainerrors.ErrAccountDisabled
	}

	return &usecase.LoginOutput{
		UserID:   account.ID,
		Email:    account.Email,
		Role:     account.Role,
		Redirect: account.Role.HomePath(),
	}, nil
}

// verifyCredential reports whether plaintext matches the stored value and
// whether the stored value predates the supported hash schemes.
func (srv *authService) verifyCredential(plaintext, stored string) (verified, outdated bool) {
	if _, ok := srv.codec.IdentifyScheme(stored); ok {
		return srv.codec.Verify(plaintext, stored), false
	}
	if srv.codec.IsPlaintext(stored) {
		return subtle.ConstantTimeCompare([]byte(plaintext), []byte(stored)) == 1, true
	}

	return srv.codec.VerifyLegacy(plaintext, stored), true
}

// migrateCredential stores a current hash for the account. Failures only cost
// the upgrade, never the login.
func (srv *authService) migrateCredential(ctx context.Context, repoFactory repository.RepositoryFactory, account *entity.Account, plaintext string) {
	logger := srv.log(ctx).With(slog.Uint64("userID", uint64(account.ID)))

	credential, err := srv.codec.Hash(plaintext)
	if err != nil {
		logger.Warn("Failed to hash credential for migration", slog.Any("error", err))

		return
	}

	err = repoFactory.Savepoint(ctx, func(nested repository.RepositoryFactory) error {
		return nested.AccountRepo().UpdateCredential(ctx, account.ID, credential)
	})
	if err != nil {
		logger.Warn("Failed to persist migrated credential", slog.Any("error", err))

		return
	}

	account.Credential = credential
	logger.Info("Credential migrated to current scheme")
}
