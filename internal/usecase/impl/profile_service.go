package impl

import (
	"context"
	"log/slog"

	deliverycontext "jobly/internal/delivery/context"
	"jobly/internal/domain/entity"
	domainerrors "jobly/internal/domain/errors"
	"jobly/internal/domain/repository"
	"jobly/internal/errors"
	"jobly/internal/usecase"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewProfileService creates a new profile service
func NewProfileService(txManager repository.TransactionManager, logger *slog.Logger) usecase.ProfileUsecase {
	return &profileService{
		txManager: txManager,
		logger:    logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetCandidateProfile retrieves the candidate profile, creating it on first access.
func (srv *profileService) GetCandidateProfile(ctx context.Context, actor *entity.SessionUser) (*entity.CandidateProfile, error) {
	if err := requireRole(actor, entity.RoleCandidate); err != nil {
		return nil, err
	}

	var profile *entity.CandidateProfile
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		profile, err = ensureCandidateProfile(ctx, repoFactory, actor)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get candidate profile")
	}

	return profile, nil
}

// UpdateCandidateProfile updates the candidate's personal data.
func (srv *profileService) UpdateCandidateProfile(ctx context.Context, actor *entity.SessionUser, patch *entity.CandidateProfilePatch) (*entity.CandidateProfile, error) {
	if err := requireRole(actor, entity.RoleCandidate); err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return nil, domainerrors.ErrNothingToUpdate
	}
	if patch.FullName != nil && *patch.FullName == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("full_name must not be empty")
	}

	var profile *entity.CandidateProfile
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := ensureCandidateProfile(ctx, repoFactory, actor); err != nil {
			return err
		}

		candidateRepo := repoFactory.CandidateRepo()
		if err := candidateRepo.Update(ctx, actor.UserID, patch); err != nil {
			return mapNotFound(err, repository.ErrCandidateNotFound, domainerrors.ErrCandidateNotFound)
		}

		var err error
		profile, err = candidateRepo.FindByAccountID(ctx, actor.UserID)

		return mapNotFound(err, repository.ErrCandidateNotFound, domainerrors.ErrCandidateNotFound)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute update profile transaction")
	}

	srv.log(ctx).Info("Candidate profile updated", slog.Uint64("userID", uint64(actor.UserID)))

	return profile, nil
}

func (srv *profileService) UploadCandidatePhoto(ctx context.Context, actor *entity.SessionUser, content []byte) error {
	return srv.storeCandidateAsset(ctx, actor, content, "photo", repository.CandidateRepository.SetPhoto)
}

func (srv *profileService) GetCandidatePhoto(ctx context.Context, actor *entity.SessionUser) ([]byte, error) {
	return srv.loadCandidateAsset(ctx, actor, repository.CandidateRepository.GetPhoto)
}

func (srv *profileService) UploadCandidateCV(ctx context.Context, actor *entity.SessionUser, content []byte) error {
	return srv.storeCandidateAsset(ctx, actor, content, "cv", repository.CandidateRepository.SetCV)
}

func (srv *profileService) GetCandidateCV(ctx context.Context, actor *entity.SessionUser) ([]byte, error) {
	return srv.loadCandidateAsset(ctx, actor, repository.CandidateRepository.GetCV)
}

// storeCandidateAsset replaces one binary column of the candidate profile.
func (srv *profileService) storeCandidateAsset(
	ctx context.Context,
	actor *entity.SessionUser,
	content []byte,
	asset string,
	store func(repository.CandidateRepository, context.Context, uint, []byte) error,
) error {
	if err := requireRole(actor, entity.RoleCandidate); err != nil {
		return err
	}
	if len(content) == 0 {
		return domainerrors.ErrInvalidUpload.WithDetails("file is empty")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := ensureCandidateProfile(ctx, repoFactory, actor); err != nil {
			return err
		}

		return errors.Wrapf(store(repoFactory.CandidateRepo(), ctx, actor.UserID, content), "failed to store %s", asset)
	})
	if err != nil {
		return errors.Wrapf(err, "failed to upload candidate %s", asset)
	}

	srv.log(ctx).Info("Candidate asset uploaded", slog.String("asset", asset), slog.Int("size", len(content)))

	return nil
}

func (srv *profileService) loadCandidateAsset(
	ctx context.Context,
	actor *entity.SessionUser,
	load func(repository.CandidateRepository, context.Context, uint) ([]byte, error),
) ([]byte, error) {
	if err := requireRole(actor, entity.RoleCandidate); err != nil {
		return nil, err
	}

	var content []byte
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		content, err = load(repoFactory.CandidateRepo(), ctx, actor.UserID)

		return mapNotFound(err, repository.ErrCandidateNotFound, domainerrors.ErrAssetNotFound)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load candidate asset")
	}
	if len(content) == 0 {
		return nil, domainerrors.ErrAssetNotFound
	}

	return content, nil
}

func (srv *profileService) GetEmployerProfile(ctx context.Context, actor *entity.SessionUser) (*entity.EmployerProfile, error) {
	var profile *entity.EmployerProfile
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		profile, err = ownerEmployer(ctx, repoFactory, actor)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get employer profile")
	}

	return profile, nil
}

func (srv *profileService) UploadEmployerLogo(ctx context.Context, actor *entity.SessionUser, content []byte) error {
	if len(content) == 0 {
		return domainerrors.ErrInvalidUpload.WithDetails("file is empty")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := ownerEmployer(ctx, repoFactory, actor); err != nil {
			return err
		}

		err := repoFactory.EmployerRepo().SetLogo(ctx, actor.UserID, content)

		return mapNotFound(err, repository.ErrEmployerNotFound, domainerrors.ErrEmployerNotFound)
	})
	if err != nil {
		return errors.Wrap(err, "failed to upload employer logo")
	}

	srv.log(ctx).Info("Employer logo uploaded", slog.Int("size", len(content)))

	return nil
}

func (srv *profileService) GetEmployerLogo(ctx context.Context, actor *entity.SessionUser) ([]byte, error) {
	var logo []byte
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := ownerEmployer(ctx, repoFactory, actor); err != nil {
			return err
		}

		var err error
		logo, err = repoFactory.EmployerRepo().GetLogo(ctx, actor.UserID)

		return mapNotFound(err, repository.ErrEmployerNotFound, domainerrors.ErrAssetNotFound)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load employer logo")
	}
	if len(logo) == 0 {
		return nil, domainerrors.ErrAssetNotFound
	}

	return logo, nil
}
