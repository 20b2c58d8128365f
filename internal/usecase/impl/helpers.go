package impl

import (
	"context"

	"jobly/internal/domain/entity"
	domainerrors "jobly/internal/domain/errors"
	"jobly/internal/domain/repository"
	"jobly/internal/errors"
)

// mapNotFound swaps a repository sentinel for the catalogue error the client sees.
func mapNotFound(err, sentinel error, notFound *domainerrors.BaseError) error {
	if errors.Is(err, sentinel) {
		return notFound
	}

	return err
}

// requireRole rejects anonymous actors and actors holding a different role.
func requireRole(actor *entity.SessionUser, role entity.Role) error {
	if actor == nil {
		return domainerrors.ErrUnauthenticated
	}
	if !actor.HasRole(role) {
		return domainerrors.ErrForbidden.WrapMessage("requires role " + role.String())
	}

	return nil
}

// ensureCandidateProfile returns the actor's candidate profile, creating a bare
// one named after the account email on first access.
func ensureCandidateProfile(ctx context.Context, repoFactory repository.RepositoryFactory, actor *entity.SessionUser) (*entity.CandidateProfile, error) {
	candidateRepo := repoFactory.CandidateRepo()

	profile, err := candidateRepo.FindByAccountID(ctx, actor.UserID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, repository.ErrCandidateNotFound) {
		return nil, errors.Wrap(err, "failed to find candidate profile")
	}

	profile = &entity.CandidateProfile{
		AccountID: actor.UserID,
		FullName:  actor.Email,
	}
	if err := candidateRepo.Create(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to create candidate profile")
	}

	return profile, nil
}

// ownerEmployer resolves the employer profile of an employer actor.
func ownerEmployer(ctx context.Context, repoFactory repository.RepositoryFactory, actor *entity.SessionUser) (*entity.EmployerProfile, error) {
	if err := requireRole(actor, entity.RoleEmployer); err != nil {
		return nil, err
	}

	employer, err := repoFactory.EmployerRepo().FindByAccountID(ctx, actor.UserID)
	if err != nil {
		return nil, mapNotFound(err, repository.ErrEmployerNotFound, domainerrors.ErrEmployerNotFound)
	}

	return employer, nil
}
