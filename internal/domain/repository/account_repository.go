// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"jobly/internal/domain/entity"
)

// ErrAccountNotFound is returned when no account matches the lookup.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository persists login identities.
type AccountRepository interface {
	// Create inserts the account and fills in its ID and CreatedAt.
	// A duplicate email is reported as ErrEmailAlreadyRegistered.
	Create(ctx context.Context, account *entity.Account) error

	FindByID(ctx context.Context, id uint) (*entity.Account, error)
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// UpdateCredential replaces the stored credential value.
	UpdateCredential(ctx context.Context, id uint, credential string) error
}
