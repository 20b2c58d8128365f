package postgres

import (
	"context"

	"gorm.io/gorm"

	"jobly/internal/errors"
	"jobly/internal/infra/persistence/model"
)

// Migrate creates or updates every table, index and constraint the job board needs.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}
