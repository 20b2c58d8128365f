package postgres

import (
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domainerrors "jobly/internal/domain/errors"
	"jobly/internal/errors"
)

const pgUniqueViolation = "23505"

// uniqueViolation reports whether err is a unique constraint violation and
// returns whatever the driver says about the violated constraint.
func uniqueViolation(err error) (target string, ok bool) {
	if err == nil {
		return "", false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code != pgUniqueViolation {
			return "", false
		}

		return strings.ToLower(pgErr.ConstraintName + " " + pgErr.Detail), true
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return "", true
	}

	// SQLite reports "UNIQUE constraint failed: <table>.<column>".
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key") {
		return msg, true
	}

	return "", false
}

// classifyConflict maps a unique violation to the catalogue entry for the
// colliding field. When the driver does not name the field, fallback is used.
func classifyConflict(err error, fallback *domainerrors.BaseError) (error, bool) {
	target, ok := uniqueViolation(err)
	if !ok {
		return nil, false
	}

	switch {
	case strings.Contains(target, "email"):
		return domainerrors.ErrEmailAlreadyRegistered.WrapMessage("email already exists"), true
	case strings.Contains(target, "tax_id"):
		return domainerrors.ErrTaxIDAlreadyRegistered.WrapMessage("tax id already exists"), true
	case strings.Contains(target, "applications"):
		return domainerrors.ErrAlreadyApplied.WrapMessage("candidate already applied"), true
	case target != "" || fallback == nil:
		return domainerrors.ErrConflict.WrapMessage(target), true
	default:
		return fallback.WrapMessage("unique constraint violated"), true
	}
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}

	return strings.Contains(strings.ToLower(err.Error()), "foreign key constraint")
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23514"
	}

	return strings.Contains(strings.ToLower(err.Error()), "check constraint")
}
