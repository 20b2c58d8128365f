package validator

import (
	"testing"

	domainerrors "jobly/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Title   string   `json:"title" validate:"required"`
	Salary  *float64 `json:"salary" validate:"omitempty,gte=0"`
	Content string   `form:"content" validate:"required"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()
	negative := -1.0

	err := v.Validate(&sample{Salary: &negative})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "title: required, salary: gte, content: required", appErr.Details())
}

func TestCustomValidator_ValidPayload(t *testing.T) {
	salary := 1200.0

	assert.NoError(t, New().Validate(&sample{Title: "Backend", Salary: &salary, Content: "ok"}))
}
