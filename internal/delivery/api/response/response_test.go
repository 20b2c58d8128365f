package response

import (
	"net/http"
	"testing"

	domainerrors "jobly/internal/domain/errors"

	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	tests := map[domainerrors.Kind]int{
		domainerrors.KindUnauthenticated: http.StatusUnauthorized,
		domainerrors.KindForbidden:       http.StatusForbidden,
		domainerrors.KindInvalidArgument: http.StatusBadRequest,
		domainerrors.KindConflict:        http.StatusBadRequest,
		domainerrors.KindNotFound:        http.StatusNotFound,
		domainerrors.KindInfrastructure:  http.StatusInternalServerError,
		domainerrors.Kind(99):            http.StatusInternalServerError,
	}

	for kind, want := range tests {
		t.Run(kind.String(), func(t *testing.T) {
			assert.Equal(t, want, StatusOf(kind))
		})
	}
}
