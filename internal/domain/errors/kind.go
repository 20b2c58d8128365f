package errors

import "jobly/internal/errors"

// Kind classifies an error for the outer layers. The set is closed; the
// delivery layer maps each kind to a transport status exactly once.
type Kind int

const (
	KindInfrastructure Kind = iota
	KindUnauthenticated
	KindForbidden
	KindInvalidArgument
	KindConflict
	KindNotFound
)

var kindNames = map[Kind]string{
	KindInfrastructure:  "infrastructure",
	KindUnauthenticated: "unauthenticated",
	KindForbidden:       "forbidden",
	KindInvalidArgument: "invalid_argument",
	KindConflict:        "conflict",
	KindNotFound:        "not_found",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return "unknown"
}

// KindOf returns the kind of the first AppError in err's chain.
// Errors outside the catalogue are infrastructure failures.
func KindOf(err error) Kind {
	if err == nil {
		return KindInfrastructure
	}

	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.Kind()
	}

	return KindInfrastructure
}
