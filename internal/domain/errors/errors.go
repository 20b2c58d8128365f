package errors

import (
	"jobly/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Kind() Kind        // Error classification
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, errorCode, message, details string) *BaseError {
	return &BaseError{
		kind:      kind,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Kind returns the error classification
func (e *BaseError) Kind() Kind {
	return e.kind
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy carrying detailed error information.
// The copy still matches e with errors.Is.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		kind:      e.kind,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches catalogue entries by error code.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == other.errorCode
}

// Predefined error types
var (
	// Session and authentication errors
	ErrUnauthenticated = NewBaseError(
		KindUnauthenticated,
		"UNAUTHENTICATED",
		"No autenticado",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		KindUnauthenticated,
		"INVALID_CREDENTIALS",
		"Email o contraseña incorrectos",
		"",
	)

	ErrAccountDisabled = NewBaseError(
		KindForbidden,
		"ACCOUNT_DISABLED",
		"La cuenta no está activa",
		"",
	)

	ErrForbidden = NewBaseError(
		KindForbidden,
		"FORBIDDEN",
		"Acceso denegado",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		KindInfrastructure,
		"PASSWORD_HASH_FAILED",
		"Error al procesar la contraseña",
		"",
	)

	// Input validation errors
	ErrValidationFailed = NewBaseError(
		KindInvalidArgument,
		"VALIDATION_FAILED",
		"Datos de entrada inválidos",
		"",
	)

	ErrInvalidEmail = NewBaseError(
		KindInvalidArgument,
		"INVALID_EMAIL",
		"El email no tiene un formato válido",
		"",
	)

	ErrPasswordStrength = NewBaseError(
		KindInvalidArgument,
		"PASSWORD_STRENGTH",
		"La contraseña no cumple los requisitos mínimos",
		"",
	)

	ErrInvalidTaxID = NewBaseError(
		KindInvalidArgument,
		"INVALID_TAX_ID",
		"El RUC no es válido",
		"",
	)

	ErrInvalidRole = NewBaseError(
		KindInvalidArgument,
		"INVALID_ROLE",
		"Rol inválido",
		"",
	)

	ErrInvalidVacancyState = NewBaseError(
		KindInvalidArgument,
		"INVALID_VACANCY_STATE",
		"Estado de vacante inválido",
		"",
	)

	ErrInvalidApplicationState = NewBaseError(
		KindInvalidArgument,
		"INVALID_APPLICATION_STATE",
		"Estado de postulación inválido",
		"",
	)

	ErrNothingToUpdate = NewBaseError(
		KindInvalidArgument,
		"NOTHING_TO_UPDATE",
		"No hay campos para actualizar",
		"",
	)

	ErrInvalidUpload = NewBaseError(
		KindInvalidArgument,
		"INVALID_UPLOAD",
		"Archivo inválido",
		"",
	)

	// Uniqueness conflicts
	ErrEmailAlreadyRegistered = NewBaseError(
		KindConflict,
		"EMAIL_ALREADY_REGISTERED",
		"El email ya está registrado",
		"",
	)

	ErrTaxIDAlreadyRegistered = NewBaseError(
		KindConflict,
		"TAX_ID_ALREADY_REGISTERED",
		"El RUC ya está registrado",
		"",
	)

	ErrAlreadyApplied = NewBaseError(
		KindConflict,
		"ALREADY_APPLIED",
		"Ya postulaste a esta vacante",
		"",
	)

	ErrConflict = NewBaseError(
		KindConflict,
		"CONFLICT",
		"Conflicto de datos",
		"",
	)

	// Lookup errors
	ErrNotFound = NewBaseError(
		KindNotFound,
		"NOT_FOUND",
		"Recurso no encontrado",
		"",
	)

	ErrEmployerNotFound = NewBaseError(
		KindNotFound,
		"EMPLOYER_NOT_FOUND",
		"Empresa no encontrada",
		"",
	)

	ErrCandidateNotFound = NewBaseError(
		KindNotFound,
		"CANDIDATE_NOT_FOUND",
		"Candidato no encontrado",
		"",
	)

	ErrVacancyNotFound = NewBaseError(
		KindNotFound,
		"VACANCY_NOT_FOUND",
		"Vacante no encontrada",
		"",
	)

	ErrVacancyNotAvailable = NewBaseError(
		KindNotFound,
		"VACANCY_NOT_AVAILABLE",
		"Vacante no disponible",
		"",
	)

	ErrApplicationNotFound = NewBaseError(
		KindNotFound,
		"APPLICATION_NOT_FOUND",
		"Postulación no encontrada",
		"",
	)

	ErrAssetNotFound = NewBaseError(
		KindNotFound,
		"ASSET_NOT_FOUND",
		"Archivo no encontrado",
		"",
	)

	// Infrastructure errors
	ErrTransactionFailed = NewBaseError(
		KindInfrastructure,
		"TRANSACTION_FAILED",
		"Error en la transacción de base de datos",
		"",
	)

	ErrInternalError = NewBaseError(
		KindInfrastructure,
		"INTERNAL_ERROR",
		"Error interno del servidor",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// Kind returns the error classification
func (e *DatabaseExecuteError) Kind() Kind {
	return KindInfrastructure
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Error al ejecutar la consulta"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
