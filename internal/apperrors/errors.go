package apperrors

import (
	"errors"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
// It is also returned when the resource exists but belongs to another user.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks or a business rule.
var ErrValidation = errors.New("validation error")

// ErrConflict indicates that an attempt was made to create a resource that already exists.
var ErrConflict = errors.New("resource already exists")

// ErrPersistence indicates that the underlying store failed during a read or write.
var ErrPersistence = errors.New("persistence error")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// AppError carries a status code, a caller-facing message and the underlying cause.
// errors.Is matches both the error kind (derived from Code) and the wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil && e.Err != e.kind() {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap exposes the error kind and the cause to errors.Is / errors.As.
func (e *AppError) Unwrap() []error {
	errs := []error{e.kind()}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func (e *AppError) kind() error {
	switch e.Code {
	case http.StatusBadRequest:
		return ErrValidation
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusUnauthorized:
		return ErrUnauthorized
	default:
		return ErrPersistence
	}
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError returns an error matching ErrNotFound.
func NewNotFoundError(message string) error {
	return NewAppError(http.StatusNotFound, message, nil)
}

// NewValidationFailedError returns an error matching ErrValidation.
func NewValidationFailedError(message string) error {
	return NewAppError(http.StatusBadRequest, message, nil)
}

// NewConflictError returns an error matching ErrConflict.
func NewConflictError(message string) error {
	return NewAppError(http.StatusConflict, message, nil)
}

// NewPersistenceError returns an error matching ErrPersistence that also wraps cause.
func NewPersistenceError(message string, cause error) error {
	return NewAppError(http.StatusInternalServerError, message, cause)
}

// StatusCode maps an error to the HTTP status the handlers respond with.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// NewUnauthorizedError returns an error matching ErrUnauthorized.
func NewUnauthorizedError(message string) error {
	return NewAppError(http.StatusUnauthorized, message, nil)
}
