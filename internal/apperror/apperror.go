// Package apperror defines the error taxonomy shared by the store, the
// validator and the HTTP handlers. Handlers map these sentinels to status
// codes with errors.Is; anything that does not match is treated as a
// storage fault and surfaced as a generic server error.
package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrBadInput     = errors.New("bad input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrStorage      = errors.New("storage fault")
)

// AppError carries a human-readable message alongside one of the sentinel
// errors above.
type AppError struct {
	Err     error
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NotFound(resource string, key any) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s %v not found", resource, key),
	}
}

func Conflict(resource string, key any) *AppError {
	return &AppError{
		Err:     ErrConflict,
		Message: fmt.Sprintf("%s %v already exists", resource, key),
	}
}

func BadInput(message string) *AppError {
	return &AppError{
		Err:     ErrBadInput,
		Message: message,
	}
}

// Storage wraps an unexpected persistence error. The original error stays on
// the chain for logging; the message is safe to return to clients.
func Storage(err error) *AppError {
	return &AppError{
		Err:     fmt.Errorf("%w: %w", ErrStorage, err),
		Message: "storage operation failed",
	}
}
