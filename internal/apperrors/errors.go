package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
// Never retried; the caller must fix the request.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrImbalance indicates that derived journal entries fail to balance.
// Always fatal; never silently corrected.
var ErrImbalance = errors.New("journal entries do not balance")

// ErrAlreadyReversed indicates an attempt to reverse a transaction that was
// already reversed. Reversal is a one-time operation per original transaction.
var ErrAlreadyReversed = errors.New("transaction already reversed")

// ErrTransient indicates a storage or network failure. The whole atomic unit
// is safe to retry since nothing partial was committed.
var ErrTransient = errors.New("transient storage error")

// ErrConsistency indicates a discrepancy requiring human review (major stock
// drift or trial-balance variance).
var ErrConsistency = errors.New("consistency check failed")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

// AppError carries a status-like code and context message around a wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError wrapping an underlying cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that satisfies errors.Is(err, ErrNotFound).
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}

// NewTransientError creates an AppError that satisfies errors.Is(err, ErrTransient).
func NewTransientError(message string, err error) *AppError {
	return &AppError{Code: 503, Message: message, Err: fmt.Errorf("%w: %w", ErrTransient, err)}
}
