package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that a directory name (member or category) already exists,
// compared case-insensitively.
var ErrDuplicate = errors.New("resource already exists")

// ErrEmptyPeriod signals that a monthly aggregation found no weekly records for the period.
// It is an expected state, not a failure.
var ErrEmptyPeriod = errors.New("no data for period")

// ErrDuplicateDate is the soft warning returned when a weekly record already exists for the
// requested date. Callers may retry with an explicit confirmation.
var ErrDuplicateDate = errors.New("a weekly record already exists for this date")

// ErrOverwriteRequired indicates that a monthly report already exists for the period and the
// caller did not confirm the overwrite.
var ErrOverwriteRequired = errors.New("a report already exists for this period")

// ErrPersistence wraps failures reported by the persistence collaborator.
var ErrPersistence = errors.New("persistence failure")

// AppError carries an HTTP-ish code and a human readable message on top of one of the
// sentinel errors above, so errors.Is keeps working through it.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError builds an AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewValidationError reports bad input (amount, missing member/category, out-of-range formula).
func NewValidationError(format string, args ...any) *AppError {
	return NewAppError(http.StatusBadRequest, fmt.Sprintf(format, args...), ErrValidation)
}

// NewDuplicateNameError reports a directory uniqueness violation.
func NewDuplicateNameError(kind, name string) *AppError {
	return NewAppError(http.StatusConflict, fmt.Sprintf("%s '%s' already exists", kind, name), ErrDuplicate)
}

// NewNotFoundError reports an operation on an id that doesn't exist.
func NewNotFoundError(kind, id string) *AppError {
	return NewAppError(http.StatusNotFound, fmt.Sprintf("%s '%s' not found", kind, id), ErrNotFound)
}

// NewPersistenceError wraps a load/save failure from the store. The cause is kept in the chain.
func NewPersistenceError(op, key string, cause error) error {
	return fmt.Errorf("%w: %s %s: %w", ErrPersistence, op, key, cause)
}

// ErrUnauthorized indicates rejected credentials.
var ErrUnauthorized = errors.New("invalid credentials")

// DuplicateDateError lists the weekly records already using a date.
type DuplicateDateError struct {
	Date      string
	RecordIDs []string
}

func (e *DuplicateDateError) Error() string {
	return fmt.Sprintf("%v: %s (%d existing)", ErrDuplicateDate, e.Date, len(e.RecordIDs))
}

func (e *DuplicateDateError) Unwrap() error {
	return ErrDuplicateDate
}

// Message returns the human readable part of err, without the sentinel suffix.
func Message(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
