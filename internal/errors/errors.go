package errors

import (
	"github.com/cockroachdb/errors"
)

// Sentinel errors used to classify failures across the codebase. Callers
// attach one of these via Mark and the HTTP layer maps the mark to a status
// code. Use errors.Is (or the helpers below) to test for them.
var (
	ErrValidation        = errors.New("validation error")
	ErrNotFound          = errors.New("item not found")
	ErrAlreadyExists     = errors.New("item already exists")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrDatabase          = errors.New("database error")
	ErrSystem            = errors.New("system error")
	ErrInvalidDateFormat = errors.New("invalid date format")
	ErrDateRangeTooLarge = errors.New("date range too large")
)

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

func IsPermissionDenied(err error) bool {
	return errors.Is(err, ErrPermissionDenied)
}

func IsDatabase(err error) bool {
	return errors.Is(err, ErrDatabase)
}

func IsInvalidDateFormat(err error) bool {
	return errors.Is(err, ErrInvalidDateFormat)
}

func IsDateRangeTooLarge(err error) bool {
	return errors.Is(err, ErrDateRangeTooLarge)
}
