package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// InternalError carries a developer message plus an optional user-facing hint
// and structured details that are safe to report back to API clients.
type InternalError struct {
	cause             error
	hint              string
	reportableDetails map[string]interface{}
}

func (e *InternalError) Error() string {
	if e.cause == nil {
		return ""
	}
	return e.cause.Error()
}

func (e *InternalError) Unwrap() error {
	return e.cause
}

// Hint returns the user-facing hint, if any.
func (e *InternalError) Hint() string {
	return e.hint
}

// ReportableDetails returns details safe to expose to API clients.
func (e *InternalError) ReportableDetails() map[string]interface{} {
	return e.reportableDetails
}

// Builder provides a fluent API for constructing classified errors:
//
//	ierr.NewError("window_count must be >= 1").
//		WithHint("window_count must be a positive integer").
//		WithReportableDetails(map[string]interface{}{"window_count": n}).
//		Mark(ierr.ErrValidation)
type Builder struct {
	err *InternalError
}

// NewError starts a builder from a fresh error message.
func NewError(message string) *Builder {
	return &Builder{err: &InternalError{cause: errors.New(message)}}
}

// NewErrorf starts a builder from a formatted error message.
func NewErrorf(format string, args ...interface{}) *Builder {
	return &Builder{err: &InternalError{cause: errors.Newf(format, args...)}}
}

// WithError starts a builder wrapping an existing error.
func WithError(err error) *Builder {
	return &Builder{err: &InternalError{cause: err}}
}

// WithHint attaches a user-facing hint shown in API error responses.
func (b *Builder) WithHint(hint string) *Builder {
	b.err.hint = hint
	return b
}

// WithHintf attaches a formatted user-facing hint.
func (b *Builder) WithHintf(format string, args ...interface{}) *Builder {
	b.err.hint = fmt.Sprintf(format, args...)
	return b
}

// WithReportableDetails attaches structured details exposed to API clients.
func (b *Builder) WithReportableDetails(details map[string]interface{}) *Builder {
	b.err.reportableDetails = details
	return b
}

// WithMessage wraps the cause with an additional message.
func (b *Builder) WithMessage(message string) *Builder {
	b.err.cause = errors.WithMessage(b.err.cause, message)
	return b
}

// Mark classifies the error with a sentinel and finalizes the builder.
func (b *Builder) Mark(sentinel error) error {
	b.err.cause = errors.Mark(b.err.cause, sentinel)
	return b.err
}
