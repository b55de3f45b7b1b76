package apperrors

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Process exit statuses.
const (
	ExitSuccess       = 0
	ExitErrorGeneric  = 1
	ExitErrorTimeout  = 2
	ExitErrorMismatch = 3 // sorters disagreed on the output
	ExitErrorConfig   = 4 // bad flags, environment or input
	ExitErrorCanceled = 130
)

// ConfigError is returned when flags, environment variables or the input
// list cannot be used.
type ConfigError struct {
	Message string
}

func (e ConfigError) Error() string { return e.Message }

// NewConfigError builds a ConfigError from a printf-style message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// SortError marks a sorter run that produced no output. Cause is kept for
// errors.Is and errors.As.
type SortError struct {
	Sorter string
	Cause  error
}

func (e SortError) Error() string {
	return fmt.Sprintf("%s: %v", e.Sorter, e.Cause)
}

func (e SortError) Unwrap() error { return e.Cause }

// TimeoutError reports that Operation ran past Limit.
type TimeoutError struct {
	Operation string
	Limit     time.Duration
}

func (e TimeoutError) Error() string {
	return fmt.Sprintf("operation %q timed out after %s", e.Operation, e.Limit)
}

// ValidationError reports a value that failed a post-condition check, such
// as a sort result that is not in ascending order.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// WrapError prefixes err with a formatted message and keeps it unwrappable.
// It returns nil when err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// IsContextError reports whether err stems from context cancellation or an
// expired deadline.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
