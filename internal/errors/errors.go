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
	ExitErrorTimeout  = 2   // context deadline reached
	ExitErrorMismatch = 3   // multipliers disagreed on the product
	ExitErrorConfig   = 4   // bad flags or invalid operands
	ExitErrorCanceled = 130 // SIGINT
)

// ConfigError reports flags or environment values that cannot be used.
type ConfigError struct {
	Message string
}

func (e ConfigError) Error() string { return e.Message }

// NewConfigError returns a ConfigError with a fmt.Sprintf message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// CalculationError marks a failure inside a multiplier. It prints as its
// cause and unwraps to it.
type CalculationError struct {
	Cause error
}

func (e CalculationError) Error() string { return e.Cause.Error() }

func (e CalculationError) Unwrap() error { return e.Cause }

// TimeoutError reports an operation that ran past Limit.
type TimeoutError struct {
	Operation string
	Limit     time.Duration
}

func (e TimeoutError) Error() string {
	return fmt.Sprintf("operation %q timed out after %s", e.Operation, e.Limit)
}

// ValidationError reports a malformed operand or request field. Field names
// the offending input ("a", "b", "algo", ...).
type ValidationError struct {
	Field   string
	Message string
	Cause   error
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

func (e ValidationError) Unwrap() error { return e.Cause }

// NewValidationError returns a ValidationError with a fmt.Sprintf message.
func NewValidationError(field, format string, a ...any) error {
	return ValidationError{Field: field, Message: fmt.Sprintf(format, a...)}
}

// WrapValidationError creates a ValidationError for field whose message and
// cause come from err. It returns nil if err is nil.
func WrapValidationError(field string, err error) error {
	if err == nil {
		return nil
	}
	return ValidationError{Field: field, Message: err.Error(), Cause: err}
}

// PrecisionError reports a decoded coefficient whose distance to the nearest
// integer exceeded the accepted tolerance. The digit at Position may be wrong.
type PrecisionError struct {
	// Position is the coefficient index (least significant first).
	Position int
	// Deviation is |x - round(x)| observed at Position.
	Deviation float64
	// Tolerance is the limit that was exceeded.
	Tolerance float64
}

func (e PrecisionError) Error() string {
	return fmt.Sprintf("precision error: coefficient %d deviates by %.4f from an integer (tolerance %.4f)",
		e.Position, e.Deviation, e.Tolerance)
}

// ServerError wraps a failure while starting or stopping the HTTP server.
type ServerError struct {
	Message string
	Cause   error
}

func (e ServerError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e ServerError) Unwrap() error { return e.Cause }

func NewServerError(message string, cause error) error {
	return ServerError{Message: message, Cause: cause}
}

// WrapError prefixes err with a formatted context message. A nil err stays nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// IsContextError reports whether err stems from cancellation or a deadline.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
