package errors

import (
	"errors"
	"fmt"
)

// Exit codes for bender-config
const (
	ExitSuccess         = 0
	ExitGeneralError    = 1
	ExitNotFound        = 2
	ExitParseError      = 3
	ExitValidationError = 4
	ExitIOError         = 5
)

// BenderError is the base error type for bender-config
type BenderError struct {
	Code    int
	Message string
	Cause   error
}

func (e *BenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *BenderError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error
func (e *BenderError) ExitCode() int {
	return e.Code
}

// New creates a new BenderError
func New(code int, message string) *BenderError {
	return &BenderError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a BenderError
func Wrap(code int, message string, cause error) *BenderError {
	return &BenderError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Common error constructors

// NotFound returns an error for a missing configuration file
func NotFound(path string) *BenderError {
	return New(ExitNotFound, fmt.Sprintf("no configuration file at %s", path))
}

// ParseError returns an error for malformed serialized content
func ParseError(path string, cause error) *BenderError {
	return Wrap(ExitParseError, fmt.Sprintf("failed to parse %s", path), cause)
}

// Validation returns an error for a value outside its allowed domain
func Validation(message string) *BenderError {
	return New(ExitValidationError, message)
}

// FieldValidation returns a validation error scoped to a single field
func FieldValidation(key, message string) *BenderError {
	return New(ExitValidationError, fmt.Sprintf("invalid value for %s: %s", key, message))
}

// UnknownField returns an error for a key outside the recognized field set
func UnknownField(key string) *BenderError {
	return New(ExitValidationError, fmt.Sprintf("unknown configuration key: %s", key))
}

// IO returns an error for a filesystem failure
func IO(op string, cause error) *BenderError {
	return Wrap(ExitIOError, fmt.Sprintf("%s failed", op), cause)
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	var benderErr *BenderError
	if errors.As(err, &benderErr) {
		return benderErr.ExitCode()
	}
	return ExitGeneralError
}

// hasCode reports whether err carries the given exit code.
func hasCode(err error, code int) bool {
	var benderErr *BenderError
	if errors.As(err, &benderErr) {
		return benderErr.Code == code
	}
	return false
}

// IsNotFound reports whether err is a missing-file error
func IsNotFound(err error) bool {
	return hasCode(err, ExitNotFound)
}

// IsParseError reports whether err is a parse error
func IsParseError(err error) bool {
	return hasCode(err, ExitParseError)
}

// IsValidation reports whether err is a validation error
func IsValidation(err error) bool {
	return hasCode(err, ExitValidationError)
}

// IsIO reports whether err is a filesystem error
func IsIO(err error) bool {
	return hasCode(err, ExitIOError)
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target any) bool {
	return errors.As(err, target)
}
