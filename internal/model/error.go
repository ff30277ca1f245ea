package model

import "errors"

// Validation error codes, one per input failure kind.
const (
	ErrCodeInvalidExtension = "INVALID_EXTENSION"
	ErrCodeFileNotFound     = "FILE_NOT_FOUND"
	ErrCodeNegativeValue    = "NEGATIVE_VALUE"
	ErrCodeMalformedInput   = "MALFORMED_INPUT"
)

// ValidationError is returned when an input file or its contents are rejected.
type ValidationError struct {
	Code    string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Is matches any ValidationError carrying the same code, so callers can
// compare against the sentinels below with errors.Is.
func (e *ValidationError) Is(target error) bool {
	var t *ValidationError
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// NewValidationError creates a new validation error.
func NewValidationError(code, message string, cause error) *ValidationError {
	return &ValidationError{
		Code:    code,
		Message: message,
		Err:     cause,
	}
}

// Common validation errors
var (
	ErrInvalidExtension = NewValidationError(ErrCodeInvalidExtension, "Input file must be a .txt file", nil)
	ErrFileNotFound     = NewValidationError(ErrCodeFileNotFound, "Input file not found", nil)
	ErrNegativeValue    = NewValidationError(ErrCodeNegativeValue, "Input file contains negative numbers", nil)
	ErrMalformedInput   = NewValidationError(ErrCodeMalformedInput, "Input file is not a list of integers", nil)
)

// IsValidationError reports whether err or anything it wraps is a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ErrorCode returns the code of the first ValidationError in err's chain,
// or an empty string.
func ErrorCode(err error) string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Code
	}
	return ""
}
