package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already registered")
	ErrForbidden      = errors.New("Forbidden")
	ErrInvalidToken   = errors.New("invalid token")
	ErrUploadTimeout  = errors.New("upload timed out")
	ErrUploadFailed   = errors.New("upload failed")
)

// ValidationError carries every missing or invalid field of a request
// in one response, not just the first one encountered.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing or invalid fields: %s", strings.Join(e.Fields, ", "))
}

func NewValidationError(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
