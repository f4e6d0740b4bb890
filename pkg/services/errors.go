// Package services implements the application operations behind the HTTP
// layer: registry CRUD, versioned prompt/schema stores, results, tags,
// organizations, users, and access tokens.
package services

import (
	"errors"
	"fmt"
)

// Sentinel errors translated to HTTP statuses by the API layer.
var (
	ErrNotFound            = errors.New("not found")
	ErrAlreadyExists       = errors.New("already exists")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrTagReferenced       = errors.New("tag is referenced")
	ErrInsufficientCredits = errors.New("insufficient credits")
)

// ValidationError marks caller mistakes (bad input, illegal transition).
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Validationf builds a ValidationError.
func Validationf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
