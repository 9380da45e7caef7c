package model

import (
	"errors"
	"fmt"
)

var (
	ErrValidation         = errors.New("validation error")                 // 400
	ErrMissingField       = fmt.Errorf("%w: missing field", ErrValidation) // 400
	ErrInvalidID          = errors.New("invalid id")                       // 400
	ErrDuplicateEmail     = errors.New("email already exists")             // 400
	ErrWrongPassword      = errors.New("wrong current password")           // 400
	ErrUnauthenticated    = errors.New("login required")                   // 401
	ErrInvalidCredentials = errors.New("invalid email or password")        // 401
	ErrForbidden          = errors.New("forbidden")                        // 403
	ErrNotFound           = errors.New("not found")                        // 404
	ErrStore              = errors.New("store error")                      // 500
)

// FieldError describes a rejected input field. It unwraps to ErrMissingField
// or ErrValidation so callers can classify it with errors.Is.
type FieldError struct {
	Field  string
	Reason string
	kind   error
}

func (e *FieldError) Error() string { return e.Field + " " + e.Reason }
func (e *FieldError) Unwrap() error { return e.kind }

func Required(field string) error {
	return &FieldError{Field: field, Reason: "is required", kind: ErrMissingField}
}

func Invalid(field, reason string) error {
	return &FieldError{Field: field, Reason: reason, kind: ErrValidation}
}
