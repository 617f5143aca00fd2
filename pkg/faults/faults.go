// Package faults defines the error taxonomy shared by all domain systems.
// A *Error carries the failure kind along with the entity type and identifier
// it concerns, and unwraps to one of the kind sentinels so callers can branch
// with errors.Is.
package faults

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind sentinels.
var (
	ErrNotFound           = errors.New("not found")
	ErrAlreadyExists      = errors.New("already exists")
	ErrInvalidInput       = errors.New("invalid input")
	ErrVerificationFailed = errors.New("verification failed")
)

// Error describes a failure concerning a specific entity.
type Error struct {
	Kind       error
	Entity     string
	Identifier string
	Detail     string
}

// NotFound reports that no entity matched identifier.
func NotFound(entity, identifier string) *Error {
	return &Error{Kind: ErrNotFound, Entity: entity, Identifier: identifier}
}

// AlreadyExists reports that an entity with identifier is already registered.
func AlreadyExists(entity, identifier string) *Error {
	return &Error{Kind: ErrAlreadyExists, Entity: entity, Identifier: identifier}
}

// InvalidInput reports that a request concerning entity could not be accepted.
func InvalidInput(entity, identifier, detail string) *Error {
	return &Error{Kind: ErrInvalidInput, Entity: entity, Identifier: identifier, Detail: detail}
}

// VerificationFailed reports that a verification could not be completed.
func VerificationFailed(entity, identifier, detail string) *Error {
	return &Error{Kind: ErrVerificationFailed, Entity: entity, Identifier: identifier, Detail: detail}
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrNotFound:
		return fmt.Sprintf("%s not found with identifier: %s", e.Entity, e.Identifier)
	case ErrAlreadyExists:
		return fmt.Sprintf("%s with identifier %s already exists", e.Entity, e.Identifier)
	case ErrInvalidInput:
		if e.Identifier == "" {
			return fmt.Sprintf("invalid input for %s: %s", e.Entity, e.Detail)
		}
		return fmt.Sprintf("invalid input for %s with identifier %s: %s", e.Entity, e.Identifier, e.Detail)
	case ErrVerificationFailed:
		return fmt.Sprintf("verification failed for %s with identifier %s: %s", e.Entity, e.Identifier, e.Detail)
	}
	return fmt.Sprintf("%s %s: %s", e.Entity, e.Identifier, e.Detail)
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// Code returns the stable machine-readable code for the error kind.
func (e *Error) Code() string {
	switch e.Kind {
	case ErrNotFound:
		return "NOT_FOUND"
	case ErrAlreadyExists:
		return "ALREADY_EXISTS"
	case ErrInvalidInput:
		return "INVALID_INPUT"
	case ErrVerificationFailed:
		return "VERIFICATION_FAILED"
	}
	return "INTERNAL_ERROR"
}

// MapHTTPStatus maps kind sentinels to HTTP status codes.
// Errors outside the taxonomy map to 500.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrAlreadyExists), errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrVerificationFailed):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
