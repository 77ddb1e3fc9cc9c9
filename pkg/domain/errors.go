package domain

import "errors"

// Common domain errors
var (
	// ErrNotFound is returned when a requested resource is absent or not
	// owned by the caller. Handlers must not distinguish the two cases.
	ErrNotFound = errors.New("resource not found")
	// ErrValidation is returned when input validation fails
	ErrValidation = errors.New("validation error")
	// ErrConflict is returned when a business rule rejects an otherwise
	// valid request, e.g. a second active goal for the same user
	ErrConflict = errors.New("resource conflict")
	// ErrUnauthenticated is returned when no user identity is resolved
	ErrUnauthenticated = errors.New("not authenticated")
)
