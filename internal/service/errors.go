// Package service provides application-level services coordinating the
// domain logic, stores, and event emission.
package service

import "errors"

// Common service errors - sentinel errors used across service implementations.
// Callers check for these with errors.Is(); the API layer maps them to
// HTTP status codes.
var (
	// ErrNotOwned indicates a resource is owned by a different user than the
	// one making the request. API layer should map this to HTTP 403 Forbidden.
	ErrNotOwned = errors.New("resource is owned by another user")

	// ErrMedicationNotFound indicates that the medication does not exist.
	// API layer should map this to HTTP 404 Not Found.
	ErrMedicationNotFound = errors.New("medication not found")

	// ErrEmailExists indicates the email address is already registered.
	// API layer should map this to HTTP 409 Conflict.
	ErrEmailExists = errors.New("email address already registered")

	// ErrInvalidCredentials indicates the email/password pair did not match
	// a registered user. API layer should map this to HTTP 401 Unauthorized.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
