package domain

import "errors"

// Sentinel errors shared across services. The HTTP layer owns the mapping to
// status codes (internal/api/error_handler.go); services only wrap these.
var (
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// the two cases stay indistinguishable to callers.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrStorageUnavailable marks a failed storage round-trip on an
	// auth-critical path. Distinct from ErrInvalidCredentials so sign-in can
	// answer 503 instead of 401 when the database is down.
	ErrStorageUnavailable = errors.New("storage unavailable")

	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user already exists")

	ErrNotFound   = errors.New("record not found")
	ErrSlugExists = errors.New("slug already in use")

	ErrInvalidRole      = errors.New("invalid role")
	ErrInvalidEventType = errors.New("invalid event type")
)
