// Package common contains shared constants and sentinel errors used across
// the back-office store layers. Callers should match these with errors.Is.
package common

import "errors"

var (
	// Storage-level errors.
	ErrNotFound      = errors.New("not found")
	ErrQuotaExceeded = errors.New("storage quota exceeded")

	// Credential-subsystem errors. Both sign-in failure modes map to the
	// same value so callers cannot tell a bad email from a bad password.
	ErrDuplicateEmail     = errors.New("an account with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Generic internal failure surfaced by services.
	ErrInternal = errors.New("internal error")
)
