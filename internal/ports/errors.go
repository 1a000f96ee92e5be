package ports

import "errors"

// Sentinel errors shared across port implementations.
var (
	// ErrInvalidCredentials is returned by IdentityProvider.SignIn for a bad
	// email/password pair.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrProfileNotFound is returned by ProfileSource.GetProfile when no
	// profile row exists for the subject.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrSessionNotFound is returned by SessionStore.Get for unknown or
	// expired session ids.
	ErrSessionNotFound = errors.New("session not found")
)
