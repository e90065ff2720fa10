package session

import "errors"

var (
	// ErrSessionNotFound indicates no session matches the token, or no token was sent.
	ErrSessionNotFound = errors.New("session.not_found")

	// ErrSessionExpired indicates the session has expired.
	ErrSessionExpired = errors.New("session.expired")

	// ErrInvalidSession indicates a malformed session value.
	ErrInvalidSession = errors.New("session.invalid")

	// ErrNotAuthenticated indicates the session carries no user.
	ErrNotAuthenticated = errors.New("session.not_authenticated")

	// ErrTokenGeneration indicates token generation failed.
	ErrTokenGeneration = errors.New("session.token_generation_failed")

	// ErrStore wraps failures of the underlying session store.
	ErrStore = errors.New("session.store_failure")
)
