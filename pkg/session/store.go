package session

import "context"

// Store defines the interface for session persistence.
type Store interface {
	// Create stores a new session.
	Create(ctx context.Context, session *Session) error

	// Get retrieves a session by token.
	// Returns ErrSessionNotFound or ErrSessionExpired.
	Get(ctx context.Context, token string) (*Session, error)

	// Delete removes a session by token. Deleting a missing token is not an error.
	Delete(ctx context.Context, token string) error

	// DeleteByUserID removes all sessions of a user.
	DeleteByUserID(ctx context.Context, userID string) error
}
