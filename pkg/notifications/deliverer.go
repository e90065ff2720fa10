package notifications

import "context"

// Deliverer pushes a payload to a connected user.
// A false result means the user was not reached; it is never an error.
type Deliverer interface {
	Deliver(ctx context.Context, userID string, payload any) bool
}

// Broadcaster pushes a payload to every connected channel.
type Broadcaster interface {
	Broadcast(ctx context.Context, payload any)
}

// NoOpDeliverer reaches nobody.
// Useful for tests or when real-time delivery is not needed.
type NoOpDeliverer struct{}

// Deliver does nothing and returns false.
func (NoOpDeliverer) Deliver(ctx context.Context, userID string, payload any) bool {
	return false
}

// Broadcast does nothing.
func (NoOpDeliverer) Broadcast(ctx context.Context, payload any) {}
