package realtime

import "context"

// Event names carried in the envelope of every pushed message.
const (
	EventConnected         = "connected"
	EventNotification      = "notification"
	EventAdminNotification = "admin-notification"
)

// Envelope is the wire format of a pushed message.
type Envelope struct {
	Event string `json:"event"`
	Data  any    `json:"data,omitempty"`
}

// Channel is a live bidirectional connection to one client instance.
// Implementations must be safe for concurrent use.
type Channel interface {
	// ID uniquely identifies the channel for the lifetime of the process.
	ID() string

	// Send queues an event for the client. It must not block on network I/O.
	Send(ctx context.Context, event string, payload any) error

	// Done is closed when the channel terminates for any reason.
	Done() <-chan struct{}

	// Close terminates the channel. It is idempotent.
	Close() error
}
