package notifications

import (
	"context"
	"time"
)

// Storage handles notification persistence.
// Every operation is scoped to a recipient; ids owned by another recipient
// behave as missing and yield ErrNotFound.
type Storage interface {
	// Create stores a new notification.
	Create(ctx context.Context, n Notification) error

	// Find returns notifications matching f, newest first (CreatedAt desc, ID desc).
	Find(ctx context.Context, f Filter, p Page) ([]Notification, error)

	// Count returns the number of notifications matching f, ignoring pagination.
	Count(ctx context.Context, f Filter) (int64, error)

	// MarkRead sets IsRead on the recipient's notification and returns it.
	// Already-read records are returned unchanged.
	MarkRead(ctx context.Context, id, recipient string, at time.Time) (*Notification, error)

	// MarkAllRead marks every unread notification of the recipient as read
	// and returns the number actually changed.
	MarkAllRead(ctx context.Context, recipient string, at time.Time) (int64, error)

	// Delete removes the recipient's notification.
	Delete(ctx context.Context, id, recipient string) error

	// DeleteAll removes every notification of the recipient and returns the count removed.
	DeleteAll(ctx context.Context, recipient string) (int64, error)
}

// Filter selects notifications of a recipient.
type Filter struct {
	Recipient  string
	UnreadOnly bool
}

// Page bounds a Find result. Limit <= 0 means no limit.
type Page struct {
	Limit int
	Skip  int
}
