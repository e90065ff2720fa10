package notifications

import "context"

// AdminDirectory lists the identities of currently active administrators.
// It is queried on every fan-out, never cached.
type AdminDirectory interface {
	ActiveAdmins(ctx context.Context) ([]string, error)
}

// AdminDirectoryFunc adapts a function to AdminDirectory.
type AdminDirectoryFunc func(ctx context.Context) ([]string, error)

func (f AdminDirectoryFunc) ActiveAdmins(ctx context.Context) ([]string, error) {
	return f(ctx)
}
