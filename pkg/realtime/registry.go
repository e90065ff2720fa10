package realtime

import (
	"maps"
	"sync"
)

// Registry maps user ids to their current live channel.
// At most one channel is stored per user. All methods are safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	conns map[string]Channel
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{conns: make(map[string]Channel)}
}

// Register makes ch the delivery target for userID and returns the channel it
// replaced, if any. The replaced channel is left open.
func (r *Registry) Register(userID string, ch Channel) Channel {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev := r.conns[userID]
	r.conns[userID] = ch
	return prev
}

// Unregister removes the entry for userID only if it still refers to ch.
// It reports whether an entry was removed.
func (r *Registry) Unregister(userID string, ch Channel) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.conns[userID]
	if !ok || current.ID() != ch.ID() {
		return false
	}
	delete(r.conns, userID)
	return true
}

// Lookup returns the current channel for userID.
func (r *Registry) Lookup(userID string) (Channel, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ch, ok := r.conns[userID]
	return ch, ok
}

// Len returns the number of users with a live channel.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.conns)
}

// Snapshot returns a copy of the current user to channel mapping.
func (r *Registry) Snapshot() map[string]Channel {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return maps.Clone(r.conns)
}

// Close closes every registered channel and empties the registry.
func (r *Registry) Close() error {
	r.mu.Lock()
	conns := r.conns
	r.conns = make(map[string]Channel)
	r.mu.Unlock()

	for _, ch := range conns {
		_ = ch.Close()
	}
	return nil
}
