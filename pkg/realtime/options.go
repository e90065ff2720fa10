package realtime

import "log/slog"

// Option configures a Hub.
type Option func(*Hub)

// WithLogger sets the logger used by the hub and its components.
func WithLogger(l *slog.Logger) Option {
	return func(h *Hub) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithConfig sets the websocket transport configuration.
func WithConfig(cfg Config) Option {
	return func(h *Hub) {
		h.config = cfg
	}
}

// WithRegistry makes the hub use an existing registry.
func WithRegistry(r *Registry) Option {
	return func(h *Hub) {
		if r != nil {
			h.registry = r
		}
	}
}
