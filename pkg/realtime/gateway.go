package realtime

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/pushkit/pkg/logger"
)

// Gateway pushes payloads to connected users.
type Gateway struct {
	registry *Registry
	logger   *slog.Logger
}

// NewGateway creates a gateway delivering through registry.
func NewGateway(registry *Registry, log *slog.Logger) *Gateway {
	if log == nil {
		log = slog.Default()
	}
	return &Gateway{registry: registry, logger: log}
}

// Deliver sends payload to userID's live channel and reports whether it was
// handed to the transport. An offline user is not an error. A transport
// failure is logged and reported as not delivered.
func (g *Gateway) Deliver(ctx context.Context, userID string, payload any) bool {
	ch, ok := g.registry.Lookup(userID)
	if !ok {
		g.logger.LogAttrs(ctx, slog.LevelDebug, "Recipient offline, push skipped",
			logger.UserID(userID),
		)
		return false
	}

	if err := ch.Send(ctx, EventNotification, payload); err != nil {
		g.logger.LogAttrs(ctx, slog.LevelWarn, "Failed to push to live channel",
			logger.UserID(userID),
			logger.ChannelID(ch.ID()),
			logger.Error(err),
		)
		return false
	}

	g.logger.LogAttrs(ctx, slog.LevelDebug, "Pushed to live channel",
		logger.UserID(userID),
		logger.ChannelID(ch.ID()),
	)
	return true
}

// Broadcast sends payload to every registered channel as an
// admin-notification event. Failures are logged per channel.
func (g *Gateway) Broadcast(ctx context.Context, payload any) {
	for userID, ch := range g.registry.Snapshot() {
		if err := ch.Send(ctx, EventAdminNotification, payload); err != nil {
			g.logger.LogAttrs(ctx, slog.LevelWarn, "Failed to broadcast to live channel",
				logger.UserID(userID),
				logger.ChannelID(ch.ID()),
				logger.Error(err),
			)
		}
	}
}

// Online reports whether userID currently has a live channel.
func (g *Gateway) Online(userID string) bool {
	_, ok := g.registry.Lookup(userID)
	return ok
}
