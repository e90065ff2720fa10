package realtime

import (
	"context"
	"log/slog"
	"net/http"
	"slices"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/dmitrymomot/pushkit/pkg/logger"
)

// Hub owns the process-wide registry together with the gateway, the
// authenticator and the websocket endpoint built on top of it.
type Hub struct {
	config   Config
	logger   *slog.Logger
	registry *Registry

	gateway  *Gateway
	auth     *Authenticator
	upgrader websocket.Upgrader

	ctx    context.Context
	cancel context.CancelFunc
	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

// New creates a hub that authenticates channels with resolver.
func New(resolver IdentityResolver, opts ...Option) *Hub {
	h := &Hub{
		config: DefaultConfig(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}

	h.config = h.config.withDefaults()
	h.logger = h.logger.With(logger.Component("realtime"))
	if h.registry == nil {
		h.registry = NewRegistry()
	}

	h.gateway = NewGateway(h.registry, h.logger)
	h.auth = NewAuthenticator(resolver, h.registry, h.logger)
	h.upgrader = websocket.Upgrader{
		CheckOrigin: originChecker(h.config.AllowedOrigins),
	}
	h.ctx, h.cancel = context.WithCancel(context.Background())

	return h
}

// Registry returns the hub's connection registry.
func (h *Hub) Registry() *Registry { return h.registry }

// Gateway returns the hub's push gateway.
func (h *Hub) Gateway() *Gateway { return h.gateway }

// Authenticator returns the hub's channel authenticator.
func (h *Hub) Authenticator() *Authenticator { return h.auth }

// Handler returns the websocket endpoint.
func (h *Hub) Handler() http.Handler {
	return http.HandlerFunc(h.serveWS)
}

// Close disconnects every channel and waits for their handlers to return.
// New connections are refused afterwards.
func (h *Hub) Close() error {
	h.mu.Lock()
	h.closed = true
	h.mu.Unlock()

	h.cancel()
	err := h.registry.Close()
	h.wg.Wait()
	return err
}

type connectedPayload struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

func (h *Hub) serveWS(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if !h.track() {
		http.Error(w, ErrHubClosed.Error(), http.StatusServiceUnavailable)
		return
	}
	defer h.wg.Done()

	userID, err := h.auth.Authenticate(r)
	if err != nil {
		h.logger.LogAttrs(ctx, slog.LevelDebug, "Channel rejected", logger.Error(err))
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// The upgrader has already replied with an HTTP error.
		h.logger.LogAttrs(ctx, slog.LevelDebug, "Websocket upgrade failed",
			logger.UserID(userID),
			logger.Error(err),
		)
		return
	}

	ch := newWSChannel(conn, h.config, h.logger.With(logger.UserID(userID)))
	adm := h.auth.Admit(ctx, userID, ch)
	defer adm.Release()

	h.logger.LogAttrs(ctx, slog.LevelInfo, "Channel connected",
		logger.UserID(userID),
		logger.ChannelID(ch.ID()),
	)

	_ = ch.Send(ctx, EventConnected, connectedPayload{
		Message: "Real-time notifications enabled",
		UserID:  userID,
	})

	ch.run(h.ctx)

	h.logger.LogAttrs(ctx, slog.LevelInfo, "Channel disconnected",
		logger.UserID(userID),
		logger.ChannelID(ch.ID()),
	)
}

// track registers a running handler unless the hub is closed.
func (h *Hub) track() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.wg.Add(1)
	return true
}

// originChecker allows requests whose Origin header is listed. An empty list
// keeps gorilla's same-origin check.
func originChecker(allowed []string) func(*http.Request) bool {
	if len(allowed) == 0 {
		return nil
	}
	if slices.Contains(allowed, "*") {
		return func(*http.Request) bool { return true }
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return origin == "" || slices.Contains(allowed, origin)
	}
}
