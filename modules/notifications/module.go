package notifications

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/pushkit/handler"
	"github.com/dmitrymomot/pushkit/pkg/binder"
	"github.com/dmitrymomot/pushkit/pkg/logger"
	"github.com/dmitrymomot/pushkit/pkg/notifications"
	"github.com/dmitrymomot/pushkit/pkg/session"
)

// Service is the subset of notifications.Service the routes use.
type Service interface {
	ListForUser(ctx context.Context, userID string, opts notifications.ListOptions) (*notifications.ListResult, error)
	MarkRead(ctx context.Context, id, userID string) (*notifications.Notification, error)
	MarkAllRead(ctx context.Context, userID string) (int64, error)
	Delete(ctx context.Context, id, userID string) error
	DeleteAll(ctx context.Context, userID string) (int64, error)
}

// IdentityFunc returns the authenticated user of a request context.
type IdentityFunc func(ctx context.Context) (string, bool)

// Module serves the notification routes.
type Module struct {
	svc      Service
	identity IdentityFunc
	logger   *slog.Logger
}

// Option configures a Module.
type Option func(*Module)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(m *Module) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithIdentity overrides how the current user is read from the request context.
// Defaults to session.UserIDFromContext.
func WithIdentity(f IdentityFunc) Option {
	return func(m *Module) {
		if f != nil {
			m.identity = f
		}
	}
}

// New creates the module.
func New(svc Service, opts ...Option) *Module {
	m := &Module{
		svc:      svc,
		identity: session.UserIDFromContext,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.logger = m.logger.With(logger.Component("notifications_api"))
	return m
}

// Handle returns the module router.
func (m *Module) Handle() http.Handler {
	r := chi.NewRouter()
	onError := handler.LoggingErrorHandler(m.logger)

	r.Get("/", handler.Wrap(m.list,
		handler.WithBinders[listRequest](binder.Query()),
		handler.WithErrorHandler[listRequest](onError),
	))
	r.Put("/read-all", handler.Wrap(m.markAllRead,
		handler.WithErrorHandler[struct{}](onError),
	))
	r.Put("/{id}/read", handler.Wrap(m.markRead,
		handler.WithBinders[idRequest](binder.Path(chi.URLParam)),
		handler.WithErrorHandler[idRequest](onError),
	))
	r.Delete("/all", handler.Wrap(m.deleteAll,
		handler.WithErrorHandler[struct{}](onError),
	))
	r.Delete("/{id}", handler.Wrap(m.delete,
		handler.WithBinders[idRequest](binder.Path(chi.URLParam)),
		handler.WithErrorHandler[idRequest](onError),
	))

	return r
}
