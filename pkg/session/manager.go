package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/pushkit/pkg/logger"
)

// Manager issues and resolves sessions.
type Manager struct {
	store     Store
	transport Transport
	ttl       time.Duration
	logger    *slog.Logger
	random    io.Reader
}

// Option configures a Manager.
type Option func(*Manager)

// WithStore sets the session store. Defaults to an in-memory store.
func WithStore(store Store) Option {
	return func(m *Manager) {
		if store != nil {
			m.store = store
		}
	}
}

// WithTransport sets how tokens are read from requests.
func WithTransport(t Transport) Option {
	return func(m *Manager) {
		if t != nil {
			m.transport = t
		}
	}
}

// WithTTL sets the lifetime of issued sessions.
func WithTTL(ttl time.Duration) Option {
	return func(m *Manager) {
		if ttl > 0 {
			m.ttl = ttl
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithConfig applies TTL and transport settings from cfg.
func WithConfig(cfg Config) Option {
	return func(m *Manager) {
		if cfg.TTL > 0 {
			m.ttl = cfg.TTL
		}
		m.transport = NewCompositeTransport(
			NewHeaderTransport(cfg.HeaderName),
			NewQueryTransport(cfg.QueryParam),
		)
	}
}

// New creates a session manager.
func New(opts ...Option) *Manager {
	cfg := DefaultConfig()
	m := &Manager{
		ttl:    cfg.TTL,
		logger: slog.Default(),
		random: rand.Reader,
		transport: NewCompositeTransport(
			NewHeaderTransport(cfg.HeaderName),
			NewQueryTransport(cfg.QueryParam),
		),
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.store == nil {
		m.store = NewMemoryStore(cfg.CleanupInterval)
	}
	m.logger = m.logger.With(logger.Component("session"))

	return m
}

// Issue creates a session for userID and returns it with its token.
func (m *Manager) Issue(ctx context.Context, userID string) (*Session, error) {
	if userID == "" {
		return nil, ErrNotAuthenticated
	}

	token, err := m.generateToken()
	if err != nil {
		return nil, err
	}

	s := NewSession(token, userID, m.ttl)
	if err := m.store.Create(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// Resolve returns the authenticated session for token.
func (m *Manager) Resolve(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, ErrSessionNotFound
	}

	s, err := m.store.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	if !s.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}
	return s, nil
}

// Revoke ends the session identified by token.
func (m *Manager) Revoke(ctx context.Context, token string) error {
	return m.store.Delete(ctx, token)
}

// RevokeUser ends every session of userID.
func (m *Manager) RevokeUser(ctx context.Context, userID string) error {
	return m.store.DeleteByUserID(ctx, userID)
}

// FromRequest resolves the session carried by r.
func (m *Manager) FromRequest(r *http.Request) (*Session, error) {
	token, err := m.transport.GetToken(r)
	if err != nil {
		return nil, err
	}
	return m.Resolve(r.Context(), token)
}

// ResolveIdentity returns the user ID of the session carried by r.
func (m *Manager) ResolveIdentity(r *http.Request) (string, error) {
	s, err := m.FromRequest(r)
	if err != nil {
		return "", err
	}
	return s.UserID, nil
}

func (m *Manager) generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := io.ReadFull(m.random, b); err != nil {
		return "", errors.Join(ErrTokenGeneration, err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
