package realtime

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/dmitrymomot/pushkit/pkg/logger"
)

// IdentityResolver resolves the credentials carried by an inbound connection
// request to an authenticated user id.
type IdentityResolver interface {
	ResolveIdentity(r *http.Request) (string, error)
}

// IdentityResolverFunc adapts a function to IdentityResolver.
type IdentityResolverFunc func(r *http.Request) (string, error)

func (f IdentityResolverFunc) ResolveIdentity(r *http.Request) (string, error) {
	return f(r)
}

// Authenticator gates admission of channels into the registry.
type Authenticator struct {
	resolver IdentityResolver
	registry *Registry
	logger   *slog.Logger
}

// NewAuthenticator creates an authenticator admitting channels into registry.
func NewAuthenticator(resolver IdentityResolver, registry *Registry, log *slog.Logger) *Authenticator {
	if log == nil {
		log = slog.Default()
	}
	return &Authenticator{resolver: resolver, registry: registry, logger: log}
}

// Authenticate resolves the request's credentials to a user id.
// Any failure, including an empty identity, wraps ErrAuthenticationRejected.
func (a *Authenticator) Authenticate(r *http.Request) (string, error) {
	if a.resolver == nil {
		return "", ErrAuthenticationRejected
	}

	userID, err := a.resolver.ResolveIdentity(r)
	if err != nil {
		return "", errors.Join(ErrAuthenticationRejected, err)
	}
	if userID == "" {
		return "", ErrAuthenticationRejected
	}
	return userID, nil
}

// Admit registers ch as the delivery target for userID and arranges for the
// entry to be released when ch terminates.
func (a *Authenticator) Admit(ctx context.Context, userID string, ch Channel) *Admission {
	adm := &Admission{
		UserID:   userID,
		channel:  ch,
		registry: a.registry,
	}

	if prev := a.registry.Register(userID, ch); prev != nil && prev.ID() != ch.ID() {
		a.logger.LogAttrs(ctx, slog.LevelDebug, "Live channel superseded by a newer connection",
			logger.UserID(userID),
			logger.ChannelID(ch.ID()),
			slog.String("superseded_channel_id", prev.ID()),
		)
	}

	go func() {
		<-ch.Done()
		adm.Release()
	}()

	return adm
}

// Admission is a channel's membership in the registry.
type Admission struct {
	UserID string

	channel  Channel
	registry *Registry
	once     sync.Once
}

// Channel returns the admitted channel.
func (a *Admission) Channel() Channel {
	return a.channel
}

// Release removes the registry entry if it still refers to this admission's
// channel. It is safe to call multiple times.
func (a *Admission) Release() {
	a.once.Do(func() {
		a.registry.Unregister(a.UserID, a.channel)
	})
}
