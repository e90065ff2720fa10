package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	api "github.com/dmitrymomot/pushkit/modules/notifications"
	"github.com/dmitrymomot/pushkit/pkg/httpserver"
	"github.com/dmitrymomot/pushkit/pkg/realtime"
	"github.com/dmitrymomot/pushkit/pkg/requestid"
	"github.com/dmitrymomot/pushkit/pkg/session"
)

type routes struct {
	socketPath string
	apiPrefix  string
	hub        *realtime.Hub
	sessions   *session.Manager
	api        *api.Module
	checks     []httpserver.Check
	logger     *slog.Logger
}

func newRouter(rt routes) http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware, middleware.RealIP, middleware.Recoverer, rt.hub.Middleware)

	r.Get("/healthz", httpserver.HealthCheckHandler(rt.logger))
	r.Get("/readyz", httpserver.HealthCheckHandler(rt.logger, rt.checks...))
	r.Handle(rt.socketPath, rt.hub.Handler())
	r.With(rt.sessions.RequireAuth).Mount(rt.apiPrefix, rt.api.Handle())

	return r
}
