// Package httpserver runs the notification service's HTTP listener with
// graceful shutdown and health probes.
//
// Run listens, serves until the context is cancelled or SIGINT/SIGTERM
// arrives, then shuts down within the configured deadline. Hijacked
// connections such as websockets are invisible to http.Server.Shutdown, so
// callers that own them register a drain hook with WithOnShutdown; hooks run
// before the listener drains.
//
//	srv := httpserver.NewFromConfig(cfg,
//		httpserver.WithLogger(log),
//		httpserver.WithOnShutdown(func(context.Context) error { return hub.Close() }),
//	)
//	r.Get("/healthz", httpserver.HealthCheckHandler(log))
//	r.Get("/readyz", httpserver.HealthCheckHandler(log,
//		httpserver.Check{Name: "mongo", Probe: mongo.Healthcheck(client)},
//	))
//	err := srv.Run(ctx, r)
//
// Run wraps listen errors with ErrStart and Shutdown wraps drain errors with
// ErrShutdown.
package httpserver
