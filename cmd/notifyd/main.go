// Command notifyd serves the notification REST API and the realtime socket.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	api "github.com/dmitrymomot/pushkit/modules/notifications"
	"github.com/dmitrymomot/pushkit/pkg/httpserver"
	"github.com/dmitrymomot/pushkit/pkg/logger"
	"github.com/dmitrymomot/pushkit/pkg/mongo"
	"github.com/dmitrymomot/pushkit/pkg/notifications"
	"github.com/dmitrymomot/pushkit/pkg/realtime"
	"github.com/dmitrymomot/pushkit/pkg/redis"
	"github.com/dmitrymomot/pushkit/pkg/requestid"
	"github.com/dmitrymomot/pushkit/pkg/session"
	"github.com/dmitrymomot/pushkit/pkg/users"
)

const disconnectTimeout = 5 * time.Second

func main() {
	cfg, err := loadConfig()
	if err != nil {
		slog.Error("failed to load config", logger.Error(err))
		os.Exit(1)
	}

	log := logger.New(
		logger.WithEnvironment(cfg.Env, cfg.Name),
		logger.WithContextExtractors(requestid.LogAttr),
	)
	logger.SetAsDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("notifyd stopped with error", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg appConfig, log *slog.Logger) error {
	db, err := mongo.Connect(ctx, cfg.Mongo)
	if err != nil {
		return err
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), disconnectTimeout)
		defer cancel()
		if err := db.Client().Disconnect(dctx); err != nil {
			log.Warn("mongo disconnect failed", logger.Error(err))
		}
	}()

	rdb, err := redis.Connect(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Warn("redis close failed", logger.Error(err))
		}
	}()

	storage := notifications.NewMongoStorage(db, notifications.WithCollection(cfg.NotifColl))
	if err := storage.EnsureIndexes(ctx); err != nil {
		return err
	}

	sessions := session.New(
		session.WithConfig(cfg.Session),
		session.WithStore(session.NewRedisStore(rdb, session.WithKeyPrefix(cfg.Session.KeyPrefix))),
		session.WithLogger(log),
	)

	hub := realtime.New(sessions,
		realtime.WithConfig(cfg.Realtime),
		realtime.WithLogger(log),
	)

	svc := notifications.NewService(storage, hub.Gateway(),
		notifications.WithAdminDirectory(users.NewMongoDirectory(db, cfg.UsersColl)),
		notifications.WithServiceLogger(log),
	)

	r := newRouter(routes{
		socketPath: cfg.SocketPath,
		apiPrefix:  cfg.APIPrefix,
		hub:        hub,
		sessions:   sessions,
		api:        api.New(svc, api.WithLogger(log)),
		logger:     log,
		checks: []httpserver.Check{
			{Name: "mongo", Probe: mongo.Healthcheck(db.Client())},
			{Name: "redis", Probe: redis.Healthcheck(rdb)},
		},
	})

	srv := httpserver.NewFromConfig(cfg.HTTP,
		httpserver.WithLogger(log),
		httpserver.WithOnShutdown(func(context.Context) error { return hub.Close() }),
	)

	if err := srv.Run(ctx, r); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
