package main

import (
	"github.com/dmitrymomot/pushkit/pkg/config"
	"github.com/dmitrymomot/pushkit/pkg/httpserver"
	"github.com/dmitrymomot/pushkit/pkg/mongo"
	"github.com/dmitrymomot/pushkit/pkg/realtime"
	"github.com/dmitrymomot/pushkit/pkg/redis"
	"github.com/dmitrymomot/pushkit/pkg/session"
)

type appConfig struct {
	Env        string `env:"APP_ENV" envDefault:"development"`
	Name       string `env:"APP_NAME" envDefault:"notifyd"`
	SocketPath string `env:"APP_SOCKET_PATH" envDefault:"/socket"`
	APIPrefix  string `env:"APP_API_PREFIX" envDefault:"/api/notifications"`
	UsersColl  string `env:"APP_USERS_COLLECTION" envDefault:"users"`
	NotifColl  string `env:"APP_NOTIFICATIONS_COLLECTION" envDefault:"notifications"`
	HTTP       httpserver.Config
	Mongo      mongo.Config
	Redis      redis.Config
	Session    session.Config
	Realtime   realtime.Config
}

func loadConfig() (appConfig, error) {
	var        cfg appConfig
	err        := config.Load(&cfg)
	return     cfg, err
}
