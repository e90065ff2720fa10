// Package config loads environment-based configuration into typed structs.
//
// Fields are described with caarlos0/env struct tags. A .env file in the
// working directory is read once, before the first Load, and never overrides
// variables that are already set:
//
//	type AppConfig struct {
//	    Env  string `env:"APP_ENV" envDefault:"development"`
//	    Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg AppConfig
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// Each struct type is parsed once per process; later calls for the same type
// return the cached value. Failed parses are not cached.
package config
