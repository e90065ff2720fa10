package session

import "time"

// Config holds session settings.
type Config struct {
	TTL             time.Duration `env:"SESSION_TTL" envDefault:"720h"`
	CleanupInterval time.Duration `env:"SESSION_CLEANUP_INTERVAL" envDefault:"5m"`
	HeaderName      string        `env:"SESSION_HEADER" envDefault:"Authorization"`
	QueryParam      string        `env:"SESSION_QUERY_PARAM" envDefault:"token"`
	KeyPrefix       string        `env:"SESSION_KEY_PREFIX" envDefault:"session"`
}

// DefaultConfig returns Config with defaults applied.
func DefaultConfig() Config {
	return Config{
		TTL:             720 * time.Hour,
		CleanupInterval: 5 * time.Minute,
		HeaderName:      "Authorization",
		QueryParam:      "token",
		KeyPrefix:       defaultKeyPrefix,
	}
}
