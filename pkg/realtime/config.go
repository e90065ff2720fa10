package realtime

import "time"

// Config holds websocket transport settings.
type Config struct {
	AllowedOrigins []string      `env:"REALTIME_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173"` // Origins allowed to open a channel. "*" allows any origin, empty means same-origin only.
	SendBuffer     int           `env:"REALTIME_SEND_BUFFER" envDefault:"32"`                                       // Outbound messages queued per channel before sends fail with ErrSlowConsumer.
	WriteTimeout   time.Duration `env:"REALTIME_WRITE_TIMEOUT" envDefault:"10s"`                                    // Deadline for a single socket write.
	PongWait       time.Duration `env:"REALTIME_PONG_WAIT" envDefault:"60s"`                                        // Time allowed without a pong before the channel is dropped.
	PingInterval   time.Duration `env:"REALTIME_PING_INTERVAL" envDefault:"50s"`                                    // Must be shorter than PongWait.
	MaxMessageSize int64         `env:"REALTIME_MAX_MESSAGE_SIZE" envDefault:"4096"`                                // Largest inbound frame accepted from a client.
}

// DefaultConfig returns the transport defaults.
func DefaultConfig() Config {
	return Config{
		AllowedOrigins: []string{"http://localhost:5173"},
		SendBuffer:     32,
		WriteTimeout:   10 * time.Second,
		PongWait:       60 * time.Second,
		PingInterval:   50 * time.Second,
		MaxMessageSize: 4096,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.SendBuffer <= 0 {
		c.SendBuffer = d.SendBuffer
	}
	if c.WriteTimeout <= 0 {
		c.WriteTimeout = d.WriteTimeout
	}
	if c.PongWait <= 0 {
		c.PongWait = d.PongWait
	}
	if c.PingInterval <= 0 || c.PingInterval >= c.PongWait {
		c.PingInterval = c.PongWait * 9 / 10
	}
	if c.MaxMessageSize <= 0 {
		c.MaxMessageSize = d.MaxMessageSize
	}
	return c
}
