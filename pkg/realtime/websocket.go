package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/dmitrymomot/pushkit/pkg/logger"
)

// wsChannel is a Channel backed by a gorilla websocket connection.
// Sends are queued and written by a dedicated goroutine.
type wsChannel struct {
	id     string
	conn   *websocket.Conn
	cfg    Config
	logger *slog.Logger

	outbound  chan []byte
	done      chan struct{}
	closeOnce sync.Once
}

func newWSChannel(conn *websocket.Conn, cfg Config, log *slog.Logger) *wsChannel {
	id := uuid.New().String()
	return &wsChannel{
		id:       id,
		conn:     conn,
		cfg:      cfg,
		logger:   log.With(logger.ChannelID(id)),
		outbound: make(chan []byte, cfg.SendBuffer),
		done:     make(chan struct{}),
	}
}

func (c *wsChannel) ID() string { return c.id }

func (c *wsChannel) Done() <-chan struct{} { return c.done }

func (c *wsChannel) Send(_ context.Context, event string, payload any) error {
	msg, err := json.Marshal(Envelope{Event: event, Data: payload})
	if err != nil {
		return err
	}

	select {
	case <-c.done:
		return ErrChannelClosed
	default:
	}

	select {
	case c.outbound <- msg:
		return nil
	case <-c.done:
		return ErrChannelClosed
	default:
		return ErrSlowConsumer
	}
}

func (c *wsChannel) Close() error {
	c.closeOnce.Do(func() {
		close(c.done)
		deadline := time.Now().Add(c.cfg.WriteTimeout)
		_ = c.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), deadline)
		_ = c.conn.Close()
	})
	return nil
}

// run pumps the connection until it fails, the client goes away or ctx is
// cancelled. It always closes the channel before returning.
func (c *wsChannel) run(ctx context.Context) {
	defer c.Close()

	go c.writeLoop()
	go func() {
		select {
		case <-ctx.Done():
			c.Close()
		case <-c.done:
		}
	}()

	c.readLoop()
}

// readLoop discards client frames; it exists to process control frames and to
// notice when the peer disconnects.
func (c *wsChannel) readLoop() {
	c.conn.SetReadLimit(c.cfg.MaxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(c.cfg.PongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(c.cfg.PongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) &&
				!errors.Is(err, websocket.ErrCloseSent) {
				c.logger.Debug("Channel read failed", logger.Error(err))
			}
			return
		}
	}
}

func (c *wsChannel) writeLoop() {
	ticker := time.NewTicker(c.cfg.PingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return
		case msg := <-c.outbound:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.cfg.WriteTimeout))
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				c.logger.Warn("Channel write failed", logger.Error(err))
				c.Close()
				return
			}
		case <-ticker.C:
			deadline := time.Now().Add(c.cfg.WriteTimeout)
			if err := c.conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				// Expected when the peer went away without a close frame.
				c.logger.Debug("Channel ping failed", logger.Error(err))
				c.Close()
				return
			}
		}
	}
}
