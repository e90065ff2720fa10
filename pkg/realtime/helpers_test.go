package realtime_test

import (
	"context"
	"sync"

	"github.com/dmitrymomot/pushkit/pkg/realtime"
)

type fakeChannel struct {
	id   string
	mu   sync.Mutex
	sent []realtime.Envelope
	err  error

	done chan struct{}
	once sync.Once
}

func newFakeChannel(id string) *fakeChannel {
	return &fakeChannel{id: id, done: make(chan struct{})}
}

func (c *fakeChannel) ID() string { return c.id }

func (c *fakeChannel) Done() <-chan struct{} { return c.done }

func (c *fakeChannel) Send(_ context.Context, event string, payload any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	c.sent = append(c.sent, realtime.Envelope{Event: event, Data: payload})
	return nil
}

func (c *fakeChannel) Close() error {
	c.once.Do(func() { close(c.done) })
	return nil
}

func (c *fakeChannel) failWith(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.err = err
}

func (c *fakeChannel) messages() []realtime.Envelope {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]realtime.Envelope(nil), c.sent...)
}

func (c *fakeChannel) closed() bool {
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}
