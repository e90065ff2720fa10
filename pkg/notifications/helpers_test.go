package notifications_test

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/dmitrymomot/pushkit/pkg/notifications"
)

// MockStorage for testing Service
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Create(ctx context.Context, n notifications.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockStorage) Find(ctx context.Context, f notifications.Filter, p notifications.Page) ([]notifications.Notification, error) {
	args := m.Called(ctx, f, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]notifications.Notification), args.Error(1)
}

func (m *MockStorage) Count(ctx context.Context, f notifications.Filter) (int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStorage) MarkRead(ctx context.Context, id, recipient string, at time.Time) (*notifications.Notification, error) {
	args := m.Called(ctx, id, recipient, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notifications.Notification), args.Error(1)
}

func (m *MockStorage) MarkAllRead(ctx context.Context, recipient string, at time.Time) (int64, error) {
	args := m.Called(ctx, recipient, at)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStorage) Delete(ctx context.Context, id, recipient string) error {
	args := m.Called(ctx, id, recipient)
	return args.Error(0)
}

func (m *MockStorage) DeleteAll(ctx context.Context, recipient string) (int64, error) {
	args := m.Called(ctx, recipient)
	return args.Get(0).(int64), args.Error(1)
}

// MockDeliverer for testing Service
type MockDeliverer struct {
	mock.Mock
}

func (m *MockDeliverer) Deliver(ctx context.Context, userID string, payload any) bool {
	args := m.Called(ctx, userID, payload)
	return args.Bool(0)
}

// recordingDeliverer delivers to a fixed set of online users and records payloads.
type recordingDeliverer struct {
	mu         sync.Mutex
	online     map[string]bool
	delivered  map[string][]any
	broadcasts []any
}

func newRecordingDeliverer(online ...string) *recordingDeliverer {
	d := &recordingDeliverer{
		online:    make(map[string]bool),
		delivered: make(map[string][]any),
	}
	for _, u := range online {
		d.online[u] = true
	}
	return d
}

func (d *recordingDeliverer) Deliver(ctx context.Context, userID string, payload any) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.online[userID] {
		return false
	}
	d.delivered[userID] = append(d.delivered[userID], payload)
	return true
}

func (d *recordingDeliverer) Broadcast(ctx context.Context, payload any) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.broadcasts = append(d.broadcasts, payload)
}

func (d *recordingDeliverer) payloads(userID string) []any {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]any(nil), d.delivered[userID]...)
}

// failingStorage wraps MemoryStorage and fails Create for selected recipients.
type failingStorage struct {
	*notifications.MemoryStorage
	failFor map[string]error
}

func (s *failingStorage) Create(ctx context.Context, n notifications.Notification) error {
	if err, ok := s.failFor[n.Recipient]; ok {
		return err
	}
	return s.MemoryStorage.Create(ctx, n)
}
