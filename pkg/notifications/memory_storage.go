package notifications

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"
)

// MemoryStorage is an in-memory implementation of the Storage interface.
// Suitable for development and testing.
type MemoryStorage struct {
	mu            sync.RWMutex
	notifications map[string][]Notification // recipient -> notifications
}

// NewMemoryStorage creates a new in-memory notification storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		notifications: make(map[string][]Notification),
	}
}

func (s *MemoryStorage) Create(ctx context.Context, n Notification) error {
	if n.ID == "" || n.Recipient == "" {
		return ErrInvalidNotification
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.notifications[n.Recipient] = append(s.notifications[n.Recipient], n.clone())
	return nil
}

func (s *MemoryStorage) Find(ctx context.Context, f Filter, p Page) ([]Notification, error) {
	s.mu.RLock()
	matched := make([]Notification, 0, len(s.notifications[f.Recipient]))
	for _, n := range s.notifications[f.Recipient] {
		if f.UnreadOnly && n.IsRead {
			continue
		}
		matched = append(matched, n.clone())
	}
	s.mu.RUnlock()

	slices.SortFunc(matched, func(a, b Notification) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})

	if p.Skip > 0 {
		if p.Skip >= len(matched) {
			return []Notification{}, nil
		}
		matched = matched[p.Skip:]
	}
	if p.Limit > 0 && p.Limit < len(matched) {
		matched = matched[:p.Limit]
	}

	return matched, nil
}

func (s *MemoryStorage) Count(ctx context.Context, f Filter) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int64
	for _, n := range s.notifications[f.Recipient] {
		if f.UnreadOnly && n.IsRead {
			continue
		}
		count++
	}
	return count, nil
}

func (s *MemoryStorage) MarkRead(ctx context.Context, id, recipient string, at time.Time) (*Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.notifications[recipient]
	for i := range list {
		if list[i].ID != id {
			continue
		}
		if !list[i].IsRead {
			list[i].IsRead = true
			list[i].UpdatedAt = at
		}
		n := list[i].clone()
		return &n, nil
	}

	return nil, ErrNotFound
}

func (s *MemoryStorage) MarkAllRead(ctx context.Context, recipient string, at time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var changed int64
	list := s.notifications[recipient]
	for i := range list {
		if list[i].IsRead {
			continue
		}
		list[i].IsRead = true
		list[i].UpdatedAt = at
		changed++
	}
	return changed, nil
}

func (s *MemoryStorage) Delete(ctx context.Context, id, recipient string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.notifications[recipient]
	idx := slices.IndexFunc(list, func(n Notification) bool { return n.ID == id })
	if idx < 0 {
		return ErrNotFound
	}

	s.notifications[recipient] = slices.Delete(list, idx, idx+1)
	return nil
}

func (s *MemoryStorage) DeleteAll(ctx context.Context, recipient string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := int64(len(s.notifications[recipient]))
	delete(s.notifications, recipient)
	return count, nil
}
