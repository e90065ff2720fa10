package notifications

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/pushkit/pkg/logger"
)

const (
	// DefaultListLimit is used when ListOptions.Limit is not positive.
	DefaultListLimit = 20
	// MaxListLimit caps ListOptions.Limit.
	MaxListLimit = 100
)

// Service orchestrates notification storage and delivery.
type Service struct {
	storage     Storage
	deliverer   Deliverer
	broadcaster Broadcaster
	directory   AdminDirectory
	logger      *slog.Logger
	now         func() time.Time
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithServiceLogger sets the logger for the Service.
func WithServiceLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithAdminDirectory sets the directory used by admin fan-out.
func WithAdminDirectory(d AdminDirectory) ServiceOption {
	return func(s *Service) {
		s.directory = d
	}
}

// WithBroadcaster sets the broadcaster used by Announce.
// Defaults to the deliverer when it also implements Broadcaster.
func WithBroadcaster(b Broadcaster) ServiceOption {
	return func(s *Service) {
		s.broadcaster = b
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService creates a notification service.
// A nil deliverer disables real-time push.
func NewService(storage Storage, deliverer Deliverer, opts ...ServiceOption) *Service {
	if deliverer == nil {
		deliverer = NoOpDeliverer{}
	}

	s := &Service{
		storage:   storage,
		deliverer: deliverer,
		logger:    slog.Default(),
		now:       time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.broadcaster == nil {
		if b, ok := deliverer.(Broadcaster); ok {
			s.broadcaster = b
		}
	}
	s.logger = s.logger.With(logger.Component("notifications"))

	return s
}

// CreateParams describes a notification to create.
type CreateParams struct {
	Recipient string
	Type      Type
	Title     string
	Message   string
	Data      map[string]any
	Link      string
}

func (p CreateParams) validate() error {
	switch {
	case p.Recipient == "":
		return errors.Join(ErrInvalidNotification, ErrInvalidRecipient)
	case !p.Type.Valid():
		return errors.Join(ErrInvalidNotification, fmt.Errorf("unknown type %q", p.Type))
	case p.Title == "":
		return errors.Join(ErrInvalidNotification, errors.New("title is required"))
	case p.Message == "":
		return errors.Join(ErrInvalidNotification, errors.New("message is required"))
	}
	return nil
}

// Create persists a notification and then attempts to push it to the recipient.
// Push outcome never affects the result; a storage failure aborts before any push.
func (s *Service) Create(ctx context.Context, p CreateParams) (*Notification, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, errors.Join(ErrPersistence, err)
	}

	now := s.timestamp()
	n := Notification{
		ID:        id.String(),
		Recipient: p.Recipient,
		Type:      p.Type,
		Title:     p.Title,
		Message:   p.Message,
		Data:      maps.Clone(p.Data),
		Link:      p.Link,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.storage.Create(ctx, n); err != nil {
		return nil, errors.Join(ErrPersistence, err)
	}

	delivered := s.deliverer.Deliver(ctx, n.Recipient, n.Payload())
	s.logger.LogAttrs(ctx, slog.LevelDebug, "notification created",
		logger.NotificationID(n.ID),
		logger.NotificationType(n.Type.String()),
		logger.UserID(n.Recipient),
		slog.Bool("delivered", delivered),
	)

	return &n, nil
}

// ListOptions controls ListForUser pagination and filtering.
type ListOptions struct {
	Limit      int
	Skip       int
	UnreadOnly bool
}

// ListResult is a page of notifications plus counters.
// Total matches the filter ignoring pagination. UnreadCount ignores both.
type ListResult struct {
	Notifications []Notification `json:"notifications"`
	Total         int64          `json:"total"`
	UnreadCount   int64          `json:"unreadCount"`
}

// ListForUser returns the user's notifications, newest first.
func (s *Service) ListForUser(ctx context.Context, userID string, opts ListOptions) (*ListResult, error) {
	if userID == "" {
		return nil, ErrInvalidRecipient
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	limit = min(limit, MaxListLimit)
	skip := max(opts.Skip, 0)

	filter := Filter{Recipient: userID, UnreadOnly: opts.UnreadOnly}

	list, err := s.storage.Find(ctx, filter, Page{Limit: limit, Skip: skip})
	if err != nil {
		return nil, errors.Join(ErrPersistence, err)
	}

	total, err := s.storage.Count(ctx, filter)
	if err != nil {
		return nil, errors.Join(ErrPersistence, err)
	}

	unread := total
	if !opts.UnreadOnly {
		unread, err = s.storage.Count(ctx, Filter{Recipient: userID, UnreadOnly: true})
		if err != nil {
			return nil, errors.Join(ErrPersistence, err)
		}
	}

	return &ListResult{
		Notifications: list,
		Total:         total,
		UnreadCount:   unread,
	}, nil
}

// MarkRead marks the user's notification as read. Marking twice is a no-op success.
func (s *Service) MarkRead(ctx context.Context, id, userID string) (*Notification, error) {
	if userID == "" {
		return nil, ErrInvalidRecipient
	}
	if id == "" {
		return nil, ErrNotFound
	}

	n, err := s.storage.MarkRead(ctx, id, userID, s.timestamp())
	if err != nil {
		return nil, storageError(err)
	}
	return n, nil
}

// MarkAllRead marks every unread notification of the user as read and
// returns how many records changed.
func (s *Service) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	if userID == "" {
		return 0, ErrInvalidRecipient
	}

	changed, err := s.storage.MarkAllRead(ctx, userID, s.timestamp())
	if err != nil {
		return 0, errors.Join(ErrPersistence, err)
	}
	return changed, nil
}

// Delete permanently removes the user's notification.
func (s *Service) Delete(ctx context.Context, id, userID string) error {
	if userID == "" {
		return ErrInvalidRecipient
	}
	if id == "" {
		return ErrNotFound
	}

	if err := s.storage.Delete(ctx, id, userID); err != nil {
		return storageError(err)
	}
	return nil
}

// DeleteAll removes every notification of the user and returns the count removed.
func (s *Service) DeleteAll(ctx context.Context, userID string) (int64, error) {
	if userID == "" {
		return 0, ErrInvalidRecipient
	}

	deleted, err := s.storage.DeleteAll(ctx, userID)
	if err != nil {
		return 0, errors.Join(ErrPersistence, err)
	}
	return deleted, nil
}

// Mongo stores datetimes with millisecond precision.
func (s *Service) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Millisecond)
}

func storageError(err error) error {
	if errors.Is(err, ErrNotFound) {
		return ErrNotFound
	}
	return errors.Join(ErrPersistence, err)
}
