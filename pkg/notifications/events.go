package notifications

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/pushkit/pkg/async"
	"github.com/dmitrymomot/pushkit/pkg/logger"
)

// Notifier is the API exposed to event producers such as the submission
// workflow and admin tooling.
type Notifier interface {
	Create(ctx context.Context, p CreateParams) (*Notification, error)
	NotifyApproved(ctx context.Context, userID, restaurantName, restaurantID string) (*Notification, error)
	NotifyRejected(ctx context.Context, userID, restaurantName, submissionID, reason string) (*Notification, error)
	NotifyNewSubmission(ctx context.Context, restaurantName, submissionID string) ([]*Notification, error)
	NotifyPopularRestaurant(ctx context.Context, userID, restaurantName, restaurantID string) (*Notification, error)
	Announce(ctx context.Context, title, message, link string) error
}

var _ Notifier = (*Service)(nil)

// NotifyApproved tells the submitter their restaurant was accepted.
func (s *Service) NotifyApproved(ctx context.Context, userID, restaurantName, restaurantID string) (*Notification, error) {
	return s.Create(ctx, CreateParams{
		Recipient: userID,
		Type:      TypeSubmissionApproved,
		Title:     "Your restaurant submission was approved!",
		Message:   fmt.Sprintf("'%s' was approved and added to the restaurant list.", restaurantName),
		Data: map[string]any{
			DataRestaurantID:   restaurantID,
			DataRestaurantName: restaurantName,
		},
		Link: "/restaurant/" + restaurantID,
	})
}

// NotifyRejected tells the submitter their restaurant was declined.
// The reason is appended to the message only when non-empty.
func (s *Service) NotifyRejected(ctx context.Context, userID, restaurantName, submissionID, reason string) (*Notification, error) {
	message := fmt.Sprintf("'%s' submission was rejected.", restaurantName)
	data := map[string]any{
		DataSubmissionID:   submissionID,
		DataRestaurantName: restaurantName,
	}
	if reason != "" {
		message += " Reason: " + reason
		data[DataRejectionReason] = reason
	}

	return s.Create(ctx, CreateParams{
		Recipient: userID,
		Type:      TypeSubmissionRejected,
		Title:     "Your restaurant submission was rejected",
		Message:   message,
		Data:      data,
		Link:      "/dashboard",
	})
}

// NotifyPopularRestaurant tells a user their restaurant became popular.
func (s *Service) NotifyPopularRestaurant(ctx context.Context, userID, restaurantName, restaurantID string) (*Notification, error) {
	return s.Create(ctx, CreateParams{
		Recipient: userID,
		Type:      TypePopularRestaurant,
		Title:     "Your restaurant is trending!",
		Message:   fmt.Sprintf("'%s' is now one of the popular restaurants.", restaurantName),
		Data: map[string]any{
			DataRestaurantID:   restaurantID,
			DataRestaurantName: restaurantName,
		},
		Link: "/restaurant/" + restaurantID,
	})
}

// NotifyNewSubmission creates one notification per active administrator.
// Admins are processed concurrently and independently: every outcome is
// gathered, created records are returned, and failures are joined into the
// returned error.
func (s *Service) NotifyNewSubmission(ctx context.Context, restaurantName, submissionID string) ([]*Notification, error) {
	if s.directory == nil {
		return nil, ErrNoAdminDirectory
	}

	admins, err := s.directory.ActiveAdmins(ctx)
	if err != nil {
		return nil, errors.Join(ErrDirectory, err)
	}

	params := CreateParams{
		Type:    TypeNewSubmission,
		Title:   "New restaurant submission",
		Message: fmt.Sprintf("'%s' was submitted and needs review.", restaurantName),
		Data: map[string]any{
			DataSubmissionID:   submissionID,
			DataRestaurantName: restaurantName,
		},
		Link: "/submissions",
	}

	futures := make([]*async.Future[*Notification], 0, len(admins))
	for _, adminID := range admins {
		futures = append(futures, async.Async(ctx, adminID, func(ctx context.Context, adminID string) (*Notification, error) {
			p := params
			p.Recipient = adminID
			return s.Create(ctx, p)
		}))
	}

	created := make([]*Notification, 0, len(admins))
	var errs []error
	for i, outcome := range async.Settle(futures...) {
		if outcome.Err != nil {
			s.logger.LogAttrs(ctx, slog.LevelWarn, "admin notification failed",
				logger.UserID(admins[i]),
				logger.NotificationType(TypeNewSubmission.String()),
				logger.Error(outcome.Err),
			)
			errs = append(errs, fmt.Errorf("admin %s: %w", admins[i], outcome.Err))
			continue
		}
		created = append(created, outcome.Value)
	}

	s.logger.LogAttrs(ctx, slog.LevelInfo, "new submission fan-out finished",
		slog.String("submission_id", submissionID),
		logger.Count(len(created)),
		slog.Int("failed", len(errs)),
	)

	return created, errors.Join(errs...)
}

// Announce broadcasts an unpersisted message to every connected channel.
func (s *Service) Announce(ctx context.Context, title, message, link string) error {
	if s.broadcaster == nil {
		return ErrNoBroadcaster
	}
	if title == "" || message == "" {
		return errors.Join(ErrInvalidNotification, errors.New("title and message are required"))
	}

	s.broadcaster.Broadcast(ctx, Announcement{
		Title:     title,
		Message:   message,
		Link:      link,
		CreatedAt: s.timestamp(),
	})
	return nil
}
