// Package notifications owns the durable notification lifecycle and pushes
// new records to connected recipients.
//
// A Service composes a Storage with a Deliverer. Creation persists first and
// only then attempts a best-effort push; a recipient that is offline simply
// finds the record later through ListForUser.
//
//	svc := notifications.NewService(
//	    notifications.NewMongoStorage(db),
//	    hub.Gateway(),
//	    notifications.WithAdminDirectory(users.NewMongoDirectory(db)),
//	    notifications.WithServiceLogger(log),
//	)
//
//	n, err := svc.NotifyApproved(ctx, userID, "Kimchi House", restaurantID)
//
// Event helpers (NotifyApproved, NotifyRejected, NotifyNewSubmission,
// NotifyPopularRestaurant) are thin wrappers over Create with fixed types and
// templated text. NotifyNewSubmission fans out concurrently to every active
// administrator; each admin is an independent unit of work.
//
// Records are scoped to their recipient. Reads, updates and deletes of an id
// owned by someone else fail with ErrNotFound.
package notifications
