package notifications

import "errors"

var (
	// ErrNotFound is returned when a notification does not exist or belongs to another recipient.
	ErrNotFound = errors.New("notifications.not_found")

	// ErrPersistence wraps failures reported by the storage.
	ErrPersistence = errors.New("notifications.persistence_failure")

	// ErrInvalidNotification indicates missing or malformed notification fields.
	ErrInvalidNotification = errors.New("notifications.invalid_notification")

	// ErrInvalidRecipient indicates an empty recipient identity.
	ErrInvalidRecipient = errors.New("notifications.invalid_recipient")

	// ErrNoAdminDirectory is returned by admin fan-out when no directory is configured.
	ErrNoAdminDirectory = errors.New("notifications.no_admin_directory")

	// ErrDirectory wraps failures of the admin directory lookup.
	ErrDirectory = errors.New("notifications.directory_failure")

	// ErrNoBroadcaster is returned by Announce when no broadcaster is configured.
	ErrNoBroadcaster = errors.New("notifications.no_broadcaster")
)
