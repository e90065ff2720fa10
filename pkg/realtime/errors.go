package realtime

import "errors"

var (
	// ErrAuthenticationRejected means the connection's credentials did not
	// resolve to a user. The channel is refused before it reaches the registry.
	ErrAuthenticationRejected = errors.New("realtime: authentication rejected")

	// ErrChannelClosed is returned when sending to a channel that has terminated.
	ErrChannelClosed = errors.New("realtime: channel closed")

	// ErrSlowConsumer is returned when a channel's outbound buffer is full.
	ErrSlowConsumer = errors.New("realtime: outbound buffer full")

	// ErrHubClosed is returned for admissions attempted after Hub.Close.
	ErrHubClosed = errors.New("realtime: hub closed")
)
