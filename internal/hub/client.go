package hub

import "hosteldesk/backend/internal/models"

// Client is the interface for any subscriber to the change feed: a
// WebSocket dashboard, the Telegram notifier, or a test double. It
// abstracts the delivery mechanism so the hub manages all of them
// uniformly.
type Client interface {
	// GetUserID returns the session user id the connection belongs to.
	GetUserID() string

	// GetSendChannel returns the channel the hub delivers events on.
	GetSendChannel() chan<- models.Event

	// Run starts the client's delivery loop.
	Run()
	// Close shuts the client down and releases its connection.
	Close()
}
