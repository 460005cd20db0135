package service

import (
	"context"
)

// RelayMessage is one templated email handed to the relay.
type RelayMessage struct {
	To        string // One address, or several joined by ", ".
	ToName    string
	Subject   string
	Body      string
	Tracking  string
	TrackLink string
}

// NotificationService defines the interface for the third-party email relay
type NotificationService interface {
	// Configured reports whether relay credentials are present. An
	// unconfigured relay means customer emails are skipped entirely.
	Configured() bool

	// Send delivers a single message through the relay.
	Send(ctx context.Context, msg *RelayMessage) error
}
