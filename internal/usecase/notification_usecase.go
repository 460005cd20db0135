package usecase

import (
	"context"

	"shiptrack/internal/domain/entity"
)

// StatusNotification describes one mutation that may warrant a customer email.
type StatusNotification struct {
	IsNew     bool
	OldStatus *string // nil when the prior status is unknown
	Shipment  *entity.Shipment
	Remarks   string
}

// MailtoLinks are the operator-triggered manual email intents.
type MailtoLinks struct {
	Sender   string `json:"sender"`
	Receiver string `json:"receiver"`
}

// NotificationUsecase defines the interface for customer status emails
type NotificationUsecase interface {
	// ShouldNotify reports whether n is a creation or a real status change.
	ShouldNotify(n *StatusNotification) bool

	// Dispatch schedules the relay sends for n in the background and reports
	// whether anything was scheduled. Delivery results only reach the log.
	Dispatch(ctx context.Context, n *StatusNotification) bool

	// MailtoLinks builds the manual mailto: intents for a shipment.
	MailtoLinks(shipment *entity.Shipment, isNew bool) *MailtoLinks
}
