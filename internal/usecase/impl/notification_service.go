package impl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	deliverycontext "shiptrack/internal/delivery/context"
	"shiptrack/internal/domain/entity"
	"shiptrack/internal/domain/service"
	"shiptrack/internal/usecase"
)

type notificationService struct {
	logger   *slog.Logger
	relay    service.NotificationService
	tasks    *TaskGroup
	tracking usecase.TrackingUsecase
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(
	logger *slog.Logger,
	relay service.NotificationService,
	tasks *TaskGroup,
	tracking usecase.TrackingUsecase,
) usecase.NotificationUsecase {
	return &notificationService{
		logger:   logger,
		relay:    relay,
		tasks:    tasks,
		tracking: tracking,
	}
}

// ShouldNotify is true for creations and for updates whose known prior status
// differs from the new one.
func (s *notificationService) ShouldNotify(n *usecase.StatusNotification) bool {
	if n == nil || n.Shipment == nil {
		return false
	}
	if n.IsNew {
		return true
	}

	return n.OldStatus != nil && *n.OldStatus != n.Shipment.Status
}

// Dispatch sends one combined email to sender and receiver, falling back to
// one email each when the combined send fails.
func (s *notificationService) Dispatch(ctx context.Context, n *usecase.StatusNotification) bool {
	if !s.ShouldNotify(n) {
		return false
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger).With(slog.String("tracking_number", n.Shipment.TrackingNo))
	if !s.relay.Configured() {
		logger.WarnContext(ctx, "Email relay not configured, skipping status email")

		return false
	}

	msg := s.compose(n.Shipment, n.IsNew, n.Remarks)
	recipients := recipientsOf(n.Shipment)
	if len(recipients) == 0 {
		logger.WarnContext(ctx, "Shipment has no contact emails, skipping status email")

		return false
	}

	s.tasks.Go(ctx, "status-email", func(ctx context.Context) {
		combined := *msg
		combined.To = strings.Join(recipients, ", ")
		combined.ToName = "Customer"

		err := s.relay.Send(ctx, &combined)
		if err == nil {
			logger.InfoContext(ctx, "Status email sent", slog.Int("recipients", len(recipients)))

			return
		}
		logger.WarnContext(ctx, "Combined status email failed, sending individually", slog.Any("error", err))

		for _, to := range recipients {
			single := *msg
			single.To = to
			single.ToName = localPart(to)
			if err := s.relay.Send(ctx, &single); err != nil {
				logger.ErrorContext(ctx, "Status email failed", slog.String("to", to), slog.Any("error", err))

				continue
			}
			logger.InfoContext(ctx, "Status email sent", slog.String("to", to))
		}
	})

	return true
}

// MailtoLinks builds the manual mailto: intents, one per contact.
func (s *notificationService) MailtoLinks(shipment *entity.Shipment, isNew bool) *usecase.MailtoLinks {
	msg := s.compose(shipment, isNew, shipment.Remarks())

	return &usecase.MailtoLinks{
		Sender:   mailto(shipment.Sender.Email, msg),
		Receiver: mailto(shipment.Receiver.Email, msg),
	}
}

func (s *notificationService) compose(shipment *entity.Shipment, isNew bool, remarks string) *service.RelayMessage {
	tn := shipment.TrackingNo
	link := s.tracking.TrackingLink(tn)
	location := shipment.Location
	if location == "" {
		location = "N/A"
	}
	when := FormatStatusTime(shipment.StatusDate, shipment.StatusTime)

	var subject, intro, statusLabel string
	if isNew {
		subject = "Your JP Logistics shipment has been created: " + tn
		intro = "Your shipment has been created with the following details:"
		statusLabel = "Status"
	} else {
		subject = "Shipment Status Update - " + tn
		intro = "Your shipment status has been updated:"
		statusLabel = "Current Status"
	}

	var body strings.Builder
	body.WriteString("Dear Customer,\n\n")
	body.WriteString(intro + "\n\n")
	fmt.Fprintf(&body, "Tracking Number: %s\n", tn)
	fmt.Fprintf(&body, "%s: %s\n", statusLabel, shipment.Status)
	fmt.Fprintf(&body, "Date & Time: %s\n", when)
	fmt.Fprintf(&body, "Location: %s\n\n", location)
	fmt.Fprintf(&body, "Track your shipment: %s\n\n", link)
	if remarks != "" {
		fmt.Fprintf(&body, "Remarks: %s\n\n", remarks)
	}
	body.WriteString("Best regards,\nJP Logistics Team")

	return &service.RelayMessage{
		Subject:   subject,
		Body:      body.String(),
		Tracking:  tn,
		TrackLink: link,
	}
}

func recipientsOf(shipment *entity.Shipment) []string {
	var out []string
	for _, email := range []string{shipment.Sender.Email, shipment.Receiver.Email} {
		if email = strings.TrimSpace(email); email != "" {
			out = append(out, email)
		}
	}

	return out
}

func localPart(email string) string {
	name, _, _ := strings.Cut(email, "@")

	return name
}

func mailto(to string, msg *service.RelayMessage) string {
	if strings.TrimSpace(to) == "" {
		return ""
	}

	query := url.Values{}
	query.Set("subject", msg.Subject)
	query.Set("body", msg.Body)

	// mailto bodies expect %20 rather than '+'.
	return "mailto:" + url.PathEscape(to) + "?" + strings.ReplaceAll(query.Encode(), "+", "%20")
}
