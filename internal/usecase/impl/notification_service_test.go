package impl

import (
	"context"
	"strings"
	"testing"

	"shiptrack/internal/domain/entity"
	"shiptrack/internal/domain/repository"
	"shiptrack/internal/domain/service"
	mockSvc "shiptrack/internal/mocks/service"
	"shiptrack/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestNotificationService(t *testing.T) (*notificationService, *mockSvc.MockNotificationService, *TaskGroup) {
	t.Helper()

	relay := mockSvc.NewMockNotificationService(t)
	tasks := NewTaskGroup(newTestLogger())
	tracking := NewTrackingService(repository.Backend{}, nil, "https://track.test/")
	svc := NewNotificationService(newTestLogger(), relay, tasks, tracking)

	return svc.(*notificationService), relay, tasks
}

func notifiedShipment() *entity.Shipment {
	s := validShipment("ship-1", "JP1", "In Transit", 1)
	s.StatusDate = "2026-03-14"
	s.StatusTime = "09:30"
	s.Location = "Berlin hub"

	return &s
}

func TestNotificationService_ShouldNotify(t *testing.T) {
	svc, _, _ := createTestNotificationService(t)
	pending := "Pending"
	inTransit := "In Transit"

	tests := []struct {
		name string
		n    *usecase.StatusNotification
		want bool
	}{
		{"nil", nil, false},
		{"create", &usecase.StatusNotification{IsNew: true, Shipment: notifiedShipment()}, true},
		{"status changed", &usecase.StatusNotification{OldStatus: &pending, Shipment: notifiedShipment()}, true},
		{"status unchanged", &usecase.StatusNotification{OldStatus: &inTransit, Shipment: notifiedShipment()}, false},
		{"unknown prior status", &usecase.StatusNotification{Shipment: notifiedShipment()}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.ShouldNotify(tt.n))
		})
	}
}

func TestNotificationService_Dispatch_SkipsUnchangedStatus(t *testing.T) {
	svc, _, _ := createTestNotificationService(t)
	same := "In Transit"

	assert.False(t, svc.Dispatch(context.Background(), &usecase.StatusNotification{
		OldStatus: &same,
		Shipment:  notifiedShipment(),
	}))
}

func TestNotificationService_Dispatch_RelayNotConfigured(t *testing.T) {
	svc, relay, tasks := createTestNotificationService(t)
	relay.EXPECT().Configured().Return(false).Once()

	sent := svc.Dispatch(context.Background(), &usecase.StatusNotification{IsNew: true, Shipment: notifiedShipment()})
	tasks.Wait()

	assert.False(t, sent)
}

func TestNotificationService_Dispatch_Combined(t *testing.T) {
	svc, relay, tasks := createTestNotificationService(t)
	relay.EXPECT().Configured().Return(true).Once()

	var got *service.RelayMessage
	relay.EXPECT().Send(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, msg *service.RelayMessage) error {
			got = msg

			return nil
		}).Once()

	sent := svc.Dispatch(context.Background(), &usecase.StatusNotification{IsNew: true, Shipment: notifiedShipment()})
	tasks.Wait()

	require.True(t, sent)
	require.NotNil(t, got)
	assert.Equal(t, "ana@example.com, jeff@example.com", got.To)
	assert.Equal(t, "Customer", got.ToName)
	assert.Equal(t, "Your JP Logistics shipment has been created: JP1", got.Subject)
	assert.Equal(t, "JP1", got.Tracking)
	assert.Equal(t, "https://track.test/tracking.html?tn=JP1", got.TrackLink)
	assert.Contains(t, got.Body, "Your shipment has been created with the following details:")
	assert.Contains(t, got.Body, "Status: In Transit\n")
}

func TestNotificationService_Dispatch_FallsBackToIndividualSends(t *testing.T) {
	svc, relay, tasks := createTestNotificationService(t)
	relay.EXPECT().Configured().Return(true).Once()
	relay.EXPECT().Send(mock.Anything, mock.MatchedBy(func(msg *service.RelayMessage) bool {
		return strings.Contains(msg.To, ",")
	})).Return(errors.New("rate limited")).Once()
	relay.EXPECT().Send(mock.Anything, mock.MatchedBy(func(msg *service.RelayMessage) bool {
		return msg.To == "ana@example.com" && msg.ToName == "ana"
	})).Return(nil).Once()
	relay.EXPECT().Send(mock.Anything, mock.MatchedBy(func(msg *service.RelayMessage) bool {
		return msg.To == "jeff@example.com" && msg.ToName == "jeff"
	})).Return(errors.New("bounced")).Once()

	pending := "Pending"
	sent := svc.Dispatch(context.Background(), &usecase.StatusNotification{
		OldStatus: &pending,
		Shipment:  notifiedShipment(),
	})
	tasks.Wait()

	assert.True(t, sent)
}

func TestNotificationService_Dispatch_SkipsMissingEmail(t *testing.T) {
	svc, relay, tasks := createTestNotificationService(t)
	relay.EXPECT().Configured().Return(true).Once()
	relay.EXPECT().Send(mock.Anything, mock.MatchedBy(func(msg *service.RelayMessage) bool {
		return msg.To == "ana@example.com"
	})).Return(nil).Once()

	shipment := notifiedShipment()
	shipment.Receiver.Email = " "

	sent := svc.Dispatch(context.Background(), &usecase.StatusNotification{IsNew: true, Shipment: shipment})
	tasks.Wait()

	assert.True(t, sent)
}

func TestNotificationService_ComposeUpdate(t *testing.T) {
	svc, _, _ := createTestNotificationService(t)

	msg := svc.compose(notifiedShipment(), false, "Fragile")

	assert.Equal(t, "Shipment Status Update - JP1", msg.Subject)
	assert.Equal(t, "Dear Customer,\n\n"+
		"Your shipment status has been updated:\n\n"+
		"Tracking Number: JP1\n"+
		"Current Status: In Transit\n"+
		"Date & Time: 3/14/2026, 9:30:00 AM\n"+
		"Location: Berlin hub\n\n"+
		"Track your shipment: https://track.test/tracking.html?tn=JP1\n\n"+
		"Remarks: Fragile\n\n"+
		"Best regards,\nJP Logistics Team", msg.Body)
}

func TestNotificationService_ComposeWithoutLocationOrRemarks(t *testing.T) {
	svc, _, _ := createTestNotificationService(t)
	shipment := notifiedShipment()
	shipment.Location = ""

	msg := svc.compose(shipment, true, "")

	assert.Contains(t, msg.Body, "Location: N/A\n")
	assert.NotContains(t, msg.Body, "Remarks:")
}

func TestNotificationService_MailtoLinks(t *testing.T) {
	svc, _, _ := createTestNotificationService(t)
	shipment := notifiedShipment()
	shipment.Receiver.Email = ""

	links := svc.MailtoLinks(shipment, false)

	assert.True(t, strings.HasPrefix(links.Sender, "mailto:ana@example.com?body="))
	assert.Contains(t, links.Sender, "subject=Shipment%20Status%20Update%20-%20JP1")
	assert.NotContains(t, links.Sender, "+")
	assert.Empty(t, links.Receiver)
}
