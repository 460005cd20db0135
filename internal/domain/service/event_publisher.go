package service

import (
	"context"

	"shiptrack/internal/domain/entity"
)

// EventPublisher defines the interface for publishing shipment changes to a message queue
type EventPublisher interface {
	// PublishShipmentEvent publishes a shipment change for downstream consumers
	PublishShipmentEvent(ctx context.Context, event *entity.ShipmentEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
