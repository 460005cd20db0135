package usecase

import (
	"context"

	"shiptrack/internal/domain/entity"
)

// TrackingUsecase serves the public tracking page.
type TrackingUsecase interface {
	// Lookup returns the first shipment carrying trackingNo.
	Lookup(ctx context.Context, trackingNo string) (*entity.Shipment, error)

	// TrackingLink returns the public deep link for trackingNo.
	TrackingLink(trackingNo string) string

	// TrackingQR renders the deep link for an existing shipment as a PNG.
	TrackingQR(ctx context.Context, trackingNo string) ([]byte, error)
}
