package impl

import (
	"context"
	"net/url"
	"strings"

	"shiptrack/internal/domain/constants"
	"shiptrack/internal/domain/entity"
	domainerrors "shiptrack/internal/domain/errors"
	"shiptrack/internal/domain/repository"
	"shiptrack/internal/domain/service"
	"shiptrack/internal/errors"
	"shiptrack/internal/usecase"
)

type trackingService struct {
	backend repository.Backend
	qrcode  service.QRCodeService
	baseURL string
}

// NewTrackingService creates the public tracking lookup. An empty baseURL
// falls back to the production site.
func NewTrackingService(backend repository.Backend, qrcode service.QRCodeService, baseURL string) usecase.TrackingUsecase {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = constants.DefaultTrackingBaseURL
	}

	return &trackingService{
		backend: backend,
		qrcode:  qrcode,
		baseURL: baseURL,
	}
}

// Lookup finds the first shipment with trackingNo on the active backend.
func (s *trackingService) Lookup(ctx context.Context, trackingNo string) (*entity.Shipment, error) {
	trackingNo = strings.TrimSpace(trackingNo)
	if trackingNo == "" {
		return nil, domainerrors.ErrValidationFailed.WithMessage("Please enter a tracking number.")
	}

	store, err := s.backend.Store()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	shipment, err := store.FindByField(ctx, "trackingNo", trackingNo)
	if errors.Is(err, repository.ErrShipmentNotFound) {
		return nil, domainerrors.ErrShipmentNotFound.WithDetails(trackingNo)
	}
	if err != nil {
		return nil, domainerrors.NewBackendError("look up", err)
	}

	return shipment, nil
}

func (s *trackingService) TrackingLink(trackingNo string) string {
	return s.baseURL + "/tracking.html?tn=" + url.QueryEscape(trackingNo)
}

// TrackingQR renders the deep link of an existing shipment.
func (s *trackingService) TrackingQR(ctx context.Context, trackingNo string) ([]byte, error) {
	shipment, err := s.Lookup(ctx, trackingNo)
	if err != nil {
		return nil, err
	}

	png, err := s.qrcode.GenerateTrackingQR(s.TrackingLink(shipment.TrackingNo))
	if err != nil {
		return nil, errors.Wrap(err, "generate tracking QR")
	}

	return png, nil
}
