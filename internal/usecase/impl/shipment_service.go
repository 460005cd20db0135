package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	deliverycontext "shiptrack/internal/delivery/context"
	"shiptrack/internal/domain/entity"
	domainerrors "shiptrack/internal/domain/errors"
	"shiptrack/internal/domain/repository"
	"shiptrack/internal/domain/service"
	"shiptrack/internal/errors"
	"shiptrack/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Validation messages shown to operators, checked in this order.
const (
	msgContactsRequired = "All sender and receiver fields are required."
	msgFieldsRequired   = "Please fill all required fields."
	msgWeightPair       = "Provide both cargo weight and unit, or leave both empty."
	msgWeightInvalid    = "Cargo weight must be a non-negative number."
	msgQuickRequired    = "Please fill required fields for quick edit."
)

type shipmentService struct {
	logger        *slog.Logger
	catalog       usecase.CatalogUsecase
	backend       repository.Backend
	notifications usecase.NotificationUsecase
	publisher     service.EventPublisher
	tasks         *TaskGroup
	validate      *validator.Validate
	now           func() time.Time
}

// NewShipmentService creates the mutation pipeline.
func NewShipmentService(
	logger *slog.Logger,
	catalog usecase.CatalogUsecase,
	backend repository.Backend,
	notifications usecase.NotificationUsecase,
	publisher service.EventPublisher,
	tasks *TaskGroup,
) usecase.ShipmentUsecase {
	return &shipmentService{
		logger:        logger,
		catalog:       catalog,
		backend:       backend,
		notifications: notifications,
		publisher:     publisher,
		tasks:         tasks,
		validate:      validator.New(validator.WithRequiredStructEnabled()),
		now:           time.Now,
	}
}

// Submit validates the draft and creates or updates the shipment.
func (s *shipmentService) Submit(ctx context.Context, draft *usecase.ShipmentDraft) (*entity.Shipment, error) {
	d := trimDraft(draft)

	weight, err := s.validateDraft(&d)
	if err != nil {
		return nil, err
	}

	now := s.now()
	shipment := fromDraft(&d, weight)

	isNew := d.ID == ""
	var oldStatus *string
	if isNew {
		shipment.ID = uuid.NewString()
		if shipment.TrackingNo == "" {
			shipment.TrackingNo = NewTrackingNumber(now)
		}
		shipment.CreatedAt = now.UnixMilli()
		shipment.UpdatedAt = shipment.CreatedAt
	} else {
		prior, err := s.catalog.Find(ctx, d.ID)
		if err != nil {
			return nil, err
		}

		status := prior.Status
		oldStatus = &status
		if shipment.TrackingNo == "" {
			shipment.TrackingNo = prior.TrackingNo
		}
		if shipment.TrackingNo == "" {
			shipment.TrackingNo = NewTrackingNumber(now)
		}
		if shipment.FeaturedImage == nil {
			shipment.FeaturedImage = prior.FeaturedImage
		}
		shipment.CreatedAt = prior.CreatedAt
		if shipment.CreatedAt == 0 {
			shipment.CreatedAt = now.UnixMilli()
		}
		shipment.UpdatedAt = max(now.UnixMilli(), prior.UpdatedAt, shipment.CreatedAt)
	}

	successMsg := "Shipment updated successfully!"
	if isNew {
		successMsg = "Shipment created successfully!"
	}

	if err := s.dispatchWrite(ctx, shipment, isNew, ""); err != nil {
		return nil, err
	}
	s.catalog.Notify(entity.Notice{Kind: entity.NoticeSuccess, Message: successMsg})

	s.notifications.Dispatch(ctx, &usecase.StatusNotification{
		IsNew:     isNew,
		OldStatus: oldStatus,
		Shipment:  shipment,
		Remarks:   shipment.Remarks(),
	})
	s.publish(ctx, shipment, isNew, oldStatus)

	return shipment, nil
}

// QuickEdit updates status, date, time, location and notes only.
func (s *shipmentService) QuickEdit(ctx context.Context, draft *usecase.QuickEditDraft) (*entity.Shipment, error) {
	d := usecase.QuickEditDraft{
		ID:         strings.TrimSpace(draft.ID),
		Status:     strings.TrimSpace(draft.Status),
		StatusDate: strings.TrimSpace(draft.StatusDate),
		StatusTime: strings.TrimSpace(draft.StatusTime),
		Location:   strings.TrimSpace(draft.Location),
		Notes:      strings.TrimSpace(draft.Notes),
	}
	if err := s.validate.Struct(&d); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithMessage(msgQuickRequired)
	}

	prior, err := s.catalog.Find(ctx, d.ID)
	if err != nil {
		return nil, err
	}

	oldStatus := prior.Status
	shipment := prior.Clone()
	shipment.Status = d.Status
	shipment.StatusDate = d.StatusDate
	shipment.StatusTime = d.StatusTime
	shipment.Location = d.Location
	shipment.Notes = d.Notes
	shipment.UpdatedAt = max(s.now().UnixMilli(), prior.UpdatedAt)

	// Remote quick edits confirm only once the write lands.
	successMsg := "Shipment updated successfully!"
	if err := s.dispatchWrite(ctx, &shipment, false, successMsg); err != nil {
		return nil, err
	}
	if s.backend.Mode() == entity.BackendLocal {
		s.catalog.Notify(entity.Notice{Kind: entity.NoticeSuccess, Message: successMsg})
	}

	s.notifications.Dispatch(ctx, &usecase.StatusNotification{
		IsNew:     false,
		OldStatus: &oldStatus,
		Shipment:  &shipment,
		Remarks:   shipment.Notes,
	})
	s.publish(ctx, &shipment, false, &oldStatus)

	return &shipment, nil
}

// Delete removes a shipment. Remote deletes complete in the background.
func (s *shipmentService) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return domainerrors.ErrValidationFailed.WithMessage("Shipment id is required.")
	}

	event := &entity.ShipmentEvent{Type: entity.ShipmentDeleted, ShipmentID: id}
	if prior, err := s.catalog.Find(ctx, id); err == nil {
		event.TrackingNo = prior.TrackingNo
		event.Status = prior.Status
	}

	switch s.backend.Mode() {
	case entity.BackendRemote:
		remote, _ := s.backend.Remote()
		s.tasks.Go(ctx, "delete-shipment", func(ctx context.Context) {
			if err := remote.Delete(ctx, id); err != nil {
				s.log(ctx).Error("Failed to delete shipment", slog.String("id", id), slog.Any("error", err))
				s.catalog.Notify(entity.Notice{Kind: entity.NoticeError, Message: "Failed to delete shipment."})

				return
			}
			s.catalog.Notify(entity.Notice{Kind: entity.NoticeSuccess, Message: "Shipment deleted successfully!"})
		})
	case entity.BackendLocal:
		local, _ := s.backend.Local()
		if err := local.Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrShipmentNotFound) {
				return domainerrors.ErrShipmentNotFound
			}

			return domainerrors.NewBackendError("delete", err)
		}
		if err := s.catalog.Refresh(ctx); err != nil {
			return err
		}
		s.catalog.Notify(entity.Notice{Kind: entity.NoticeSuccess, Message: "Shipment deleted successfully!"})
	default:
		return errors.WithStack(repository.ErrUnknownBackend)
	}

	s.emit(ctx, event)

	return nil
}

// dispatchWrite sends the write to the active backend. Remote writes run in
// the background and report failures as notices; successMsg, when set, is
// announced once a remote write lands.
func (s *shipmentService) dispatchWrite(ctx context.Context, shipment *entity.Shipment, isNew bool, successMsg string) error {
	verb := "update"
	if isNew {
		verb = "create"
	}

	switch s.backend.Mode() {
	case entity.BackendRemote:
		remote, _ := s.backend.Remote()
		record := shipment.Clone()
		s.tasks.Go(ctx, verb+"-shipment", func(ctx context.Context) {
			var err error
			if isNew {
				_, err = remote.Create(ctx, &record)
			} else {
				_, err = remote.Update(ctx, record.ID, &record)
			}
			if err != nil {
				s.log(ctx).Error("Failed to "+verb+" shipment",
					slog.String("id", record.ID),
					slog.Any("error", err),
				)
				s.catalog.Notify(entity.Notice{
					Kind:    entity.NoticeError,
					Message: domainerrors.NewBackendError(verb, err).Message(),
				})

				return
			}
			if successMsg != "" {
				s.catalog.Notify(entity.Notice{Kind: entity.NoticeSuccess, Message: successMsg})
			}
		})

		return nil
	case entity.BackendLocal:
		local, _ := s.backend.Local()
		var err error
		if isNew {
			_, err = local.Create(ctx, shipment)
		} else {
			_, err = local.Update(ctx, shipment.ID, shipment)
		}
		if errors.Is(err, repository.ErrShipmentNotFound) {
			return domainerrors.ErrShipmentNotFound
		}
		if err != nil {
			return domainerrors.NewBackendError(verb, err)
		}

		return s.catalog.Refresh(ctx)
	default:
		return errors.WithStack(repository.ErrUnknownBackend)
	}
}

func (s *shipmentService) publish(ctx context.Context, shipment *entity.Shipment, isNew bool, oldStatus *string) {
	event := &entity.ShipmentEvent{
		Type:       entity.ShipmentUpdated,
		ShipmentID: shipment.ID,
		TrackingNo: shipment.TrackingNo,
		Status:     shipment.Status,
	}
	switch {
	case isNew:
		event.Type = entity.ShipmentCreated
	case oldStatus != nil && *oldStatus != shipment.Status:
		event.Type = entity.ShipmentStatusChanged
		event.OldStatus = *oldStatus
	}

	s.emit(ctx, event)
}

// emit publishes the event in the background; failures are only logged.
func (s *shipmentService) emit(ctx context.Context, event *entity.ShipmentEvent) {
	event.ID = uuid.NewString()
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	event.Backend = s.backend.Mode()
	event.OccurredAt = s.now().UnixMilli()

	s.tasks.Go(ctx, "publish-event", func(ctx context.Context) {
		if err := s.publisher.PublishShipmentEvent(ctx, event); err != nil {
			s.log(ctx).Warn("Failed to publish shipment event",
				slog.String("event_id", event.ID),
				slog.String("type", string(event.Type)),
				slog.Any("error", err),
			)
		}
	})
}

// validateDraft applies the contact, core field and weight rules in order and
// returns the parsed weight, if any.
func (s *shipmentService) validateDraft(d *usecase.ShipmentDraft) (*float64, error) {
	if err := s.validate.Struct(d); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return nil, errors.WithStack(err)
		}

		var contacts, core, weight bool
		for _, fe := range verrs {
			switch {
			case strings.HasPrefix(fe.StructNamespace(), "ShipmentDraft.Sender."),
				strings.HasPrefix(fe.StructNamespace(), "ShipmentDraft.Receiver."):
				contacts = true
			case fe.StructField() == "CargoWeightValue", fe.StructField() == "CargoWeightUnit":
				weight = true
			default:
				core = true
			}
		}

		switch {
		case contacts:
			return nil, domainerrors.ErrValidationFailed.WithMessage(msgContactsRequired)
		case core:
			return nil, domainerrors.ErrValidationFailed.WithMessage(msgFieldsRequired)
		case weight:
			return nil, domainerrors.ErrValidationFailed.WithMessage(msgWeightPair)
		}
	}

	if d.CargoWeightValue == "" {
		return nil, nil
	}

	value, err := strconv.ParseFloat(d.CargoWeightValue, 64)
	if err != nil || value < 0 {
		return nil, domainerrors.ErrValidationFailed.WithMessage(msgWeightInvalid)
	}

	return &value, nil
}

func trimDraft(draft *usecase.ShipmentDraft) usecase.ShipmentDraft {
	d := *draft
	for _, f := range []*string{
		&d.ID, &d.TrackingNo,
		&d.Sender.Name, &d.Sender.Email, &d.Sender.Phone, &d.Sender.City, &d.Sender.State, &d.Sender.Country,
		&d.Receiver.Name, &d.Receiver.Email, &d.Receiver.Phone, &d.Receiver.Street,
		&d.Receiver.City, &d.Receiver.State, &d.Receiver.Country, &d.Receiver.Postal,
		&d.Status, &d.CargoType, &d.ShipmentTitle, &d.CargoName, &d.ModeOfShipment, &d.PaymentMethod,
		&d.StatusDate, &d.StatusTime, &d.Location, &d.Origin, &d.Destination,
		&d.CarrierRef, &d.DepartureDate, &d.DepartureTime, &d.Comments, &d.Notes,
		&d.CargoWeightValue, &d.CargoWeightUnit,
	} {
		*f = strings.TrimSpace(*f)
	}
	if d.FeaturedImage != nil {
		image := strings.TrimSpace(*d.FeaturedImage)
		d.FeaturedImage = &image
		if image == "" {
			d.FeaturedImage = nil
		}
	}

	return d
}

func fromDraft(d *usecase.ShipmentDraft, weight *float64) *entity.Shipment {
	shipment := &entity.Shipment{
		ID:         d.ID,
		TrackingNo: d.TrackingNo,
		Sender: entity.Sender{
			Name:    d.Sender.Name,
			Email:   d.Sender.Email,
			Phone:   d.Sender.Phone,
			City:    d.Sender.City,
			State:   d.Sender.State,
			Country: d.Sender.Country,
		},
		Receiver: entity.Receiver{
			Name:    d.Receiver.Name,
			Email:   d.Receiver.Email,
			Phone:   d.Receiver.Phone,
			Street:  d.Receiver.Street,
			City:    d.Receiver.City,
			State:   d.Receiver.State,
			Country: d.Receiver.Country,
			Postal:  d.Receiver.Postal,
		},
		Status:           d.Status,
		CargoType:        d.CargoType,
		ShipmentTitle:    d.ShipmentTitle,
		CargoName:        d.CargoName,
		ModeOfShipment:   d.ModeOfShipment,
		PaymentMethod:    d.PaymentMethod,
		StatusDate:       d.StatusDate,
		StatusTime:       d.StatusTime,
		Location:         d.Location,
		CarrierRef:       d.CarrierRef,
		DepartureDate:    d.DepartureDate,
		DepartureTime:    d.DepartureTime,
		Comments:         d.Comments,
		Origin:           d.Origin,
		Destination:      d.Destination,
		Notes:            d.Notes,
		CargoWeightValue: weight,
		FeaturedImage:    d.FeaturedImage,
	}
	if weight != nil {
		unit := d.CargoWeightUnit
		shipment.CargoWeightUnit = &unit
	}

	return shipment
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *shipmentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}
