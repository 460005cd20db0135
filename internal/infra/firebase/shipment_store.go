package firebase

import (
	"context"
	"log/slog"
	"sync"

	"shiptrack/internal/domain/entity"
	"shiptrack/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type shipmentStore struct {
	client     *firestore.Client
	collection string
	logger     *slog.Logger
}

// NewShipmentStore creates the Firestore-backed remote store.
func NewShipmentStore(client *firestore.Client, collection string, logger *slog.Logger) repository.RemoteShipmentStore {
	return &shipmentStore{
		client:     client,
		collection: collection,
		logger:     logger,
	}
}

func (s *shipmentStore) col() *firestore.CollectionRef {
	return s.client.Collection(s.collection)
}

// Create writes to the shipment's own id when it has one, otherwise lets
// Firestore assign the document id.
func (s *shipmentStore) Create(ctx context.Context, shipment *entity.Shipment) (*entity.Shipment, error) {
	ref := s.col().NewDoc()
	if shipment.ID != "" {
		ref = s.col().Doc(shipment.ID)
	}

	if _, err := ref.Set(ctx, toDocData(shipment)); err != nil {
		return nil, errors.Wrapf(err, "create shipment %s", ref.ID)
	}

	stored := shipment.Clone()
	stored.ID = ref.ID

	return &stored, nil
}

// Update merges the shipment into the existing document.
func (s *shipmentStore) Update(ctx context.Context, id string, shipment *entity.Shipment) (*entity.Shipment, error) {
	if _, err := s.col().Doc(id).Set(ctx, toDocData(shipment), firestore.MergeAll); err != nil {
		return nil, errors.Wrapf(err, "update shipment %s", id)
	}

	stored := shipment.Clone()
	stored.ID = id

	return &stored, nil
}

func (s *shipmentStore) Delete(ctx context.Context, id string) error {
	if _, err := s.col().Doc(id).Delete(ctx); err != nil {
		return errors.Wrapf(err, "delete shipment %s", id)
	}

	return nil
}

func (s *shipmentStore) FindByField(ctx context.Context, field, value string) (*entity.Shipment, error) {
	iter := s.col().Where(field, "==", value).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if errors.Is(err, iterator.Done) {
		return nil, repository.ErrShipmentNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "find shipment by %s", field)
	}

	return fromDoc(doc)
}

// Subscribe listens to the whole collection ordered by updatedAt descending.
func (s *shipmentStore) Subscribe(ctx context.Context) (repository.Subscription, error) {
	subCtx, cancel := context.WithCancel(ctx)
	sub := &subscription{
		events: make(chan repository.SnapshotEvent, 1),
		cancel: cancel,
		done:   make(chan struct{}),
	}

	iter := s.col().OrderBy("updatedAt", firestore.Desc).Snapshots(subCtx)
	go sub.run(subCtx, iter, s.logger)

	return sub, nil
}

type subscription struct {
	events chan repository.SnapshotEvent
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

func (sub *subscription) Events() <-chan repository.SnapshotEvent {
	return sub.events
}

func (sub *subscription) Unsubscribe() {
	sub.once.Do(sub.cancel)
	<-sub.done
}

func (sub *subscription) run(ctx context.Context, iter *firestore.QuerySnapshotIterator, logger *slog.Logger) {
	defer close(sub.done)
	defer close(sub.events)
	defer iter.Stop()

	for {
		snap, err := iter.Next()
		if err != nil {
			if ctx.Err() != nil || status.Code(err) == codes.Canceled {
				return
			}
			sub.emit(ctx, repository.SnapshotEvent{Err: errors.Wrap(err, "shipment snapshot listener")})

			return
		}

		docs, err := snap.Documents.GetAll()
		if err != nil {
			sub.emit(ctx, repository.SnapshotEvent{Err: errors.Wrap(err, "read shipment snapshot")})

			continue
		}

		items := make([]entity.Shipment, 0, len(docs))
		for _, doc := range docs {
			shipment, err := fromDoc(doc)
			if err != nil {
				logger.Warn("Skipping undecodable shipment document",
					slog.String("id", doc.Ref.ID),
					slog.Any("error", err),
				)

				continue
			}
			items = append(items, *shipment)
		}

		if !sub.emit(ctx, repository.SnapshotEvent{Items: items}) {
			return
		}
	}
}

func (sub *subscription) emit(ctx context.Context, event repository.SnapshotEvent) bool {
	select {
	case sub.events <- event:
		return true
	case <-ctx.Done():
		return false
	}
}

func fromDoc(doc *firestore.DocumentSnapshot) (*entity.Shipment, error) {
	var shipment entity.Shipment
	if err := doc.DataTo(&shipment); err != nil {
		return nil, errors.Wrapf(err, "decode shipment %s", doc.Ref.ID)
	}
	shipment.ID = doc.Ref.ID

	return &shipment, nil
}

// toDocData is the document body for a shipment. The id lives in the
// document name only.
func toDocData(s *entity.Shipment) map[string]any {
	return map[string]any{
		"trackingNo": s.TrackingNo,
		"sender": map[string]any{
			"name":    s.Sender.Name,
			"email":   s.Sender.Email,
			"phone":   s.Sender.Phone,
			"city":    s.Sender.City,
			"state":   s.Sender.State,
			"country": s.Sender.Country,
		},
		"receiver": map[string]any{
			"name":    s.Receiver.Name,
			"email":   s.Receiver.Email,
			"phone":   s.Receiver.Phone,
			"street":  s.Receiver.Street,
			"city":    s.Receiver.City,
			"state":   s.Receiver.State,
			"country": s.Receiver.Country,
			"postal":  s.Receiver.Postal,
		},
		"status":           s.Status,
		"cargoType":        s.CargoType,
		"shipmentTitle":    s.ShipmentTitle,
		"cargoName":        s.CargoName,
		"modeOfShipment":   s.ModeOfShipment,
		"paymentMethod":    s.PaymentMethod,
		"statusDate":       s.StatusDate,
		"statusTime":       s.StatusTime,
		"location":         s.Location,
		"carrierRef":       s.CarrierRef,
		"departureDate":    s.DepartureDate,
		"departureTime":    s.DepartureTime,
		"comments":         s.Comments,
		"origin":           s.Origin,
		"destination":      s.Destination,
		"notes":            s.Notes,
		"cargoWeightUnit":  s.CargoWeightUnit,
		"cargoWeightValue": s.CargoWeightValue,
		"featuredImage":    s.FeaturedImage,
		"createdAt":        s.CreatedAt,
		"updatedAt":        s.UpdatedAt,
	}
}
