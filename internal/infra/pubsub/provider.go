// Package pubsub publishes shipment change events for the audit worker.
package pubsub

import (
	"context"
	"log/slog"

	"shiptrack/config"
	"shiptrack/internal/domain/constants"
	"shiptrack/internal/domain/entity"
	"shiptrack/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// DefaultLocalEndpoint is the push route of a worker on its default port.
const DefaultLocalEndpoint = "http://localhost:8081/push"

// noopPublisher drops events when no provider is configured. Mutations never
// depend on publishing, so this only costs the audit trail.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishShipmentEvent(_ context.Context, event *entity.ShipmentEvent) error {
	p.logger.Debug("Shipment event not published",
		slog.String("event_id", event.ID),
		slog.String("type", string(event.Type)),
		slog.String("shipment_id", event.ShipmentID),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher picks the publisher for pubsub.provider and closes it on
// stop. An empty provider yields the no-op publisher.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	publisher, err := newPublisher(params.Ctx, params.Config.PubSub, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return publisher.Close()
		},
	})

	return publisher, nil
}

func newPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg == nil || cfg.Provider == "" {
		logger.Info("Shipment events disabled, no pubsub provider configured")

		return &noopPublisher{logger: logger}, nil
	}

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		endpoint := cfg.LocalEndpoint
		if endpoint == "" {
			endpoint = DefaultLocalEndpoint
		}
		logger.Info("Publishing shipment events to local worker", slog.String("endpoint", endpoint))

		return NewLocalHTTPPublisher(endpoint, logger), nil

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}
}
