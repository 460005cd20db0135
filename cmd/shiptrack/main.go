package main

import (
	"context"
	"log/slog"
	"os"

	"shiptrack/config"
	"shiptrack/internal/delivery"
	"shiptrack/internal/delivery/api"
	apimiddleware "shiptrack/internal/delivery/api/middleware"
	"shiptrack/internal/delivery/api/router/handler"
	"shiptrack/internal/delivery/api/stream"
	"shiptrack/internal/delivery/scheduler"
	"shiptrack/internal/domain/constants"
	"shiptrack/internal/domain/entity"
	"shiptrack/internal/domain/repository"
	"shiptrack/internal/domain/service"
	"shiptrack/internal/infra/auth"
	"shiptrack/internal/infra/emailrelay"
	infrafirebase "shiptrack/internal/infra/firebase"
	"shiptrack/internal/infra/localstore"
	logs "shiptrack/internal/infra/log"
	"shiptrack/internal/infra/pubsub"
	"shiptrack/internal/infra/qrcode"
	"shiptrack/internal/usecase"
	"shiptrack/internal/usecase/impl"

	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
)

const (
	defaultQRSize  = 256
	defaultQRLevel = "M"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			impl.RegisterCatalog,
			impl.RegisterTaskGroup,
			seedOnStart,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		localstore.OpenBucket,
		newFirebaseApp,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newBackend,
			newBackupArchive,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			newTokenService,
			newIdentityVerifier,
			newQRCodeService,
			emailrelay.NewEmailJSClient,
			pubsub.NewEventPublisher,
			newHub,
			func(hub *stream.Hub) service.ViewNotifier { return hub },
		),
	)
}

// newFirebaseApp returns nil when no Firebase project is configured, which
// selects the local backend.
func newFirebaseApp(params infrafirebase.AppParams) (*firebase.App, error) {
	if !params.Config.Firebase.Enabled() {
		return nil, nil
	}

	return infrafirebase.NewApp(params)
}

// newBackend picks the shipment store once at startup.
func newBackend(lc fx.Lifecycle, ctx context.Context, cfg *config.Config, logger *slog.Logger, app *firebase.App, bucket *blob.Bucket) (repository.Backend, error) {
	if app == nil {
		logger.Info("Using local shipment store", slog.String("key", localstore.StoreKey(cfg)))

		return repository.NewLocalBackend(localstore.NewShipmentStore(bucket, localstore.StoreKey(cfg), logger)), nil
	}

	client, err := infrafirebase.NewFirestoreClient(lc, ctx, app)
	if err != nil {
		return repository.Backend{}, err
	}

	collection := cfg.Firebase.Collection
	if collection == "" {
		collection = constants.DefaultCollection
	}
	logger.Info("Using Firestore shipment store", slog.String("collection", collection))

	return repository.NewRemoteBackend(infrafirebase.NewShipmentStore(client, collection, logger)), nil
}

func newBackupArchive(lc fx.Lifecycle, ctx context.Context, cfg *config.Config, logger *slog.Logger, bucket *blob.Bucket) (repository.ArchiveStore, error) {
	url, prefix := "", "backups"
	if cfg.Backup != nil {
		url = cfg.Backup.BucketURL
		if cfg.Backup.Prefix != "" {
			prefix = cfg.Backup.Prefix
		}
	}

	return localstore.OpenArchive(ctx, lc, logger, bucket, url, prefix)
}

// newTokenService is only needed when local operator accounts are configured.
func newTokenService(cfg *config.Config) (service.TokenService, error) {
	if len(cfg.Operators) == 0 {
		return nil, nil
	}

	return auth.NewJWTService(cfg)
}

// newIdentityVerifier is only needed for the remote backend.
func newIdentityVerifier(ctx context.Context, app *firebase.App, logger *slog.Logger) (service.IdentityVerifier, error) {
	if app == nil {
		return nil, nil
	}

	client, err := infrafirebase.NewAuthClient(ctx, app)
	if err != nil {
		return nil, err
	}

	return auth.NewFirebaseVerifier(client, logger), nil
}

func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.Tracking == nil || cfg.Tracking.QRSize == 0 {
		return qrcode.NewQRCodeService(defaultQRSize, defaultQRLevel)
	}

	return qrcode.NewQRCodeService(cfg.Tracking.QRSize, cfg.Tracking.QRLevel)
}

func newHub(cfg *config.Config, logger *slog.Logger) *stream.Hub {
	return stream.NewHub(logger, cfg.HTTP.AllowedOrigins)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewTaskGroup,
			newCatalog,
			newSessionService,
			newTrackingService,
			impl.NewNotificationService,
			impl.NewShipmentService,
			impl.NewTransferService,
		),
	)
}

func newCatalog(cfg *config.Config, backend repository.Backend, notifier service.ViewNotifier, logger *slog.Logger) usecase.CatalogUsecase {
	var allow entity.AllowList
	if cfg.Firebase != nil {
		allow = cfg.Firebase.AdminAllowlist
	}

	return impl.NewCatalogService(backend, allow, notifier, logger)
}

func newSessionService(
	cfg *config.Config,
	logger *slog.Logger,
	catalog usecase.CatalogUsecase,
	verifier service.IdentityVerifier,
	tokens service.TokenService,
	hasher service.PasswordHasher,
) usecase.SessionUsecase {
	return impl.NewSessionService(logger, catalog, verifier, tokens, hasher, cfg.Operators)
}

func newTrackingService(cfg *config.Config, backend repository.Backend, qr service.QRCodeService) usecase.TrackingUsecase {
	baseURL := constants.DefaultTrackingBaseURL
	if cfg.Tracking != nil && cfg.Tracking.BaseURL != "" {
		baseURL = cfg.Tracking.BaseURL
	}

	return impl.NewTrackingService(backend, qr, baseURL)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSessionHandler,
			handler.NewShipmentHandler,
			handler.NewTrackingHandler,
			handler.NewTransferHandler,
			handler.NewStreamHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				scheduler.NewBackupScheduler,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// seedOnStart fills an empty local store with the demo shipments.
func seedOnStart(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger, transfer usecase.TransferUsecase) {
	if cfg.LocalStore == nil || !cfg.LocalStore.SeedDemo {
		return
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			seeded, err := transfer.SeedIfEmpty(ctx)
			if err != nil {
				return errors.Wrap(err, "seed demo shipments")
			}
			if seeded {
				logger.Info("Seeded demo shipments")
			}

			return nil
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
