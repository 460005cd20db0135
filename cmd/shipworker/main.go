package main

import (
	"context"
	"log/slog"
	"os"

	"shiptrack/config"
	"shiptrack/internal/delivery"
	"shiptrack/internal/delivery/worker"
	"shiptrack/internal/delivery/worker/handler"
	"shiptrack/internal/domain/repository"
	"shiptrack/internal/infra/localstore"
	logs "shiptrack/internal/infra/log"

	"go.uber.org/fx"
	"gocloud.dev/blob"
)

const defaultAuditPrefix = "audit"

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
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
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
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				newAuditArchive,
				fx.ResultTags(`name:"audit"`),
			),
		),
	)
}

// newAuditArchive stores one object per shipment event, falling back to the
// local store bucket when no audit bucket is configured.
func newAuditArchive(lc fx.Lifecycle, ctx context.Context, cfg *config.Config, logger *slog.Logger, bucket *blob.Bucket) (repository.ArchiveStore, error) {
	url, prefix := "", defaultAuditPrefix
	if cfg.Audit != nil {
		url = cfg.Audit.BucketURL
		if cfg.Audit.Prefix != "" {
			prefix = cfg.Audit.Prefix
		}
	}

	return localstore.OpenArchive(ctx, lc, logger, bucket, url, prefix)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
			handler.NewAuditHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
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
