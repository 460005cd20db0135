// Package localstore implements the single-key shipment store on a gocloud.dev
// blob bucket.
package localstore

import (
	"context"
	"log/slog"

	"shiptrack/config"
	"shiptrack/internal/domain/constants"
	"shiptrack/internal/domain/repository"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
)

const defaultBucketURL = "mem://"

// BucketParams holds dependencies for OpenBucket, injected by Fx
type BucketParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// OpenBucket opens the bucket the local store and backups live in.
func OpenBucket(params BucketParams) (*blob.Bucket, error) {
	url := defaultBucketURL
	if params.Config.LocalStore != nil && params.Config.LocalStore.BucketURL != "" {
		url = params.Config.LocalStore.BucketURL
	}

	bucket, err := blob.OpenBucket(params.Ctx, url)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", url)
	}

	params.Logger.Info("Local store bucket opened", slog.String("url", url))

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return bucket, nil
}

// StoreKey returns the configured key or the default one.
func StoreKey(cfg *config.Config) string {
	if cfg.LocalStore != nil && cfg.LocalStore.Key != "" {
		return cfg.LocalStore.Key
	}

	return constants.DefaultStoreKey
}

// OpenArchive opens a dedicated bucket for write-once documents. An empty url
// falls back to fallback, which the caller keeps ownership of.
func OpenArchive(ctx context.Context, lc fx.Lifecycle, logger *slog.Logger, fallback *blob.Bucket, url, prefix string) (repository.ArchiveStore, error) {
	if url == "" {
		if fallback == nil {
			return nil, errors.New("archive bucket is not configured")
		}

		return NewArchiveStore(fallback, prefix), nil
	}

	bucket, err := blob.OpenBucket(ctx, url)
	if err != nil {
		return nil, errors.Wrapf(err, "open archive bucket %s", url)
	}

	logger.Info("Archive bucket opened", slog.String("url", url), slog.String("prefix", prefix))

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return NewArchiveStore(bucket, prefix), nil
}
