package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"shiptrack/config"
	"shiptrack/internal/domain/constants"
	"shiptrack/internal/domain/entity"
	"shiptrack/internal/domain/repository"
	infrafirebase "shiptrack/internal/infra/firebase"
	"shiptrack/internal/infra/localstore"
	logs "shiptrack/internal/infra/log"
	"shiptrack/internal/usecase"
	"shiptrack/internal/usecase/impl"
	"shiptrack/internal/util"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
)

// app is the offline wiring of the transfer usecase. Remote mode has no
// operator subscription, so only imports reach Firestore.
type app struct {
	logger   *slog.Logger
	mode     entity.BackendMode
	transfer usecase.TransferUsecase
	closers  []func() error
}

func withApp(ctx context.Context, run func(a *app) error) error {
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	return run(a)
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, err
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return nil, err
	}

	a := &app{logger: logger}

	bucketURL := "mem://"
	if cfg.LocalStore != nil && cfg.LocalStore.BucketURL != "" {
		bucketURL = cfg.LocalStore.BucketURL
	}
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", bucketURL)
	}
	a.closers = append(a.closers, bucket.Close)

	backend, err := a.openBackend(ctx, cfg, bucket)
	if err != nil {
		a.close()

		return nil, err
	}
	a.mode = backend.Mode()

	backups, err := a.openBackups(ctx, cfg, bucket)
	if err != nil {
		a.close()

		return nil, err
	}

	catalog := impl.NewCatalogService(backend, nil, &logNotifier{logger: logger}, logger)
	a.closers = append(a.closers, func() error {
		catalog.Close()

		return nil
	})
	a.transfer = impl.NewTransferService(logger, catalog, backend, backups)

	return a, nil
}

func (a *app) openBackend(ctx context.Context, cfg *config.Config, bucket *blob.Bucket) (repository.Backend, error) {
	if !cfg.Firebase.Enabled() {
		return repository.NewLocalBackend(localstore.NewShipmentStore(bucket, localstore.StoreKey(cfg), a.logger)), nil
	}

	fbApp, err := infrafirebase.NewApp(infrafirebase.AppParams{Ctx: ctx, Config: cfg, Logger: a.logger})
	if err != nil {
		return repository.Backend{}, err
	}
	client, err := fbApp.Firestore(ctx)
	if err != nil {
		return repository.Backend{}, errors.Wrap(err, "failed to get firestore client")
	}
	a.closers = append(a.closers, client.Close)

	collection := cfg.Firebase.Collection
	if collection == "" {
		collection = constants.DefaultCollection
	}

	return repository.NewRemoteBackend(infrafirebase.NewShipmentStore(client, collection, a.logger)), nil
}

func (a *app) openBackups(ctx context.Context, cfg *config.Config, bucket *blob.Bucket) (repository.ArchiveStore, error) {
	prefix := "backups"
	if cfg.Backup == nil || cfg.Backup.BucketURL == "" {
		if cfg.Backup != nil && cfg.Backup.Prefix != "" {
			prefix = cfg.Backup.Prefix
		}

		return localstore.NewArchiveStore(bucket, prefix), nil
	}

	archive, err := blob.OpenBucket(ctx, cfg.Backup.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open archive bucket %s", cfg.Backup.BucketURL)
	}
	a.closers = append(a.closers, archive.Close)
	if cfg.Backup.Prefix != "" {
		prefix = cfg.Backup.Prefix
	}

	return localstore.NewArchiveStore(archive, prefix), nil
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.logger.Warn("Failed to close resource", slog.Any("error", err))
		}
	}
}

func (a *app) runExport(ctx context.Context, out string) error {
	if a.mode == entity.BackendRemote {
		return errors.New("export needs a signed-in dashboard in remote mode, use GET /api/admin/export")
	}

	data, err := a.transfer.Export(ctx)
	if err != nil {
		return err
	}

	if out == "-" {
		_, err = os.Stdout.Write(append(data, '\n'))

		return errors.WithStack(err)
	}

	if err := os.WriteFile(out, data, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", out)
	}
	a.logger.Info("Exported shipments",
		slog.String("file", out),
		slog.String("size", util.FormatBytes(len(data))),
		slog.String("sha256", util.Checksum(data)),
	)

	return nil
}

func (a *app) runImport(ctx context.Context, in string) error {
	var (
		data []byte
		err  error
	)
	if in == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(in)
	}
	if err != nil {
		return errors.Wrapf(err, "read %s", in)
	}

	result, err := a.transfer.Import(ctx, data)
	if err != nil {
		return err
	}

	a.logger.Info("Imported shipments",
		slog.Int("total", result.Total),
		slog.Int("failed", result.Failed),
		slog.String("backend", string(a.mode)),
	)

	return nil
}

func (a *app) runSeed(ctx context.Context) error {
	seeded, err := a.transfer.SeedIfEmpty(ctx)
	if err != nil {
		return err
	}

	a.logger.Info("Seed finished", slog.Bool("seeded", seeded), slog.String("backend", string(a.mode)))

	return nil
}

func (a *app) runBackup(ctx context.Context) error {
	name, err := a.transfer.Backup(ctx)
	if err != nil {
		return err
	}

	a.logger.Info("Backup written", slog.String("name", name))

	return nil
}

// runBackups prints one backup name per line, newest first.
func (a *app) runBackups(ctx context.Context, limit int) error {
	names, err := a.transfer.Backups(ctx)
	if err != nil {
		return err
	}
	if limit > 0 && len(names) > limit {
		names = names[:limit]
	}

	for _, name := range names {
		if _, err := fmt.Fprintln(os.Stdout, name); err != nil {
			return errors.WithStack(err)
		}
	}

	return nil
}

// logNotifier prints catalog notices since there is no dashboard to show them.
type logNotifier struct {
	logger *slog.Logger
}

func (n *logNotifier) CollectionChanged(revision uint64, total int) {
	n.logger.Debug("Collection changed", slog.Uint64("revision", revision), slog.Int("total", total))
}

func (n *logNotifier) Notify(notice entity.Notice) {
	n.logger.Info(notice.Message, slog.String("kind", string(notice.Kind)))
}
