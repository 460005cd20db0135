// Package scheduler runs periodic jobs as a delivery next to the HTTP server.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"shiptrack/config"
	"shiptrack/internal/delivery"
	deliverycontext "shiptrack/internal/delivery/context"
	"shiptrack/internal/domain/lifecycle"
	"shiptrack/internal/usecase"
	"shiptrack/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

// backupTimeout bounds one scheduled backup run.
const backupTimeout = 2 * time.Minute

type backupScheduler struct {
	logger   *slog.Logger
	transfer usecase.TransferUsecase
	schedule string
	cron     *cron.Cron
	done     chan struct{}

	mu      sync.Mutex
	stopped bool
}

// BackupSchedulerParams holds dependencies for the backup scheduler, injected by Fx.
type BackupSchedulerParams struct {
	fx.In

	Lc         fx.Lifecycle
	Cfg        *config.Config
	Logger     *slog.Logger
	TransferUC usecase.TransferUsecase
}

// NewBackupScheduler writes an export to the backup archive on the configured
// cron schedule. Without a schedule Serve returns immediately.
func NewBackupScheduler(params BackupSchedulerParams) (delivery.Delivery, error) {
	s := &backupScheduler{
		logger:   params.Logger,
		transfer: params.TransferUC,
		done:     make(chan struct{}),
	}
	if params.Cfg.Backup != nil {
		s.schedule = params.Cfg.Backup.Schedule
	}
	if s.schedule == "" {
		return s, nil
	}

	cronLogger := &slogCronLogger{logger: params.Logger}
	s.cron = cron.New(
		cron.WithLocation(time.UTC),
		cron.WithLogger(cronLogger),
		cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
	)
	if _, err := s.cron.AddFunc(s.schedule, s.runBackup); err != nil {
		return nil, errors.Wrapf(err, "invalid backup schedule %q", s.schedule)
	}

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s, nil
}

func (s *backupScheduler) Serve(ctx context.Context) error {
	if s.cron == nil {
		s.logger.Info("Backup schedule not configured, scheduler idle")

		return nil
	}

	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()

		return nil
	}
	s.logger.Info("Starting backup scheduler", slog.String("schedule", s.schedule))
	s.cron.Start()
	s.mu.Unlock()

	select {
	case <-ctx.Done():
	case <-s.done:
	}

	return nil
}

func (s *backupScheduler) stop(ctx context.Context) error {
	s.logger.Info("Stopping backup scheduler")
	s.mu.Lock()
	s.stopped = true
	s.mu.Unlock()
	close(s.done)

	// Stop returns a context that is done once running jobs finish.
	stopped := s.cron.Stop()
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	select {
	case <-stopped.Done():
		return nil
	case <-shutdownCtx.Done():
		return errors.Wrap(shutdownCtx.Err(), "backup still running")
	}
}

func (s *backupScheduler) runBackup() {
	ctx, cancel := context.WithTimeout(context.Background(), backupTimeout)
	defer cancel()
	ctx, logger := deliverycontext.Trace(ctx, s.logger, uuid.NewString())

	start := time.Now()
	name, err := s.transfer.Backup(ctx)
	elapsed := util.FormatDuration(time.Since(start))
	if err != nil {
		logger.Error("Scheduled backup failed", slog.String("elapsed", elapsed), slog.Any("error", err))

		return
	}

	logger.Info("Scheduled backup finished", slog.String("name", name), slog.String("elapsed", elapsed))
}

// slogCronLogger routes cron's own messages through slog.
type slogCronLogger struct {
	logger *slog.Logger
}

func (l *slogCronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("[Cron] "+msg, keysAndValues...)
}

func (l *slogCronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("[Cron] "+msg, append(keysAndValues, slog.Any("error", err))...)
}
