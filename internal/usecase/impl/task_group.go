package impl

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	"shiptrack/internal/domain/lifecycle"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// TaskGroup runs fire-and-forget work detached from the request that issued
// it. Every task recovers its own panic and shutdown waits for in-flight tasks.
type TaskGroup struct {
	wg      sync.WaitGroup
	logger  *slog.Logger
	timeout time.Duration
}

// NewTaskGroup creates a task group whose tasks each get timeout to finish.
func NewTaskGroup(logger *slog.Logger) *TaskGroup {
	return &TaskGroup{
		logger:  logger,
		timeout: lifecycle.DefaultTimeout,
	}
}

// Go runs fn in the background with a context that keeps ctx's values but not
// its cancellation.
func (g *TaskGroup) Go(ctx context.Context, name string, fn func(ctx context.Context)) {
	taskCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), g.timeout)

	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		defer cancel()
		defer func() {
			if r := recover(); r != nil {
				g.logger.Error("Background task panicked",
					slog.String("task", name),
					slog.String("panic", fmt.Sprint(r)),
					slog.String("stack", string(debug.Stack())),
				)
			}
		}()

		fn(taskCtx)
	}()
}

// Wait blocks until every task has finished.
func (g *TaskGroup) Wait() {
	g.wg.Wait()
}

// Shutdown waits for in-flight tasks or gives up when ctx ends.
func (g *TaskGroup) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		g.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "background tasks still running")
	}
}

// RegisterTaskGroup drains the group on application stop.
func RegisterTaskGroup(lc fx.Lifecycle, g *TaskGroup) {
	lc.Append(fx.Hook{
		OnStop: g.Shutdown,
	})
}
