package impl

import (
	"context"
	"log/slog"
	"sync"

	"shiptrack/internal/domain/entity"
	domainerrors "shiptrack/internal/domain/errors"
	"shiptrack/internal/domain/repository"
	"shiptrack/internal/domain/service"
	"shiptrack/internal/usecase"

	"go.uber.org/fx"
)

type catalogService struct {
	backend  repository.Backend
	allow    entity.AllowList
	notifier service.ViewNotifier
	logger   *slog.Logger

	// authMu serializes subscription swaps; mu guards the fields below it.
	authMu     sync.Mutex
	mu         sync.Mutex
	items      []entity.Shipment
	revision   uint64
	sub        repository.Subscription
	generation uint64

	baseCtx context.Context
	cancel  context.CancelFunc
}

// NewCatalogService creates the process-wide shipment catalog. Remote
// subscriptions outlive the requests that open them and end on Close.
func NewCatalogService(
	backend repository.Backend,
	allow entity.AllowList,
	notifier service.ViewNotifier,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	baseCtx, cancel := context.WithCancel(context.Background())

	return &catalogService{
		backend:  backend,
		allow:    allow,
		notifier: notifier,
		logger:   logger,
		items:    []entity.Shipment{},
		baseCtx:  baseCtx,
		cancel:   cancel,
	}
}

// RegisterCatalog closes the catalog on application stop.
func RegisterCatalog(lc fx.Lifecycle, catalog usecase.CatalogUsecase) {
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			catalog.Close()

			return nil
		},
	})
}

func (c *catalogService) Mode() entity.BackendMode {
	return c.backend.Mode()
}

func (c *catalogService) IsAuthorizedUser(op *entity.Operator) bool {
	return c.allow.Permits(op)
}

// Authorize swaps the remote subscription for op. The previous subscription
// is always torn down first so at most one is ever live.
func (c *catalogService) Authorize(ctx context.Context, op *entity.Operator) error {
	remote, ok := c.backend.Remote()
	if !ok {
		return nil
	}

	c.authMu.Lock()
	defer c.authMu.Unlock()

	return c.subscribe(ctx, remote, op)
}

func (c *catalogService) EnsureAuthorized(ctx context.Context, op *entity.Operator) error {
	remote, ok := c.backend.Remote()
	if !ok {
		return nil
	}

	c.authMu.Lock()
	defer c.authMu.Unlock()

	if c.Authorized() {
		return nil
	}

	return c.subscribe(ctx, remote, op)
}

// subscribe must be called with authMu held.
func (c *catalogService) subscribe(ctx context.Context, remote repository.RemoteShipmentStore, op *entity.Operator) error {
	c.detach()

	if !c.allow.Permits(op) {
		c.replace(nil)
		c.logger.InfoContext(ctx, "Catalog cleared, operator not authorized")

		return nil
	}

	sub, err := remote.Subscribe(c.baseCtx)
	if err != nil {
		return domainerrors.NewBackendError("subscribe to", err)
	}

	c.mu.Lock()
	c.generation++
	gen := c.generation
	c.sub = sub
	c.mu.Unlock()

	go c.consume(gen, sub)

	c.logger.InfoContext(ctx, "Catalog subscribed to remote shipments", slog.String("operator", op.Email))

	return nil
}

func (c *catalogService) Authorized() bool {
	if c.backend.Mode() == entity.BackendLocal {
		return true
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	return c.sub != nil
}

func (c *catalogService) Snapshot(ctx context.Context) ([]entity.Shipment, error) {
	if local, ok := c.backend.Local(); ok {
		items, err := local.Load(ctx)
		if err != nil {
			return nil, domainerrors.NewBackendError("load", err)
		}

		return items, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]entity.Shipment, len(c.items))
	for i := range c.items {
		out[i] = c.items[i].Clone()
	}

	return out, nil
}

func (c *catalogService) Find(ctx context.Context, id string) (*entity.Shipment, error) {
	items, err := c.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}

	return nil, domainerrors.ErrShipmentNotFound
}

func (c *catalogService) Project(ctx context.Context, query entity.ViewQuery) (*entity.Page, error) {
	items, err := c.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	return Project(items, query), nil
}

// Refresh re-reads the local store. Remote mode re-renders on push instead.
func (c *catalogService) Refresh(ctx context.Context) error {
	local, ok := c.backend.Local()
	if !ok {
		return nil
	}

	items, err := local.Load(ctx)
	if err != nil {
		return domainerrors.NewBackendError("load", err)
	}
	c.replace(items)

	return nil
}

func (c *catalogService) Notify(notice entity.Notice) {
	c.notifier.Notify(notice)
}

func (c *catalogService) Revision() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.revision
}

func (c *catalogService) Close() {
	c.authMu.Lock()
	defer c.authMu.Unlock()

	c.cancel()
	c.detach()
}

// detach ends the active subscription, if any. Events still queued on it are
// dropped by the generation check.
func (c *catalogService) detach() {
	c.mu.Lock()
	sub := c.sub
	c.sub = nil
	c.generation++
	c.mu.Unlock()

	if sub != nil {
		sub.Unsubscribe()
	}
}

func (c *catalogService) consume(gen uint64, sub repository.Subscription) {
	for event := range sub.Events() {
		if !c.current(gen) {
			continue
		}

		if event.Err != nil {
			c.logger.Error("Shipment subscription error", slog.Any("error", event.Err))
			c.notifier.Notify(entity.Notice{
				Kind:    entity.NoticeError,
				Message: "Error loading shipments: " + event.Err.Error(),
			})

			continue
		}

		c.replaceIfCurrent(gen, event.Items)
	}

	// The listener ended on its own. Drop it so the next authenticated
	// request subscribes again; the last pushed list stays visible.
	c.mu.Lock()
	if c.generation != gen {
		c.mu.Unlock()

		return
	}
	c.sub = nil
	c.generation++
	c.mu.Unlock()

	sub.Unsubscribe()
	c.logger.Warn("Shipment subscription ended, will resubscribe on next request")
}

func (c *catalogService) current(gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.generation == gen
}

func (c *catalogService) replaceIfCurrent(gen uint64, items []entity.Shipment) {
	c.mu.Lock()
	if c.generation != gen {
		c.mu.Unlock()

		return
	}
	rev, total := c.swap(items)
	c.mu.Unlock()

	c.notifier.CollectionChanged(rev, total)
}

func (c *catalogService) replace(items []entity.Shipment) {
	c.mu.Lock()
	rev, total := c.swap(items)
	c.mu.Unlock()

	c.notifier.CollectionChanged(rev, total)
}

// swap must be called with mu held.
func (c *catalogService) swap(items []entity.Shipment) (revision uint64, total int) {
	if items == nil {
		items = []entity.Shipment{}
	}
	c.items = items
	c.revision++

	return c.revision, len(items)
}
