package impl

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	deliverycontext "shiptrack/internal/delivery/context"
	"shiptrack/internal/domain/entity"
	domainerrors "shiptrack/internal/domain/errors"
	"shiptrack/internal/domain/repository"
	"shiptrack/internal/errors"
	"shiptrack/internal/usecase"
	"shiptrack/internal/util"

	"github.com/google/uuid"
)

const backupTimeLayout = "20060102T150405Z"

// ErrNoLiveSnapshot is returned when a remote backup is requested while no
// operator subscription is feeding the catalog.
var ErrNoLiveSnapshot = errors.New("no live remote snapshot to back up")

type transferService struct {
	logger  *slog.Logger
	catalog usecase.CatalogUsecase
	backend repository.Backend
	backups repository.ArchiveStore
	now     func() time.Time
}

// NewTransferService creates the bulk export/import service. backups may be
// nil when scheduled backups are disabled.
func NewTransferService(
	logger *slog.Logger,
	catalog usecase.CatalogUsecase,
	backend repository.Backend,
	backups repository.ArchiveStore,
) usecase.TransferUsecase {
	return &transferService{
		logger:  logger,
		catalog: catalog,
		backend: backend,
		backups: backups,
		now:     time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *transferService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Export renders the collection as a 2-space indented JSON array.
func (s *transferService) Export(ctx context.Context) ([]byte, error) {
	items, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []entity.Shipment{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(items); err != nil {
		return nil, errors.WithStack(err)
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Import replaces the local collection with data, or re-dispatches each
// record to the remote store ignoring per-record failures.
func (s *transferService) Import(ctx context.Context, data []byte) (*usecase.ImportResult, error) {
	var items []entity.Shipment
	if err := json.Unmarshal(data, &items); err != nil || items == nil {
		details := "not a JSON array"
		if err != nil {
			details = err.Error()
		}

		return nil, domainerrors.ErrImportInvalid.WithDetails(details)
	}

	result := &usecase.ImportResult{Total: len(items)}

	switch s.backend.Mode() {
	case entity.BackendLocal:
		local, _ := s.backend.Local()
		if err := local.Save(ctx, items); err != nil {
			return nil, domainerrors.NewBackendError("import", err)
		}
		if err := s.catalog.Refresh(ctx); err != nil {
			return nil, err
		}
	case entity.BackendRemote:
		remote, _ := s.backend.Remote()
		for i := range items {
			item := items[i]
			var err error
			if item.ID != "" {
				_, err = remote.Update(ctx, item.ID, &item)
			} else {
				_, err = remote.Create(ctx, &item)
			}
			if err != nil {
				result.Failed++
				s.log(ctx).Warn("Skipping shipment that failed to import",
					slog.String("id", item.ID),
					slog.String("tracking_no", item.TrackingNo),
					slog.Any("error", err),
				)
			}
		}
	default:
		return nil, errors.WithStack(repository.ErrUnknownBackend)
	}

	s.log(ctx).Info("Shipments imported",
		slog.Int("total", result.Total),
		slog.Int("failed", result.Failed),
		slog.String("backend", string(s.backend.Mode())),
	)

	return result, nil
}

// SeedIfEmpty writes two demo shipments to an empty local store.
func (s *transferService) SeedIfEmpty(ctx context.Context) (bool, error) {
	local, ok := s.backend.Local()
	if !ok {
		return false, nil
	}

	current, err := local.Load(ctx)
	if err != nil {
		return false, domainerrors.NewBackendError("load", err)
	}
	if len(current) > 0 {
		return false, nil
	}

	if err := local.Save(ctx, demoShipments(s.now())); err != nil {
		return false, domainerrors.NewBackendError("seed", err)
	}
	if err := s.catalog.Refresh(ctx); err != nil {
		return false, err
	}

	s.log(ctx).Info("Seeded local store with demo shipments")

	return true, nil
}

// Backup writes an export to the archive under a timestamped name.
func (s *transferService) Backup(ctx context.Context) (string, error) {
	if s.backups == nil {
		return "", errors.New("backup archive is not configured")
	}
	if !s.catalog.Authorized() {
		return "", ErrNoLiveSnapshot
	}

	data, err := s.Export(ctx)
	if err != nil {
		return "", err
	}

	name := "shipments-" + s.now().UTC().Format(backupTimeLayout) + ".json"
	if err := s.backups.Put(ctx, name, data); err != nil {
		return "", domainerrors.NewBackendError("back up", err)
	}

	s.log(ctx).Info("Backup written",
		slog.String("name", name),
		slog.String("size", util.FormatBytes(len(data))),
		slog.String("sha256", util.Checksum(data)),
	)

	return name, nil
}

// Backups relies on the timestamped names sorting chronologically.
func (s *transferService) Backups(ctx context.Context) ([]string, error) {
	if s.backups == nil {
		return []string{}, nil
	}

	names, err := s.backups.List(ctx)
	if err != nil {
		return nil, domainerrors.NewBackendError("list backups", err)
	}

	out := make([]string, 0, len(names))
	for i := len(names) - 1; i >= 0; i-- {
		if strings.HasPrefix(names[i], "shipments-") && strings.HasSuffix(names[i], ".json") {
			out = append(out, names[i])
		}
	}

	return out, nil
}

func demoShipments(now time.Time) []entity.Shipment {
	ms := now.UnixMilli()

	return []entity.Shipment{
		{
			ID:         uuid.NewString(),
			TrackingNo: "JP123456789",
			Sender: entity.Sender{
				Name: "Ana Becker", Email: "ana@example.com", Phone: "+493012345",
				City: "Berlin", State: "BE", Country: "DE",
			},
			Receiver: entity.Receiver{
				Name: "Jeff Miller", Email: "jeff@example.com", Phone: "+197212345",
				Street: "Main St 101", City: "Dallas", State: "TX", Country: "US", Postal: "75201",
			},
			Status:      "In Transit",
			Origin:      "Berlin, DE",
			Destination: "Dallas, US",
			Notes:       "Left hub - Frankfurt",
			CreatedAt:   ms - 86400000,
			UpdatedAt:   ms - 3600000,
		},
		{
			ID:         uuid.NewString(),
			TrackingNo: "JP987654321",
			Sender: entity.Sender{
				Name: "Sophie Laurent", Email: "sophie@example.com", Phone: "+331234567",
				City: "Paris", State: "IDF", Country: "FR",
			},
			Receiver: entity.Receiver{
				Name: "Brittany Jones", Email: "britt@example.com", Phone: "+183212345",
				Street: "Park Rd 78", City: "Houston", State: "TX", Country: "US", Postal: "77001",
			},
			Status:      "Pending",
			Origin:      "Paris, FR",
			Destination: "Houston, US",
			CreatedAt:   ms - 172800000,
			UpdatedAt:   ms - 7200000,
		},
	}
}
