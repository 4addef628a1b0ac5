package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/slog"

	"github.com/OfficialArms/virtool/internal/infrastructure/storage/sqlite"
	"github.com/OfficialArms/virtool/internal/state"
)

// transient slices are rebuilt on start and never cached.
var transient = map[string]bool{
	"app":    true,
	"errors": true,
}

type SnapshotStorage interface {
	Save(ctx context.Context, slices []sqlite.Slice) error
	Load(ctx context.Context) ([]sqlite.Slice, error)
}

// Snapshotter writes the state tree to disk when it changed and restores it
// on start.
type Snapshotter struct {
	storage  SnapshotStorage
	interval time.Duration
	log      *slog.Logger
}

func NewSnapshotter(storage SnapshotStorage, interval time.Duration, log *slog.Logger) *Snapshotter {
	return &Snapshotter{
		storage:  storage,
		interval: interval,
		log:      log.With("component", "snapshotter"),
	}
}

// Restore fills root from the cache. Unreadable slices are skipped and
// pending markers of the previous run are cleared.
func (s *Snapshotter) Restore(ctx context.Context, root state.Root) state.Root {
	slices, err := s.storage.Load(ctx)
	if err != nil {
		if !errors.Is(err, sqlite.ErrNoSnapshot) {
			s.log.Warn("failed to load snapshot", "error", err)
		}
		return root
	}

	for _, sl := range slices {
		if transient[sl.Name] {
			continue
		}
		if err := state.Restore(&root, sl.Name, sl.Data); err != nil {
			s.log.Warn("snapshot slice skipped", "slice", sl.Name, "error", err)
			continue
		}
		s.log.Debug("slice restored", "slice", sl.Name, "saved_at", sl.SavedAt)
	}

	return state.Settle(root)
}

type Source interface {
	State() state.Root
	Subscribe() (<-chan state.Root, func())
}

// Run saves the latest state every interval when it changed, and once more
// on shutdown.
func (s *Snapshotter) Run(ctx context.Context, src Source) error {
	updates, cancel := src.Subscribe()
	defer cancel()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	var (
		latest state.Root
		dirty  bool
	)

	for {
		select {
		case root, ok := <-updates:
			if !ok {
				updates = nil
				continue
			}
			latest, dirty = root, true

		case <-ticker.C:
			if !dirty {
				continue
			}
			if err := s.Save(ctx, latest); err != nil {
				s.log.Error("failed to save snapshot", "error", err)
				continue
			}
			dirty = false

		case <-ctx.Done():
			if dirty {
				if err := s.Save(context.Background(), latest); err != nil {
					s.log.Error("failed to save final snapshot", "error", err)
				}
			}
			return nil
		}
	}
}

func (s *Snapshotter) Save(ctx context.Context, root state.Root) error {
	now := time.Now().UTC()

	slices := make([]sqlite.Slice, 0, len(state.SliceNames()))
	for _, name := range state.SliceNames() {
		if transient[name] {
			continue
		}

		v, err := state.Slice(root, name)
		if err != nil {
			return err
		}

		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("marshal slice %s: %w", name, err)
		}

		slices = append(slices, sqlite.Slice{Name: name, Data: data, SavedAt: now})
	}

	if err := s.storage.Save(ctx, slices); err != nil {
		return err
	}

	s.log.Debug("snapshot saved", "slices", len(slices))
	return nil
}

// ReadSnapshot loads the cached tree without starting the daemon.
func ReadSnapshot(ctx context.Context, path string) (state.Root, time.Time, error) {
	storage, err := sqlite.NewSnapshotStorage(path)
	if err != nil {
		return state.Root{}, time.Time{}, err
	}
	defer storage.Close()

	slices, err := storage.Load(ctx)
	if err != nil {
		return state.Root{}, time.Time{}, err
	}

	root := state.Initial()
	var savedAt time.Time
	for _, sl := range slices {
		if err := state.Restore(&root, sl.Name, sl.Data); err != nil {
			return state.Root{}, time.Time{}, err
		}
		if sl.SavedAt.After(savedAt) {
			savedAt = sl.SavedAt
		}
	}

	return state.Settle(root), savedAt, nil
}
