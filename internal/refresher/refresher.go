// Package refresher drives the periodic snapshot refresh cycle.
package refresher

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/and161185/covid19-dashboard/internal/config"
	"github.com/and161185/covid19-dashboard/model"
)

type acquirer interface {
	Acquire(ctx context.Context) model.Snapshot
}

type storage interface {
	Save(ctx context.Context, snap model.Snapshot) error
}

// Refresher keeps the stored snapshot current: one refresh at startup, then
// one per interval tick, plus manual refreshes from the API.
type Refresher struct {
	acquirer acquirer
	storage  storage
	config   *config.DashboardConfig

	mu sync.Mutex // a timer tick and a manual refresh never acquire concurrently
}

// NewRefresher creates a refresher around the given acquirer and storage.
func NewRefresher(a acquirer, s storage, cfg *config.DashboardConfig) *Refresher {
	return &Refresher{acquirer: a, storage: s, config: cfg}
}

// Run refreshes the snapshot immediately, then on every interval tick until
// ctx is cancelled. A non-positive interval disables the periodic refresh;
// manual refreshes keep working.
func (ref *Refresher) Run(ctx context.Context) error {
	if _, err := ref.RefreshNow(ctx); err != nil {
		ref.config.Logger.Errorf("initial refresh: %v", err)
	}

	interval := time.Duration(ref.config.RefreshInterval) * time.Second
	if interval <= 0 {
		ref.config.Logger.Infof("periodic refresh disabled: interval=%d", ref.config.RefreshInterval)
		<-ctx.Done()
		return nil
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			if _, err := ref.RefreshNow(ctx); err != nil {
				ref.config.Logger.Errorf("refresh: %v", err)
			}
		}
	}
}

// RefreshNow performs one acquisition and replaces the stored snapshot
// wholesale. The previous snapshot never leaks into the new one.
func (ref *Refresher) RefreshNow(ctx context.Context) (model.Snapshot, error) {
	ref.mu.Lock()
	defer ref.mu.Unlock()

	start := time.Now()
	snap := ref.acquirer.Acquire(ctx)
	if err := ref.storage.Save(ctx, snap); err != nil {
		return model.Snapshot{}, fmt.Errorf("save snapshot: %w", err)
	}

	ref.config.Logger.Infof("snapshot refreshed: source=%s confirmed=%d duration=%s",
		snap.Source, snap.Confirmed, time.Since(start))
	return snap, nil
}
