package inmemory

import (
	"context"
	"testing"
	"time"

	"github.com/and161185/covid19-dashboard/model"
)

func TestMemStorage_SeededWithBackup(t *testing.T) {
	st := NewMemStorage()

	snap, err := st.Get(context.Background())
	if err != nil {
		t.Fatalf("failed to get: %v", err)
	}

	if snap != model.FallbackSnapshot() {
		t.Errorf("fresh store not seeded with backup snapshot: %+v", snap)
	}
}

func TestMemStorage_SaveReplacesWholesale(t *testing.T) {
	st := NewMemStorage()
	ctx := context.Background()

	live := model.Snapshot{
		Confirmed:   100,
		Recovered:   60,
		Deaths:      10,
		Active:      30,
		GlobalTotal: 100,
		Suspect:     5,
		Specimens:   7,
		Source:      model.SourceLive,
		RetrievedAt: time.Date(2023, 6, 21, 12, 0, 0, 0, time.UTC),
	}

	if err := st.Save(ctx, live); err != nil {
		t.Fatalf("failed to save: %v", err)
	}

	got, _ := st.Get(ctx)
	if got != live {
		t.Errorf("want %+v, got %+v", live, got)
	}

	if err := st.Save(ctx, model.FallbackSnapshot()); err != nil {
		t.Fatalf("failed to save: %v", err)
	}

	got, _ = st.Get(ctx)
	if got != model.FallbackSnapshot() {
		t.Errorf("overwrite failed: got %+v", got)
	}
}

func TestMemStorage_Ping(t *testing.T) {
	st := NewMemStorage()

	if err := st.Ping(context.Background()); err != nil {
		t.Errorf("ping failed: %v", err)
	}
}
