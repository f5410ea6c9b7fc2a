package app

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/five82/carousel/internal/catalog"
	"github.com/five82/carousel/internal/logging"
	"github.com/five82/carousel/internal/state"
)

func TestCalculateBackoff(t *testing.T) {
	baseInterval := 2 * time.Second

	tests := []struct {
		name     string
		failures int
		want     time.Duration
	}{
		{"zero failures", 0, 2 * time.Second},
		{"negative failures", -1, 2 * time.Second},
		{"one failure", 1, 4 * time.Second},
		{"two failures", 2, 8 * time.Second},
		{"three failures", 3, 16 * time.Second},
		{"four failures capped", 4, 30 * time.Second}, // Would be 32s, capped to 30s
		{"many failures capped", 10, 30 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calculateBackoff(tt.failures, baseInterval)
			if got != tt.want {
				t.Errorf("calculateBackoff(%d, %v) = %v, want %v", tt.failures, baseInterval, got, tt.want)
			}
		})
	}
}

func TestCalculateBackoff_MaxCap(t *testing.T) {
	baseInterval := 2 * time.Second
	for failures := 0; failures <= 80; failures++ {
		got := calculateBackoff(failures, baseInterval)
		if got > maxBackoff {
			t.Errorf("calculateBackoff(%d, %v) = %v, exceeds maxBackoff %v", failures, baseInterval, got, maxBackoff)
		}
	}
}

func TestRefresh_RecordsErrors(t *testing.T) {
	store := &state.Store{}
	boom := errors.New("boom")

	if err := refresh(store, func() ([]catalog.Item, error) { return nil, boom }, logging.Discard()); !errors.Is(err, boom) {
		t.Fatalf("refresh error = %v, want boom", err)
	}
	if snap := store.Snapshot(); snap.ConsecutiveFailures != 1 || snap.HasItems {
		t.Fatalf("snapshot = %#v, want one failure and no items", snap)
	}

	if err := refresh(store, func() ([]catalog.Item, error) { return catalog.Placeholder(2), nil }, logging.Discard()); err != nil {
		t.Fatalf("refresh returned error: %v", err)
	}
	if snap := store.Snapshot(); len(snap.Items) != 2 || snap.ConsecutiveFailures != 0 {
		t.Fatalf("snapshot = %#v, want two items", snap)
	}
}

func TestStartPoller_ReloadsUntilCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	store := &state.Store{}

	var calls atomic.Int32
	load := func() ([]catalog.Item, error) {
		n := calls.Add(1)
		return catalog.Placeholder(int(n)), nil
	}

	StartPoller(ctx, store, load, 5*time.Millisecond, logging.Discard())

	deadline := time.Now().Add(2 * time.Second)
	for calls.Load() < 3 {
		if time.Now().After(deadline) {
			t.Fatalf("poller made %d calls, want >= 3", calls.Load())
		}
		time.Sleep(time.Millisecond)
	}
	cancel()

	if rev := store.Snapshot().Revision; rev < 2 {
		t.Fatalf("Revision = %d, want >= 2", rev)
	}
}
