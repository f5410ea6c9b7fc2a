package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/carousel/internal/catalog"
)

// Snapshot represents the latest catalog available to the UI.
type Snapshot struct {
	Items               []catalog.Item
	HasItems            bool
	Revision            uint64 // bumped whenever Items changes
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int // Number of consecutive reload failures
}

// IsStale returns true when the items file has failed to load repeatedly.
func (s Snapshot) IsStale() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update replaces the stored items. When err is non-nil the previous items
// are kept but the error is recorded for visibility.
func (s *Store) Update(items []catalog.Item, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.LastUpdated = time.Now()

	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.ConsecutiveFailures++
		return
	}

	if !s.snapshot.HasItems || !catalog.Equal(s.snapshot.Items, items) {
		s.snapshot.Items = cloneItems(items)
		s.snapshot.Revision++
	}
	s.snapshot.HasItems = true
	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Items = cloneItems(s.snapshot.Items)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneItems(items []catalog.Item) []catalog.Item {
	if len(items) == 0 {
		return nil
	}
	dup := make([]catalog.Item, len(items))
	copy(dup, items)
	return dup
}
