package app

import (
	"context"
	"time"

	"github.com/five82/carousel/internal/catalog"
	"github.com/five82/carousel/internal/logging"
	"github.com/five82/carousel/internal/state"
)

const (
	defaultPollInterval = 2 * time.Second
	maxBackoff          = 30 * time.Second
)

// LoadFunc produces the current item list.
type LoadFunc func() ([]catalog.Item, error)

// StartPoller launches a background goroutine that reloads the catalog into
// the store at a fixed cadence, backing off while loads fail. It returns
// immediately.
func StartPoller(ctx context.Context, store *state.Store, load LoadFunc, interval time.Duration, log logging.Logger) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	go func() {
		timer := time.NewTimer(interval)
		defer timer.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-timer.C:
			}
			refresh(store, load, log)
			timer.Reset(calculateBackoff(store.Snapshot().ConsecutiveFailures, interval))
		}
	}()
}

func refresh(store *state.Store, load LoadFunc, log logging.Logger) error {
	items, err := load()
	if err != nil {
		store.Update(nil, err)
		log.Warn("catalog reload failed", "error", err)
		return err
	}
	store.Update(items, nil)
	return nil
}

// calculateBackoff doubles the interval per consecutive failure, capped at
// maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	d := base
	for i := 0; i < failures; i++ {
		d *= 2
		if d >= maxBackoff {
			return maxBackoff
		}
	}
	return d
}
