package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/five82/vmgrid/internal/inventory"
	"github.com/five82/vmgrid/internal/state"
)

// maxBackoff caps the wait between load attempts.
const maxBackoff = 30 * time.Second

// Retry bounds how hard LoadStore tries before giving up.
type Retry struct {
	Every    time.Duration
	Attempts int
}

// LoadStore fetches the inventory from provider and builds a fresh grid
// instance over it. Failed fetches are retried with capped exponential
// backoff until the attempts run out or ctx is cancelled.
func LoadStore(ctx context.Context, provider inventory.Provider, retry Retry) (*state.Store, error) {
	inv, err := fetchWithRetry(ctx, provider, retry)
	if err != nil {
		return nil, err
	}

	rows := inv.RowStore()
	if err := rows.Validate(); err != nil {
		log.Printf("%s: %v", provider.Describe(), err)
	}
	log.Printf("loaded %d hosts from %s", rows.Len(), provider.Describe())
	return state.New(rows, provider.Describe()), nil
}

func fetchWithRetry(ctx context.Context, provider inventory.Provider, retry Retry) (inventory.Inventory, error) {
	attempts := max(retry.Attempts, 1)

	var lastErr error
	for failures := 0; failures < attempts; failures++ {
		if failures > 0 {
			wait := calculateBackoff(failures-1, retry.Every)
			log.Printf("inventory fetch failed (attempt %d/%d), retrying in %s: %v", failures, attempts, wait, lastErr)
			if err := sleep(ctx, wait); err != nil {
				return inventory.Inventory{}, err
			}
		}

		inv, err := provider.FetchInventory(ctx)
		if err == nil {
			return inv, nil
		}
		if ctx.Err() != nil {
			return inventory.Inventory{}, ctx.Err()
		}
		lastErr = err
	}
	return inventory.Inventory{}, fmt.Errorf("fetch inventory from %s after %d attempts: %w", provider.Describe(), attempts, lastErr)
}

// calculateBackoff returns the wait after the given number of consecutive
// failures: base doubled per failure, capped at maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	backoff := base
	for range failures {
		backoff *= 2
		if backoff >= maxBackoff {
			return maxBackoff
		}
	}
	return backoff
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
