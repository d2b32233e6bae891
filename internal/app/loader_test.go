package app

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/five82/vmgrid/internal/inventory"
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
		{"four failures capped", 4, 30 * time.Second},
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
	for failures := 0; failures <= 64; failures++ {
		got := calculateBackoff(failures, 2*time.Second)
		if got > maxBackoff {
			t.Errorf("calculateBackoff(%d) = %v, exceeds maxBackoff %v", failures, got, maxBackoff)
		}
	}
}

// flakyProvider fails a fixed number of times before serving inv.
type flakyProvider struct {
	failures int
	calls    int
	inv      inventory.Inventory
}

func (p *flakyProvider) FetchInventory(ctx context.Context) (inventory.Inventory, error) {
	p.calls++
	if p.calls <= p.failures {
		return inventory.Inventory{}, errors.New("connection refused")
	}
	return p.inv, nil
}

func (p *flakyProvider) Describe() string { return "flaky" }

func testInventory() inventory.Inventory {
	return inventory.Inventory{
		Items: []inventory.VM{
			{ID: "vm-1", Status: "online"},
			{ID: "vm-2", Status: "offline", Selected: true},
		},
		OrderPreference: []string{"vm-2", "vm-1"},
	}
}

func TestLoadStore_RetriesUntilSuccess(t *testing.T) {
	p := &flakyProvider{failures: 2, inv: testInventory()}
	store, err := LoadStore(context.Background(), p, Retry{Every: time.Millisecond, Attempts: 3})
	if err != nil {
		t.Fatalf("LoadStore error: %v", err)
	}
	if p.calls != 3 {
		t.Fatalf("calls = %d, want 3", p.calls)
	}

	snap := store.Snapshot()
	if snap.Source != "flaky" {
		t.Fatalf("Source = %q, want flaky", snap.Source)
	}
	if len(snap.View.Rows) != 2 || snap.View.Rows[0].ID != "vm-2" {
		t.Fatalf("rows = %+v, want vm-2 first", snap.View.Rows)
	}
	if snap.View.Selected != 1 {
		t.Fatalf("Selected = %d, want 1", snap.View.Selected)
	}
	if snap.OrderWarning != nil {
		t.Fatalf("OrderWarning = %v, want nil", snap.OrderWarning)
	}
}

func TestLoadStore_GivesUp(t *testing.T) {
	p := &flakyProvider{failures: 10}
	_, err := LoadStore(context.Background(), p, Retry{Every: time.Millisecond, Attempts: 2})
	if err == nil {
		t.Fatal("LoadStore error = nil, want failure")
	}
	if p.calls != 2 {
		t.Fatalf("calls = %d, want 2", p.calls)
	}
	if !strings.Contains(err.Error(), "after 2 attempts") || !strings.Contains(err.Error(), "connection refused") {
		t.Fatalf("error = %q", err)
	}
}

func TestLoadStore_ZeroAttemptsTriesOnce(t *testing.T) {
	p := &flakyProvider{inv: testInventory()}
	if _, err := LoadStore(context.Background(), p, Retry{}); err != nil {
		t.Fatalf("LoadStore error: %v", err)
	}
	if p.calls != 1 {
		t.Fatalf("calls = %d, want 1", p.calls)
	}
}

func TestLoadStore_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	p := &flakyProvider{failures: 10}

	done := make(chan error, 1)
	go func() {
		_, err := LoadStore(ctx, p, Retry{Every: time.Hour, Attempts: 5})
		done <- err
	}()
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("error = %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("LoadStore did not return after cancel")
	}
}

func TestLoadStore_FlagsBadOrder(t *testing.T) {
	inv := testInventory()
	inv.OrderPreference = []string{"vm-1", "vm-1"}
	store, err := LoadStore(context.Background(), &flakyProvider{inv: inv}, Retry{Attempts: 1})
	if err != nil {
		t.Fatalf("LoadStore error: %v", err)
	}
	if store.Snapshot().OrderWarning == nil {
		t.Fatal("OrderWarning = nil for duplicate order entries")
	}
}
