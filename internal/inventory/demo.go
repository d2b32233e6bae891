package inventory

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
)

const defaultDemoCount = 40

// DemoSource generates a deterministic fleet of VMs for trying the grid
// without a backend.
type DemoSource struct {
	Count int
	Seed  uint64
}

var _ Provider = DemoSource{}

var demoStatuses = []string{"online", "online", "online", "disruption", "offline", "deactivated"}

// FetchInventory implements Provider.
func (d DemoSource) FetchInventory(ctx context.Context) (Inventory, error) {
	if err := ctx.Err(); err != nil {
		return Inventory{}, err
	}
	count := d.Count
	if count <= 0 {
		count = defaultDemoCount
	}
	rng := rand.New(rand.NewPCG(d.Seed, d.Seed^0x9e3779b97f4a7c15))

	inv := Inventory{
		Items:           make([]VM, 0, count),
		OrderPreference: make([]string, 0, count),
	}
	for i := 0; i < count; i++ {
		status := demoStatuses[rng.IntN(len(demoStatuses))]
		vm := VM{
			ID:       fmt.Sprintf("vm-host-%03d", i+1),
			Status:   status,
			Selected: rng.IntN(10) == 0,
		}
		if status != "offline" && status != "deactivated" {
			vm.CPU = math.Round(rng.Float64() * 100)
			vm.Memory = math.Round(rng.Float64() * 100)
		}
		inv.Items = append(inv.Items, vm)
		inv.OrderPreference = append(inv.OrderPreference, vm.ID)
	}
	return inv, nil
}

// Describe implements Provider.
func (d DemoSource) Describe() string {
	return "demo"
}
