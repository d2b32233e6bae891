package inventory

import (
	"strings"

	"github.com/five82/vmgrid/internal/grid"
)

// VM mirrors one entry of the inventory payload.
type VM struct {
	ID       string  `json:"id" yaml:"id"`
	Status   string  `json:"status" yaml:"status"`
	CPU      float64 `json:"cpu" yaml:"cpu"`
	Memory   float64 `json:"memory" yaml:"memory"`
	Selected bool    `json:"selected" yaml:"selected"`
}

// Inventory is the payload returned by /api/vms and stored in data files.
type Inventory struct {
	Items           []VM     `json:"items" yaml:"items"`
	OrderPreference []string `json:"orderPreference" yaml:"order_preference"`
}

// Row converts the transport VM into a grid row.
func (v VM) Row() grid.Row {
	return grid.Row{
		ID:       strings.TrimSpace(v.ID),
		Status:   grid.ParseCategory(v.Status),
		CPU:      clampPercent(v.CPU),
		Memory:   clampPercent(v.Memory),
		Selected: v.Selected,
	}
}

// RowStore builds the immutable grid store. Items without an id are dropped.
func (inv Inventory) RowStore() grid.RowStore {
	rows := make([]grid.Row, 0, len(inv.Items))
	for _, vm := range inv.Items {
		row := vm.Row()
		if row.ID == "" {
			continue
		}
		rows = append(rows, row)
	}
	var order []string
	for _, id := range inv.OrderPreference {
		if id = strings.TrimSpace(id); id != "" {
			order = append(order, id)
		}
	}
	return grid.NewRowStore(rows, order)
}

func clampPercent(v float64) float64 {
	return min(max(v, 0), 100)
}
