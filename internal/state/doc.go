// Package state holds one grid instance for the vmgrid front ends.
//
// # Overview
//
// A Store couples an immutable grid.RowStore with the current
// grid.FilterState. Front ends feed it input events and read back a Snapshot:
//
//	Input (TUI / CLI):              Renderer:
//	┌──────────────────┐           ┌──────────────────┐
//	│ key / mouse msg  │           │                  │
//	│      ↓           │           │                  │
//	│ store.Dispatch() │──────────→│ store.Snapshot() │
//	│      ↓           │           │      ↓           │
//	│  next event...   │           │  render View     │
//	└──────────────────┘           └──────────────────┘
//
// The sticky filter row has two editable cells, HostCell (bound to the
// search text) and StatusCell (bound to the status filter), and the host
// column's filter button anchors the popover at HostFilterAnchor.
//
// # Concurrency Model
//
// A grid instance is never shared between goroutines. Events are
// handled in the order the front end delivers them, on the goroutine that
// owns the Store, so no locking is needed. The RowStore inside is read-only
// and may be shared freely.
//
// # Snapshot Semantics
//
// Every transition replaces the FilterState wholesale; nothing is patched in
// place. Snapshot rows are fresh copies, so a renderer may keep or modify them
// without affecting later snapshots.
//
// # Testing Considerations
//
// The zero Store is usable and behaves like a grid over no rows:
//
//	var s state.Store
//	s.Dispatch(grid.Event{Kind: grid.EventInput, Target: grid.TargetSearchBox, Value: "vm"})
//	snap := s.Snapshot() // no rows, live region "filtering on host vm, status "
package state
