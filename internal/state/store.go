package state

import (
	"time"

	"github.com/five82/vmgrid/internal/grid"
)

// Editable cells and popover anchors of the VM grid's sticky filter row.
const (
	HostCell   grid.CellRef = "filter/host"
	StatusCell grid.CellRef = "filter/status"

	HostFilterAnchor grid.ElementHandle = "column/host/filter"
)

// Bindings maps each editable cell to the filter it edits.
func Bindings() map[grid.CellRef]grid.Binding {
	return map[grid.CellRef]grid.Binding{
		HostCell:   grid.BindSearch,
		StatusCell: grid.BindStatus,
	}
}

// Snapshot is what the renderer reads after each event.
type Snapshot struct {
	Filter   grid.FilterState
	View     grid.View
	Source   string
	LoadedAt time.Time
	// OrderWarning is set when the provider's order preference does not
	// list every row exactly once.
	OrderWarning error
}

// Store is one grid instance: the loaded rows plus the current FilterState.
// It is owned by a single event loop and is not safe for concurrent use.
type Store struct {
	ctrl     *grid.Controller
	proj     *grid.Projector
	filter   grid.FilterState
	source   string
	loadedAt time.Time
	warning  error
	events   int
}

// New builds a grid instance over rows. The filter state starts empty.
func New(rows grid.RowStore, source string) *Store {
	return &Store{
		ctrl:     grid.NewController(Bindings()),
		proj:     grid.NewProjector(rows),
		source:   source,
		loadedAt: time.Now(),
		warning:  rows.Validate(),
	}
}

func (s *Store) ensure() {
	if s.ctrl == nil {
		s.ctrl = grid.NewController(Bindings())
	}
	if s.proj == nil {
		s.proj = grid.NewProjector(grid.NewRowStore(nil, nil))
	}
}

// Dispatch feeds one input event through the controller and keeps the
// resulting state.
func (s *Store) Dispatch(ev grid.Event) grid.Result {
	s.ensure()
	res := s.ctrl.Handle(s.filter, ev)
	s.filter = res.State
	s.events++
	return res
}

// Apply runs a FilterState transition directly, for callers that are not
// driven by input events (command-line flags, tests).
func (s *Store) Apply(in grid.Intent) grid.FilterState {
	s.filter = grid.Reduce(s.filter, in)
	return s.filter
}

// Events returns the number of input events dispatched so far.
func (s *Store) Events() int {
	return s.events
}

// Filter returns the current filter state.
func (s *Store) Filter() grid.FilterState {
	return s.filter
}

// Rows returns the underlying row store.
func (s *Store) Rows() grid.RowStore {
	s.ensure()
	return s.proj.Store()
}

// Snapshot projects the current state.
func (s *Store) Snapshot() Snapshot {
	s.ensure()
	return Snapshot{
		Filter:       s.filter,
		View:         s.proj.Project(s.filter),
		Source:       s.source,
		LoadedAt:     s.loadedAt,
		OrderWarning: s.warning,
	}
}
