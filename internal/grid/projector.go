package grid

import (
	"fmt"
	"slices"
)

// View is everything a renderer needs to draw the grid.
type View struct {
	Rows           []Row
	LiveRegionText string
	Total          int
	Selected       int
	// FilterActive drives the host column filter button indicator.
	FilterActive bool
}

// LiveRegionText is the announcement for the current filters. It changes
// whenever either filter changes, even if the visible rows do not.
func LiveRegionText(s FilterState) string {
	return fmt.Sprintf("filtering on host %s, status %s", s.SearchText, s.StatusFilter)
}

// Project derives the view of store under s.
func Project(store RowStore, s FilterState) View {
	rows := filterCategory(filterText(store.ordered, s.SearchText), s.StatusFilter)
	return newView(store, s, rows)
}

func newView(store RowStore, s FilterState, rows []Row) View {
	selected := 0
	for _, r := range store.rows {
		if r.Selected {
			selected++
		}
	}
	return View{
		Rows:           rows,
		LiveRegionText: LiveRegionText(s),
		Total:          len(store.rows),
		Selected:       selected,
		FilterActive:   s.SearchText != "",
	}
}

type memoKey struct {
	search string
	status Category
}

// Projector projects a single store and remembers the last filtered rows,
// so that edit-mode and popover transitions do not refilter.
type Projector struct {
	store RowStore
	valid bool
	key   memoKey
	rows  []Row
}

// NewProjector returns a Projector over store.
func NewProjector(store RowStore) *Projector {
	return &Projector{store: store}
}

// Store returns the projected store.
func (p *Projector) Store() RowStore {
	return p.store
}

// Project returns the same View as the package-level Project.
func (p *Projector) Project(s FilterState) View {
	key := memoKey{search: s.SearchText, status: s.StatusFilter}
	if !p.valid || p.key != key {
		p.rows = filterCategory(filterText(p.store.ordered, s.SearchText), s.StatusFilter)
		p.key = key
		p.valid = true
	}
	return newView(p.store, s, slices.Clone(p.rows))
}
