// Package ui provides the Bubble Tea terminal front end for vmgrid.
//
// # Screen Layout
//
//	vmgrid  demo fleet (40 hosts)               loaded 14:02:11 · Nightfox
//	Search: vm-host-0
//	  HOST                      ▼ STATUS              CPU    MEM
//	  vm-host-0…                  any
//	✓ vm-host-001                 ● online            42%    67%
//	  vm-host-002                 ● offline            0%     0%
//	filtering on host vm-host-0, status  · 9 of 40 hosts · 1 selected
//
// The third line is the column header. Its host filter button shows a
// filled triangle while a search is active and opens the column popover,
// a small text box inserted below the header. The fourth line is the sticky
// filter row with two editable cells: the host cell edits the search text
// and the status cell selects a status category. The footer carries the
// live region announcement for the current filters.
//
// # Input
//
// Key and mouse messages are translated into grid events and dispatched to
// the state.Store; the resulting grid.Result says whether focus moves into
// or out of a cell's inner control. The toolbar search box, the popover
// input and the host cell all edit the same search text and are kept in
// sync after each event.
//
// Tab and shift+tab cycle focus between the search box, the filter button,
// the two filter cells and the rows. Leaving an editing cell this way counts
// as a blur of its control and returns the cell to display mode.
//
// # Loading
//
// Rows arrive through Options.Load, run as a command so the first frame is
// drawn immediately. A reload keeps the search text and status filter but
// drops edit mode and the popover.
package ui
