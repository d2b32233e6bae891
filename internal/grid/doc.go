// Package grid is the state and derivation core of the VM grid.
//
// # Overview
//
// The package holds no I/O and no goroutines. It is made of four pieces:
//
//   - RowStore: immutable rows plus the order preference used to sort them
//   - Apply: the fixed pipeline order -> host substring filter -> status filter
//   - FilterState: the transient UI state, transitioned by value
//   - Controller: the per-cell edit-mode state machine fed by input events
//
// Project (or a Projector, which memoizes the last filter result) turns a
// RowStore and a FilterState into the View a renderer draws.
//
// # Data Flow
//
//	input event ──> Controller.Handle ──> FilterState ──> Projector.Project ──> View
//
// # Edit Mode
//
// Each editable cell is either in ModeDisplay or ModeEditing, and at most one
// cell is editing at a time. A click, or Enter on a displayed cell, enters
// editing and asks the host to focus the inner control. Enter, Escape, or a
// blur of the inner control leaves editing and asks the host to focus the
// cell again. Everything else while editing belongs to the inner control;
// input events from it update the filter the cell is bound to.
//
// Focus moves are returned in Result rather than performed, so the state
// machine does not depend on any particular view tree.
//
// # Errors
//
// Nothing here returns an error. Requests whose precondition does not hold
// (beginning an edit while another cell edits) leave the state unchanged,
// and unknown status values simply match no rows.
package grid
