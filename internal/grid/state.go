package grid

// ElementHandle identifies the UI element a popover is anchored to. The
// empty handle means the popover is closed.
type ElementHandle string

// CellRef identifies an editable cell independently of any view tree. The
// empty ref means no cell.
type CellRef string

// IntentKind names the operation that produced a FilterState.
type IntentKind int

const (
	IntentNone IntentKind = iota
	IntentSetSearchText
	IntentSetStatusFilter
	IntentOpenColumnPopover
	IntentCloseColumnPopover
	IntentBeginEditingCell
	IntentEndEditingCell
)

func (k IntentKind) String() string {
	switch k {
	case IntentSetSearchText:
		return "setSearchText"
	case IntentSetStatusFilter:
		return "setStatusFilter"
	case IntentOpenColumnPopover:
		return "openColumnPopover"
	case IntentCloseColumnPopover:
		return "closeColumnPopover"
	case IntentBeginEditingCell:
		return "beginEditingCell"
	case IntentEndEditingCell:
		return "endEditingCell"
	default:
		return "none"
	}
}

// Intent is a requested FilterState transition.
type Intent struct {
	Kind     IntentKind
	Text     string
	Category Category
	Anchor   ElementHandle
	Cell     CellRef
}

// FilterState is the transient UI state of one grid. It is a value: every
// transition returns a new FilterState and leaves the receiver untouched.
// The zero value is the initial state.
type FilterState struct {
	SearchText    string
	StatusFilter  Category
	PopoverAnchor ElementHandle
	EditingCell   CellRef

	// Last records the intent that produced this state.
	Last IntentKind
}

// SetSearchText replaces the search text.
func (s FilterState) SetSearchText(text string) FilterState {
	s.SearchText = text
	s.Last = IntentSetSearchText
	return s
}

// SetStatusFilter replaces the status filter.
func (s FilterState) SetStatusFilter(c Category) FilterState {
	s.StatusFilter = c
	s.Last = IntentSetStatusFilter
	return s
}

// OpenColumnPopover anchors the column filter popover at anchor.
func (s FilterState) OpenColumnPopover(anchor ElementHandle) FilterState {
	s.PopoverAnchor = anchor
	s.Last = IntentOpenColumnPopover
	return s
}

// CloseColumnPopover clears the popover anchor.
func (s FilterState) CloseColumnPopover() FilterState {
	s.PopoverAnchor = ""
	s.Last = IntentCloseColumnPopover
	return s
}

// BeginEditingCell marks ref as editing. Editing is exclusive: the request
// is ignored while any cell, ref included, is already editing.
func (s FilterState) BeginEditingCell(ref CellRef) FilterState {
	if s.EditingCell != "" || ref == "" {
		return s
	}
	s.EditingCell = ref
	s.Last = IntentBeginEditingCell
	return s
}

// EndEditingCell clears the editing mark.
func (s FilterState) EndEditingCell() FilterState {
	s.EditingCell = ""
	s.Last = IntentEndEditingCell
	return s
}

// PopoverOpen reports whether the column popover is anchored.
func (s FilterState) PopoverOpen() bool {
	return s.PopoverAnchor != ""
}

// Mode returns the edit mode of ref.
func (s FilterState) Mode(ref CellRef) Mode {
	if ref != "" && s.EditingCell == ref {
		return ModeEditing
	}
	return ModeDisplay
}

// Reduce applies in to s.
func Reduce(s FilterState, in Intent) FilterState {
	switch in.Kind {
	case IntentSetSearchText:
		return s.SetSearchText(in.Text)
	case IntentSetStatusFilter:
		return s.SetStatusFilter(in.Category)
	case IntentOpenColumnPopover:
		return s.OpenColumnPopover(in.Anchor)
	case IntentCloseColumnPopover:
		return s.CloseColumnPopover()
	case IntentBeginEditingCell:
		return s.BeginEditingCell(in.Cell)
	case IntentEndEditingCell:
		return s.EndEditingCell()
	}
	return s
}
