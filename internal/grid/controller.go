package grid

// Mode is the edit mode of a single cell.
type Mode int

const (
	ModeDisplay Mode = iota
	ModeEditing
)

func (m Mode) String() string {
	if m == ModeEditing {
		return "editing"
	}
	return "display"
}

// Key names understood by the controller.
const (
	KeyEnter  = "Enter"
	KeyEscape = "Escape"
)

// EventKind classifies raw input.
type EventKind int

const (
	EventClick EventKind = iota
	EventKey
	EventBlur
	EventInput
	EventClose
)

// Target is the element an event originated from.
type Target int

const (
	// TargetCell is the cell chrome around an inline control.
	TargetCell Target = iota
	// TargetControl is the input or select embedded in a cell.
	TargetControl
	TargetSearchBox
	TargetFilterButton
	TargetPopover
	TargetPopoverInput
)

// Event is one input delivered by the host.
type Event struct {
	Kind   EventKind
	Key    string
	Target Target
	Cell   CellRef
	Anchor ElementHandle
	Value  string
}

// Binding says which filter a cell's inner control edits.
type Binding int

const (
	BindSearch Binding = iota
	BindStatus
)

// Transition describes what an event did to the edit mode.
type Transition int

const (
	TransitionNone Transition = iota
	TransitionEnter
	TransitionExit
)

// Focus is a focus move the host should perform.
type Focus int

const (
	FocusUnchanged Focus = iota
	FocusControl
	FocusCell
)

// Result is the outcome of handling an event.
type Result struct {
	State      FilterState
	Transition Transition
	Focus      Focus
	Cell       CellRef
}

// Controller maps input events to FilterState transitions. It holds only
// the cell bindings; all state flows through Handle.
type Controller struct {
	bindings map[CellRef]Binding
}

// NewController returns a controller for the given editable cells.
func NewController(bindings map[CellRef]Binding) *Controller {
	b := make(map[CellRef]Binding, len(bindings))
	for ref, bind := range bindings {
		b[ref] = bind
	}
	return &Controller{bindings: b}
}

// Handle applies ev to s. Events that do not concern the edit state machine
// or a filter fall through with s unchanged.
func (c *Controller) Handle(s FilterState, ev Event) Result {
	res := Result{State: s, Cell: ev.Cell}

	switch ev.Target {
	case TargetSearchBox, TargetPopoverInput:
		if ev.Kind == EventInput {
			res.State = s.SetSearchText(ev.Value)
		}
		return res
	case TargetFilterButton:
		if ev.Kind == EventClick && ev.Anchor != "" {
			res.State = s.OpenColumnPopover(ev.Anchor)
		}
		return res
	case TargetPopover:
		if ev.Kind == EventClose {
			res.State = s.CloseColumnPopover()
		}
		return res
	case TargetCell, TargetControl:
		return c.handleCell(s, ev, res)
	}
	return res
}

func (c *Controller) handleCell(s FilterState, ev Event, res Result) Result {
	bind, editable := c.bindings[ev.Cell]
	if !editable {
		return res
	}

	if ev.Kind == EventInput {
		if ev.Target == TargetControl {
			res.State = applyBinding(s, bind, ev.Value)
		}
		return res
	}

	switch s.Mode(ev.Cell) {
	case ModeDisplay:
		if ev.Kind == EventClick || (ev.Kind == EventKey && ev.Key == KeyEnter) {
			next := s.BeginEditingCell(ev.Cell)
			if next.EditingCell == ev.Cell {
				res.State = next
				res.Transition = TransitionEnter
				res.Focus = FocusControl
			}
		}
	case ModeEditing:
		exit := ev.Kind == EventKey && (ev.Key == KeyEnter || ev.Key == KeyEscape)
		exit = exit || (ev.Kind == EventBlur && ev.Target == TargetControl)
		if exit {
			res.State = s.EndEditingCell()
			res.Transition = TransitionExit
			res.Focus = FocusCell
		}
	}
	return res
}

func applyBinding(s FilterState, bind Binding, value string) FilterState {
	switch bind {
	case BindStatus:
		return s.SetStatusFilter(ParseCategory(value))
	default:
		return s.SetSearchText(value)
	}
}
