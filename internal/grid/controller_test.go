package grid

import "testing"

const (
	hostCell   CellRef = "filter/host"
	statusCell CellRef = "filter/status"
)

func newTestController() *Controller {
	return NewController(map[CellRef]Binding{
		hostCell:   BindSearch,
		statusCell: BindStatus,
	})
}

func TestFilterState_TransitionsReturnNewValues(t *testing.T) {
	var s FilterState
	next := s.SetSearchText("v2")
	if s.SearchText != "" {
		t.Fatalf("receiver mutated: SearchText = %q", s.SearchText)
	}
	if next.SearchText != "v2" || next.Last != IntentSetSearchText {
		t.Fatalf("SetSearchText = %+v", next)
	}

	next = next.SetStatusFilter(CategoryOnline)
	if next.SearchText != "v2" || next.StatusFilter != CategoryOnline {
		t.Fatalf("SetStatusFilter changed other fields: %+v", next)
	}

	next = next.OpenColumnPopover("host-filter")
	if !next.PopoverOpen() || next.PopoverAnchor != "host-filter" {
		t.Fatalf("OpenColumnPopover = %+v", next)
	}
	next = next.CloseColumnPopover()
	if next.PopoverOpen() || next.Last != IntentCloseColumnPopover {
		t.Fatalf("CloseColumnPopover = %+v", next)
	}
	if next.SearchText != "v2" || next.StatusFilter != CategoryOnline {
		t.Fatalf("popover transitions changed filters: %+v", next)
	}
}

func TestFilterState_EditingIsExclusive(t *testing.T) {
	s := FilterState{}.BeginEditingCell("cellA")
	again := s.BeginEditingCell("cellB")
	if again != s {
		t.Fatalf("second BeginEditingCell changed state: %+v -> %+v", s, again)
	}
	if again.EditingCell != "cellA" {
		t.Fatalf("EditingCell = %q, want cellA", again.EditingCell)
	}

	ended := again.EndEditingCell()
	if ended.EditingCell != "" {
		t.Fatalf("EditingCell = %q, want empty", ended.EditingCell)
	}
	if ended.Mode("cellA") != ModeDisplay {
		t.Fatalf("Mode = %v, want display", ended.Mode("cellA"))
	}
}

func TestReduce_MatchesMethods(t *testing.T) {
	intents := []Intent{
		{Kind: IntentSetSearchText, Text: "v"},
		{Kind: IntentSetStatusFilter, Category: CategoryOffline},
		{Kind: IntentOpenColumnPopover, Anchor: "a"},
		{Kind: IntentBeginEditingCell, Cell: hostCell},
		{Kind: IntentBeginEditingCell, Cell: statusCell},
		{Kind: IntentCloseColumnPopover},
	}
	var got FilterState
	for _, in := range intents {
		got = Reduce(got, in)
	}
	want := FilterState{}.
		SetSearchText("v").
		SetStatusFilter(CategoryOffline).
		OpenColumnPopover("a").
		BeginEditingCell(hostCell).
		CloseColumnPopover()
	if got != want {
		t.Fatalf("Reduce = %+v, want %+v", got, want)
	}
	if Reduce(got, Intent{}) != got {
		t.Fatal("Reduce with no intent changed state")
	}
}

func TestController_EnterAndExit(t *testing.T) {
	exits := []struct {
		name string
		ev   Event
	}{
		{"enter", Event{Kind: EventKey, Key: KeyEnter, Target: TargetControl, Cell: hostCell}},
		{"escape", Event{Kind: EventKey, Key: KeyEscape, Target: TargetControl, Cell: hostCell}},
		{"blur", Event{Kind: EventBlur, Target: TargetControl, Cell: hostCell}},
	}
	for _, tc := range exits {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestController()
			res := c.Handle(FilterState{}, Event{Kind: EventClick, Target: TargetCell, Cell: hostCell})
			if res.Transition != TransitionEnter || res.Focus != FocusControl {
				t.Fatalf("click result = %+v, want enter + focus control", res)
			}
			if res.State.Mode(hostCell) != ModeEditing {
				t.Fatalf("Mode = %v, want editing", res.State.Mode(hostCell))
			}

			res = c.Handle(res.State, tc.ev)
			if res.Transition != TransitionExit || res.Focus != FocusCell {
				t.Fatalf("%s result = %+v, want exit + focus cell", tc.name, res)
			}
			if res.State.EditingCell != "" {
				t.Fatalf("EditingCell = %q, want empty", res.State.EditingCell)
			}
		})
	}
}

func TestController_EnterKeyFromDisplay(t *testing.T) {
	c := newTestController()
	res := c.Handle(FilterState{}, Event{Kind: EventKey, Key: KeyEnter, Target: TargetCell, Cell: statusCell})
	if res.State.EditingCell != statusCell || res.Focus != FocusControl {
		t.Fatalf("Enter on display cell = %+v", res)
	}

	res = c.Handle(FilterState{}, Event{Kind: EventKey, Key: "a", Target: TargetCell, Cell: statusCell})
	if res.Transition != TransitionNone || res.State.EditingCell != "" {
		t.Fatalf("plain key on display cell = %+v", res)
	}

	res = c.Handle(FilterState{}, Event{Kind: EventBlur, Target: TargetControl, Cell: statusCell})
	if res.Transition != TransitionNone {
		t.Fatalf("blur on display cell = %+v", res)
	}
}

func TestController_OtherEventsFallThroughWhileEditing(t *testing.T) {
	c := newTestController()
	editing := FilterState{}.BeginEditingCell(hostCell)

	events := []Event{
		{Kind: EventKey, Key: "v", Target: TargetControl, Cell: hostCell},
		{Kind: EventClick, Target: TargetControl, Cell: hostCell},
		{Kind: EventClick, Target: TargetCell, Cell: hostCell},
		{Kind: EventBlur, Target: TargetCell, Cell: hostCell},
	}
	for _, ev := range events {
		res := c.Handle(editing, ev)
		if res.State != editing || res.Transition != TransitionNone || res.Focus != FocusUnchanged {
			t.Fatalf("Handle(%+v) = %+v, want no change", ev, res)
		}
	}
}

func TestController_InputAppliesBindingWithoutLeavingEdit(t *testing.T) {
	c := newTestController()
	s := c.Handle(FilterState{}, Event{Kind: EventClick, Target: TargetCell, Cell: hostCell}).State

	res := c.Handle(s, Event{Kind: EventInput, Target: TargetControl, Cell: hostCell, Value: "v1"})
	if res.State.SearchText != "v1" || res.State.EditingCell != hostCell {
		t.Fatalf("host input = %+v", res.State)
	}

	s = res.State.EndEditingCell()
	s = c.Handle(s, Event{Kind: EventClick, Target: TargetCell, Cell: statusCell}).State
	res = c.Handle(s, Event{Kind: EventInput, Target: TargetControl, Cell: statusCell, Value: "online"})
	if res.State.StatusFilter != CategoryOnline || res.State.EditingCell != statusCell {
		t.Fatalf("status input = %+v", res.State)
	}

	res = c.Handle(res.State, Event{Kind: EventInput, Target: TargetControl, Cell: statusCell, Value: ""})
	if res.State.StatusFilter != CategoryNone {
		t.Fatalf("StatusFilter = %q, want cleared", res.State.StatusFilter)
	}
}

func TestController_ClickOnSecondCellWhileEditingIsIgnored(t *testing.T) {
	c := newTestController()
	s := c.Handle(FilterState{}, Event{Kind: EventClick, Target: TargetCell, Cell: hostCell}).State

	res := c.Handle(s, Event{Kind: EventClick, Target: TargetCell, Cell: statusCell})
	if res.State != s || res.Transition != TransitionNone || res.Focus != FocusUnchanged {
		t.Fatalf("second cell click = %+v, want no-op", res)
	}
}

func TestController_ReentryIsIdempotent(t *testing.T) {
	c := newTestController()
	click := Event{Kind: EventClick, Target: TargetCell, Cell: hostCell}
	key := Event{Kind: EventKey, Key: KeyEnter, Target: TargetCell, Cell: hostCell}

	s := c.Handle(FilterState{}, click).State
	// The second click lands after the first already entered editing.
	res := c.Handle(s, click)
	if res.State != s {
		t.Fatalf("double click changed state: %+v", res.State)
	}
	res = c.Handle(res.State, key)
	if res.Transition != TransitionExit {
		t.Fatalf("Enter after click = %+v, want exit", res)
	}
}

func TestController_UnboundCellIgnored(t *testing.T) {
	c := newTestController()
	res := c.Handle(FilterState{}, Event{Kind: EventClick, Target: TargetCell, Cell: "row/v1/cpu"})
	if res.State != (FilterState{}) || res.Transition != TransitionNone {
		t.Fatalf("unbound cell click = %+v", res)
	}
}

func TestController_SearchBoxPopoverAndButton(t *testing.T) {
	c := newTestController()
	var s FilterState

	s = c.Handle(s, Event{Kind: EventInput, Target: TargetSearchBox, Value: "v"}).State
	if s.SearchText != "v" {
		t.Fatalf("search box SearchText = %q", s.SearchText)
	}

	s = c.Handle(s, Event{Kind: EventClick, Target: TargetFilterButton, Anchor: "host-filter"}).State
	if s.PopoverAnchor != "host-filter" {
		t.Fatalf("PopoverAnchor = %q, want host-filter", s.PopoverAnchor)
	}

	s = c.Handle(s, Event{Kind: EventInput, Target: TargetPopoverInput, Value: "v3"}).State
	if s.SearchText != "v3" || !s.PopoverOpen() {
		t.Fatalf("popover input state = %+v", s)
	}

	s = c.Handle(s, Event{Kind: EventClose, Target: TargetPopover}).State
	if s.PopoverOpen() {
		t.Fatalf("popover still open: %+v", s)
	}

	same := c.Handle(s, Event{Kind: EventKey, Key: "x", Target: TargetSearchBox})
	if same.State != s {
		t.Fatalf("key on search box changed state: %+v", same.State)
	}
}
