package ui

import (
	"log"
	"slices"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/vmgrid/internal/grid"
	"github.com/five82/vmgrid/internal/prefs"
	"github.com/five82/vmgrid/internal/state"
)

// handleKey routes keyboard input. Text controls swallow everything except
// the handful of keys that move focus or leave the control.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	// Any key closes help
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.store == nil {
		return m.handlePlaceholderKey(msg)
	}

	m.notice = ""

	if m.store.Filter().PopoverOpen() {
		return m.handlePopoverKey(msg)
	}

	switch m.focus {
	case focusSearch:
		return m.handleSearchKey(msg)
	case focusHostCell:
		if m.store.Filter().Mode(state.HostCell) == grid.ModeEditing {
			return m.handleHostEditKey(msg)
		}
	case focusStatusCell:
		if m.store.Filter().Mode(state.StatusCell) == grid.ModeEditing {
			return m.handleStatusEditKey(msg)
		}
	}

	return m.handleGlobalKey(msg)
}

func (m Model) handlePlaceholderKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Reload):
		if m.loadErr != nil && m.load != nil {
			m.loadErr = nil
			m.loading = true
			return m, m.loadCmd()
		}
	}
	return m, nil
}

func (m Model) handleGlobalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	case key.Matches(msg, m.keys.NextFocus):
		return m, m.moveFocus(1)
	case key.Matches(msg, m.keys.PrevFocus):
		return m, m.moveFocus(-1)
	case key.Matches(msg, m.keys.Search):
		return m, m.setFocus(focusSearch)
	case key.Matches(msg, m.keys.ColumnFilter):
		return m, m.openPopover()
	case key.Matches(msg, m.keys.CycleTheme):
		m.prefs.Theme = NextTheme(m.prefs.Theme)
		m.applyTheme(GetTheme(m.prefs.Theme))
		m.savePrefs()
	case key.Matches(msg, m.keys.ToggleWidth):
		m.prefs.Compact = !m.prefs.Compact
		m.resizeInputs()
		m.savePrefs()
	case key.Matches(msg, m.keys.Reload):
		if m.load != nil && !m.loading {
			m.loading = true
			return m, m.loadCmd()
		}
	case key.Matches(msg, m.keys.Yank):
		m.yank()
	case key.Matches(msg, m.keys.Edit):
		switch m.focus {
		case focusHostCell, focusStatusCell:
			return m, m.dispatch(grid.Event{
				Kind:   grid.EventKey,
				Key:    grid.KeyEnter,
				Target: grid.TargetCell,
				Cell:   cellFor(m.focus),
			})
		case focusFilterButton:
			return m, m.openPopover()
		}
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
		m.clampCursor()
	case key.Matches(msg, m.keys.Bottom):
		m.cursor = m.visibleCount() - 1
		m.clampCursor()
	case key.Matches(msg, m.keys.PageUp):
		m.moveCursor(-m.layout().bodyRows)
	case key.Matches(msg, m.keys.PageDown):
		m.moveCursor(m.layout().bodyRows)
	}
	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Edit), key.Matches(msg, m.keys.Cancel):
		return m, m.setFocus(focusRows)
	case key.Matches(msg, m.keys.NextFocus):
		return m, m.moveFocus(1)
	case key.Matches(msg, m.keys.PrevFocus):
		return m, m.moveFocus(-1)
	}

	before := m.searchBox.Value()
	var cmd tea.Cmd
	m.searchBox, cmd = m.searchBox.Update(msg)
	if v := m.searchBox.Value(); v != before {
		m.dispatch(grid.Event{Kind: grid.EventInput, Target: grid.TargetSearchBox, Value: v})
	}
	return m, cmd
}

func (m Model) handlePopoverKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Edit) || key.Matches(msg, m.keys.Cancel) {
		m.closePopover()
		return m, nil
	}

	before := m.popoverInput.Value()
	var cmd tea.Cmd
	m.popoverInput, cmd = m.popoverInput.Update(msg)
	if v := m.popoverInput.Value(); v != before {
		m.dispatch(grid.Event{Kind: grid.EventInput, Target: grid.TargetPopoverInput, Value: v})
	}
	return m, cmd
}

func (m Model) handleHostEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Edit), key.Matches(msg, m.keys.Cancel):
		return m, m.dispatch(grid.Event{
			Kind:   grid.EventKey,
			Key:    keyName(msg),
			Target: grid.TargetControl,
			Cell:   state.HostCell,
		})
	case key.Matches(msg, m.keys.NextFocus):
		return m, m.moveFocus(1)
	case key.Matches(msg, m.keys.PrevFocus):
		return m, m.moveFocus(-1)
	}

	before := m.hostInput.Value()
	var cmd tea.Cmd
	m.hostInput, cmd = m.hostInput.Update(msg)
	if v := m.hostInput.Value(); v != before {
		m.dispatch(grid.Event{Kind: grid.EventInput, Target: grid.TargetControl, Cell: state.HostCell, Value: v})
	}
	return m, cmd
}

func (m Model) handleStatusEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Edit), key.Matches(msg, m.keys.Cancel):
		return m, m.dispatch(grid.Event{
			Kind:   grid.EventKey,
			Key:    keyName(msg),
			Target: grid.TargetControl,
			Cell:   state.StatusCell,
		})
	case key.Matches(msg, m.keys.NextFocus):
		return m, m.moveFocus(1)
	case key.Matches(msg, m.keys.PrevFocus):
		return m, m.moveFocus(-1)
	case key.Matches(msg, m.keys.PrevOption):
		m.cycleStatus(-1)
	case key.Matches(msg, m.keys.NextOption):
		m.cycleStatus(1)
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.store == nil || m.showHelp || msg.Action != tea.MouseActionPress {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.moveCursor(-1)
	case tea.MouseButtonWheelDown:
		m.moveCursor(1)
	case tea.MouseButtonLeft:
		return m.handleClick(msg.X, msg.Y)
	}
	return m, nil
}

func (m Model) handleClick(x, y int) (tea.Model, tea.Cmd) {
	m.notice = ""
	hit, row := m.hitTest(x, y)
	f := m.store.Filter()

	// Clicking anywhere outside the popover dismisses it; a second click on
	// the button only closes.
	if f.PopoverOpen() && hit != hitPopover {
		m.closePopover()
		if hit == hitFilterButton {
			return m, nil
		}
	}

	// The editing control loses focus before the click lands elsewhere.
	if f.EditingCell != "" && cellForHit(hit) != f.EditingCell {
		m.blurEditing()
	}

	switch hit {
	case hitSearch:
		return m, m.setFocus(focusSearch)
	case hitFilterButton:
		return m, m.openPopover()
	case hitPopover:
		return m, m.popoverInput.Focus()
	case hitHostCell, hitStatusCell:
		cell := cellForHit(hit)
		m.setFocus(focusFor(cell))
		return m, m.dispatch(grid.Event{Kind: grid.EventClick, Target: grid.TargetCell, Cell: cell})
	case hitRow:
		m.setFocus(focusRows)
		m.cursor = row
		m.clampCursor()
	}
	return m, nil
}

// dispatch feeds ev to the store and performs the focus move it asks for.
func (m *Model) dispatch(ev grid.Event) tea.Cmd {
	prev := m.store.Filter()
	res := m.store.Dispatch(ev)
	if res.State != prev {
		log.Printf("grid event %d: %s cell=%q editing=%q search=%q status=%q",
			m.store.Events(), res.State.Last, ev.Cell, res.State.EditingCell,
			res.State.SearchText, res.State.StatusFilter)
	}

	var cmd tea.Cmd
	switch res.Focus {
	case grid.FocusControl:
		m.focus = focusFor(res.Cell)
		if res.Cell == state.HostCell {
			m.hostInput.SetValue(res.State.SearchText)
			cmd = m.hostInput.Focus()
		}
	case grid.FocusCell:
		m.hostInput.Blur()
		m.focus = focusFor(res.Cell)
	}

	m.syncInputs()
	m.clampCursor()
	return cmd
}

// blurEditing ends edit mode the way a focus loss on the inner control does.
func (m *Model) blurEditing() {
	if cell := m.store.Filter().EditingCell; cell != "" {
		m.dispatch(grid.Event{Kind: grid.EventBlur, Target: grid.TargetControl, Cell: cell})
	}
}

func (m *Model) moveFocus(delta int) tea.Cmd {
	m.blurEditing()
	idx := slices.Index(focusOrder, m.focus)
	if idx < 0 {
		idx = len(focusOrder) - 1
	}
	n := len(focusOrder)
	return m.setFocus(focusOrder[((idx+delta)%n+n)%n])
}

func (m *Model) setFocus(f focusArea) tea.Cmd {
	m.focus = f
	if f == focusSearch {
		return m.searchBox.Focus()
	}
	m.searchBox.Blur()
	return nil
}

func (m *Model) openPopover() tea.Cmd {
	m.blurEditing()
	m.searchBox.Blur()
	m.dispatch(grid.Event{
		Kind:   grid.EventClick,
		Target: grid.TargetFilterButton,
		Anchor: state.HostFilterAnchor,
	})
	m.focus = focusFilterButton
	return m.popoverInput.Focus()
}

func (m *Model) closePopover() {
	m.dispatch(grid.Event{Kind: grid.EventClose, Target: grid.TargetPopover})
	m.popoverInput.Blur()
	m.focus = focusFilterButton
}

func (m *Model) cycleStatus(delta int) {
	opts := grid.StatusOptions
	idx := slices.Index(opts, m.store.Filter().StatusFilter)
	if idx < 0 {
		idx = 0
	}
	n := len(opts)
	next := opts[((idx+delta)%n+n)%n]
	m.dispatch(grid.Event{
		Kind:   grid.EventInput,
		Target: grid.TargetControl,
		Cell:   state.StatusCell,
		Value:  string(next),
	})
}

// syncInputs mirrors the search text into every control bound to it.
func (m *Model) syncInputs() {
	text := ""
	if m.store != nil {
		text = m.store.Filter().SearchText
	}
	if m.searchBox.Value() != text {
		m.searchBox.SetValue(text)
	}
	if m.hostInput.Value() != text {
		m.hostInput.SetValue(text)
	}
	if m.popoverInput.Value() != text {
		m.popoverInput.SetValue(text)
	}
}

func (m *Model) visibleCount() int {
	if m.store == nil {
		return 0
	}
	return len(m.store.Snapshot().View.Rows)
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
}

// clampCursor keeps the cursor on a visible row and inside the body window.
func (m *Model) clampCursor() {
	n := m.visibleCount()
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}

	body := m.layout().bodyRows
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+body {
		m.offset = m.cursor - body + 1
	}
	if maxOffset := max(n-body, 0); m.offset > maxOffset {
		m.offset = maxOffset
	}
}

func (m *Model) yank() {
	rows := m.store.Snapshot().View.Rows
	if len(rows) == 0 {
		m.notice = "nothing to copy"
		return
	}
	id := rows[m.cursor].ID
	if err := m.copy(id); err != nil {
		log.Printf("copy host id: %v", err)
		m.notice = "copy failed"
		return
	}
	m.notice = "copied " + id
}

func (m *Model) savePrefs() {
	if err := prefs.Save(m.prefsPath, m.prefs); err != nil {
		log.Printf("save prefs: %v", err)
		m.notice = "could not save preferences"
	}
}

func cellFor(f focusArea) grid.CellRef {
	switch f {
	case focusHostCell:
		return state.HostCell
	case focusStatusCell:
		return state.StatusCell
	}
	return ""
}

func focusFor(cell grid.CellRef) focusArea {
	switch cell {
	case state.HostCell:
		return focusHostCell
	case state.StatusCell:
		return focusStatusCell
	}
	return focusRows
}

func cellForHit(h hitKind) grid.CellRef {
	switch h {
	case hitHostCell:
		return state.HostCell
	case hitStatusCell:
		return state.StatusCell
	}
	return ""
}

// keyName converts a Bubble Tea key to the names the grid controller uses.
func keyName(msg tea.KeyMsg) string {
	switch msg.Type {
	case tea.KeyEnter:
		return grid.KeyEnter
	case tea.KeyEsc:
		return grid.KeyEscape
	}
	return msg.String()
}
