package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/five82/vmgrid/internal/grid"
	"github.com/five82/vmgrid/internal/state"
)

const (
	markW         = 2
	statusW       = 16
	cpuW          = 7
	memW          = 7
	filterButtonW = 3
	popoverLines  = 3
	footerLines   = 2
	minHostW      = 12
	maxHostW      = 48
	searchLabel   = "Search: "
)

// layout holds the screen positions shared by rendering and mouse hit
// testing. Y values are line numbers, X values are cell columns.
type layout struct {
	searchY  int
	columnsY int
	// popoverY is -1 while the popover is closed.
	popoverY int
	filterY  int
	bodyY    int
	bodyRows int

	hostX   int
	hostW   int
	statusX int
}

func (m Model) layout() layout {
	extra := 0
	if !m.prefs.Compact {
		extra = cpuW + memW
	}
	hostW := min(max(m.width-markW-statusW-extra, minHostW), maxHostW)

	l := layout{
		searchY:  1,
		columnsY: 2,
		popoverY: -1,
		hostX:    markW,
		hostW:    hostW,
		statusX:  markW + hostW,
	}
	y := 3
	if m.store != nil && m.store.Filter().PopoverOpen() {
		l.popoverY = y
		y += popoverLines
	}
	l.filterY = y
	l.bodyY = y + 1
	l.bodyRows = max(m.height-l.bodyY-footerLines, 1)
	return l
}

type hitKind int

const (
	hitNone hitKind = iota
	hitSearch
	hitFilterButton
	hitPopover
	hitHostCell
	hitStatusCell
	hitRow
)

// hitTest maps a screen position to the element drawn there. For rows the
// second value is the index into the visible rows.
func (m Model) hitTest(x, y int) (hitKind, int) {
	l := m.layout()
	hostEnd := l.hostX + l.hostW
	switch {
	case y == l.searchY:
		return hitSearch, 0
	case y == l.columnsY:
		if x >= hostEnd-filterButtonW && x < hostEnd {
			return hitFilterButton, 0
		}
	case l.popoverY >= 0 && y >= l.popoverY && y < l.popoverY+popoverLines:
		if x >= l.hostX && x < hostEnd+2 {
			return hitPopover, 0
		}
	case y == l.filterY:
		if x >= l.hostX && x < hostEnd {
			return hitHostCell, 0
		}
		if x >= l.statusX && x < l.statusX+statusW {
			return hitStatusCell, 0
		}
	case y >= l.bodyY && y < l.bodyY+l.bodyRows:
		row := m.offset + y - l.bodyY
		if row < m.visibleCount() {
			return hitRow, row
		}
	}
	return hitNone, 0
}

func (m *Model) resizeInputs() {
	l := m.layout()
	m.hostInput.Width = max(l.hostW-2, 1)
	m.popoverInput.Width = max(l.hostW-3, 1)
	m.searchBox.Width = max(min(m.width-len(searchLabel)-2, 60), 10)
}

func (m Model) renderMain() string {
	snap := m.store.Snapshot()
	l := m.layout()

	lines := []string{
		m.renderHeader(snap),
		m.renderToolbar(),
		m.renderColumns(snap, l),
	}
	if l.popoverY >= 0 {
		lines = append(lines, m.renderPopover(l)...)
	}
	lines = append(lines, m.renderFilterRow(snap, l))
	lines = append(lines, m.renderBody(snap, l)...)
	lines = append(lines, m.renderFooter(snap), m.help.View(m.keys))
	return strings.Join(lines, "\n")
}

func (m Model) renderHeader(snap state.Snapshot) string {
	styles := m.theme.Styles()
	bar := newBgLine(m.theme.SurfaceAlt)

	left := bar.text(" vmgrid", styles.AccentText.Bold(true)) + bar.pad(1) +
		bar.text(snap.Source, styles.MutedText)
	right := bar.join([]string{
		bar.text("loaded "+snap.LoadedAt.Format("15:04:05"), styles.MutedText),
		bar.text(m.theme.Name+" ", styles.FaintText),
	}, " · ")

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return bar.fill(left, m.width)
	}
	return bar.fill(left+bar.pad(gap)+right, m.width)
}

func (m Model) renderToolbar() string {
	styles := m.theme.Styles()
	label := styles.MutedText.Render(searchLabel)
	if m.focus == focusSearch {
		label = styles.AccentText.Bold(true).Render(searchLabel)
	}
	return label + m.searchBox.View()
}

func (m Model) renderColumns(snap state.Snapshot, l layout) string {
	styles := m.theme.Styles()

	button, buttonStyle := " ▽ ", styles.MutedText
	if snap.View.FilterActive {
		button, buttonStyle = " ▼ ", styles.AccentText.Bold(true)
	}
	if m.focus == focusFilterButton || l.popoverY >= 0 {
		buttonStyle = styles.FocusedCell
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", markW))
	b.WriteString(styles.ColumnHeader.Render(fit("HOST", l.hostW-filterButtonW)))
	b.WriteString(buttonStyle.Render(button))
	b.WriteString(styles.ColumnHeader.Render(fit("STATUS", statusW)))
	if !m.prefs.Compact {
		b.WriteString(styles.ColumnHeader.Render(fitLeft("CPU", cpuW) + fitLeft("MEM", memW)))
	}
	return b.String()
}

func (m Model) renderPopover(l layout) []string {
	box := m.theme.Styles().Popover.
		Width(l.hostW).
		Render(clip(m.popoverInput.View(), l.hostW-2))

	lines := strings.Split(box, "\n")
	pad := strings.Repeat(" ", l.hostX)
	for i := range lines {
		lines[i] = pad + lines[i]
	}
	return lines
}

func (m Model) renderFilterRow(snap state.Snapshot, l layout) string {
	styles := m.theme.Styles()
	f := snap.Filter

	var host string
	if f.Mode(state.HostCell) == grid.ModeEditing {
		host = styles.EditingCell.Render(clip(m.hostInput.View(), l.hostW-1))
	} else {
		text, style := f.SearchText, styles.Cell
		if text == "" {
			text = "filter host…"
			style = style.Foreground(lipgloss.Color(m.theme.Faint))
		}
		if m.focus == focusHostCell {
			style = styles.FocusedCell
		}
		host = style.Render(fit(text, l.hostW-1))
	}

	label := string(f.StatusFilter)
	if label == "" {
		label = "any"
	}
	var status string
	if f.Mode(state.StatusCell) == grid.ModeEditing {
		status = styles.EditingCell.Render(fit("◀ "+label+" ▶", statusW-1))
	} else {
		style := styles.Cell
		if m.focus == focusStatusCell {
			style = styles.FocusedCell
		}
		status = style.Render(fit(label, statusW-1))
	}

	return strings.Repeat(" ", markW) + host + " " + status
}

func (m Model) renderBody(snap state.Snapshot, l layout) []string {
	styles := m.theme.Styles()
	rows := snap.View.Rows

	lines := make([]string, 0, l.bodyRows)
	if len(rows) == 0 {
		lines = append(lines, styles.FaintText.Render(strings.Repeat(" ", markW)+"no hosts match"))
	}
	end := min(len(rows), m.offset+l.bodyRows)
	for i := m.offset; i < end; i++ {
		lines = append(lines, m.renderRow(rows[i], i == m.cursor, l))
	}
	for len(lines) < l.bodyRows {
		lines = append(lines, "")
	}
	return lines
}

func (m Model) renderRow(r grid.Row, cursor bool, l layout) string {
	styles := m.theme.Styles()

	mark := "  "
	if r.Selected {
		mark = "✓ "
	}
	chip := statusChip(r.Status)
	metrics := ""
	if !m.prefs.Compact {
		metrics = fitLeft(percent(r.CPU), cpuW) + fitLeft(percent(r.Memory), memW)
	}

	if cursor {
		plain := mark + fit(r.ID, l.hostW) + fit(chip, statusW) + metrics
		return styles.Selected.Render(runewidth.FillRight(plain, m.width))
	}

	chipStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.StatusColor(r.Status)))
	return styles.AccentText.Render(mark) +
		styles.Text.Render(fit(r.ID, l.hostW)) +
		chipStyle.Render(fit(chip, statusW)) +
		styles.MutedText.Render(metrics)
}

func (m Model) renderFooter(snap state.Snapshot) string {
	styles := m.theme.Styles()
	v := snap.View

	parts := []string{
		styles.AccentText.Render(v.LiveRegionText),
		styles.MutedText.Render(fmt.Sprintf("%d of %d hosts", len(v.Rows), v.Total)),
	}
	if v.Selected > 0 {
		parts = append(parts, styles.MutedText.Render(fmt.Sprintf("%d selected", v.Selected)))
	}
	if snap.OrderWarning != nil {
		parts = append(parts, styles.WarningText.Render(snap.OrderWarning.Error()))
	}
	if m.loading {
		parts = append(parts, styles.FaintText.Render("reloading…"))
	}
	if m.notice != "" {
		parts = append(parts, styles.WarningText.Render(m.notice))
	}

	line := strings.Join(parts, styles.FaintText.Render(" · "))
	return lipgloss.NewStyle().MaxWidth(m.width).Render(line)
}

func (m Model) renderPlaceholder() string {
	styles := m.theme.Styles()

	var msg string
	switch {
	case m.loadErr != nil:
		msg = styles.DangerText.Render("Could not load hosts: "+m.loadErr.Error()) + "\n" +
			styles.MutedText.Render("r to retry, q to quit")
	case m.loading:
		msg = styles.MutedText.Render("Loading hosts…")
	default:
		msg = styles.MutedText.Render("No host source configured")
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, msg)
}

func statusChip(c grid.Category) string {
	if c == grid.CategoryNone {
		return "○ unknown"
	}
	return "● " + string(c)
}

func percent(v float64) string {
	return fmt.Sprintf("%.0f%%", v)
}

// fit truncates or pads plain text to exactly w cells.
func fit(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return runewidth.FillRight(runewidth.Truncate(s, w, "…"), w)
}

func fitLeft(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return runewidth.FillLeft(runewidth.Truncate(s, w, "…"), w)
}

// clip pads or cuts already styled text to w cells.
func clip(s string, w int) string {
	return lipgloss.NewStyle().Width(w).MaxWidth(w).Render(s)
}
