package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// bgLine paints every segment of a line with one background. Lipgloss emits
// a reset after each styled segment, so separators and padding need the
// background applied explicitly or the bar shows gaps.
type bgLine struct {
	bg lipgloss.Color
}

func newBgLine(color string) bgLine {
	return bgLine{bg: lipgloss.Color(color)}
}

func (b bgLine) text(s string, style lipgloss.Style) string {
	if s == "" {
		return ""
	}
	return style.Background(b.bg).Render(s)
}

func (b bgLine) pad(n int) string {
	if n <= 0 {
		return ""
	}
	return lipgloss.NewStyle().Background(b.bg).Render(strings.Repeat(" ", n))
}

func (b bgLine) join(parts []string, sep string) string {
	return strings.Join(parts, lipgloss.NewStyle().Background(b.bg).Render(sep))
}

// fill pads content to width.
func (b bgLine) fill(content string, width int) string {
	return lipgloss.NewStyle().Background(b.bg).Width(width).MaxWidth(width).Render(content)
}
