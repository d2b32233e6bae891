package ui

import (
	"testing"

	"github.com/five82/vmgrid/internal/grid"
)

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 3 {
		t.Fatalf("ThemeNames() returned %d names, want 3", len(names))
	}
	for _, name := range names {
		if got := GetTheme(name).Name; got != name {
			t.Fatalf("GetTheme(%q).Name = %q", name, got)
		}
	}
}

func TestNextTheme(t *testing.T) {
	tests := []struct {
		current string
		want    string
	}{
		{"Nightfox", "Kanagawa"},
		{"Kanagawa", "Slate"},
		{"Slate", "Nightfox"},
		{"Unknown", "Nightfox"},
	}
	for _, tt := range tests {
		if got := NextTheme(tt.current); got != tt.want {
			t.Fatalf("NextTheme(%q) = %q, want %q", tt.current, got, tt.want)
		}
	}
}

func TestGetTheme_UnknownFallsBack(t *testing.T) {
	if got := GetTheme("Dracula").Name; got != "Nightfox" {
		t.Fatalf("GetTheme(Dracula).Name = %q, want Nightfox", got)
	}
}

func TestStatusColor(t *testing.T) {
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		for _, c := range grid.StatusOptions[1:] {
			if th.StatusColor(c) == th.Muted && c != grid.CategoryDeactivated {
				t.Fatalf("%s: StatusColor(%q) fell back to muted", name, c)
			}
		}
		if got := th.StatusColor("rebooting"); got != th.Muted {
			t.Fatalf("%s: StatusColor(rebooting) = %q, want %q", name, got, th.Muted)
		}
	}
}

func TestFit(t *testing.T) {
	tests := []struct {
		in   string
		w    int
		want string
	}{
		{"vm", 4, "vm  "},
		{"vm-host-001", 6, "vm-ho…"},
		{"abc", 0, ""},
	}
	for _, tt := range tests {
		if got := fit(tt.in, tt.w); got != tt.want {
			t.Fatalf("fit(%q, %d) = %q, want %q", tt.in, tt.w, got, tt.want)
		}
	}
	if got := fitLeft("7%", 4); got != "  7%" {
		t.Fatalf("fitLeft = %q, want %q", got, "  7%")
	}
}
