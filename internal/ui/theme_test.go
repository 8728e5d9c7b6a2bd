package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/tcal/internal/calendar"
)

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 4 {
		t.Fatalf("ThemeNames() returned %d names, want 4", len(names))
	}
	if names[0] != "Terminal" {
		t.Fatalf("ThemeNames()[0] = %q, want Terminal", names[0])
	}
	for _, name := range names {
		if GetTheme(name).Name != name {
			t.Fatalf("GetTheme(%q).Name = %q", name, GetTheme(name).Name)
		}
	}
}

func TestNextTheme(t *testing.T) {
	if got := NextTheme("Terminal"); got != "Nightfox" {
		t.Fatalf("NextTheme(Terminal) = %q, want Nightfox", got)
	}
	if got := NextTheme("Slate"); got != "Terminal" {
		t.Fatalf("NextTheme(Slate) = %q, want Terminal", got)
	}
	if got := NextTheme("Unknown"); got != "Terminal" {
		t.Fatalf("NextTheme(Unknown) = %q, want Terminal", got)
	}
}

func TestGetTheme_UnknownFallsBack(t *testing.T) {
	if got := GetTheme("Unknown").Name; got != "Terminal" {
		t.Fatalf("GetTheme(Unknown).Name = %q, want Terminal (fallback)", got)
	}
}

func TestStylesCell_MarkLayersOverBase(t *testing.T) {
	th := GetTheme("Slate")
	s := th.Styles()

	selected := s.Cell(calendar.CellStyle{Base: calendar.BaseOutsideWeekend, Mark: calendar.MarkSelected})
	if !selected.GetReverse() || !selected.GetBold() {
		t.Fatalf("selected cell should be reversed and bold")
	}
	if !selected.GetItalic() || !selected.GetFaint() {
		t.Fatalf("selected cell should keep the base tier's italic/faint")
	}
	if selected.GetForeground() != lipgloss.Color(th.Weekend) {
		t.Fatalf("selected cell foreground = %v, want weekend colour", selected.GetForeground())
	}

	today := s.Cell(calendar.CellStyle{Base: calendar.BaseWeekday, Mark: calendar.MarkToday})
	if today.GetBackground() != lipgloss.Color(th.Info) {
		t.Fatalf("today background = %v, want %s", today.GetBackground(), th.Info)
	}
	if today.GetForeground() != lipgloss.Color(th.Background) {
		t.Fatalf("today foreground = %v, want %s", today.GetForeground(), th.Background)
	}

	both := s.Cell(calendar.CellStyle{Base: calendar.BaseWeekend, Mark: calendar.MarkTodaySelected})
	if both.GetBackground() != lipgloss.Color(th.Success) || !both.GetBold() {
		t.Fatalf("today+selected should be bold on the success colour")
	}

	plain := s.Cell(calendar.CellStyle{Base: calendar.BaseOutsideWeekday, Mark: calendar.MarkNone})
	if !plain.GetItalic() || plain.GetBold() {
		t.Fatalf("outside weekday should be italic and not bold")
	}
}
