package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/tcal/internal/calendar"
)

// Theme defines the colours of the calendar. An empty colour leaves the
// terminal default in place.
type Theme struct {
	Name string

	Background string // text on highlighted (today) cells
	Border     string
	Text       string
	Faint      string
	Accent     string

	Highlight string // days of the displayed month
	Weekend   string // Saturdays and Sundays
	Success   string // today, when also selected
	Info      string // today
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Frame  lipgloss.Style // left, right and bottom edges
	Border lipgloss.Style
	Title  lipgloss.Style
	Header lipgloss.Style

	Text       lipgloss.Style
	FaintText  lipgloss.Style
	AccentText lipgloss.Style
	KeyText    lipgloss.Style

	base [4]lipgloss.Style
	mark [4]lipgloss.Style
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	frame := lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, true, true, true)
	if t.Border != "" {
		frame = frame.BorderForeground(lipgloss.Color(t.Border))
	}

	s := Styles{
		Frame:      frame,
		Border:     withFg(lipgloss.NewStyle(), t.Border),
		Title:      withFg(lipgloss.NewStyle(), t.Text).Bold(true),
		Header:     withFg(lipgloss.NewStyle(), t.Text).Bold(true),
		Text:       withFg(lipgloss.NewStyle(), t.Text),
		FaintText:  withFg(lipgloss.NewStyle(), t.Faint),
		AccentText: withFg(lipgloss.NewStyle(), t.Accent),
		KeyText:    withFg(lipgloss.NewStyle(), t.Highlight),
	}

	s.base[calendar.BaseWeekday] = withFg(lipgloss.NewStyle(), t.Highlight)
	s.base[calendar.BaseWeekend] = withFg(lipgloss.NewStyle(), t.Weekend).Bold(true)
	s.base[calendar.BaseOutsideWeekend] = withFg(lipgloss.NewStyle(), t.Weekend).Faint(true).Italic(true)
	s.base[calendar.BaseOutsideWeekday] = lipgloss.NewStyle().Italic(true)

	s.mark[calendar.MarkNone] = lipgloss.NewStyle()
	s.mark[calendar.MarkSelected] = lipgloss.NewStyle().Reverse(true).Bold(true)
	s.mark[calendar.MarkToday] = withBg(withFg(lipgloss.NewStyle(), t.Background), t.Info).Bold(true)
	s.mark[calendar.MarkTodaySelected] = withBg(withFg(lipgloss.NewStyle(), t.Background), t.Success).Bold(true)
	return s
}

// Cell returns the style of a calendar cell: the mark tier wins wherever it
// sets a property, the base tier fills in the rest.
func (s Styles) Cell(cs calendar.CellStyle) lipgloss.Style {
	return s.mark[cs.Mark].Inherit(s.base[cs.Base])
}

func withFg(style lipgloss.Style, color string) lipgloss.Style {
	if color == "" {
		return style
	}
	return style.Foreground(lipgloss.Color(color))
}

func withBg(style lipgloss.Style, color string) lipgloss.Style {
	if color == "" {
		return style
	}
	return style.Background(lipgloss.Color(color))
}

// Theme definitions

var themes = map[string]Theme{
	"Terminal": terminalTheme(),
	"Nightfox": nightfoxTheme(),
	"Kanagawa": kanagawaTheme(),
	"Slate":    slateTheme(),
}

var themeOrder = []string{"Terminal", "Nightfox", "Kanagawa", "Slate"}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return terminalTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func terminalTheme() Theme {
	// The 16 ANSI colours, so the palette follows the terminal's own scheme.
	return Theme{
		Name: "Terminal",

		Background: "0",  // black
		Border:     "",   // default
		Text:       "",   // default
		Faint:      "8",  // bright black
		Accent:     "12", // bright blue

		Highlight: "11", // bright yellow
		Weekend:   "9",  // bright red
		Success:   "2",  // green
		Info:      "12", // bright blue
	}
}

func nightfoxTheme() Theme {
	// Nightfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name: "Nightfox",

		Background: "#131a24", // bg0
		Border:     "#39506d", // bg4
		Text:       "#cdcecf", // fg1
		Faint:      "#71839b", // fg3
		Accent:     "#719cd6", // blue

		Highlight: "#dbc074", // yellow
		Weekend:   "#c94f6d", // red
		Success:   "#81b29a", // green
		Info:      "#63cdcf", // cyan
	}
}

func kanagawaTheme() Theme {
	// Kanagawa palette: https://github.com/rebelot/kanagawa.nvim
	return Theme{
		Name: "Kanagawa",

		Background: "#16161D", // sumiInk0
		Border:     "#54546D", // sumiInk6
		Text:       "#DCD7BA", // fujiWhite
		Faint:      "#727169", // fujiGray
		Accent:     "#7E9CD8", // crystalBlue

		Highlight: "#E6C384", // carpYellow
		Weekend:   "#E46876", // waveRed
		Success:   "#98BB6C", // springGreen
		Info:      "#7FB4CA", // springBlue
	}
}

func slateTheme() Theme {
	// Tailwind CSS Slate/Sky palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name: "Slate",

		Background: "#020617", // slate-950
		Border:     "#334155", // slate-700
		Text:       "#f1f5f9", // slate-100
		Faint:      "#64748b", // slate-500
		Accent:     "#38bdf8", // sky-400

		Highlight: "#f59e0b", // amber-500
		Weekend:   "#ef4444", // red-500
		Success:   "#22c55e", // green-500
		Info:      "#06b6d4", // cyan-500
	}
}
