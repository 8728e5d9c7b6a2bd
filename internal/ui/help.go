package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.styles

	h := m.help
	h.ShowAll = true
	h.FullSeparator = "   "
	h.Styles.FullKey = styles.KeyText
	h.Styles.FullDesc = styles.Text
	h.Styles.FullSeparator = styles.FaintText

	var b strings.Builder
	b.WriteString(styles.Title.Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")
	b.WriteString(h.View(m.keys))
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("Theme: "))
	b.WriteString(styles.AccentText.Render(m.theme.Name))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("Themes: " + strings.Join(ThemeNames(), ", ")))

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 2)
	if m.theme.Accent != "" {
		modal = modal.BorderForeground(lipgloss.Color(m.theme.Accent))
	}

	return lipgloss.Place(
		m.viewport.Width,
		m.viewport.Height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
	)
}
