package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/five82/tcal/internal/calendar"
)

// renderMonth draws m inside a titled frame that fills vp exactly.
func renderMonth(m calendar.Month, vp calendar.Viewport, styles Styles) string {
	if vp.Width < calendar.FrameBorder || vp.Height < 1 {
		return ""
	}
	innerWidth := vp.Width - calendar.FrameBorder
	top := renderTopBorder(m.Title, innerWidth, styles)
	if vp.Height < 3 {
		return top
	}
	innerHeight := vp.Height - 2

	layout := m.Layout
	lines := make([]string, 0, innerHeight)

	var header [7]cellContent
	for i, name := range m.Header {
		header[i] = cellContent{label: name, style: styles.Header}
	}
	lines = append(lines, renderCells(header, layout, 1)...)
	lines = append(lines, "")

	for _, row := range m.Rows {
		var cells [7]cellContent
		for i, c := range row {
			cells[i] = cellContent{label: c.Label, style: styles.Cell(c.Style)}
		}
		lines = append(lines, renderCells(cells, layout, layout.RowHeight)...)
	}

	if len(lines) > innerHeight {
		lines = lines[:innerHeight]
	}
	for i, line := range lines {
		lines[i] = ansi.Truncate(line, innerWidth, "")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		top,
		styles.Frame.Width(innerWidth).Height(innerHeight).Render(strings.Join(lines, "\n")),
	)
}

// renderTopBorder draws the frame's top edge with the title embedded after
// the left corner.
func renderTopBorder(title string, innerWidth int, styles Styles) string {
	border := lipgloss.NormalBorder()
	title = ansi.Truncate(title, innerWidth, "")
	fill := innerWidth - ansi.StringWidth(title)

	var b strings.Builder
	b.WriteString(styles.Border.Render(border.TopLeft))
	b.WriteString(styles.Title.Render(title))
	if fill > 0 {
		b.WriteString(styles.Border.Render(strings.Repeat(border.Top, fill)))
	}
	b.WriteString(styles.Border.Render(border.TopRight))
	return b.String()
}

type cellContent struct {
	label string
	style lipgloss.Style
}

// renderCells lays out one table row of the given height. The style covers
// the whole cell area; the label sits on its first line.
func renderCells(cells [7]cellContent, layout calendar.Layout, height int) []string {
	gap := strings.Repeat(" ", layout.ColumnSpacing)
	lines := make([]string, height)
	for line := range lines {
		var b strings.Builder
		for i, c := range cells {
			if i > 0 {
				b.WriteString(gap)
			}
			width := layout.ColumnWidths[i]
			if width == 0 {
				continue
			}
			text := ""
			if line == 0 {
				text = runewidth.Truncate(c.label, width, "")
			}
			b.WriteString(c.style.Render(runewidth.FillRight(text, width)))
		}
		lines[line] = b.String()
	}
	return lines
}
