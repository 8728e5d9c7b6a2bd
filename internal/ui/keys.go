package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/tcal/internal/state"
)

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Navigation
	DayBackward  key.Binding
	DayForward   key.Binding
	WeekBackward key.Binding
	WeekForward  key.Binding
	Today        key.Binding

	// General
	Yank       key.Binding
	CycleTheme key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		DayBackward: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "Previous day"),
		),
		DayForward: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "Next day"),
		),
		WeekBackward: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "Previous week"),
		),
		WeekForward: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "Next week"),
		),
		Today: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "Go to today"),
		),

		Yank: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "Copy date"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "Quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.DayBackward, k.DayForward, k.WeekBackward, k.WeekForward, k.Today},
		{k.Yank, k.CycleTheme, k.Help, k.Quit},
	}
}

// commandFor translates a key press into a navigation command. Keys that
// only affect presentation map to state.None.
func (k keyMap) commandFor(msg tea.KeyMsg) state.Command {
	switch {
	case key.Matches(msg, k.Quit):
		return state.Quit
	case key.Matches(msg, k.DayForward):
		return state.MoveDayForward
	case key.Matches(msg, k.DayBackward):
		return state.MoveDayBackward
	case key.Matches(msg, k.WeekForward):
		return state.MoveWeekForward
	case key.Matches(msg, k.WeekBackward):
		return state.MoveWeekBackward
	case key.Matches(msg, k.Today):
		return state.GoToday
	default:
		return state.None
	}
}
