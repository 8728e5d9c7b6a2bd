package ui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/tcal/internal/calendar"
	"github.com/five82/tcal/internal/prefs"
	"github.com/five82/tcal/internal/state"
)

// DefaultIdleTimeout is how long the UI waits for input before redrawing on
// its own, so the "today" highlight follows the clock.
const DefaultIdleTimeout = 60 * time.Second

// Options configures the UI.
type Options struct {
	Context     context.Context
	Navigator   *state.Navigator
	IdleTimeout time.Duration
	ThemeName   string
	PrefsPath   string

	// Now and Clipboard default to time.Now and the system clipboard.
	Now       func() time.Time
	Clipboard func(string) error

	// ProgramOptions are appended to the alt screen and context options.
	ProgramOptions []tea.ProgramOption
}

// Model is the root application state for Bubble Tea. It adapts terminal
// events into state.Command values and draws the resulting month.
type Model struct {
	// Configuration
	ctx         context.Context
	nav         *state.Navigator
	idleTimeout time.Duration
	prefsPath   string
	now         func() time.Time
	copyText    func(string) error

	// UI state
	keys     keyMap
	help     help.Model
	theme    Theme
	styles   Styles
	viewport calendar.Viewport
	ready    bool
	showHelp bool

	// month is only rebuilt when the navigator asks for a render.
	month calendar.Month

	// idleSeq invalidates idle ticks armed before the latest input.
	idleSeq int

	err error
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	idle := opts.IdleTimeout
	if idle <= 0 {
		idle = DefaultIdleTimeout
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	copyText := opts.Clipboard
	if copyText == nil {
		copyText = clipboard.WriteAll
	}

	nav := opts.Navigator
	if nav == nil {
		nav = state.NewNavigator(calendar.Today(now()), func() calendar.Date {
			return calendar.Today(now())
		})
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	theme := GetTheme(opts.ThemeName)
	m := Model{
		ctx:         ctx,
		nav:         nav,
		idleTimeout: idle,
		prefsPath:   prefsPath,
		now:         now,
		copyText:    copyText,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		theme:       theme,
		styles:      theme.Styles(),
	}
	m.render()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return idleCmd(m.idleSeq, m.idleTimeout)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.idleSeq++
		m, cmd = m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.idleSeq++
		m.viewport = calendar.Viewport{Width: msg.Width, Height: msg.Height}
		m.ready = true
		log.Printf("viewport %dx%d", msg.Width, msg.Height)
		m, cmd = m.apply(state.ViewportChanged)

	case idleMsg:
		if msg.seq != m.idleSeq {
			// Input arrived since this tick was armed.
			return m, nil
		}
		m, cmd = m.apply(state.Idle)

	default:
		return m, nil
	}

	return m, tea.Batch(cmd, idleCmd(m.idleSeq, m.idleTimeout))
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return ""
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return renderMonth(m.month, m.viewport, m.styles)
}

// Selected returns the date the user has navigated to.
func (m Model) Selected() calendar.Date {
	return m.nav.Selected()
}

// Err returns the error that ended the program, if any.
func (m Model) Err() error {
	return m.err
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m.apply(state.Quit)
	}

	if m.showHelp {
		// Any other key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.styles = m.theme.Styles()
		if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
			log.Printf("save prefs: %v", err)
		}
		return m, nil

	case key.Matches(msg, m.keys.Yank):
		if err := m.copyText(m.nav.Selected().String()); err != nil {
			log.Printf("copy to clipboard: %v", err)
		}
		return m, nil
	}

	return m.apply(m.keys.commandFor(msg))
}

// apply feeds cmd to the navigator and acts on the resulting flow.
func (m Model) apply(cmd state.Command) (Model, tea.Cmd) {
	flow, err := m.nav.Apply(cmd)
	if err != nil {
		m.err = err
		log.Printf("%s: %v", cmd, err)
		return m, tea.Quit
	}

	switch flow {
	case state.FlowQuit:
		return m, tea.Quit
	case state.FlowRender:
		m.render()
	}
	return m, nil
}

// render rebuilds the month view, re-reading today from the clock.
func (m *Model) render() {
	today := calendar.Today(m.now())
	m.month = calendar.Render(m.nav.Selected(), today, m.viewport)
}

// Messages

type idleMsg struct {
	seq int
}

// Commands

func idleCmd(seq int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return idleMsg{seq: seq}
	})
}

// Run starts the Bubble Tea program. The terminal is restored before Run
// returns, whether the program ended cleanly or not.
func Run(opts Options) error {
	m := New(opts)
	programOpts := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(m.ctx)}, opts.ProgramOptions...)
	p := tea.NewProgram(m, programOpts...)
	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run tui: %w", err)
	}
	if fm, ok := final.(Model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}
