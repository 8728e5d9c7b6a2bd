package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/tcal/internal/calendar"
	"github.com/five82/tcal/internal/config"
	"github.com/five82/tcal/internal/prefs"
	"github.com/five82/tcal/internal/state"
	"github.com/five82/tcal/internal/ui"
)

// Options configure the tcal application.
type Options struct {
	ConfigPath  string
	PrefsPath   string // empty uses default ~/.config/tcal/prefs.toml
	IdleSeconds int    // zero uses the configured idle timeout; negative is an error
	LogFile     string // overrides log_file from the config
	StartDate   string // YYYY-MM-DD; empty starts on today
}

// Run boots the calendar until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	closeLog, err := setupLogging(firstNonEmpty(opts.LogFile, cfg.LogFile))
	if err != nil {
		return err
	}
	defer closeLog()

	userPrefs := prefs.Load(opts.PrefsPath)

	idle, err := idleTimeout(cfg, opts.IdleSeconds)
	if err != nil {
		return err
	}

	nav, err := newNavigator(opts.StartDate, time.Now)
	if err != nil {
		return err
	}

	log.Printf("tcal starting: selected=%s idle=%s theme=%s", nav.Selected(), idle, userPrefs.Theme)

	uiOpts := ui.Options{
		Context:     ctx,
		Navigator:   nav,
		IdleTimeout: idle,
		ThemeName:   userPrefs.Theme,
		PrefsPath:   opts.PrefsPath,
	}
	if err := ui.Run(uiOpts); err != nil {
		log.Printf("tcal stopped: %v", err)
		return err
	}
	return nil
}

// idleTimeout prefers a non-zero flag value over the config, validated the
// same way as idle_timeout.
func idleTimeout(cfg config.Config, seconds int) (time.Duration, error) {
	if seconds == 0 {
		return cfg.IdleTimeout, nil
	}
	idle, err := config.IdleTimeout(seconds)
	if err != nil {
		return 0, fmt.Errorf("idle: %w", err)
	}
	return idle, nil
}

func newNavigator(start string, now func() time.Time) (*state.Navigator, error) {
	today := func() calendar.Date { return calendar.Today(now()) }

	selected := today()
	if start != "" {
		d, err := calendar.ParseDate(start)
		if err != nil {
			return nil, fmt.Errorf("start date: %w", err)
		}
		selected = d
	}
	return state.NewNavigator(selected, today), nil
}

// setupLogging sends the standard logger to path, or discards it when path is
// empty. The terminal belongs to the UI, so nothing may go to stderr.
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "tcal")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return func() { _ = f.Close() }, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
