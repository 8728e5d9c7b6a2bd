package app

import (
	"context"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/five82/tcal/internal/calendar"
	"github.com/five82/tcal/internal/config"
	"github.com/five82/tcal/internal/state"
)

func TestNewNavigator(t *testing.T) {
	now := func() time.Time { return time.Date(2024, time.March, 12, 15, 0, 0, 0, time.Local) }

	tests := []struct {
		name    string
		start   string
		want    calendar.Date
		wantErr bool
	}{
		{"defaults to today", "", calendar.MustDate(2024, time.March, 12), false},
		{"explicit start", "2024-02-29", calendar.MustDate(2024, time.February, 29), false},
		{"invalid start", "2024-02-30", calendar.Date{}, true},
		{"garbage", "tomorrow", calendar.Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nav, err := newNavigator(tt.start, now)
			if (err != nil) != tt.wantErr {
				t.Fatalf("newNavigator(%q) err = %v, wantErr %v", tt.start, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got := nav.Selected(); got != tt.want {
				t.Fatalf("Selected() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestNewNavigator_GoTodayUsesClock(t *testing.T) {
	now := func() time.Time { return time.Date(2024, time.March, 12, 15, 0, 0, 0, time.Local) }
	nav, err := newNavigator("2001-09-09", now)
	if err != nil {
		t.Fatalf("newNavigator returned error: %v", err)
	}
	if _, err := nav.Apply(state.GoToday); err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	if got := nav.Selected(); got != calendar.MustDate(2024, time.March, 12) {
		t.Fatalf("Selected() = %s, want 2024-03-12", got)
	}
}

func TestSetupLogging_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tcal.log")
	t.Cleanup(func() { log.SetOutput(os.Stderr); log.SetPrefix("") })

	closeLog, err := setupLogging(path)
	if err != nil {
		t.Fatalf("setupLogging returned error: %v", err)
	}
	log.Printf("hello")
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Fatalf("log file = %q, want it to contain hello", data)
	}
}

func TestSetupLogging_BadPathFails(t *testing.T) {
	t.Cleanup(func() { log.SetOutput(os.Stderr); log.SetPrefix("") })

	path := filepath.Join(t.TempDir(), "missing", "dir", "tcal.log")
	if _, err := setupLogging(path); err == nil {
		t.Fatalf("setupLogging returned nil error for %s", path)
	}
}

func TestFirstNonEmpty(t *testing.T) {
	if got := firstNonEmpty("", "b", "c"); got != "b" {
		t.Fatalf("firstNonEmpty = %q, want b", got)
	}
	if got := firstNonEmpty("", ""); got != "" {
		t.Fatalf("firstNonEmpty = %q, want empty", got)
	}
}

func TestIdleTimeout_FlagOverridesConfig(t *testing.T) {
	cfg := config.Config{IdleTimeout: 30 * time.Second}

	tests := []struct {
		name    string
		seconds int
		want    time.Duration
		wantErr bool
	}{
		{"unset_uses_config", 0, 30 * time.Second, false},
		{"flag", 5, 5 * time.Second, false},
		{"huge_clamped", math.MaxInt, 24 * time.Hour, false},
		{"negative", -1, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := idleTimeout(cfg, tt.seconds)
			if (err != nil) != tt.wantErr {
				t.Fatalf("idleTimeout(%d) error = %v, wantErr %v", tt.seconds, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Fatalf("idleTimeout(%d) = %v, want %v", tt.seconds, got, tt.want)
			}
		})
	}
}

func TestRun_NegativeIdleFails(t *testing.T) {
	dir := t.TempDir()
	err := Run(context.Background(), Options{
		ConfigPath:  filepath.Join(dir, "config.toml"),
		PrefsPath:   filepath.Join(dir, "prefs.toml"),
		IdleSeconds: -1,
	})
	if err == nil || !strings.Contains(err.Error(), "idle") {
		t.Fatalf("Run error = %v, want idle validation error", err)
	}
}
