package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds tcal's settings.
type Config struct {
	IdleTimeout time.Duration
	LogFile     string
}

const (
	defaultConfigPath  = "~/.config/tcal/config.toml"
	defaultIdleTimeout = 60 * time.Second
	maxIdleTimeout     = 24 * time.Hour
)

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{IdleTimeout: defaultIdleTimeout}
}

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		IdleTimeout int    `toml:"idle_timeout"`
		LogFile     string `toml:"log_file"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	idle, err := IdleTimeout(raw.IdleTimeout)
	if err != nil {
		return Config{}, fmt.Errorf("idle_timeout: %w", err)
	}
	cfg.IdleTimeout = idle

	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		expanded, err := ExpandPath(logFile)
		if err != nil {
			return Config{}, fmt.Errorf("log_file: %w", err)
		}
		cfg.LogFile = expanded
	}

	return cfg, nil
}

// IdleTimeout converts a timeout in seconds. Zero selects the default,
// negative values are rejected and anything above 24h is clamped.
func IdleTimeout(seconds int) (time.Duration, error) {
	switch {
	case seconds < 0:
		return 0, fmt.Errorf("must not be negative, got %d", seconds)
	case seconds == 0:
		return defaultIdleTimeout, nil
	case seconds > int(maxIdleTimeout/time.Second):
		return maxIdleTimeout, nil
	}
	return time.Duration(seconds) * time.Second, nil
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return defaultConfigPath
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return ExpandPath(defaultConfigPath)
	}
	return ExpandPath(path)
}

// ExpandPath resolves a leading "~" to the home directory and returns an
// absolute path.
func ExpandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
