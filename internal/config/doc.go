// Package config loads tcal's TOML configuration.
//
// # Configuration Discovery
//
//  1. If a path is explicitly provided (--config), use it
//  2. Otherwise, use ~/.config/tcal/config.toml
//  3. If the file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing or empty, use defaults
//
// A file that exists but cannot be parsed is an error; tcal refuses to start
// rather than silently ignore a typo.
//
// # Fields
//
//	idle_timeout = 60                    # seconds without input before a redraw
//	log_file     = "~/.cache/tcal.log"   # empty discards log output
//
// idle_timeout bounds how late the "today" highlight may be after midnight.
// Values above one day are clamped. The colour theme is a preference, not
// configuration, and lives in the prefs package.
package config
