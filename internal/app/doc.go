// Package app is the composition root of tcal.
//
// # Overview
//
// Run loads the configuration and preferences, points the standard logger at
// the log file, builds the navigation state and hands everything to the ui
// package, which owns the terminal until the user quits.
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()        idle timeout, log file
//	       ├─────> setupLogging()       tea.LogToFile or io.Discard
//	       ├─────> prefs.Load()         theme
//	       ├─────> newNavigator()       --date or today
//	       └─────> ui.Run()             Bubble Tea program (blocks)
//
// # Runtime Loop
//
// There is a single thread of control. Bubble Tea waits for input; a key, a
// resize or an idle timeout becomes a state.Command, the Navigator applies
// it, and a FlowRender result rebuilds the month with today taken fresh from
// the clock. Nothing runs in the background besides the idle timer.
//
// # Error Handling
//
// Fatal (returned from Run):
//   - Config file present but unreadable or invalid
//   - Log file cannot be opened
//   - Invalid --date
//   - Terminal I/O failures reported by Bubble Tea
//   - Navigation past the representable date range
//
// Logged and ignored:
//   - Preference save failures
//   - Clipboard failures
//
// Bubble Tea restores the terminal before ui.Run returns, so every error is
// printed to a sane terminal. A cancelled context (SIGINT/SIGTERM) counts as
// a clean quit.
package app
