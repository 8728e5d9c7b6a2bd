// Package ui provides the terminal user interface for tcal.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. Model adapts terminal events into
// state.Command values, feeds them to a state.Navigator and draws the
// calendar.Month the navigator's result asks for. All date logic lives in
// the calendar and state packages; this package only translates and paints.
//
// # Package Structure
//
//   - app.go: Model, Update loop, idle timer and the Run entry point
//   - keys.go: key bindings and their mapping to state commands
//   - month.go: frame, title, header and day-cell drawing
//   - theme.go: colour themes and the styles derived from them
//   - help.go: key binding overlay
//
// # Event Flow
//
//  1. Run() starts the program in the alternate screen
//  2. The first WindowSizeMsg fixes the viewport and triggers a render
//  3. Keys map to commands; the navigator answers with a Flow
//  4. FlowRender rebuilds the month, reading today from the clock
//  5. A tick after IdleTimeout with no input in between renders again
//  6. Quit, a navigation error or context cancellation ends the program
//
// # Key Bindings
//
//   - ←/h, →/l: Previous/next day
//   - ↑/k, ↓/j: Previous/next week
//   - t: Jump to today
//   - y: Copy the selected date to the clipboard
//   - T: Cycle colour theme (saved to prefs)
//   - ?: Toggle help
//   - q or Ctrl+C: Exit
package ui
