// Package state holds the navigation state machine of tcal.
//
// # Overview
//
// Navigator owns the single piece of mutable state in the program: the
// selected date. Input arrives as Command values that the ui package decodes
// from keys, resizes and idle timeouts. Apply returns a Flow that tells the
// runtime loop whether to redraw, do nothing or stop.
//
// # Transitions
//
//	Command            selected          Flow
//	Quit               unchanged         FlowQuit
//	MoveDayForward     +1 day            FlowRender
//	MoveDayBackward    -1 day            FlowRender
//	MoveWeekForward    +7 days           FlowRender
//	MoveWeekBackward   -7 days           FlowRender
//	GoToday            today             FlowRender
//	ViewportChanged    unchanged         FlowRender
//	Idle               unchanged         FlowRender
//	anything else      unchanged         FlowContinue
//
// Moves use calendar.Date.AddDays, so the selection is always a real day.
// Moving past 0001-01-01 or 9999-12-31 returns an error that wraps
// calendar.ErrDateOutOfRange together with FlowQuit; the selection is left
// untouched.
//
// # Ownership
//
// The Navigator is created once by the app package and handed to the ui
// model by pointer. There is no package-level state, so tests construct
// their own navigators and never need a terminal.
//
// Idle exists so the "today" highlight moves at midnight without input: the
// renderer re-reads the clock on every FlowRender. Only the highlight moves;
// the selection stays where the user left it.
package state
