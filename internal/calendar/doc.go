// Package calendar holds the date model and the month-view layout of tcal.
//
// # Dates
//
// Date is a plain year/month/day value. All arithmetic goes through AddDays,
// which normalises through the time package and so can never yield an
// invalid day such as February 30. Leaving the range 0001-01-01..9999-12-31
// returns ErrDateOutOfRange; callers treat that as fatal.
//
// # Week window
//
// MonthWeeks walks Monday-start weeks from the week holding the 1st and keeps
// every week whose first or last day lies in the month:
//
//	March 2024
//	Mo Tu We Th Fr Sa Su
//	26 27 28 29  1  2  3   <- Feb 26 starts the window
//	 4  5  6  7  8  9 10
//	11 12 13 14 15 16 17
//	18 19 20 21 22 23 24
//	25 26 27 28 29 30 31   <- Mar 31 ends it
//
// # Rendering
//
// Render is a pure function of (selected, today, viewport). It returns a
// Month: the "MM/YYYY" title, weekday header, rows of cells and a Layout.
// Cell styling has two tiers, expressed as enums rather than flag sets:
//
//	Base (month membership x weekend)   Mark (today x selected)
//	  BaseWeekday                         MarkNone
//	  BaseWeekend                         MarkSelected
//	  BaseOutsideWeekday                  MarkToday
//	  BaseOutsideWeekend                  MarkTodaySelected
//
// Mark is applied on top of Base by the drawing layer. No colours live here.
package calendar
