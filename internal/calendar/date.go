package calendar

import (
	"errors"
	"fmt"
	"time"
)

// Bounds of the representable date range.
const (
	MinYear = 1
	MaxYear = 9999
)

// ErrDateOutOfRange is returned when date arithmetic would leave the
// representable range.
var ErrDateOutOfRange = errors.New("date out of representable range")

// Date is a proleptic Gregorian calendar date without a time component.
// The zero value is not a valid date; use NewDate, DateOf or ParseDate.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate validates the fields and returns the date.
func NewDate(year int, month time.Month, day int) (Date, error) {
	if year < MinYear || year > MaxYear {
		return Date{}, fmt.Errorf("year %d: %w", year, ErrDateOutOfRange)
	}
	if month < time.January || month > time.December {
		return Date{}, fmt.Errorf("invalid month %d", month)
	}
	if day < 1 || day > daysIn(year, month) {
		return Date{}, fmt.Errorf("invalid day %d for %04d-%02d", day, year, month)
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

// MustDate is NewDate for literals that are known to be valid.
func MustDate(year int, month time.Month, day int) Date {
	d, err := NewDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// DateOf returns the calendar day of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Today returns the local calendar day of now.
func Today(now time.Time) Date {
	return DateOf(now.In(time.Local))
}

// ParseDate parses an ISO "YYYY-MM-DD" date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return NewDate(t.Year(), t.Month(), t.Day())
}

// AddDays shifts d by n days. The result is always a valid date; crossing the
// edge of the representable range yields ErrDateOutOfRange instead.
func (d Date) AddDays(n int) (Date, error) {
	next := DateOf(d.time().AddDate(0, 0, n))
	if next.Year < MinYear || next.Year > MaxYear {
		return d, fmt.Errorf("%s %+d days: %w", d, n, ErrDateOutOfRange)
	}
	return next, nil
}

// Weekday returns the day of the week.
func (d Date) Weekday() time.Weekday {
	return d.time().Weekday()
}

// IsWeekend reports whether d falls on a Saturday or Sunday.
func (d Date) IsWeekend() bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// FirstOfMonth returns the first day of d's month.
func (d Date) FirstOfMonth() Date {
	return Date{Year: d.Year, Month: d.Month, Day: 1}
}

// SameMonth reports whether d and o share a year and month.
func (d Date) SameMonth(o Date) bool {
	return d.Year == o.Year && d.Month == o.Month
}

// Title renders the month as "MM/YYYY".
func (d Date) Title() string {
	return fmt.Sprintf("%02d/%d", int(d.Month), d.Year)
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (d Date) time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
