package calendar

import "time"

// WeekStart is the first day of every displayed week.
const WeekStart = time.Monday

// Week is seven consecutive dates starting on WeekStart.
//
// At the far end of the range a week may hold days past 9999-12-31. Such
// days are only ever drawn; they are never selectable.
type Week [7]Date

// First returns the week's first day.
func (w Week) First() Date { return w[0] }

// Last returns the week's last day.
func (w Week) Last() Date { return w[6] }

// WeekOf returns the week containing d.
func WeekOf(d Date) Week {
	offset := (int(d.Weekday()) - int(WeekStart) + 7) % 7
	return weekFrom(d.time().AddDate(0, 0, -offset))
}

func weekFrom(start time.Time) Week {
	var w Week
	for i := range w {
		w[i] = DateOf(start.AddDate(0, 0, i))
	}
	return w
}

// MonthWeeks returns the week window of d's month: whole weeks, starting with
// the one holding the 1st, for as long as a week's first or last day lies in
// the month. Days of the neighbouring months that share those weeks are
// included.
func MonthWeeks(d Date) []Week {
	anchor := d.FirstOfMonth()
	weeks := make([]Week, 0, WeeksPerScreen)

	for w := WeekOf(anchor); w.First().SameMonth(anchor) || w.Last().SameMonth(anchor); {
		weeks = append(weeks, w)
		w = weekFrom(w.Last().time().AddDate(0, 0, 1))
	}
	return weeks
}
