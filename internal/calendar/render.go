package calendar

import "strconv"

// Layout thresholds, in terminal cells.
const (
	// FullNamesMinWidth is the narrowest viewport that gets full weekday names.
	FullNamesMinWidth = 80

	// WideSpacingMinWidth is the narrowest viewport drawn without column gaps.
	WideSpacingMinWidth = 40

	// ReservedRows covers the frame border, the header row and its margin.
	ReservedRows = 4

	// WeeksPerScreen is the number of week rows the height is divided by.
	WeeksPerScreen = 6

	// FrameBorder is the horizontal space taken by the left and right border.
	FrameBorder = 2
)

var (
	fullWeekdayNames  = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	shortWeekdayNames = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
)

// Viewport is the drawable area in character cells.
type Viewport struct {
	Width  int
	Height int
}

// Base is the first styling tier, chosen by month membership and weekend.
type Base int

const (
	BaseWeekday        Base = iota // in month, Monday-Friday
	BaseWeekend                    // in month, Saturday-Sunday
	BaseOutsideWeekday             // neighbouring month, Monday-Friday
	BaseOutsideWeekend             // neighbouring month, Saturday-Sunday
)

// Mark is the override tier layered on top of Base.
type Mark int

const (
	MarkNone Mark = iota
	MarkSelected
	MarkToday
	MarkTodaySelected
)

// CellStyle pairs the two styling tiers of a cell.
type CellStyle struct {
	Base Base
	Mark Mark
}

// Cell is one day of the grid.
type Cell struct {
	Date  Date
	Label string
	Style CellStyle
}

// Row is one displayed week.
type Row [7]Cell

// Layout describes how the grid is fitted into the viewport.
type Layout struct {
	RowHeight        int
	ColumnSpacing    int
	ColumnWidths     [7]int
	FullWeekdayNames bool
}

// Month is the render output for a single month view.
type Month struct {
	Title  string
	Header [7]string
	Rows   []Row
	Layout Layout
}

// Render builds the month view of selected. today is passed in rather than
// read from the clock so that callers decide when "today" is re-evaluated.
func Render(selected, today Date, vp Viewport) Month {
	layout := LayoutFor(vp)

	m := Month{
		Title:  selected.Title(),
		Header: shortWeekdayNames,
		Layout: layout,
	}
	if layout.FullWeekdayNames {
		m.Header = fullWeekdayNames
	}

	weeks := MonthWeeks(selected)
	m.Rows = make([]Row, len(weeks))
	for i, w := range weeks {
		for j, day := range w {
			m.Rows[i][j] = Cell{
				Date:  day,
				Label: strconv.Itoa(day.Day),
				Style: StyleFor(day, selected, today),
			}
		}
	}
	return m
}

// StyleFor resolves both styling tiers of day.
func StyleFor(day, selected, today Date) CellStyle {
	return CellStyle{
		Base: baseFor(day.SameMonth(selected), day.IsWeekend()),
		Mark: markFor(day == today, day == selected),
	}
}

func baseFor(inMonth, weekend bool) Base {
	switch {
	case inMonth && weekend:
		return BaseWeekend
	case inMonth:
		return BaseWeekday
	case weekend:
		return BaseOutsideWeekend
	default:
		return BaseOutsideWeekday
	}
}

func markFor(isToday, isSelected bool) Mark {
	switch {
	case isToday && isSelected:
		return MarkTodaySelected
	case isToday:
		return MarkToday
	case isSelected:
		return MarkSelected
	default:
		return MarkNone
	}
}

// LayoutFor computes row height, spacing and column widths for vp.
func LayoutFor(vp Viewport) Layout {
	l := Layout{
		RowHeight:        max(1, (vp.Height-ReservedRows)/WeeksPerScreen),
		FullWeekdayNames: vp.Width >= FullNamesMinWidth,
	}
	if vp.Width < WideSpacingMinWidth {
		l.ColumnSpacing = 1
	}

	avail := max(0, vp.Width-FrameBorder-6*l.ColumnSpacing)
	for i := range l.ColumnWidths {
		l.ColumnWidths[i] = avail / 7
		if i < avail%7 {
			l.ColumnWidths[i]++
		}
	}
	return l
}
