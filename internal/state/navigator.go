package state

import (
	"fmt"

	"github.com/five82/tcal/internal/calendar"
)

// Navigator owns the selected date and applies commands to it. It is not
// safe for concurrent use; the runtime loop is its only caller.
type Navigator struct {
	selected calendar.Date
	today    func() calendar.Date
}

// NewNavigator starts navigation at selected. today is consulted by GoToday.
func NewNavigator(selected calendar.Date, today func() calendar.Date) *Navigator {
	return &Navigator{selected: selected, today: today}
}

// Selected returns the currently selected date.
func (n *Navigator) Selected() calendar.Date {
	return n.selected
}

// Apply transitions the navigator. A failed move leaves the selection where
// it was and returns an error wrapping calendar.ErrDateOutOfRange.
func (n *Navigator) Apply(cmd Command) (Flow, error) {
	switch cmd {
	case Quit:
		return FlowQuit, nil
	case MoveDayForward:
		return n.shift(1)
	case MoveDayBackward:
		return n.shift(-1)
	case MoveWeekForward:
		return n.shift(7)
	case MoveWeekBackward:
		return n.shift(-7)
	case GoToday:
		if n.today != nil {
			n.selected = n.today()
		}
		return FlowRender, nil
	case ViewportChanged, Idle:
		return FlowRender, nil
	default:
		return FlowContinue, nil
	}
}

func (n *Navigator) shift(days int) (Flow, error) {
	next, err := n.selected.AddDays(days)
	if err != nil {
		return FlowQuit, fmt.Errorf("move selection: %w", err)
	}
	n.selected = next
	return FlowRender, nil
}
