package state

// Command is an input, already decoded from whatever key or terminal event
// produced it.
type Command int

const (
	None Command = iota
	Quit
	MoveDayForward
	MoveDayBackward
	MoveWeekForward
	MoveWeekBackward
	ViewportChanged
	Idle
	GoToday
)

var commandNames = map[Command]string{
	None:             "none",
	Quit:             "quit",
	MoveDayForward:   "day+",
	MoveDayBackward:  "day-",
	MoveWeekForward:  "week+",
	MoveWeekBackward: "week-",
	ViewportChanged:  "resize",
	Idle:             "idle",
	GoToday:          "today",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "unknown"
}

// Flow tells the runtime loop what to do after a command was applied.
type Flow int

const (
	// FlowContinue leaves the screen as it is.
	FlowContinue Flow = iota
	// FlowRender asks for a fresh render.
	FlowRender
	// FlowQuit ends the loop.
	FlowQuit
)
