package core

import "fmt"

// EventKind identifies a discrete input delivered to the current scene.
// Keyboard, mouse and the two periodic signals share one queue.
type EventKind int

const (
	EventNone      EventKind = iota
	EventDigit               // A digit key; Rune holds '0'..'9'
	EventBackspace           // Delete the last typed character
	EventSubmit              // Enter/Return
	EventBack                // Escape - back to menu
	EventClick               // Left mouse button at (X, Y) grid cell
	EventTick                // Countdown signal, every tick interval
	EventFlash               // Cosmetic blink signal, every flash interval
	EventCopy                // Copy the result line (end screen)
	EventQuit                // Window close or Ctrl+C
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventNone:
		return "None"
	case EventDigit:
		return "Digit"
	case EventBackspace:
		return "Backspace"
	case EventSubmit:
		return "Submit"
	case EventBack:
		return "Back"
	case EventClick:
		return "Click"
	case EventTick:
		return "Tick"
	case EventFlash:
		return "Flash"
	case EventCopy:
		return "Copy"
	case EventQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Event is one entry of the per-frame input queue.
type Event struct {
	Kind EventKind
	Rune rune // Set for EventDigit
	X, Y int  // Set for EventClick, in grid cells
}

// String implements fmt.Stringer for logging.
func (e Event) String() string {
	switch e.Kind {
	case EventDigit:
		return fmt.Sprintf("Digit(%c)", e.Rune)
	case EventClick:
		return fmt.Sprintf("Click(%d,%d)", e.X, e.Y)
	default:
		return e.Kind.String()
	}
}

// Digit returns a digit event, or an EventNone event for anything that is
// not an ASCII digit.
func Digit(r rune) Event {
	if r < '0' || r > '9' {
		return Event{}
	}
	return Event{Kind: EventDigit, Rune: r}
}

// Click returns a left-click event at grid cell (x, y).
func Click(x, y int) Event {
	return Event{Kind: EventClick, X: x, Y: y}
}

// Queue is a FIFO of events collected during one frame.
// Events are drained in the order they were pushed.
type Queue struct {
	events []Event
}

// Push appends events to the queue. EventNone entries are dropped.
func (q *Queue) Push(evs ...Event) {
	for _, ev := range evs {
		if ev.Kind == EventNone {
			continue
		}
		q.events = append(q.events, ev)
	}
}

// Len returns the number of pending events.
func (q *Queue) Len() int {
	return len(q.events)
}

// Drain returns all pending events in enqueue order and empties the queue.
func (q *Queue) Drain() []Event {
	out := q.events
	q.events = nil
	return out
}
