package raycast

// Key is a logical key the frame loop reacts to.
type Key uint8

const (
	KeyNone Key = iota
	KeyForward
	KeyBack
	KeyTurnLeft
	KeyTurnRight
	KeyEscape
)

// EventKind discriminates input events.
type EventKind uint8

const (
	EventQuit EventKind = iota + 1
	EventKeyDown
	EventKeyUp
)

// Event is a single discrete input event for one frame.
type Event struct {
	Kind EventKind
	Key  Key
}

// KeyDown and KeyUp build key events.
func KeyDown(k Key) Event { return Event{Kind: EventKeyDown, Key: k} }
func KeyUp(k Key) Event { return Event{Kind: EventKeyUp, Key: k} }

// Quit is the window-close event.
func Quit() Event { return Event{Kind: EventQuit} }

// EventSource yields the events collected since the previous poll.
type EventSource interface {
	PollEvents() []Event
}

// InputState holds which movement keys are currently held.
type InputState struct {
	Forward   bool
	Back      bool
	TurnLeft  bool
	TurnRight bool
}

// Apply folds e into s and reports whether the loop should stop.
func (s *InputState) Apply(e Event) (quit bool) {
	switch e.Kind {
	case EventQuit:
		return true
	case EventKeyDown:
		if e.Key == KeyEscape {
			return true
		}
		s.set(e.Key, true)
	case EventKeyUp:
		s.set(e.Key, false)
	}
	return false
}

func (s *InputState) set(k Key, held bool) {
	switch k {
	case KeyForward:
		s.Forward = held
	case KeyBack:
		s.Back = held
	case KeyTurnLeft:
		s.TurnLeft = held
	case KeyTurnRight:
		s.TurnRight = held
	}
}

// Idle reports whether no movement key is held.
func (s InputState) Idle() bool {
	return !s.Forward && !s.Back && !s.TurnLeft && !s.TurnRight
}
