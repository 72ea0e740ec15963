package core

// Event is a discrete gameplay signal raised by a simulation step.
// Frontends map events to sound cues or visual effects; the simulation does
// not depend on how (or whether) they are handled.
type Event int

const (
	EventNone      Event = iota
	EventJump            // The bird flapped
	EventScore           // A pipe pair was passed
	EventCollision       // The bird hit a pipe or the ground
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventJump:
		return "jump"
	case EventScore:
		return "score"
	case EventCollision:
		return "collision"
	default:
		return "none"
	}
}

// Listener receives events emitted by a session.
type Listener interface {
	OnEvent(Event)
}

// ListenerFunc adapts a plain function to the Listener interface.
type ListenerFunc func(Event)

// OnEvent calls f(e).
func (f ListenerFunc) OnEvent(e Event) { f(e) }

// Listeners fans a single event out to several listeners in order.
type Listeners []Listener

// OnEvent forwards e to every non-nil listener.
func (ls Listeners) OnEvent(e Event) {
	for _, l := range ls {
		if l != nil {
			l.OnEvent(e)
		}
	}
}

// Dispatch hands every event of a step result to l.
func Dispatch(l Listener, events []Event) {
	if l == nil {
		return
	}
	for _, e := range events {
		l.OnEvent(e)
	}
}
