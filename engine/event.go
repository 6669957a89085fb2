package engine

// EventKind identifies what changed in the state machine.
type EventKind int

const (
	EventDropped EventKind = iota
	EventLanded
	EventGameOver
	EventRestarted
)

func (k EventKind) String() string {
	switch k {
	case EventDropped:
		return "dropped"
	case EventLanded:
		return "landed"
	case EventGameOver:
		return "gameover"
	case EventRestarted:
		return "restarted"
	default:
		return "unknown"
	}
}

// Event is delivered to observers after the mutation that caused it has
// completed, so observers may read the engine freely.
type Event struct {
	Kind  EventKind
	Score int
	// Landing is set for EventLanded and EventGameOver.
	Landing Landing
}

// Observer receives engine events.
type Observer interface {
	OnEvent(ev Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(ev Event)

func (f ObserverFunc) OnEvent(ev Event) {
	f(ev)
}
