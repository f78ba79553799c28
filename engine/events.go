package engine

// EventKind identifies a player or terminal input routed to the loop
type EventKind uint8

const (
	// EventPointerMove sets the aiming x to Event.X (jar units)
	EventPointerMove EventKind = iota
	// EventNudge shifts the aiming piece by Event.X
	EventNudge
	// EventDrop releases the aiming piece
	EventDrop
	// EventReset starts a new round
	EventReset
	// EventResize signals the terminal changed size
	EventResize
	// EventQuit ends the loop
	EventQuit
)

func (k EventKind) String() string {
	switch k {
	case EventPointerMove:
		return "PointerMove"
	case EventNudge:
		return "Nudge"
	case EventDrop:
		return "Drop"
	case EventReset:
		return "Reset"
	case EventResize:
		return "Resize"
	case EventQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Event is one input for the loop
type Event struct {
	Kind EventKind
	X    float64
}
