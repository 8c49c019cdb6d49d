package core

// EventKind identifies a notification emitted by a resolver.
type EventKind uint8

const (
	EventMapChanged EventKind = iota
	EventPlayerMoved
	EventTrapTriggered
	EventGoalTriggered
	EventSoundWalk
	EventSoundPush
	EventSoundDestroy
	EventSoundShift
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventMapChanged:
		return "MapChanged"
	case EventPlayerMoved:
		return "PlayerMoved"
	case EventTrapTriggered:
		return "TrapTriggered"
	case EventGoalTriggered:
		return "GoalTriggered"
	case EventSoundWalk:
		return "SoundWalk"
	case EventSoundPush:
		return "SoundPush"
	case EventSoundDestroy:
		return "SoundDestroy"
	case EventSoundShift:
		return "SoundShift"
	default:
		return "Unknown"
	}
}

// Event is a value copy handed to listeners.
// Tile is set for the sound events that carry one.
type Event struct {
	Kind EventKind
	Tile TileDefinition
	Pos  Coord
}

// Listener receives committed events in emission order.
type Listener interface {
	OnEvent(Event)
}

// ListenerFunc adapts a function to the Listener interface.
type ListenerFunc func(Event)

// OnEvent calls f(e).
func (f ListenerFunc) OnEvent(e Event) { f(e) }

// Bus dispatches events synchronously to listeners in registration order.
type Bus struct {
	listeners []Listener
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers a listener.
func (b *Bus) Subscribe(l Listener) {
	b.listeners = append(b.listeners, l)
}

// Publish delivers events to every listener, one event at a time.
func (b *Bus) Publish(events []Event) {
	if b == nil {
		return
	}
	for _, e := range events {
		for _, l := range b.listeners {
			l.OnEvent(e)
		}
	}
}

// recorder collects events during a resolver call. They are only published
// once the call commits.
type recorder struct {
	events []Event
}

func (r *recorder) emit(kind EventKind, pos Coord) {
	r.events = append(r.events, Event{Kind: kind, Pos: pos})
}

func (r *recorder) emitTile(kind EventKind, tile TileDefinition, pos Coord) {
	r.events = append(r.events, Event{Kind: kind, Tile: tile, Pos: pos})
}

// Has reports whether kind appears in events.
func Has(events []Event, kind EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
