package dom

// EventKind identifies the kind of event delivered to an element.
type EventKind string

const (
	EventInput   EventKind = "input"   // Text field value changed
	EventKeyDown EventKind = "keydown" // Key pressed while the element had focus
	EventClick   EventKind = "click"   // Element activated
)

// Key identifiers carried by keydown events.
const (
	KeyBackspace = "Backspace"
	KeyEnter     = "Enter"
)

// Event is a single notification dispatched to an element's listeners.
type Event struct {
	Kind   EventKind
	Key    string
	Target *Element
}

// Handler reacts to a dispatched event.
type Handler func(Event)
