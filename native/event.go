package native

// EventType identifies a native widget event.
type EventType uint8

const (
	EventChange EventType = iota + 1
	EventFocus
	EventBlur
	EventKeyPress
	EventSelect
)

func (t EventType) String() string {
	switch t {
	case EventChange:
		return "change"
	case EventFocus:
		return "focus"
	case EventBlur:
		return "blur"
	case EventKeyPress:
		return "keypress"
	case EventSelect:
		return "select"
	default:
		return "unknown"
	}
}

// Event is emitted synchronously by a widget.
//
// For EventKeyPress, widgets dispatch before applying the key's default action
// and skip that action when the event was prevented.
type Event struct {
	Type   EventType
	Target Handle
	// Key is the bubbletea key name ("enter", "a", "ctrl+c") for EventKeyPress.
	Key string

	prevented bool
}

func (e *Event) PreventDefault() { e.prevented = true }

func (e *Event) DefaultPrevented() bool { return e.prevented }
