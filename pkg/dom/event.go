package dom

// EventType names a DOM event.
type EventType string

const (
	EventBlur   EventType = "blur"
	EventFocus  EventType = "focus"
	EventInput  EventType = "input"
	EventChange EventType = "change"
	EventSubmit EventType = "submit"
)

// Bubbles reports whether events of this type bubble. Focus events do not,
// which is why delegated focus handling has to listen in the capture phase.
func (t EventType) Bubbles() bool {
	switch t {
	case EventBlur, EventFocus:
		return false
	default:
		return true
	}
}

// Phase is the propagation phase an event is currently in.
type Phase uint8

const (
	PhaseNone Phase = iota
	PhaseCapturing
	PhaseAtTarget
	PhaseBubbling
)

// Event is dispatched through a Document. A fresh Event must be used for every dispatch.
type Event struct {
	Type          EventType
	Target        *Element
	CurrentTarget *Element
	Phase         Phase

	defaultPrevented bool
	stopped          bool
	stoppedNow       bool
}

// NewEvent creates an event of the given type.
func NewEvent(t EventType) *Event {
	return &Event{Type: t}
}

// PreventDefault cancels the default action, e.g. the form submission.
func (e *Event) PreventDefault() {
	e.defaultPrevented = true
}

func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// StopPropagation keeps the event from reaching further nodes.
// Listeners still pending on the current node run.
func (e *Event) StopPropagation() {
	e.stopped = true
}

// StopImmediatePropagation also skips the remaining listeners on the current node.
func (e *Event) StopImmediatePropagation() {
	e.stopped = true
	e.stoppedNow = true
}

func (e *Event) PropagationStopped() bool {
	return e.stopped
}

// Listener handles a dispatched event.
type Listener func(*Event)

type listener struct {
	id      uint64
	typ     EventType
	fn      Listener
	capture bool
}
