package dom

import (
	"strings"
	"sync"
	"sync/atomic"
)

// Document owns an element tree and serializes everything that touches it.
//
// Dispatch and Do hold the same lock, so listeners and deferred callbacks
// (timers) run one at a time, like on a browser event loop. Listeners must not
// call Dispatch or Do themselves.
type Document struct {
	mu     sync.Mutex
	root   *Element
	lastID atomic.Uint64
}

// NewDocument creates an empty document with a root element.
func NewDocument() *Document {
	d := &Document{}
	d.root = &Element{doc: d, tag: "#document"}
	return d
}

// Root is the stable ancestor of every connected element.
// Delegated listeners belong here.
func (d *Document) Root() *Element { return d.root }

// CreateElement creates a detached element.
func (d *Document) CreateElement(tag string) *Element {
	return &Element{doc: d, tag: strings.ToLower(tag)}
}

// Body returns the first <body> element, creating it under the root if missing.
func (d *Document) Body() *Element {
	if b := d.root.Find(ByTag("body")); b != nil {
		return b
	}
	return d.root.AppendChild(d.CreateElement("body"))
}

// GetElementByID returns the first connected element with the id.
func (d *Document) GetElementByID(id string) *Element {
	return d.root.Find(ByID(id))
}

// Do runs fn while holding the document lock.
func (d *Document) Do(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fn()
}

// Dispatch sends ev to target through the capture, target and bubble phases.
// It returns false when a listener called PreventDefault.
func (d *Document) Dispatch(target *Element, ev *Event) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.dispatch(target, ev)
}

// Input sets the value of el and dispatches an input event, the way typing does.
func (d *Document) Input(el *Element, value string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	el.value = value
	d.dispatch(el, NewEvent(EventInput))
}

// Blur dispatches a blur event to el.
func (d *Document) Blur(el *Element) {
	d.Dispatch(el, NewEvent(EventBlur))
}

// Submit dispatches a submit event to form and reports whether the
// submission would proceed.
func (d *Document) Submit(form *Element) bool {
	return d.Dispatch(form, NewEvent(EventSubmit))
}

func (d *Document) dispatch(target *Element, ev *Event) bool {
	ev.Target = target

	// path holds the ancestors from the outermost one down to target's parent.
	var path []*Element
	for n := target.parent; n != nil; n = n.parent {
		path = append([]*Element{n}, path...)
	}

	ev.Phase = PhaseCapturing
	for _, n := range path {
		if !invoke(n, ev, func(l listener) bool { return l.capture }) {
			break
		}
	}

	if !ev.stopped {
		ev.Phase = PhaseAtTarget
		invoke(target, ev, func(listener) bool { return true })
	}

	if ev.Type.Bubbles() && !ev.stopped {
		ev.Phase = PhaseBubbling
		for i := len(path) - 1; i >= 0; i-- {
			if !invoke(path[i], ev, func(l listener) bool { return !l.capture }) {
				break
			}
		}
	}

	ev.Phase = PhaseNone
	ev.CurrentTarget = nil
	return !ev.defaultPrevented
}

// invoke runs n's matching listeners and reports whether propagation may continue.
func invoke(n *Element, ev *Event, match func(listener) bool) bool {
	if ev.stopped {
		return false
	}
	ev.CurrentTarget = n
	handlers := append([]listener(nil), n.handlers...)
	for _, l := range handlers {
		if l.typ != ev.Type || !match(l) {
			continue
		}
		l.fn(ev)
		if ev.stoppedNow {
			break
		}
	}
	return !ev.stopped
}

func (d *Document) nextListenerID() uint64 {
	return d.lastID.Add(1)
}
