package dom

import (
	"slices"
	"strings"
)

// Element is a node of an in-memory document tree.
//
// Elements are not safe for concurrent use. Mutate them from event listeners
// or inside Document.Do so that timers and dispatch never race.
type Element struct {
	doc      *Document
	tag      string
	attrs    map[string]string
	classes  []string
	value    string
	text     string
	hidden   bool
	parent   *Element
	children []*Element
	handlers []listener
}

// Tag returns the lower-cased tag name.
func (e *Element) Tag() string { return e.tag }

// ID is a shortcut for Attr("id").
func (e *Element) ID() string { return e.attrs["id"] }

// Attr returns the attribute value, or "" when absent.
func (e *Element) Attr(name string) string { return e.attrs[strings.ToLower(name)] }

// SetAttr sets an attribute and returns the element for chaining.
// The "class" attribute is routed to the class list.
func (e *Element) SetAttr(name, value string) *Element {
	name = strings.ToLower(name)
	if name == "class" {
		e.classes = e.classes[:0]
		e.AddClass(strings.Fields(value)...)
		return e
	}
	if e.attrs == nil {
		e.attrs = make(map[string]string)
	}
	e.attrs[name] = value
	return e
}

func (e *Element) Value() string { return e.value }

// SetValue changes the value without dispatching any event.
func (e *Element) SetValue(v string) { e.value = v }

func (e *Element) Text() string { return e.text }

func (e *Element) SetText(s string) { e.text = s }

// Hidden mirrors style.display == "none".
func (e *Element) Hidden() bool { return e.hidden }

func (e *Element) SetHidden(h bool) { e.hidden = h }

// Classes returns a copy of the class list in insertion order.
func (e *Element) Classes() []string { return slices.Clone(e.classes) }

func (e *Element) HasClass(name string) bool { return slices.Contains(e.classes, name) }

// AddClass adds classes that are not present yet.
func (e *Element) AddClass(names ...string) {
	for _, n := range names {
		if n != "" && !e.HasClass(n) {
			e.classes = append(e.classes, n)
		}
	}
}

// RemoveClass removes every given class; absent ones are ignored.
func (e *Element) RemoveClass(names ...string) {
	e.classes = slices.DeleteFunc(e.classes, func(c string) bool {
		return slices.Contains(names, c)
	})
}

// OwnerDocument returns the document that created the element.
func (e *Element) OwnerDocument() *Document { return e.doc }

// Parent returns the parent element, or nil for the root and detached elements.
func (e *Element) Parent() *Element { return e.parent }

// Children returns a copy of the child list.
func (e *Element) Children() []*Element { return slices.Clone(e.children) }

// AppendChild moves child under e, detaching it from its previous parent.
func (e *Element) AppendChild(child *Element) *Element {
	if child == nil || child == e || child.Contains(e) {
		return child
	}
	child.Remove()
	child.parent = e
	e.children = append(e.children, child)
	return child
}

// Append is AppendChild for several children; it returns e for chaining.
func (e *Element) Append(children ...*Element) *Element {
	for _, c := range children {
		e.AppendChild(c)
	}
	return e
}

// Remove detaches e from its parent. The subtree below e stays intact.
func (e *Element) Remove() {
	if e.parent == nil {
		return
	}
	p := e.parent
	p.children = slices.DeleteFunc(p.children, func(c *Element) bool { return c == e })
	e.parent = nil
}

// Contains reports whether other is e or one of its descendants.
func (e *Element) Contains(other *Element) bool {
	for n := other; n != nil; n = n.parent {
		if n == e {
			return true
		}
	}
	return false
}

// IsConnected reports whether e is attached to its document's root.
func (e *Element) IsConnected() bool {
	return e.doc != nil && e.doc.root.Contains(e)
}

// Walk visits the descendants of e in document order (pre-order), excluding e.
// Returning false from fn stops the walk.
func (e *Element) Walk(fn func(*Element) bool) {
	e.walk(fn)
}

func (e *Element) walk(fn func(*Element) bool) bool {
	for _, c := range slices.Clone(e.children) {
		if !fn(c) || !c.walk(fn) {
			return false
		}
	}
	return true
}

// Find returns the first descendant matching pred in document order.
func (e *Element) Find(pred func(*Element) bool) *Element {
	var found *Element
	e.Walk(func(c *Element) bool {
		if pred(c) {
			found = c
			return false
		}
		return true
	})
	return found
}

// FindAll returns every descendant matching pred in document order.
func (e *Element) FindAll(pred func(*Element) bool) []*Element {
	var out []*Element
	e.Walk(func(c *Element) bool {
		if pred(c) {
			out = append(out, c)
		}
		return true
	})
	return out
}

// Closest returns the nearest inclusive ancestor matching pred.
func (e *Element) Closest(pred func(*Element) bool) *Element {
	for n := e; n != nil; n = n.parent {
		if pred(n) {
			return n
		}
	}
	return nil
}

// ByClass matches elements carrying the class.
func ByClass(name string) func(*Element) bool {
	return func(e *Element) bool { return e.HasClass(name) }
}

// ByTag matches elements with the tag name.
func ByTag(tag string) func(*Element) bool {
	tag = strings.ToLower(tag)
	return func(e *Element) bool { return e.tag == tag }
}

// ByID matches the element with the id.
func ByID(id string) func(*Element) bool {
	return func(e *Element) bool { return e.ID() == id }
}

// AddEventListener registers fn for events of type t reaching e.
// With capture set, fn runs while the event travels down to its target.
// The returned func removes the listener.
func (e *Element) AddEventListener(t EventType, fn Listener, capture bool) (remove func()) {
	if fn == nil {
		panic("dom: nil listener")
	}
	id := e.doc.nextListenerID()
	e.handlers = append(e.handlers, listener{id: id, typ: t, fn: fn, capture: capture})
	return func() {
		e.handlers = slices.DeleteFunc(e.handlers, func(l listener) bool { return l.id == id })
	}
}
