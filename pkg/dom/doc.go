// Package dom is a small in-memory model of the parts of a browser document
// the validation engine touches: an element tree with ids, attributes, class
// lists, values and text, and W3C-style event dispatch with capture, target
// and bubble phases.
//
// Only what the engine needs is modelled. Blur and focus do not bubble, so a
// listener that wants to see them for every field must register on an
// ancestor in the capture phase:
//
//	doc := dom.NewDocument()
//	doc.Root().AddEventListener(dom.EventBlur, func(ev *dom.Event) {
//	    // ev.Target is the field that lost focus
//	}, true)
//
// The Document serializes Dispatch and Do with a single lock. Code running
// outside a listener, such as a timer callback, must go through Do before
// touching elements.
package dom
