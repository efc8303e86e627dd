package livecheck

import (
	"github.com/dmitrymomot/fieldcheck/pkg/dom"
	"github.com/dmitrymomot/fieldcheck/pkg/field"
)

// Marker classes and the message element contract shared with the stylesheet.
const (
	ClassError      = "error"
	ClassSuccess    = "success"
	ClassFieldError = "field-error"
)

// Reporter renders a verdict for a field. Implementations are called while
// the document lock is held and must not dispatch events.
type Reporter interface {
	Report(el *dom.Element, res field.Result)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(el *dom.Element, res field.Result)

func (f ReporterFunc) Report(el *dom.Element, res field.Result) { f(el, res) }

// DOMReporter toggles the marker classes on the field and maintains a
// div.field-error message element inside the field's parent.
type DOMReporter struct{}

func (DOMReporter) Report(el *dom.Element, res field.Result) {
	if el == nil {
		return
	}

	var msg *dom.Element
	parent := el.Parent()
	if parent != nil {
		msg = parent.Find(dom.ByClass(ClassFieldError))
	}

	switch {
	case res.Skipped:
		el.RemoveClass(ClassError, ClassSuccess)
		hide(msg)
	case res.Valid:
		el.AddClass(ClassSuccess)
		el.RemoveClass(ClassError)
		hide(msg)
	default:
		el.AddClass(ClassError)
		el.RemoveClass(ClassSuccess)
		if parent == nil {
			return
		}
		if msg == nil {
			msg = el.OwnerDocument().CreateElement("div").
				SetAttr("class", ClassFieldError).
				SetAttr("role", "alert")
			parent.AppendChild(msg)
		}
		msg.SetText(res.Message)
		msg.SetHidden(false)
	}
}

func hide(msg *dom.Element) {
	if msg != nil {
		msg.SetHidden(true)
	}
}

type multiReporter []Reporter

func (m multiReporter) Report(el *dom.Element, res field.Result) {
	for _, r := range m {
		r.Report(el, res)
	}
}

// MultiReporter fans a verdict out to several reporters in order.
func MultiReporter(reporters ...Reporter) Reporter {
	out := make(multiReporter, 0, len(reporters))
	for _, r := range reporters {
		if r != nil {
			out = append(out, r)
		}
	}
	return out
}
