package livecheck

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/dmitrymomot/fieldcheck/pkg/dom"
	"github.com/dmitrymomot/fieldcheck/pkg/field"
	"github.com/dmitrymomot/fieldcheck/pkg/logger"
)

// Coordinator listens to a document and keeps the validity of every tracked
// field up to date: debounced on input, immediate on blur, and all at once
// on form submission, which it vetoes while any field is invalid.
type Coordinator struct {
	delay      time.Duration
	clock      Clock
	reporter   Reporter
	logger     *slog.Logger
	classifier field.Classifier
	hooks      []EvaluateHook

	timers *Debouncer[*dom.Element]

	mu       sync.Mutex
	doc      *dom.Document
	states   map[*dom.Element]*FieldState
	removers []func()
}

// New creates a detached coordinator.
func New(opts ...Option) *Coordinator {
	c := &Coordinator{
		delay:    DefaultDelay,
		clock:    RealClock(),
		reporter: DOMReporter{},
		logger:   slog.New(slog.DiscardHandler),
		states:   make(map[*dom.Element]*FieldState),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With(logger.Component("livecheck"))
	c.timers = NewDebouncer[*dom.Element](c.delay, c.clock)
	return c
}

// Delay returns the debounce quiet period.
func (c *Coordinator) Delay() time.Duration {
	return c.delay
}

// Attach registers the blur, input and submit listeners once, in the capture
// phase, on the document root. Fields added to the document later are covered
// without attaching again. The returned function detaches the coordinator,
// cancels pending timers and forgets every field state.
func (c *Coordinator) Attach(doc *dom.Document) (detach func(), err error) {
	if doc == nil {
		return nil, ErrNilDocument
	}

	doc.Do(func() {
		c.mu.Lock()
		defer c.mu.Unlock()

		if c.doc != nil {
			err = ErrAlreadyAttached
			return
		}
		c.doc = doc

		root := doc.Root()
		c.removers = []func(){
			root.AddEventListener(dom.EventBlur, c.onBlur, true),
			root.AddEventListener(dom.EventInput, c.onInput, true),
			root.AddEventListener(dom.EventSubmit, c.onSubmit, true),
		}
	})
	if err != nil {
		return nil, err
	}

	var once sync.Once
	return func() { once.Do(func() { c.detach(doc) }) }, nil
}

func (c *Coordinator) detach(doc *dom.Document) {
	doc.Do(func() {
		c.mu.Lock()
		defer c.mu.Unlock()

		for _, remove := range c.removers {
			remove()
		}
		c.removers = nil
		c.doc = nil
		clear(c.states)
		c.timers.Stop()
	})
}

// State returns the recorded state of a tracked field.
func (c *Coordinator) State(el *dom.Element) (FieldState, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	st, ok := c.states[el]
	if !ok {
		return FieldState{}, false
	}
	return *st, true
}

// Pending reports whether el has a debounced evaluation waiting.
func (c *Coordinator) Pending(el *dom.Element) bool {
	return c.timers.IsPending(el)
}

// ValidateField evaluates a single field immediately, cancelling its pending
// timer. It returns false when the element is not a tracked field.
// It takes the document lock and must not be called from a listener.
func (c *Coordinator) ValidateField(el *dom.Element) (res field.Result, tracked bool) {
	if el == nil {
		return field.Result{}, false
	}
	el.OwnerDocument().Do(func() {
		kind, ok := c.classify(el)
		if !ok {
			return
		}
		tracked = true
		c.timers.Cancel(el)
		res = c.evaluate(el, kind, TriggerManual)
	})
	return res, tracked
}

// ValidateForm evaluates every tracked field inside form and reports whether
// all of them are acceptable. Like ValidateField it takes the document lock.
func (c *Coordinator) ValidateForm(form *dom.Element) (ok bool) {
	if form == nil {
		return true
	}
	form.OwnerDocument().Do(func() {
		ok = c.validateAll(form, TriggerManual)
	})
	return ok
}

func (c *Coordinator) onBlur(ev *dom.Event) {
	el := ev.Target
	kind, ok := c.classify(el)
	if !ok {
		return
	}
	c.timers.Cancel(el)
	c.evaluate(el, kind, TriggerBlur)
}

func (c *Coordinator) onInput(ev *dom.Event) {
	el := ev.Target
	if _, ok := c.classify(el); !ok {
		return
	}

	doc := el.OwnerDocument()
	c.timers.Schedule(el, func() {
		doc.Do(func() {
			if !c.attachedTo(doc) {
				return
			}
			if !el.IsConnected() {
				c.forget(el)
				return
			}
			// The element may have been retyped while the timer was pending.
			kind, ok := c.classify(el)
			if !ok {
				return
			}
			c.evaluate(el, kind, TriggerInput)
		})
	})
}

func (c *Coordinator) onSubmit(ev *dom.Event) {
	form := ev.Target
	if form == nil || form.Tag() != "form" {
		return
	}
	if c.validateAll(form, TriggerSubmit) {
		return
	}

	ev.PreventDefault()
	ev.StopImmediatePropagation()
	c.logger.Debug("submission blocked",
		logger.Event("submit_blocked"),
		slog.String("form_id", form.ID()),
	)
}

// validateAll evaluates the tracked fields of form in document order.
// Every field is evaluated even after the first failure so all errors show.
func (c *Coordinator) validateAll(form *dom.Element, trig Trigger) bool {
	ok := true
	form.Walk(func(el *dom.Element) bool {
		kind, tracked := c.classify(el)
		if !tracked {
			return true
		}
		c.timers.Cancel(el)
		if res := c.evaluate(el, kind, trig); !res.Valid {
			ok = false
		}
		return true
	})
	return ok
}

func (c *Coordinator) classify(el *dom.Element) (field.Kind, bool) {
	if el == nil {
		return 0, false
	}
	return c.classifier.Classify(field.Descriptor{
		Tag:  el.Tag(),
		Type: el.Attr("type"),
		ID:   el.ID(),
	})
}

// evaluate runs under the document lock and always reads the current value.
func (c *Coordinator) evaluate(el *dom.Element, kind field.Kind, trig Trigger) field.Result {
	value := el.Value()
	res := field.Validate(kind, value)

	c.record(el, FieldState{
		Kind:     kind,
		RawValue: value,
		Validity: ValidityOf(res),
		Message:  res.Message,
	})
	c.reporter.Report(el, res)

	ev := Evaluation{Element: el, Trigger: trig, Kind: kind, Value: value, Result: res}
	for _, h := range c.hooks {
		h(ev)
	}

	c.logger.LogAttrs(context.Background(), slog.LevelDebug, "field evaluated",
		logger.FieldID(el.ID()),
		logger.FieldKind(kind.String()),
		slog.Bool("valid", res.Valid),
		slog.Bool("skipped", res.Skipped),
		slog.String("trigger", string(trig)),
	)
	return res
}

// record stores st and drops the state of fields that left the document.
func (c *Coordinator) record(el *dom.Element, st FieldState) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for tracked := range c.states {
		if tracked != el && !tracked.IsConnected() {
			delete(c.states, tracked)
			c.timers.Cancel(tracked)
		}
	}
	if !el.IsConnected() {
		delete(c.states, el)
		return
	}
	c.states[el] = &st
}

func (c *Coordinator) forget(el *dom.Element) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.states, el)
}

func (c *Coordinator) attachedTo(doc *dom.Document) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.doc == doc
}
