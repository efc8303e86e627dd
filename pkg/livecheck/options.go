package livecheck

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/fieldcheck/pkg/field"
)

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithDelay sets the debounce quiet period. Panics on negative durations.
func WithDelay(d time.Duration) Option {
	if d < 0 {
		panic("WithDelay: duration must be >= 0")
	}
	return func(c *Coordinator) { c.delay = d }
}

// WithClock replaces the wall clock, typically with a ManualClock in tests.
func WithClock(clock Clock) Option {
	return func(c *Coordinator) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithReporter replaces the default DOMReporter.
func WithReporter(r Reporter) Option {
	return func(c *Coordinator) {
		if r != nil {
			c.reporter = r
		}
	}
}

// WithLogger supplies a logger. Evaluations are logged at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(c *Coordinator) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithClassifier replaces the default field classifier.
func WithClassifier(cl field.Classifier) Option {
	return func(c *Coordinator) { c.classifier = cl }
}

// WithEvaluateHook registers a callback run after every evaluation.
func WithEvaluateHook(h EvaluateHook) Option {
	if h == nil {
		panic("WithEvaluateHook: nil hook")
	}
	return func(c *Coordinator) { c.hooks = append(c.hooks, h) }
}
