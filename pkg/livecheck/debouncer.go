package livecheck

import (
	"sync"
	"time"
)

// Debouncer delays calls per key. Scheduling a call for a key replaces that
// key's pending call and leaves every other key alone.
type Debouncer[K comparable] struct {
	delay   time.Duration
	clock   Clock
	mu      sync.Mutex
	seq     uint64
	pending map[K]*pendingCall
}

type pendingCall struct {
	seq   uint64
	timer Timer
}

// NewDebouncer creates a debouncer with a fixed quiet period.
// A nil clock means the wall clock.
func NewDebouncer[K comparable](delay time.Duration, clock Clock) *Debouncer[K] {
	if clock == nil {
		clock = RealClock()
	}
	return &Debouncer[K]{
		delay:   delay,
		clock:   clock,
		pending: make(map[K]*pendingCall),
	}
}

// Delay returns the quiet period.
func (d *Debouncer[K]) Delay() time.Duration {
	return d.delay
}

// Schedule runs fn once key has been quiet for the delay.
func (d *Debouncer[K]) Schedule(key K, fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if prev, ok := d.pending[key]; ok {
		prev.timer.Stop()
	}

	d.seq++
	call := &pendingCall{seq: d.seq}
	d.pending[key] = call
	seq := call.seq
	call.timer = d.clock.AfterFunc(d.delay, func() { d.fire(key, seq, fn) })
}

// fire drops calls that were replaced or cancelled after their timer had
// already started running, when Stop can no longer prevent it.
func (d *Debouncer[K]) fire(key K, seq uint64, fn func()) {
	d.mu.Lock()
	call, ok := d.pending[key]
	if !ok || call.seq != seq {
		d.mu.Unlock()
		return
	}
	delete(d.pending, key)
	d.mu.Unlock()

	fn()
}

// Cancel drops the pending call for key and reports whether there was one.
func (d *Debouncer[K]) Cancel(key K) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	call, ok := d.pending[key]
	if !ok {
		return false
	}
	call.timer.Stop()
	delete(d.pending, key)
	return true
}

// IsPending reports whether key has a call waiting.
func (d *Debouncer[K]) IsPending(key K) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.pending[key]
	return ok
}

// Len returns the number of keys with a pending call.
func (d *Debouncer[K]) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending)
}

// Stop cancels every pending call.
func (d *Debouncer[K]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	for key, call := range d.pending {
		call.timer.Stop()
		delete(d.pending, key)
	}
}
