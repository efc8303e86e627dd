package livecheck_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/fieldcheck/pkg/livecheck"
)

func TestDebouncer_ReplacesOnlySameKey(t *testing.T) {
	t.Parallel()

	clock := livecheck.NewManualClock(time.Unix(0, 0))
	d := livecheck.NewDebouncer[string](500*time.Millisecond, clock)

	var fired []string
	d.Schedule("a", func() { fired = append(fired, "a1") })
	clock.Advance(300 * time.Millisecond)
	d.Schedule("b", func() { fired = append(fired, "b1") })
	d.Schedule("a", func() { fired = append(fired, "a2") })
	assert.Equal(t, 2, d.Len())
	assert.Equal(t, 2, clock.Pending())

	clock.Advance(500 * time.Millisecond)
	assert.Equal(t, []string{"b1", "a2"}, fired)
	assert.Zero(t, d.Len())
}

func TestDebouncer_Cancel(t *testing.T) {
	t.Parallel()

	clock := livecheck.NewManualClock(time.Unix(0, 0))
	d := livecheck.NewDebouncer[int](time.Second, clock)

	var calls int
	d.Schedule(1, func() { calls++ })
	assert.True(t, d.IsPending(1))
	assert.True(t, d.Cancel(1))
	assert.False(t, d.Cancel(1))
	assert.False(t, d.IsPending(1))

	clock.Advance(2 * time.Second)
	assert.Zero(t, calls)
}

func TestDebouncer_Stop(t *testing.T) {
	t.Parallel()

	clock := livecheck.NewManualClock(time.Unix(0, 0))
	d := livecheck.NewDebouncer[int](time.Second, clock)

	var calls int
	for i := range 3 {
		d.Schedule(i, func() { calls++ })
	}
	d.Stop()
	clock.Advance(time.Minute)

	assert.Zero(t, calls)
	assert.Zero(t, clock.Pending())
	assert.Equal(t, time.Second, d.Delay())
}

func TestDebouncer_RealClock(t *testing.T) {
	t.Parallel()

	d := livecheck.NewDebouncer[string](10*time.Millisecond, nil)

	var calls atomic.Int32
	for range 5 {
		d.Schedule("k", func() { calls.Add(1) })
	}

	assert.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
}

func TestManualClock(t *testing.T) {
	t.Parallel()

	start := time.Unix(100, 0)
	clock := livecheck.NewManualClock(start)

	var order []int
	clock.AfterFunc(2*time.Second, func() { order = append(order, 2) })
	clock.AfterFunc(time.Second, func() {
		order = append(order, 1)
		clock.AfterFunc(500*time.Millisecond, func() { order = append(order, 15) })
	})
	stopped := clock.AfterFunc(time.Second, func() { order = append(order, -1) })
	assert.True(t, stopped.Stop())
	assert.False(t, stopped.Stop())

	clock.Advance(3 * time.Second)

	assert.Equal(t, []int{1, 15, 2}, order)
	assert.Equal(t, start.Add(3*time.Second), clock.Now())
	assert.Zero(t, clock.Pending())
}
