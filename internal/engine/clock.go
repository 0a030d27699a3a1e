// Package engine holds the scheduling pieces every game engine is built
// from: a Clock, a fixed-delay tick Loop, cancellable delayed Timers and an
// observable state Cell.
package engine

import (
	"sync"
	"time"
)

// Clock is the time source engines schedule against.
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a scheduled callback that can be stopped.
type Timer interface {
	Stop() bool
}

// RealClock is the wall clock.
type RealClock struct{}

func (RealClock) Now() time.Time                         { return time.Now() }
func (RealClock) After(d time.Duration) <-chan time.Time { return time.After(d) }
func (RealClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// ManualClock only moves when Advance is called. Callbacks registered with
// AfterFunc run synchronously inside Advance, on the caller's goroutine.
type ManualClock struct {
	mu      sync.Mutex
	cond    *sync.Cond
	now     time.Time
	seq     int
	waiters []*waiter
}

type waiter struct {
	at  time.Time
	seq int
	ch  chan time.Time
	fn  func()
}

// NewManualClock returns a clock frozen at start.
func NewManualClock(start time.Time) *ManualClock {
	c := &ManualClock{now: start}
	c.cond = sync.NewCond(&c.mu)
	return c
}

// Now returns the current fake time.
func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// After returns a channel that receives once the clock passes now+d.
func (c *ManualClock) After(d time.Duration) <-chan time.Time {
	ch := make(chan time.Time, 1)
	c.add(&waiter{ch: ch}, d)
	return ch
}

// AfterFunc schedules f to run inside the Advance call that passes now+d.
func (c *ManualClock) AfterFunc(d time.Duration, f func()) Timer {
	w := &waiter{fn: f}
	c.add(w, d)
	return &manualTimer{clock: c, w: w}
}

func (c *ManualClock) add(w *waiter, d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	w.at = c.now.Add(d)
	w.seq = c.seq
	c.seq++
	c.waiters = append(c.waiters, w)
	c.cond.Broadcast()
}

// Advance moves the clock forward and fires every waiter that became due,
// in deadline order. The clock reads each waiter's deadline while it fires,
// so waiters scheduled by fired callbacks are honoured if they also fall
// inside the window.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now.Add(d)
	c.mu.Unlock()

	for {
		c.mu.Lock()
		w := c.popDue(target)
		if w == nil {
			c.now = target
			c.mu.Unlock()
			return
		}
		if w.at.After(c.now) {
			c.now = w.at
		}
		at := c.now
		c.mu.Unlock()

		if w.fn != nil {
			w.fn()
			continue
		}
		select {
		case w.ch <- at:
		default:
		}
	}
}

// popDue removes and returns the earliest waiter due by target, ties
// broken by scheduling order. Callers hold c.mu.
func (c *ManualClock) popDue(target time.Time) *waiter {
	best := -1
	for i, w := range c.waiters {
		if w.at.After(target) {
			continue
		}
		if best < 0 || w.at.Before(c.waiters[best].at) ||
			(w.at.Equal(c.waiters[best].at) && w.seq < c.waiters[best].seq) {
			best = i
		}
	}
	if best < 0 {
		return nil
	}
	w := c.waiters[best]
	c.waiters = append(c.waiters[:best], c.waiters[best+1:]...)
	return w
}

// Waiters returns the number of pending waiters.
func (c *ManualClock) Waiters() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.waiters)
}

// BlockUntil waits until at least n waiters are pending. Tests use it to
// sync with a loop goroutine before advancing time.
func (c *ManualClock) BlockUntil(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for len(c.waiters) < n {
		c.cond.Wait()
	}
}

type manualTimer struct {
	clock *ManualClock
	w     *waiter
}

func (t *manualTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	for i, w := range t.clock.waiters {
		if w == t.w {
			t.clock.waiters = append(t.clock.waiters[:i], t.clock.waiters[i+1:]...)
			return true
		}
	}
	return false
}
