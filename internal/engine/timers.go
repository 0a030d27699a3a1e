package engine

import (
	"sync"
	"time"
)

// Timers is a set of delayed effects belonging to one game round.
// CancelAll drops every pending effect and guarantees that none of them runs
// afterwards, even one that already fired and is waiting to execute.
//
// Callbacks must not call CancelAll.
type Timers struct {
	clock Clock

	mu      sync.Mutex
	gen     uint64
	nextID  uint64
	pending map[uint64]Timer

	run sync.Mutex // held while a callback executes
}

// NewTimers creates an empty timer set on clock.
func NewTimers(clock Clock) *Timers {
	if clock == nil {
		clock = RealClock{}
	}
	return &Timers{
		clock:   clock,
		pending: make(map[uint64]Timer),
	}
}

// After runs fn once d has elapsed, unless the set is cancelled first.
func (t *Timers) After(d time.Duration, fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()

	gen := t.gen
	id := t.nextID
	t.nextID++
	t.pending[id] = nil

	t.pending[id] = t.clock.AfterFunc(d, func() {
		t.run.Lock()
		defer t.run.Unlock()

		t.mu.Lock()
		_, live := t.pending[id]
		if gen != t.gen || !live {
			t.mu.Unlock()
			return
		}
		delete(t.pending, id)
		t.mu.Unlock()

		fn()
	})
}

// CancelAll stops every pending effect. It is idempotent.
func (t *Timers) CancelAll() {
	t.mu.Lock()
	t.gen++
	for id, tm := range t.pending {
		if tm != nil {
			tm.Stop()
		}
		delete(t.pending, id)
	}
	t.mu.Unlock()

	// Barrier: wait out a callback that is mid-flight.
	t.run.Lock()
	t.run.Unlock() //nolint:staticcheck // barrier
}

// Pending returns the number of effects still scheduled.
func (t *Timers) Pending() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.pending)
}
