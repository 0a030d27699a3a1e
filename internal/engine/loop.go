package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Loop drives a step function on a fixed delay. The delay is read before
// every wait, so engines can speed up between ticks.
//
// Start and Stop must not be called from inside step.
type Loop struct {
	clock    Clock
	interval func() time.Duration
	step     func()

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}

	active atomic.Int32
	ticks  atomic.Uint64
}

// NewLoop creates a stopped loop.
func NewLoop(clock Clock, interval func() time.Duration, step func()) *Loop {
	if clock == nil {
		clock = RealClock{}
	}
	return &Loop{
		clock:    clock,
		interval: interval,
		step:     step,
	}
}

// Start launches the loop goroutine, stopping any previous run first.
func (l *Loop) Start() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.stopLocked()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	l.cancel = cancel
	l.done = done
	l.active.Add(1)

	go l.run(ctx, done)
}

// Stop cancels the loop and waits for its goroutine to exit.
// Calling Stop on a stopped loop is a no-op.
func (l *Loop) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.stopLocked()
}

func (l *Loop) stopLocked() {
	if l.cancel == nil {
		return
	}
	l.cancel()
	<-l.done
	l.cancel = nil
	l.done = nil
}

func (l *Loop) run(ctx context.Context, done chan struct{}) {
	defer func() {
		l.active.Add(-1)
		close(done)
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-l.clock.After(l.interval()):
		}
		if ctx.Err() != nil {
			return
		}
		l.step()
		l.ticks.Add(1)
	}
}

// Running reports whether a loop goroutine is active.
func (l *Loop) Running() bool {
	return l.active.Load() > 0
}

// Active returns the number of live loop goroutines (0 or 1).
func (l *Loop) Active() int {
	return int(l.active.Load())
}

// Ticks returns how many steps have run since the loop was created.
func (l *Loop) Ticks() uint64 {
	return l.ticks.Load()
}
