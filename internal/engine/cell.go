package engine

import "sync"

// Cell holds the current immutable snapshot of a game. Writers go through
// Store or Update, which are serialised; readers only ever see committed
// values. Values stored in a Cell must not be mutated afterwards.
type Cell[T any] struct {
	mu      sync.RWMutex
	value   T
	version uint64

	subs    map[uint64]chan T
	nextSub uint64
}

// NewCell creates a cell holding initial.
func NewCell[T any](initial T) *Cell[T] {
	return &Cell[T]{
		value: initial,
		subs:  make(map[uint64]chan T),
	}
}

// Load returns the latest committed snapshot.
func (c *Cell[T]) Load() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

// Version counts commits since creation.
func (c *Cell[T]) Version() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.version
}

// Store replaces the snapshot wholesale.
func (c *Cell[T]) Store(v T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.commitLocked(v)
}

// Update commits fn(current) and returns it. fn runs under the write lock
// and must not touch the cell.
func (c *Cell[T]) Update(fn func(T) T) T {
	c.mu.Lock()
	defer c.mu.Unlock()
	next := fn(c.value)
	c.commitLocked(next)
	return next
}

func (c *Cell[T]) commitLocked(v T) {
	c.value = v
	c.version++
	for _, ch := range c.subs {
		offer(ch, v)
	}
}

// offer delivers v without blocking; when the buffer is full the oldest
// pending snapshot is dropped.
func offer[T any](ch chan T, v T) {
	select {
	case ch <- v:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- v:
	default:
	}
}

// Subscribe returns a channel of committed snapshots and a cancel func that
// closes it. The channel buffers at most buf snapshots (minimum 1).
func (c *Cell[T]) Subscribe(buf int) (<-chan T, func()) {
	if buf < 1 {
		buf = 1
	}
	ch := make(chan T, buf)

	c.mu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = ch
	c.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.subs, id)
			c.mu.Unlock()
			close(ch)
		})
	}
}

// Subscribers returns the number of live subscriptions.
func (c *Cell[T]) Subscribers() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.subs)
}

// Watch adapts a subscription on c to a channel of untyped snapshots for
// observers that only serialise them. Cancelling closes the returned channel.
func Watch[T any](c *Cell[T], buf int) (<-chan any, func()) {
	sub, cancel := c.Subscribe(buf)
	out := make(chan any, cap(sub))
	go func() {
		defer close(out)
		for v := range sub {
			offer(out, any(v))
		}
	}()
	return out, cancel
}
