package engine

import (
	"testing"
	"time"
)

func TestCellUpdateCommits(t *testing.T) {
	c := NewCell(1)

	got := c.Update(func(v int) int { return v + 41 })
	if got != 42 || c.Load() != 42 {
		t.Errorf("Update = %d, Load = %d, expected 42", got, c.Load())
	}
	if c.Version() != 1 {
		t.Errorf("Version = %d, expected 1", c.Version())
	}

	c.Store(7)
	if c.Load() != 7 || c.Version() != 2 {
		t.Errorf("after Store: value %d version %d", c.Load(), c.Version())
	}
}

func TestCellSubscribeReceivesCommits(t *testing.T) {
	c := NewCell("a")
	ch, cancel := c.Subscribe(4)
	defer cancel()

	c.Store("b")
	c.Store("c")

	if v := <-ch; v != "b" {
		t.Errorf("first = %q, expected b", v)
	}
	if v := <-ch; v != "c" {
		t.Errorf("second = %q, expected c", v)
	}
}

func TestCellSlowSubscriberKeepsNewest(t *testing.T) {
	c := NewCell(0)
	ch, cancel := c.Subscribe(1)
	defer cancel()

	for i := 1; i <= 10; i++ {
		c.Store(i)
	}

	if v := <-ch; v != 10 {
		t.Errorf("buffered snapshot = %d, expected newest (10)", v)
	}
}

func TestCellCancelClosesChannel(t *testing.T) {
	c := NewCell(0)
	ch, cancel := c.Subscribe(1)

	if c.Subscribers() != 1 {
		t.Fatalf("Subscribers = %d, expected 1", c.Subscribers())
	}

	cancel()
	cancel() // idempotent

	if _, ok := <-ch; ok {
		t.Error("channel should be closed after cancel")
	}
	if c.Subscribers() != 0 {
		t.Errorf("Subscribers = %d, expected 0", c.Subscribers())
	}

	c.Store(1) // must not panic on the closed channel
}

func TestWatchForwardsUntypedSnapshots(t *testing.T) {
	c := NewCell(0)
	ch, cancel := Watch(c, 4)

	c.Store(7)
	select {
	case v := <-ch:
		if v.(int) != 7 {
			t.Errorf("received %v, expected 7", v)
		}
	case <-time.After(time.Second):
		t.Fatal("no snapshot forwarded")
	}

	cancel()
	for range ch {
	}
	if c.Subscribers() != 0 {
		t.Errorf("Subscribers = %d after cancel", c.Subscribers())
	}
}
