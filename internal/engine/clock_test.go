package engine

import (
	"testing"
	"time"
)

func TestManualClockAfter(t *testing.T) {
	c := NewManualClock(time.Unix(0, 0))
	ch := c.After(100 * time.Millisecond)

	c.Advance(99 * time.Millisecond)
	select {
	case <-ch:
		t.Fatal("fired too early")
	default:
	}

	c.Advance(time.Millisecond)
	select {
	case <-ch:
	default:
		t.Fatal("should fire once the deadline is reached")
	}
}

func TestManualClockAfterFuncOrder(t *testing.T) {
	c := NewManualClock(time.Unix(0, 0))

	var order []string
	c.AfterFunc(300*time.Millisecond, func() { order = append(order, "late") })
	c.AfterFunc(100*time.Millisecond, func() { order = append(order, "early") })
	stopped := c.AfterFunc(200*time.Millisecond, func() { order = append(order, "stopped") })

	if !stopped.Stop() {
		t.Error("Stop on a pending timer should return true")
	}
	if stopped.Stop() {
		t.Error("second Stop should return false")
	}

	c.Advance(time.Second)

	if len(order) != 2 || order[0] != "early" || order[1] != "late" {
		t.Errorf("order = %v, expected [early late]", order)
	}
	if c.Waiters() != 0 {
		t.Errorf("Waiters = %d, expected 0", c.Waiters())
	}
}

func TestManualClockChainedCallbacks(t *testing.T) {
	c := NewManualClock(time.Unix(0, 0))

	fired := 0
	c.AfterFunc(10*time.Millisecond, func() {
		fired++
		c.AfterFunc(10*time.Millisecond, func() { fired++ })
	})

	// The chained callback is due at 20ms; both fall inside the window.
	c.Advance(20 * time.Millisecond)
	if fired != 2 {
		t.Errorf("fired = %d, expected 2", fired)
	}
}

func TestManualClockCallbackSeesItsDeadline(t *testing.T) {
	start := time.Unix(0, 0)
	c := NewManualClock(start)

	var seen time.Time
	fired := 0
	c.AfterFunc(10*time.Millisecond, func() {
		seen = c.Now()
		c.AfterFunc(15*time.Millisecond, func() { fired++ })
	})

	c.Advance(20 * time.Millisecond)
	if want := start.Add(10 * time.Millisecond); !seen.Equal(want) {
		t.Errorf("Now() inside callback = %v, expected %v", seen, want)
	}
	if fired != 0 {
		t.Fatalf("chained callback due at 25ms fired early")
	}
	if got := c.Now(); !got.Equal(start.Add(20 * time.Millisecond)) {
		t.Errorf("Now() after Advance = %v, expected 20ms", got)
	}

	c.Advance(5 * time.Millisecond)
	if fired != 1 {
		t.Errorf("fired = %d, expected 1 at 25ms", fired)
	}
}
