package core

import (
	"testing"
	"time"
)

func countKind(evs []Event, k EventKind) int {
	n := 0
	for _, ev := range evs {
		if ev.Kind == k {
			n++
		}
	}
	return n
}

func TestClockFiresAtIntervals(t *testing.T) {
	c := NewGameClock(100*time.Millisecond, 700*time.Millisecond)

	if evs := c.Advance(99 * time.Millisecond); len(evs) != 0 {
		t.Fatalf("nothing should fire before 100ms, got %v", evs)
	}
	evs := c.Advance(1 * time.Millisecond)
	if len(evs) != 1 || evs[0].Kind != EventTick {
		t.Fatalf("expected one tick at 100ms, got %v", evs)
	}

	// Up to 1s: 10 ticks and 1 flash in total
	evs = c.Advance(900 * time.Millisecond)
	if got := countKind(evs, EventTick); got != 9 {
		t.Errorf("ticks = %d, expected 9", got)
	}
	if got := countKind(evs, EventFlash); got != 1 {
		t.Errorf("flashes = %d, expected 1", got)
	}
	if c.Now() != time.Second {
		t.Errorf("Now() = %v", c.Now())
	}
}

func TestClockOrdersByDueTime(t *testing.T) {
	c := NewGameClock(100*time.Millisecond, 250*time.Millisecond)
	evs := c.Advance(300 * time.Millisecond)

	// 100 tick, 200 tick, 250 flash, 300 tick
	want := []EventKind{EventTick, EventTick, EventFlash, EventTick}
	if len(evs) != len(want) {
		t.Fatalf("got %v", evs)
	}
	for i, k := range want {
		if evs[i].Kind != k {
			t.Errorf("event %d = %v, expected %v", i, evs[i].Kind, k)
		}
	}
}

func TestClockTieFavorsFirstPulse(t *testing.T) {
	c := NewGameClock(100*time.Millisecond, 100*time.Millisecond)
	evs := c.Advance(100 * time.Millisecond)
	if len(evs) != 2 || evs[0].Kind != EventTick || evs[1].Kind != EventFlash {
		t.Errorf("got %v", evs)
	}
}

func TestClockIgnoresNonPositive(t *testing.T) {
	c := NewGameClock(0, 700*time.Millisecond)
	if evs := c.Advance(-time.Second); evs != nil {
		t.Errorf("negative dt should be ignored, got %v", evs)
	}
	evs := c.Advance(time.Second)
	if countKind(evs, EventTick) != 0 || countKind(evs, EventFlash) != 1 {
		t.Errorf("disabled pulse fired: %v", evs)
	}
}

func TestClockReset(t *testing.T) {
	c := NewGameClock(100*time.Millisecond, 700*time.Millisecond)
	c.Advance(150 * time.Millisecond)
	c.Reset()
	if c.Now() != 0 {
		t.Errorf("Now() after reset = %v", c.Now())
	}
	if evs := c.Advance(99 * time.Millisecond); len(evs) != 0 {
		t.Errorf("pulses should be re-armed, got %v", evs)
	}
}

func TestFrameDelta(t *testing.T) {
	now := time.Now()
	nominal := time.Second / 60

	tests := []struct {
		name string
		last time.Time
		want time.Duration
	}{
		{"first frame", time.Time{}, nominal},
		{"normal", now.Add(-20 * time.Millisecond), 20 * time.Millisecond},
		{"stall capped", now.Add(-5 * time.Second), MaxFrameDelta},
		{"clock went back", now.Add(time.Second), 0},
	}
	for _, tt := range tests {
		if got := FrameDelta(tt.last, now, nominal); got != tt.want {
			t.Errorf("%s: FrameDelta = %v, want %v", tt.name, got, tt.want)
		}
	}
}
