package quiz

import "time"

// Timer counts down the active round. It schedules nothing itself: every
// tick signal removes one quantum. Remaining never goes below zero and the
// timer only restarts when Reset is called.
type Timer struct {
	remaining time.Duration
	quantum   time.Duration
}

// NewTimer creates a timer with limit remaining.
func NewTimer(limit, quantum time.Duration) *Timer {
	return &Timer{remaining: limit, quantum: quantum}
}

// Tick removes one quantum.
func (t *Timer) Tick() {
	t.remaining -= t.quantum
	if t.remaining < 0 {
		t.remaining = 0
	}
}

// Expired reports whether the time budget is used up.
func (t *Timer) Expired() bool {
	return t.remaining <= 0
}

// Remaining returns the time left.
func (t *Timer) Remaining() time.Duration {
	return t.remaining
}

// Reset restarts the countdown from limit.
func (t *Timer) Reset(limit time.Duration) {
	t.remaining = limit
}
