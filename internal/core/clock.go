package core

import "time"

// Pulse fires an event of Kind every Interval of clock time.
type Pulse struct {
	Kind     EventKind
	Interval time.Duration
	next     time.Duration
}

// Clock turns elapsed frame time into periodic pseudo-events.
// It does no scheduling of its own: the single-threaded loop measures the
// time since the previous frame and calls Advance, which returns every pulse
// that came due in between, ordered by due time.
type Clock struct {
	now    time.Duration
	pulses []*Pulse
}

// NewClock creates a clock with one pulse per kind/interval pair.
// Pulses with a non-positive interval never fire.
func NewClock(pulses ...Pulse) *Clock {
	c := &Clock{}
	for i := range pulses {
		p := pulses[i]
		p.next = p.Interval
		c.pulses = append(c.pulses, &p)
	}
	return c
}

// NewGameClock creates the standard clock with tick and flash pulses.
func NewGameClock(tick, flash time.Duration) *Clock {
	return NewClock(
		Pulse{Kind: EventTick, Interval: tick},
		Pulse{Kind: EventFlash, Interval: flash},
	)
}

// Now returns the total time advanced so far.
func (c *Clock) Now() time.Duration {
	return c.now
}

// Advance moves the clock forward by dt and returns the events that fell due.
// When two pulses are due at the same instant the one registered first wins.
func (c *Clock) Advance(dt time.Duration) []Event {
	if dt <= 0 {
		return nil
	}
	c.now += dt

	var out []Event
	for {
		due := c.earliestDue()
		if due == nil {
			return out
		}
		out = append(out, Event{Kind: due.Kind})
		due.next += due.Interval
	}
}

func (c *Clock) earliestDue() *Pulse {
	var best *Pulse
	for _, p := range c.pulses {
		if p.Interval <= 0 || p.next > c.now {
			continue
		}
		if best == nil || p.next < best.next {
			best = p
		}
	}
	return best
}

// Reset rewinds the clock to zero and re-arms all pulses.
func (c *Clock) Reset() {
	c.now = 0
	for _, p := range c.pulses {
		p.next = p.Interval
	}
}

// MaxFrameDelta caps the time credited to a single frame, so a stalled
// frontend does not dump a burst of ticks on the player.
const MaxFrameDelta = 250 * time.Millisecond

// FrameDelta returns the monotonic time between two frames, capped at
// MaxFrameDelta. The first frame (zero last) is credited nominal.
func FrameDelta(last, now time.Time, nominal time.Duration) time.Duration {
	if last.IsZero() {
		return nominal
	}
	dt := now.Sub(last)
	if dt < 0 {
		return 0
	}
	if dt > MaxFrameDelta {
		return MaxFrameDelta
	}
	return dt
}
