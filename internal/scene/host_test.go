package scene

import (
	"testing"
	"time"

	"github.com/vovakirdan/math-escape/internal/core"
)

// recorder logs every call and optionally switches scene on the first event.
type recorder struct {
	name    string
	host    *Host
	next    Scene
	events  []core.Event
	updates int
	draws   int
}

func (r *recorder) Name() string { return r.name }

func (r *recorder) HandleEvent(ev core.Event) {
	r.events = append(r.events, ev)
	if r.next != nil {
		r.host.SetScene(r.next)
		r.next = nil
	}
}

func (r *recorder) Update(time.Duration) { r.updates++ }

func (r *recorder) Draw(core.Surface) { r.draws++ }

func TestHostFrameOrder(t *testing.T) {
	h := NewHost(10, 5, nil)
	second := &recorder{name: "second"}
	first := &recorder{name: "first", host: h, next: second}
	h.SetScene(first)

	scr := core.NewScreen(20, 8)
	h.Frame([]core.Event{core.Digit('1'), core.Digit('2'), ev(core.EventTick)}, time.Millisecond, scr)

	if len(first.events) != 1 || first.events[0].Rune != '1' {
		t.Errorf("first scene events = %v", first.events)
	}
	if len(second.events) != 2 || second.events[0].Rune != '2' || second.events[1].Kind != core.EventTick {
		t.Errorf("second scene events = %v", second.events)
	}
	if first.updates != 0 || first.draws != 0 {
		t.Error("replaced scene was updated or drawn")
	}
	if second.updates != 1 || second.draws != 1 {
		t.Errorf("second scene updates/draws = %d/%d, want 1/1", second.updates, second.draws)
	}
	if w, hh := h.Size(); w != 20 || hh != 8 {
		t.Errorf("host size = %dx%d, want surface size 20x8", w, hh)
	}
}

func TestHostQuitEvent(t *testing.T) {
	h := NewHost(10, 5, nil)
	r := &recorder{name: "r"}
	h.SetScene(r)

	h.Frame([]core.Event{ev(core.EventQuit), core.Digit('1')}, time.Millisecond, nil)

	if !h.Quitting() {
		t.Error("quit event not honored")
	}
	if len(r.events) != 0 {
		t.Errorf("events delivered after quit: %v", r.events)
	}
}

func TestHostSplitUpdateDraw(t *testing.T) {
	h := NewHost(10, 5, nil)
	r := &recorder{name: "r"}
	h.SetScene(r)

	h.Frame([]core.Event{core.Digit('1')}, time.Millisecond, nil)
	if r.updates != 1 || r.draws != 0 {
		t.Fatalf("updates/draws after Frame = %d/%d, want 1/0", r.updates, r.draws)
	}

	h.Draw(core.NewScreen(30, 12))
	if r.draws != 1 {
		t.Errorf("draws = %d, want 1", r.draws)
	}
	if w, hh := h.Size(); w != 30 || hh != 12 {
		t.Errorf("host size = %dx%d, want 30x12", w, hh)
	}
}

func TestHostNoScene(t *testing.T) {
	h := NewHost(10, 5, nil)
	h.Frame([]core.Event{core.Digit('1')}, time.Millisecond, core.NewScreen(10, 5))
	if h.Current() != nil {
		t.Error("unexpected scene")
	}
}

func TestSeedSequence(t *testing.T) {
	env := &Env{Runtime: core.RuntimeConfig{Seed: 10}}
	if a, b := env.nextSeed(), env.nextSeed(); a != 10 || b != 11 {
		t.Errorf("seeds = %d, %d; want 10, 11", a, b)
	}
	env = &Env{}
	if env.nextSeed() != 0 {
		t.Error("zero runtime seed should stay time based")
	}
}
