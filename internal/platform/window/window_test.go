package window

import (
	"errors"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/math-escape/internal/config"
	"github.com/vovakirdan/math-escape/internal/core"
	"github.com/vovakirdan/math-escape/internal/scene"
	"github.com/vovakirdan/math-escape/internal/storage"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	env := &scene.Env{
		Config:  config.DefaultConfig(),
		Runtime: core.RuntimeConfig{Seed: 7},
		Scores:  storage.NewMemoryGateway(0),
	}
	return NewGame(env)
}

func TestNewGameGrid(t *testing.T) {
	g := newTestGame(t)
	w, h := g.Host().Size()
	if w != 90 || h != 25 {
		t.Errorf("grid = %dx%d, want 90x25", w, h)
	}
	if lw, lh := g.Layout(1920, 1080); lw != 900 || lh != 500 {
		t.Errorf("Layout = %dx%d, want 900x500", lw, lh)
	}
	if g.env.Runtime.TickRate != 60 {
		t.Errorf("TickRate = %d, want 60", g.env.Runtime.TickRate)
	}
}

func TestStepStartsGame(t *testing.T) {
	g := newTestGame(t)
	now := time.Now()

	g.queue.Push(core.Event{Kind: core.EventSubmit})
	if err := g.step(now); err != nil {
		t.Fatalf("step: %v", err)
	}
	if _, ok := g.Host().Current().(*scene.Game); !ok {
		t.Fatalf("current scene = %T, want *scene.Game", g.Host().Current())
	}
}

func TestStepClockTicks(t *testing.T) {
	g := newTestGame(t)
	now := time.Now()

	g.queue.Push(core.Event{Kind: core.EventSubmit})
	_ = g.step(now)
	game := g.Host().Current().(*scene.Game)
	before := game.Session().Remaining()

	// 200ms is under the frame cap, so two ticks are due.
	_ = g.step(now.Add(200 * time.Millisecond))
	if got, want := game.Session().Remaining(), before-200*time.Millisecond; got != want {
		t.Errorf("remaining = %v, want %v", got, want)
	}
}

func TestStepEscapeTerminates(t *testing.T) {
	g := newTestGame(t)

	g.queue.Push(core.Event{Kind: core.EventBack})
	err := g.step(time.Now())
	if !errors.Is(err, ebiten.Termination) {
		t.Fatalf("step = %v, want ebiten.Termination", err)
	}
}

func TestDigitEvents(t *testing.T) {
	evs := digitEvents([]rune("4a2 ×9"))
	want := "429"
	if len(evs) != len(want) {
		t.Fatalf("got %d events, want %d", len(evs), len(want))
	}
	for i, r := range want {
		if evs[i].Kind != core.EventDigit || evs[i].Rune != r {
			t.Errorf("event %d = %v, want Digit(%c)", i, evs[i], r)
		}
	}
}

func TestCellAt(t *testing.T) {
	tests := []struct {
		px, py int
		x, y   int
	}{
		{0, 0, 0, 0},
		{9, 19, 0, 0},
		{10, 20, 1, 1},
		{455, 250, 45, 12},
		{-1, -1, -1, -1},
	}
	for _, tt := range tests {
		x, y := cellAt(tt.px, tt.py)
		if x != tt.x || y != tt.y {
			t.Errorf("cellAt(%d, %d) = (%d, %d), want (%d, %d)", tt.px, tt.py, x, y, tt.x, tt.y)
		}
	}
}

func TestPixels(t *testing.T) {
	x, y, w, h := pixels(core.NewRect(6, 11, 5, 3))
	if x != 60 || y != 220 || w != 50 || h != 60 {
		t.Errorf("pixels = (%v, %v, %v, %v), want (60, 220, 50, 60)", x, y, w, h)
	}
}

func TestGlyph(t *testing.T) {
	tests := []struct {
		in, want rune
	}{
		{'7', '7'},
		{'×', 'x'},
		{'÷', '/'},
		{'é', '?'},
		{'=', '='},
	}
	for _, tt := range tests {
		if got := glyph(tt.in); got != tt.want {
			t.Errorf("glyph(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPaletteCoversColors(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorMuted; c++ {
		if _, ok := palette[c]; !ok {
			t.Errorf("no RGBA for %s", c)
		}
	}
}
