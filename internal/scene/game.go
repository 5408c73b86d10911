package scene

import (
	"fmt"
	"time"

	"github.com/vovakirdan/math-escape/internal/core"
	"github.com/vovakirdan/math-escape/internal/quiz"
	"github.com/vovakirdan/math-escape/internal/registry"
)

// Game is the gameplay screen. It owns one quiz.Session and hands the
// result to the end screen when the session finishes.
type Game struct {
	env     *Env
	session *quiz.Session
	elapsed time.Duration
	done    bool
}

// NewGame starts a fresh session in the configured mode.
// An unknown mode falls back to mixed.
func NewGame(env *Env) *Game {
	rules := env.Config.Gameplay
	source, err := registry.Create(rules.Mode)
	if err != nil {
		env.Log.Warn("unknown question mode, using mixed", "mode", rules.Mode)
		source = quiz.Mixed{}
	}

	s := quiz.NewSession(rules, source, env.nextSeed())
	env.Log.Debug("session started", "mode", s.Mode(), "limit", s.TimeLimit())
	return &Game{env: env, session: s}
}

func (g *Game) Name() string { return "game" }

// Session exposes the running session.
func (g *Game) Session() *quiz.Session {
	return g.session
}

func (g *Game) HandleEvent(ev core.Event) {
	if g.done {
		return
	}

	switch ev.Kind {
	case core.EventBack:
		g.done = true
		g.env.Host.SetScene(NewMenu(g.env))
		return
	case core.EventDigit:
		g.session.Type(ev.Rune)
	case core.EventBackspace:
		g.session.Backspace()
	case core.EventSubmit:
		if g.session.SubmitPending() == quiz.OutcomeCorrect {
			g.env.Log.Debug("correct", "level", g.session.Level(), "limit", g.session.TimeLimit())
		}
	case core.EventTick:
		g.session.Tick()
	case core.EventFlash:
		g.session.ToggleFlash()
	}

	if g.session.Finished() {
		g.finish()
	}
}

func (g *Game) finish() {
	g.done = true
	res := Result{
		Score:    g.session.Score(),
		Level:    g.session.Level(),
		Mode:     g.session.Mode(),
		Reason:   g.session.Reason(),
		Duration: g.elapsed,
	}
	g.env.Host.SetScene(NewEnd(g.env, res))
}

// Update accumulates wall time for the session history. The countdown
// itself runs on tick events only.
func (g *Game) Update(dt time.Duration) {
	if !g.done {
		g.elapsed += dt
	}
}

// layout returns the answer box and the player marker.
func (g *Game) layout() (InputBox, core.Rect) {
	cx, cy := g.env.center()
	box := InputBox{Rect: core.CenteredRect(cx, cy+1, inputW, inputH)}
	player := core.NewRect(6, cy-1, 5, 3)
	return box, player
}

func (g *Game) Draw(dst core.Surface) {
	s := g.session
	_, cy := g.env.center()
	w, _ := g.env.Host.Size()

	counter := fmt.Sprintf("Level: %d   Score: %d", s.Level(), s.Score())
	dst.DrawText(2, 1, counter, core.ColorWhite)

	timerColor := core.ColorWhite
	if s.Warning() {
		timerColor = core.ColorWarning
	}
	core.DrawTextRight(dst, w-2, 1, FormatRemaining(s.Remaining()), timerColor)

	box, player := g.layout()
	playerColor := core.ColorPlayer
	if s.Flash() {
		playerColor = core.ColorFlash
	}
	dst.FillRect(player, playerColor)

	core.DrawTextCentered(dst, cy-2, s.Question().Prompt, core.ColorWhite)
	box.Draw(dst, s.Input())
}

// FormatRemaining renders the timer readout with one decimal.
func FormatRemaining(d time.Duration) string {
	return fmt.Sprintf("Time left: %.1fs", d.Seconds())
}
