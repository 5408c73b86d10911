package scene

import (
	"fmt"
	"time"

	"github.com/vovakirdan/math-escape/internal/core"
	"github.com/vovakirdan/math-escape/internal/quiz"
	"github.com/vovakirdan/math-escape/internal/storage"
)

// Result is what a finished session hands to the end screen.
type Result struct {
	Score    int
	Level    int
	Mode     string
	Reason   quiz.Reason
	Duration time.Duration
}

// Line is a one-line summary suitable for sharing.
func (r Result) Line(best int) string {
	return fmt.Sprintf("Math Escape: scored %d (level %d, %s). Best: %d", r.Score, r.Level, r.Mode, best)
}

// End is the game over screen. Creating it commits the score: the best score
// is loaded once and saved only when beaten, and the session is appended to
// the history.
type End struct {
	env     *Env
	result  Result
	best    int
	newBest bool
	status  string
}

// NewEnd commits res and creates the game over screen.
func NewEnd(env *Env, res Result) *End {
	best, updated := storage.Commit(env.Scores, res.Score)
	if env.History != nil {
		env.History.Record(storage.SessionRecord{
			Mode:     res.Mode,
			Score:    res.Score,
			Level:    res.Level,
			Reason:   string(res.Reason),
			Duration: int(res.Duration / time.Second),
		})
	}
	env.Log.Info("game over", "score", res.Score, "level", res.Level, "mode", res.Mode,
		"reason", res.Reason, "best", best, "new_best", updated)

	return &End{env: env, result: res, best: best, newBest: updated}
}

func (e *End) Name() string { return "end" }

// Best returns the best score shown on this screen.
func (e *End) Best() int {
	return e.best
}

func (e *End) buttons() (restart, menu Button) {
	cx, cy := e.env.center()
	restart = Button{Label: "RESTART", Rect: core.CenteredRect(cx, cy+1, buttonW, buttonH)}
	menu = Button{Label: "MENU", Rect: core.CenteredRect(cx, cy+5, buttonW, buttonH)}
	return restart, menu
}

func (e *End) HandleEvent(ev core.Event) {
	restart, menu := e.buttons()
	switch {
	case ev.Kind == core.EventSubmit || restart.Hit(ev):
		e.env.Host.SetScene(NewGame(e.env))
	case ev.Kind == core.EventBack || menu.Hit(ev):
		e.env.Host.SetScene(NewMenu(e.env))
	case ev.Kind == core.EventCopy:
		e.copyResult()
	}
}

func (e *End) copyResult() {
	if e.env.Copy == nil {
		e.status = "Clipboard unavailable"
		return
	}
	if err := e.env.Copy(e.result.Line(e.best)); err != nil {
		e.env.Log.Debug("clipboard write failed", "err", err)
		e.status = "Clipboard unavailable"
		return
	}
	e.status = "Copied!"
}

func (e *End) Update(time.Duration) {}

func (e *End) Draw(dst core.Surface) {
	_, cy := e.env.center()

	core.DrawTextCentered(dst, cy-6, "GAME OVER", core.ColorWhite)
	core.DrawTextCentered(dst, cy-3, fmt.Sprintf("Your Score: %d", e.result.Score), core.ColorWhite)

	high := fmt.Sprintf("High Score: %d", e.best)
	if e.newBest {
		high += "  NEW!"
	}
	core.DrawTextCentered(dst, cy-1, high, core.ColorWhite)

	restart, menu := e.buttons()
	restart.Draw(dst)
	menu.Draw(dst)

	hint := "c: copy result"
	if e.status != "" {
		hint = e.status
	}
	core.DrawTextCentered(dst, menu.Rect.Bottom()+1, hint, core.ColorMuted)
}
