package scene

import (
	"time"

	"github.com/vovakirdan/math-escape/internal/core"
)

// Menu is the title screen with START GAME and QUIT.
// Enter starts a game; Escape quits.
type Menu struct {
	env *Env
}

// NewMenu creates the title screen.
func NewMenu(env *Env) *Menu {
	return &Menu{env: env}
}

func (m *Menu) Name() string { return "menu" }

func (m *Menu) buttons() (start, quit Button) {
	cx, cy := m.env.center()
	start = Button{Label: "START GAME", Rect: core.CenteredRect(cx, cy-1, buttonW, buttonH)}
	quit = Button{Label: "QUIT", Rect: core.CenteredRect(cx, cy+3, buttonW, buttonH)}
	return start, quit
}

func (m *Menu) HandleEvent(ev core.Event) {
	start, quit := m.buttons()
	switch {
	case ev.Kind == core.EventSubmit || start.Hit(ev):
		m.env.Host.SetScene(NewGame(m.env))
	case ev.Kind == core.EventBack || quit.Hit(ev):
		m.env.Host.Quit()
	}
}

func (m *Menu) Update(time.Duration) {}

func (m *Menu) Draw(dst core.Surface) {
	_, cy := m.env.center()
	core.DrawTextCentered(dst, cy-6, m.env.Config.Window.Title, core.ColorWhite)

	mode := "Mode: " + m.env.Config.Gameplay.Mode
	core.DrawTextCentered(dst, cy-4, mode, core.ColorMuted)

	start, quit := m.buttons()
	start.Draw(dst)
	quit.Draw(dst)
}
