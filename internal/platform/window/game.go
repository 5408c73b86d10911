package window

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/math-escape/internal/core"
	"github.com/vovakirdan/math-escape/internal/scene"
)

// Game adapts a scene host to ebiten.Game. Update feeds input and clock
// signals to the host; Draw renders the current scene.
type Game struct {
	env    *scene.Env
	host   *scene.Host
	clock  *core.Clock
	queue  *core.Queue
	canvas *Canvas
	chars  []rune
	last   time.Time
	width  int
	height int
}

var _ ebiten.Game = (*Game)(nil)

// NewGame starts the menu on env. The logical grid is the configured window
// size divided into cells.
func NewGame(env *scene.Env) *Game {
	win := env.Config.Window
	env.Runtime.ScreenW = win.Width / CellW
	env.Runtime.ScreenH = win.Height / CellH
	if win.FPS > 0 {
		env.Runtime.TickRate = win.FPS
	}

	timing := env.Config.Timing
	return &Game{
		env:    env,
		host:   scene.Start(env),
		clock:  core.NewGameClock(timing.TickInterval, timing.FlashInterval),
		queue:  &core.Queue{},
		canvas: &Canvas{},
		width:  win.Width,
		height: win.Height,
	}
}

// Host returns the scene host driven by the game.
func (g *Game) Host() *scene.Host {
	return g.host
}

func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		g.queue.Push(core.Event{Kind: core.EventQuit})
	}
	g.chars = pollInput(g.queue, g.chars)
	return g.step(time.Now())
}

// step runs one host frame at now. Clock signals queue behind the input
// gathered for this frame.
func (g *Game) step(now time.Time) error {
	dt := core.FrameDelta(g.last, now, g.env.Runtime.FrameInterval())
	g.last = now

	g.queue.Push(g.clock.Advance(dt)...)
	g.host.Frame(g.queue.Drain(), dt, nil)

	if g.host.Quitting() {
		g.env.Log.Debug("window closed")
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	g.canvas.Bind(screen)
	g.host.Draw(g.canvas)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Run opens the window and blocks until the player quits.
func Run(env *scene.Env) error {
	g := NewGame(env)

	win := env.Config.Window
	ebiten.SetWindowTitle(win.Title)
	ebiten.SetWindowSize(win.Width, win.Height)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(env.Runtime.TickRate)

	env.Log.Info("window opened", "width", win.Width, "height", win.Height, "mode", env.Config.Gameplay.Mode)
	return ebiten.RunGame(g)
}
