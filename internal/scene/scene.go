// Package scene contains the three screens of Math Escape (menu, gameplay
// and game over) and the Host that routes input, updates and drawing to
// whichever one is current. Scenes draw on a core.Surface, so the same code
// runs in the window and in the terminal.
package scene

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/math-escape/internal/core"
)

// Scene is one screen of the game.
type Scene interface {
	// HandleEvent reacts to one discrete input: a key, a click, or a
	// tick/flash signal.
	HandleEvent(ev core.Event)

	// Update is called once per frame after all events.
	Update(dt time.Duration)

	// Draw renders the scene. The surface is cleared beforehand.
	Draw(dst core.Surface)
}

// Host owns the current scene and runs the per-frame protocol:
// events first, then one update, then one draw.
type Host struct {
	current  Scene
	width    int
	height   int
	quitting bool
	log      *log.Logger
}

// NewHost creates a host for a width×height cell grid with no scene.
func NewHost(width, height int, logger *log.Logger) *Host {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Host{width: width, height: height, log: logger}
}

// SetScene replaces the current scene. The previous scene is dropped.
func (h *Host) SetScene(s Scene) {
	h.log.Debug("scene change", "from", sceneName(h.current), "to", sceneName(s))
	h.current = s
}

// Current returns the active scene.
func (h *Host) Current() Scene {
	return h.current
}

// Size returns the grid the scenes lay themselves out on.
func (h *Host) Size() (int, int) {
	return h.width, h.height
}

// Resize changes the layout grid.
func (h *Host) Resize(width, height int) {
	h.width, h.height = width, height
}

// Quit asks the frontend to stop after this frame.
func (h *Host) Quit() {
	h.quitting = true
}

// Quitting reports whether Quit was called.
func (h *Host) Quitting() bool {
	return h.quitting
}

// Frame runs one frame. Each event goes to the scene that is current at the
// moment it is dispatched, so a scene switch mid-queue hands the remaining
// events to the new scene. The layout grid follows the surface size.
func (h *Host) Frame(events []core.Event, dt time.Duration, dst core.Surface) {
	if dst != nil {
		h.Resize(dst.Width(), dst.Height())
	}

	for _, ev := range events {
		if h.quitting {
			break
		}
		if ev.Kind == core.EventQuit {
			h.Quit()
			break
		}
		if h.current != nil {
			h.current.HandleEvent(ev)
		}
	}

	if h.current == nil {
		return
	}
	h.current.Update(dt)
	if dst != nil {
		h.current.Draw(dst)
	}
}

// Draw renders the current scene on its own. Frontends whose draw pass is
// separate from their update pass call Frame with a nil surface and then Draw.
func (h *Host) Draw(dst core.Surface) {
	if h.current == nil {
		return
	}
	h.Resize(dst.Width(), dst.Height())
	h.current.Draw(dst)
}

func sceneName(s Scene) string {
	if s == nil {
		return "none"
	}
	if n, ok := s.(interface{ Name() string }); ok {
		return n.Name()
	}
	return fmt.Sprintf("%T", s)
}
