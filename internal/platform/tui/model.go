package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/math-escape/internal/core"
	"github.com/vovakirdan/math-escape/internal/scene"
)

// Model is the Bubble Tea model that drives a scene host.
// The bottom terminal row is reserved for the help line.
type Model struct {
	env      *scene.Env
	host     *scene.Host
	screen   *core.Screen
	clock    *core.Clock
	queue    *core.Queue
	keys     KeyMap
	help     help.Model
	palette  *Palette
	last     time.Time
	quitting bool

	screenshotDir string
}

// NewModel starts the menu on env and wraps it in a Bubble Tea model.
// A nil palette uses the default renderer.
func NewModel(env *scene.Env, palette *Palette) Model {
	if palette == nil {
		palette = NewPalette(nil)
	}
	host := scene.Start(env)
	timing := env.Config.Timing

	h := help.New()
	h.ShowAll = false

	return Model{
		env:           env,
		host:          host,
		screen:        core.NewScreen(env.Runtime.ScreenW, env.Runtime.ScreenH),
		clock:         core.NewGameClock(timing.TickInterval, timing.FlashInterval),
		queue:         &core.Queue{},
		keys:          DefaultKeyMap(),
		help:          h,
		palette:       palette,
		screenshotDir: defaultScreenshotDir(),
	}
}

// Host returns the scene host driven by this model.
func (m Model) Host() *scene.Host {
	return m.host
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.env.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.queue.Push(MouseEvent(msg))
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.env.Log.Warn("screenshot failed", "err", err)
		} else {
			m.env.Log.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	m.queue.Push(m.keys.Events(msg)...)
	return m, nil
}

// handleResize keeps the scene grid one row shorter than the terminal.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	h := msg.Height - 1
	if h < 1 {
		h = 1
	}
	m.screen.Resize(msg.Width, h)
	m.help.Width = msg.Width
	return m, nil
}

// handleFrame credits the elapsed time to the clock, appends the due
// tick/flash signals behind the queued input and runs one host frame.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	dt := core.FrameDelta(m.last, now, m.env.Runtime.FrameInterval())
	m.last = now

	m.queue.Push(m.clock.Advance(dt)...)
	m.screen.Clear()
	m.host.Frame(m.queue.Drain(), dt, m.screen)

	if m.host.Quitting() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.env.Runtime.TickRate)
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() (string, error) {
	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create %s: %w", m.screenshotDir, err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.screenshotDir, fmt.Sprintf("mathescape_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

func defaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "screenshots"
	}
	return filepath.Join(home, ".mathescape", "screenshots")
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.palette.RenderScreen(m.screen) + "\n" + m.palette.help.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program on the local terminal.
func Run(env *scene.Env) error {
	model := NewModel(env, nil)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks on buttons
	)

	_, err := p.Run()
	return err
}
