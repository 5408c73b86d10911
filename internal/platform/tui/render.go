package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/math-escape/internal/core"
)

// Terminal colors for the logical palette. ColorDefault leaves the
// terminal's own colors in place.
var (
	foregrounds = map[core.Color]lipgloss.TerminalColor{
		core.ColorWhite:   lipgloss.Color("15"),
		core.ColorWarning: lipgloss.Color("#DC5050"),
		core.ColorButton:  lipgloss.Color("#282828"),
		core.ColorBorder:  lipgloss.Color("#C8C8C8"),
		core.ColorPlayer:  lipgloss.Color("#00C8FF"),
		core.ColorFlash:   lipgloss.Color("15"),
		core.ColorMuted:   lipgloss.Color("245"),
	}
	backgrounds = map[core.Color]lipgloss.TerminalColor{
		core.ColorWhite:   lipgloss.Color("15"),
		core.ColorWarning: lipgloss.Color("#DC5050"),
		core.ColorButton:  lipgloss.Color("#282828"),
		core.ColorBorder:  lipgloss.Color("#C8C8C8"),
		core.ColorPlayer:  lipgloss.Color("#00C8FF"),
		core.ColorFlash:   lipgloss.Color("15"),
		core.ColorMuted:   lipgloss.Color("240"),
	}
)

type colorPair struct {
	fg, bg core.Color
}

// Palette holds one lipgloss style per foreground/background pair, bound to
// a renderer. SSH sessions each get their own renderer so color support is
// detected per client.
type Palette struct {
	styles map[colorPair]lipgloss.Style
	plain  lipgloss.Style
	help   lipgloss.Style
}

// NewPalette builds the styles for r. A nil renderer uses the default one.
func NewPalette(r *lipgloss.Renderer) *Palette {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	p := &Palette{
		styles: make(map[colorPair]lipgloss.Style),
		plain:  r.NewStyle(),
		help:   r.NewStyle().Foreground(lipgloss.Color("241")),
	}
	colors := []core.Color{core.ColorDefault}
	for c := range foregrounds {
		colors = append(colors, c)
	}
	for _, fg := range colors {
		for _, bg := range colors {
			s := r.NewStyle()
			if c, ok := foregrounds[fg]; ok {
				s = s.Foreground(c)
			}
			if c, ok := backgrounds[bg]; ok {
				s = s.Background(c)
			}
			p.styles[colorPair{fg, bg}] = s
		}
	}
	return p
}

func (p *Palette) style(fg, bg core.Color) lipgloss.Style {
	if s, ok := p.styles[colorPair{fg, bg}]; ok {
		return s
	}
	return p.plain
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func (p *Palette) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			// Collect consecutive cells with the same colors
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.FG != start.FG || cell.BG != start.BG {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(p.style(start.FG, start.BG).Render(run.String()))
		}
	}
	return sb.String()
}
