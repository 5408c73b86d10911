package tui

import (
	"io"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/math-escape/internal/core"
)

func plainPalette() *Palette {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return NewPalette(r)
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawText(1, 0, "3 × 4 = ?", core.ColorWhite)
	s.FillRect(core.NewRect(0, 1, 4, 1), core.ColorButton)
	s.DrawText(6, 2, "warn", core.ColorWarning)

	got := plainPalette().RenderScreen(s)
	if got != s.String() {
		t.Errorf("RenderScreen without colors =\n%q\nwant\n%q", got, s.String())
	}
}

func TestPaletteCoversAllPairs(t *testing.T) {
	p := plainPalette()
	colors := []core.Color{
		core.ColorDefault, core.ColorWhite, core.ColorWarning, core.ColorButton,
		core.ColorBorder, core.ColorPlayer, core.ColorFlash, core.ColorMuted,
	}
	for _, fg := range colors {
		for _, bg := range colors {
			if _, ok := p.styles[colorPair{fg, bg}]; !ok {
				t.Errorf("no style for %v on %v", fg, bg)
			}
		}
	}
}
