package scene

import (
	"github.com/vovakirdan/math-escape/internal/core"
)

// Button is a labelled rectangle activated by a left click inside it.
type Button struct {
	Label string
	Rect  core.Rect
}

// Hit reports whether ev is a click inside the button.
func (b Button) Hit(ev core.Event) bool {
	return ev.Kind == core.EventClick && b.Rect.Contains(ev.X, ev.Y)
}

func (b Button) Draw(dst core.Surface) {
	core.DrawLabel(dst, b.Rect, b.Label, core.ColorButton, core.ColorBorder, core.ColorWhite)
}

// InputBox draws the pending answer. The text is left aligned with a cursor;
// when it does not fit, only its tail is shown.
type InputBox struct {
	Rect core.Rect
}

func (in InputBox) Draw(dst core.Surface, text string) {
	dst.FillRect(in.Rect, core.ColorButton)
	dst.DrawBox(in.Rect, core.ColorBorder)

	room := in.Rect.W - 3 // borders and cursor
	if room < 0 {
		room = 0
	}
	runes := []rune(text)
	if len(runes) > room {
		runes = runes[len(runes)-room:]
	}
	_, cy := in.Rect.Center()
	dst.DrawText(in.Rect.X+1, cy, string(runes)+"_", core.ColorWhite)
}

// Button and input box sizes in cells.
const (
	buttonW = 24
	buttonH = 3
	inputW  = 16
	inputH  = 3
)
