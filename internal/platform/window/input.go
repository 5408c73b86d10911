package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/math-escape/internal/core"
)

// keyEvents maps keys that act on their press edge to scene events.
var keyEvents = []struct {
	keys []ebiten.Key
	kind core.EventKind
}{
	{[]ebiten.Key{ebiten.KeyBackspace}, core.EventBackspace},
	{[]ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter}, core.EventSubmit},
	{[]ebiten.Key{ebiten.KeyEscape}, core.EventBack},
	{[]ebiten.Key{ebiten.KeyC}, core.EventCopy},
}

// pollInput collects this frame's input into q: typed digits first, then
// edge-triggered keys, then a left click.
func pollInput(q *core.Queue, chars []rune) []rune {
	chars = ebiten.AppendInputChars(chars[:0])
	q.Push(digitEvents(chars)...)

	for _, k := range keyEvents {
		for _, key := range k.keys {
			if inpututil.IsKeyJustPressed(key) {
				q.Push(core.Event{Kind: k.kind})
				break
			}
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := cellAt(ebiten.CursorPosition())
		q.Push(core.Click(x, y))
	}
	return chars
}

// digitEvents keeps the digits of the typed characters.
func digitEvents(chars []rune) []core.Event {
	var out []core.Event
	for _, r := range chars {
		if ev := core.Digit(r); ev.Kind != core.EventNone {
			out = append(out, ev)
		}
	}
	return out
}
