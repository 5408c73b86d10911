package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/math-escape/internal/core"
)

// KeyMap defines the terminal key bindings. Digits are not bound; any
// digit rune is typed into the answer box.
type KeyMap struct {
	Submit     key.Binding
	Back       key.Binding
	Backspace  key.Binding
	Copy       key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Back, k.Copy, k.Screenshot, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Backspace, k.Back},
		{k.Copy, k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "menu/quit"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "delete"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy result"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// Events translates a key message into scene events. A pasted run of
// digits becomes one event per digit; other keys map to at most one event.
// Quit and Screenshot are handled by the model and produce nothing here.
func (k KeyMap) Events(msg tea.KeyMsg) []core.Event {
	switch {
	case key.Matches(msg, k.Submit):
		return []core.Event{{Kind: core.EventSubmit}}
	case key.Matches(msg, k.Back):
		return []core.Event{{Kind: core.EventBack}}
	case key.Matches(msg, k.Backspace):
		return []core.Event{{Kind: core.EventBackspace}}
	case key.Matches(msg, k.Copy):
		return []core.Event{{Kind: core.EventCopy}}
	}

	if msg.Type != tea.KeyRunes {
		return nil
	}
	var out []core.Event
	for _, r := range msg.Runes {
		if ev := core.Digit(r); ev.Kind != core.EventNone {
			out = append(out, ev)
		}
	}
	return out
}

// MouseEvent translates a left button press into a click on the cell grid.
// Anything else maps to an EventNone event, which the queue drops.
func MouseEvent(msg tea.MouseMsg) core.Event {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return core.Event{}
	}
	return core.Click(msg.X, msg.Y)
}
