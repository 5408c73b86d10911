// Package tui runs the Math Escape scenes in a terminal with Bubble Tea,
// locally or over SSH. It maps keys and mouse clicks to scene events and
// turns the cell buffer into styled text.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent to trigger one frame of the scene loop.
type FrameMsg time.Time

// tickCmd returns a Bubble Tea command that sends frame messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
