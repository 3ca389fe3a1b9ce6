// Package tui hosts the hatman engine in a Bubble Tea program, locally or
// over SSH. It owns the fixed-rate tick loop and translates terminal key
// and mouse events into the engine's abstract input.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends one tick message after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
