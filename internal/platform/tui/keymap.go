package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/crazy-hatman/internal/core"
)

// KeyMap defines the key bindings for the game screen.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Fire       key.Binding
	Confirm    key.Binding
	Cancel     key.Binding
	NewGame    key.Binding
	Continue   key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
	Screenshot key.Binding
	Help       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Fire, k.Confirm, k.Cancel, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Fire, k.Confirm, k.Cancel},
		{k.NewGame, k.Continue, k.Quit},
		{k.Screenshot, k.ForceQuit, k.Help},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space/click", "fire"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		NewGame: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new game"),
		),
		Continue: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "continue"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit (menu)"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "exit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

type direction int

const (
	dirUp direction = iota
	dirDown
	dirLeft
	dirRight
	dirCount
)

func (d direction) opposite() direction {
	switch d {
	case dirUp:
		return dirDown
	case dirDown:
		return dirUp
	case dirLeft:
		return dirRight
	default:
		return dirLeft
	}
}

// moveHold turns key presses into held movement. Terminals report presses
// and auto-repeats, never releases, so a direction stays held for a fixed
// number of ticks after its latest press.
type moveHold struct {
	ticks  int
	remain [dirCount]int
}

func newMoveHold(ticks int) moveHold {
	return moveHold{ticks: max(ticks, 1)}
}

// press holds d and releases the opposite direction.
func (h *moveHold) press(d direction) {
	h.remain[d] = h.ticks
	h.remain[d.opposite()] = 0
}

// intent returns the directions held for the current tick.
func (h *moveHold) intent() core.MoveIntent {
	return core.MoveIntent{
		Up:    h.remain[dirUp] > 0,
		Down:  h.remain[dirDown] > 0,
		Left:  h.remain[dirLeft] > 0,
		Right: h.remain[dirRight] > 0,
	}
}

// tick ages every held direction by one tick.
func (h *moveHold) tick() {
	for d := range h.remain {
		if h.remain[d] > 0 {
			h.remain[d]--
		}
	}
}

func (h *moveHold) release() {
	h.remain = [dirCount]int{}
}

// directionFor maps a key to a movement direction.
func (k KeyMap) directionFor(msg tea.KeyMsg) (direction, bool) {
	switch {
	case key.Matches(msg, k.Up):
		return dirUp, true
	case key.Matches(msg, k.Down):
		return dirDown, true
	case key.Matches(msg, k.Left):
		return dirLeft, true
	case key.Matches(msg, k.Right):
		return dirRight, true
	}
	return 0, false
}
