package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/term-snake/internal/game"
)

// KeyMap defines the key bindings for play.
// Only the arrows steer; every other key is ignored.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Quit  key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "right"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// Direction maps a key message to a heading.
func (k KeyMap) Direction(msg tea.KeyMsg) (game.Direction, bool) {
	switch {
	case key.Matches(msg, k.Up):
		return game.Up, true
	case key.Matches(msg, k.Down):
		return game.Down, true
	case key.Matches(msg, k.Left):
		return game.Left, true
	case key.Matches(msg, k.Right):
		return game.Right, true
	}
	return 0, false
}

// keySlot holds the last arrow pressed since the previous tick. Earlier
// presses in the same tick are overwritten, so a held key steers at most once
// per tick and never queues, unlike the term and cell frontends which use
// queued keys one per tick.
// Bubble Tea delivers keys and ticks on the same goroutine, so no lock is needed.
type keySlot struct {
	dir game.Direction
	set bool
}

// Put replaces any unconsumed key.
func (s *keySlot) Put(d game.Direction) {
	s.dir = d
	s.set = true
}

// PollDirection consumes the stored key, or holds current.
func (s *keySlot) PollDirection(current game.Direction) game.Direction {
	if !s.set {
		return current
	}
	s.set = false
	return s.dir
}
