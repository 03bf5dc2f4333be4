// Package tui is the Bubble Tea frontend. Bubble Tea owns the terminal and
// the timer; each tick message runs one controller step.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/term-snake/internal/game"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd schedules the next tick one TickInterval from now.
func tickCmd() tea.Cmd {
	return tea.Tick(game.TickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
