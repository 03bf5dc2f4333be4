package cell

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/term-snake/internal/game"
)

// maxPending caps the events queued between ticks; newer events are
// dropped once the queue is full.
const maxPending = 64

// pump forwards screen events to events until the screen is finalized.
func pump(screen tcell.Screen, events chan<- tcell.Event) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			close(events)
			return
		}
		select {
		case events <- ev:
		default: // Queue full
		}
	}
}

// Input maps queued tcell events to headings, one event per poll. Like the
// term reader, repeated arrows from a held key are used over later ticks.
type Input struct {
	events      <-chan tcell.Event
	onInterrupt func()
}

// NewInput creates an input source reading from events. onInterrupt is
// called when Ctrl+C is read; it may be nil.
func NewInput(events <-chan tcell.Event, onInterrupt func()) *Input {
	return &Input{events: events, onInterrupt: onInterrupt}
}

// PollDirection consumes at most one queued event without blocking.
func (in *Input) PollDirection(current game.Direction) game.Direction {
	select {
	case ev, ok := <-in.events:
		if !ok {
			return current
		}
		key, isKey := ev.(*tcell.EventKey)
		if !isKey {
			return current
		}
		return in.handleKey(key, current)
	default:
		return current
	}
}

func (in *Input) handleKey(ev *tcell.EventKey, current game.Direction) game.Direction {
	switch ev.Key() {
	case tcell.KeyUp:
		return game.Up
	case tcell.KeyDown:
		return game.Down
	case tcell.KeyLeft:
		return game.Left
	case tcell.KeyRight:
		return game.Right
	case tcell.KeyCtrlC:
		if in.onInterrupt != nil {
			in.onInterrupt()
		}
	}
	return current
}
