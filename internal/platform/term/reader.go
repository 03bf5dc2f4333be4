package term

import (
	"io"

	"github.com/vovakirdan/term-snake/internal/game"
)

// maxPending caps buffered, not yet consumed input. Bytes beyond it are dropped.
const maxPending = 64

// Key codes recognised by the reader.
const (
	keyCtrlC  = 0x03
	keyEscape = 0x1b
)

// Reader delivers raw key bytes from the terminal without blocking the game
// loop. A background goroutine performs the blocking reads; PollDirection
// only ever does non-blocking receives.
//
// Keys queue up to maxPending bytes and are used one per tick, so a held
// arrow keeps steering for as many ticks as the terminal repeated it. The
// tui frontend instead keeps only the latest key.
type Reader struct {
	ch          chan []byte
	pending     []byte
	closed      bool
	escWaited   bool // a partial escape sequence was held back once
	onInterrupt func()
}

// NewReader starts reading from r. onInterrupt, if non-nil, is called when
// Ctrl+C arrives, since raw mode stops the terminal from raising SIGINT.
func NewReader(r io.Reader, onInterrupt func()) *Reader {
	rd := &Reader{
		ch:          make(chan []byte, 16),
		onInterrupt: onInterrupt,
	}
	go rd.readLoop(r)
	return rd
}

// readLoop forwards each read as one chunk so escape sequences stay whole.
func (rd *Reader) readLoop(r io.Reader) {
	defer close(rd.ch)

	buf := make([]byte, 256)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			rd.ch <- chunk
		}
		if err != nil {
			return
		}
	}
}

// PollDirection consumes at most one key event. Arrow keys map to a
// direction; anything else, including no input or a dead stream, keeps
// current.
func (rd *Reader) PollDirection(current game.Direction) game.Direction {
	rd.fill()
	if len(rd.pending) == 0 {
		return current
	}

	// The rest of a split escape sequence may still be in flight
	if !rd.closed && !rd.escWaited && partialEscape(rd.pending) {
		rd.escWaited = true
		return current
	}
	rd.escWaited = false

	b := rd.pending[0]
	rd.pending = rd.pending[1:]

	switch b {
	case keyCtrlC:
		if rd.onInterrupt != nil {
			rd.onInterrupt()
		}
		return current
	case keyEscape:
		if dir, ok := rd.parseEscape(); ok {
			return dir
		}
	}
	return current
}

// parseEscape consumes the rest of an escape sequence after ESC.
// Handles CSI (ESC [ ... final) and SS3 (ESC O final) arrows, including
// modifier forms such as ESC [ 1 ; 5 A.
func (rd *Reader) parseEscape() (game.Direction, bool) {
	if len(rd.pending) == 0 {
		return 0, false // Lone Escape key
	}

	intro := rd.pending[0]
	if intro != '[' && intro != 'O' {
		return 0, false // Alt+key, leave the key itself for the next poll
	}
	rd.pending = rd.pending[1:]

	// Skip parameter bytes up to the final byte (0x40-0x7e)
	for len(rd.pending) > 0 {
		c := rd.pending[0]
		rd.pending = rd.pending[1:]
		if c >= 0x40 && c <= 0x7e {
			return arrowDirection(c)
		}
	}
	return 0, false
}

// partialEscape reports whether p starts with an escape sequence that
// has no final byte yet.
func partialEscape(p []byte) bool {
	if len(p) == 0 || p[0] != keyEscape {
		return false
	}
	if len(p) == 1 {
		return true
	}
	if p[1] != '[' && p[1] != 'O' {
		return false
	}
	for _, c := range p[2:] {
		if c >= 0x40 && c <= 0x7e {
			return false
		}
	}
	return true
}

// arrowDirection maps a CSI/SS3 final byte to a direction.
func arrowDirection(final byte) (game.Direction, bool) {
	switch final {
	case 'A':
		return game.Up, true
	case 'B':
		return game.Down, true
	case 'C':
		return game.Right, true
	case 'D':
		return game.Left, true
	}
	return 0, false
}

// fill moves every chunk already delivered into pending, without waiting.
func (rd *Reader) fill() {
	for !rd.closed {
		select {
		case chunk, ok := <-rd.ch:
			if !ok {
				rd.closed = true
				return
			}
			room := maxPending - len(rd.pending)
			if room <= 0 {
				continue
			}
			if len(chunk) > room {
				chunk = chunk[:room]
			}
			rd.pending = append(rd.pending, chunk...)
		default:
			return
		}
	}
}
