// Package term is the default frontend: it drives the game directly on the
// controlling terminal using raw mode and ANSI escape sequences.
package term

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"golang.org/x/term"
)

// ANSI control sequences.
const (
	seqClear      = "\033[2J"
	seqHideCursor = "\033[?25l"
	seqShowCursor = "\033[?25h"
)

// ErrNotTerminal is returned when the input is not an interactive terminal.
var ErrNotTerminal = errors.New("term: input is not a terminal")

// Session holds the terminal in raw mode with the cursor hidden.
// Close restores cooked mode and shows the cursor; it is safe to call more
// than once and must be deferred right after Open succeeds.
type Session struct {
	fd       int
	oldState *term.State
	out      io.Writer

	once     sync.Once
	closeErr error
}

// Open switches the terminal behind fd to raw mode, hides the cursor and
// clears the screen.
func Open(fd int, out io.Writer) (*Session, error) {
	if !term.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("term: cannot enable raw mode: %w", err)
	}

	s := &Session{fd: fd, oldState: oldState, out: out}

	if _, err := io.WriteString(out, seqClear+seqHideCursor); err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("term: cannot prepare screen: %w", err)
	}

	return s, nil
}

// Close shows the cursor and restores the saved terminal mode.
func (s *Session) Close() error {
	s.once.Do(func() {
		_, showErr := io.WriteString(s.out, seqShowCursor)
		restoreErr := term.Restore(s.fd, s.oldState)

		switch {
		case restoreErr != nil:
			s.closeErr = fmt.Errorf("term: cannot disable raw mode: %w", restoreErr)
		case showErr != nil:
			s.closeErr = fmt.Errorf("term: cannot show cursor: %w", showErr)
		}
	})
	return s.closeErr
}
