// Package cell is the tcell frontend. tcell owns the terminal mode and
// the cell buffer; the loop controller drives the timing.
package cell

import (
	"context"
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/term-snake/internal/loop"
	"github.com/vovakirdan/term-snake/internal/registry"
)

// Name is the registry identifier of this frontend.
const Name = "cell"

func init() {
	registry.Register(Name, func() registry.Frontend {
		return Frontend{NewScreen: tcell.NewScreen}
	})
}

// Frontend plays on a tcell screen.
type Frontend struct {
	NewScreen func() (tcell.Screen, error)
}

// Name returns the frontend identifier.
func (Frontend) Name() string { return Name }

// Description returns a one-line summary.
func (Frontend) Description() string {
	return "tcell screen with terminfo drawing"
}

// Run plays one session. Fini restores the terminal on every return path
// once Init has succeeded.
func (f Frontend) Run(ctx context.Context, opts registry.Options) error {
	newScreen := f.NewScreen
	if newScreen == nil {
		newScreen = tcell.NewScreen
	}

	screen, err := newScreen()
	if err != nil {
		return fmt.Errorf("cell: cannot create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("cell: cannot init screen: %w", err)
	}
	defer screen.Fini()

	screen.HideCursor()
	screen.Clear()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, maxPending)
	go pump(screen, events)

	ctrl := loop.New(
		opts.NewState(),
		NewInput(events, cancel),
		NewRenderer(screen, opts.Display),
		opts.LoopOptions()...,
	)

	err = ctrl.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil // Interrupted by the user or a signal
	}
	return err
}
