package term

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/muesli/cancelreader"

	"github.com/vovakirdan/term-snake/internal/loop"
	"github.com/vovakirdan/term-snake/internal/registry"
)

// Name is the registry identifier of this frontend.
const Name = "term"

func init() {
	registry.Register(Name, func() registry.Frontend {
		return Frontend{In: os.Stdin, Out: os.Stdout}
	})
}

// Frontend plays on a raw terminal.
type Frontend struct {
	In  *os.File
	Out *os.File
}

// Name returns the frontend identifier.
func (Frontend) Name() string { return Name }

// Description returns a one-line summary.
func (Frontend) Description() string {
	return "Raw terminal with ANSI drawing (default)"
}

// Run plays one session. The terminal is restored on every return path;
// a restore failure is reported if nothing else failed first.
func (f Frontend) Run(ctx context.Context, opts registry.Options) (err error) {
	sess, err := Open(int(f.In.Fd()), f.Out)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := sess.Close(); err == nil {
			err = closeErr
		}
	}()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	in, err := cancelreader.NewReader(f.In)
	if err != nil {
		return fmt.Errorf("term: cannot read input: %w", err)
	}
	defer in.Close()
	defer in.Cancel()

	ctrl := loop.New(
		opts.NewState(),
		NewReader(in, cancel),
		NewRenderer(f.Out, opts.Display),
		opts.LoopOptions()...,
	)

	err = ctrl.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil // Interrupted by the user or a signal
	}
	return err
}
