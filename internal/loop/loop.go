// Package loop provides the game loop controller: it samples input, advances
// the simulation one step per tick, renders the frame and sleeps.
package loop

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/term-snake/internal/core"
	"github.com/vovakirdan/term-snake/internal/game"
)

// InputSource supplies the heading for the next tick.
// PollDirection must return immediately. With no pending directional key it
// returns current unchanged; errors are reported the same way.
type InputSource interface {
	PollDirection(current game.Direction) game.Direction
}

// Renderer draws a full frame: Clear, one Draw per cell, then Present.
// role tells a snake segment from the food, whatever the glyphs are.
type Renderer interface {
	Clear() error
	Draw(p game.Point, glyph string, role core.Color) error
	Present() error
}

// Sleeper blocks for d or until ctx is done.
type Sleeper func(ctx context.Context, d time.Duration) error

// Glyphs selects the strings drawn for the snake and the food.
type Glyphs struct {
	Snake string
	Food  string
}

// DefaultGlyphs returns the standard block and dot glyphs.
func DefaultGlyphs() Glyphs {
	return Glyphs{Snake: game.SnakeGlyph, Food: game.FoodGlyph}
}

// Controller owns the game state and runs the per-tick sequence.
type Controller struct {
	state    *game.State
	input    InputSource
	renderer Renderer
	glyphs   Glyphs
	sleep    Sleeper
	logger   *log.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithGlyphs overrides the default glyphs.
func WithGlyphs(g Glyphs) Option {
	return func(c *Controller) {
		if g.Snake != "" {
			c.glyphs.Snake = g.Snake
		}
		if g.Food != "" {
			c.glyphs.Food = g.Food
		}
	}
}

// WithSleeper replaces the tick sleep (used by tests).
func WithSleeper(s Sleeper) Option {
	return func(c *Controller) {
		c.sleep = s
	}
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		c.logger = l
	}
}

// New creates a controller. The controller takes exclusive ownership of state.
func New(state *game.State, input InputSource, renderer Renderer, opts ...Option) *Controller {
	c := &Controller{
		state:    state,
		input:    input,
		renderer: renderer,
		glyphs:   DefaultGlyphs(),
		sleep:    sleepContext,
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Step runs one tick without the trailing sleep: poll input, advance, and
// unless the wall was hit, render the frame. Render errors are fatal.
func (c *Controller) Step() (game.Outcome, error) {
	dir := c.input.PollDirection(c.state.Direction)

	out := c.state.Advance(dir)
	if out.Terminated {
		c.logger.Info("wall hit", "snapshot", c.state.Snapshot().String())
		return out, nil
	}
	if out.Ate {
		c.logger.Debug("food eaten", "len", c.state.Len(), "food", c.state.Food)
	}

	if err := c.Render(); err != nil {
		return out, err
	}
	return out, nil
}

// Render clears the frame and redraws every segment and the food.
func (c *Controller) Render() error {
	if err := c.renderer.Clear(); err != nil {
		return fmt.Errorf("loop: cannot clear frame: %w", err)
	}
	for _, seg := range c.state.Snake {
		if err := c.renderer.Draw(seg, c.glyphs.Snake, core.ColorSnake); err != nil {
			return fmt.Errorf("loop: cannot draw segment: %w", err)
		}
	}
	if err := c.renderer.Draw(c.state.Food, c.glyphs.Food, core.ColorFood); err != nil {
		return fmt.Errorf("loop: cannot draw food: %w", err)
	}
	if err := c.renderer.Present(); err != nil {
		return fmt.Errorf("loop: cannot present frame: %w", err)
	}
	return nil
}

// Run steps the game every TickInterval until the wall is hit, a render
// fails, or ctx is cancelled. A wall hit returns nil.
func (c *Controller) Run(ctx context.Context) error {
	c.logger.Debug("session started", "snapshot", c.state.Snapshot().String())

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		out, err := c.Step()
		if err != nil {
			return err
		}
		if out.Terminated {
			return nil
		}

		if err := c.sleep(ctx, game.TickInterval); err != nil {
			return err
		}
	}
}

// sleepContext is the default Sleeper.
func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
