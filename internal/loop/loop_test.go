package loop

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/term-snake/internal/core"
	"github.com/vovakirdan/term-snake/internal/game"
)

// scriptedInput returns queued directions, then holds the current heading.
type scriptedInput struct {
	queue []game.Direction
	polls int
}

func (s *scriptedInput) PollDirection(current game.Direction) game.Direction {
	s.polls++
	if len(s.queue) == 0 {
		return current
	}
	d := s.queue[0]
	s.queue = s.queue[1:]
	return d
}

type drawCall struct {
	p     game.Point
	glyph string
	role  core.Color
}

// recordingRenderer keeps the calls of the most recent frame.
type recordingRenderer struct {
	frames   int
	clears   int
	draws    []drawCall
	failDraw error
}

func (r *recordingRenderer) Clear() error {
	r.clears++
	r.draws = nil
	return nil
}

func (r *recordingRenderer) Draw(p game.Point, glyph string, role core.Color) error {
	if r.failDraw != nil {
		return r.failDraw
	}
	r.draws = append(r.draws, drawCall{p: p, glyph: glyph, role: role})
	return nil
}

func (r *recordingRenderer) Present() error {
	r.frames++
	return nil
}

func noSleep(sleeps *int) Sleeper {
	return func(ctx context.Context, d time.Duration) error {
		if d != game.TickInterval {
			return errors.New("unexpected sleep duration")
		}
		*sleeps++
		return ctx.Err()
	}
}

func newState(seed int64) *game.State {
	return game.NewState(rand.New(rand.NewSource(seed)))
}

func TestStepRendersFrame(t *testing.T) {
	state := newState(1)
	r := &recordingRenderer{}
	c := New(state, &scriptedInput{}, r)

	out, err := c.Step()
	if err != nil {
		t.Fatalf("Step() failed: %v", err)
	}
	if !out.Moved {
		t.Fatal("Step() should move the snake")
	}

	if r.clears != 1 || r.frames != 1 {
		t.Errorf("clears=%d frames=%d, expected 1 and 1", r.clears, r.frames)
	}

	expected := []drawCall{
		{game.Point{X: 11, Y: 10}, game.SnakeGlyph, core.ColorSnake},
		{game.Point{X: 10, Y: 10}, game.SnakeGlyph, core.ColorSnake},
		{game.Point{X: 15, Y: 10}, game.FoodGlyph, core.ColorFood},
	}
	if len(r.draws) != len(expected) {
		t.Fatalf("draws = %v, expected %v", r.draws, expected)
	}
	for i := range expected {
		if r.draws[i] != expected[i] {
			t.Errorf("draw %d = %v, expected %v", i, r.draws[i], expected[i])
		}
	}
}

func TestStepCustomGlyphs(t *testing.T) {
	r := &recordingRenderer{}
	c := New(newState(1), &scriptedInput{}, r, WithGlyphs(Glyphs{Snake: "#", Food: ""}))

	if _, err := c.Step(); err != nil {
		t.Fatalf("Step() failed: %v", err)
	}
	if r.draws[0].glyph != "#" {
		t.Errorf("snake glyph = %q, expected #", r.draws[0].glyph)
	}
	if r.draws[len(r.draws)-1].glyph != game.FoodGlyph {
		t.Errorf("food glyph = %q, expected default", r.draws[len(r.draws)-1].glyph)
	}
}

func TestStepRolesWithSameGlyph(t *testing.T) {
	r := &recordingRenderer{}
	c := New(newState(1), &scriptedInput{}, r, WithGlyphs(Glyphs{Snake: "*", Food: "*"}))

	if _, err := c.Step(); err != nil {
		t.Fatalf("Step() failed: %v", err)
	}
	food := r.draws[len(r.draws)-1]
	if food.glyph != "*" || food.role != core.ColorFood {
		t.Errorf("food draw = %+v, expected * with food role", food)
	}
	for _, d := range r.draws[:len(r.draws)-1] {
		if d.role != core.ColorSnake {
			t.Errorf("segment draw = %+v, expected snake role", d)
		}
	}
}

func TestHeldDirection(t *testing.T) {
	state := newState(2)
	in := &scriptedInput{}
	c := New(state, in, &recordingRenderer{})

	for i := 0; i < 10; i++ {
		if _, err := c.Step(); err != nil {
			t.Fatalf("Step() failed: %v", err)
		}
		if state.Direction != game.Right {
			t.Fatalf("poll %d: Direction = %v, expected right", i, state.Direction)
		}
	}
	if in.polls != 10 {
		t.Errorf("polls = %d, expected 10", in.polls)
	}
}

func TestRunStopsAtWall(t *testing.T) {
	state := newState(3)
	state.Snake = []game.Point{{X: 1, Y: 10}, {X: 2, Y: 10}}
	state.Direction = game.Left

	r := &recordingRenderer{}
	sleeps := 0
	c := New(state, &scriptedInput{}, r, WithSleeper(noSleep(&sleeps)))

	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run() = %v, expected nil", err)
	}

	if state.Status != game.Terminated {
		t.Errorf("Status = %v, expected terminated after wall hit", state.Status)
	}
	if r.frames != 0 || sleeps != 0 {
		t.Errorf("frames=%d sleeps=%d, expected no render or sleep on the terminal tick", r.frames, sleeps)
	}
	if state.Len() != 2 || state.Head() != (game.Point{X: 1, Y: 10}) {
		t.Errorf("Snake = %v, expected untouched", state.Snake)
	}
}

func TestRunClimbsToTopWall(t *testing.T) {
	state := newState(4)
	state.Food = game.Point{X: 40, Y: 19}

	r := &recordingRenderer{}
	sleeps := 0
	in := &scriptedInput{queue: []game.Direction{game.Up}}
	c := New(state, in, r, WithSleeper(noSleep(&sleeps)))

	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	// y goes 10 -> 1 in nine rendered ticks, the tenth hits y == 0
	if r.frames != 9 {
		t.Errorf("frames = %d, expected 9", r.frames)
	}
	if sleeps != 9 {
		t.Errorf("sleeps = %d, expected 9", sleeps)
	}
	if in.polls != 10 {
		t.Errorf("polls = %d, expected 10", in.polls)
	}
	if state.Head() != (game.Point{X: 10, Y: 1}) {
		t.Errorf("Head() = %v, expected (10,1)", state.Head())
	}
}

func TestRunPropagatesRenderError(t *testing.T) {
	boom := errors.New("broken pipe")
	r := &recordingRenderer{failDraw: boom}
	sleeps := 0
	c := New(newState(5), &scriptedInput{}, r, WithSleeper(noSleep(&sleeps)))

	err := c.Run(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("Run() = %v, expected wrapped %v", err, boom)
	}
	if sleeps != 0 {
		t.Errorf("sleeps = %d, expected 0", sleeps)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	steps := 0
	sleeper := func(ctx context.Context, d time.Duration) error {
		steps++
		if steps == 3 {
			cancel()
		}
		return ctx.Err()
	}

	state := newState(6)
	c := New(state, &scriptedInput{}, &recordingRenderer{}, WithSleeper(sleeper))
	err := c.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run() = %v, expected context.Canceled", err)
	}
	if state.Status == game.Terminated {
		t.Error("cancelled session should not be marked terminated")
	}
	if state.Tick != 3 {
		t.Errorf("Tick = %d, expected 3", state.Tick)
	}
}

func TestSleepContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := sleepContext(ctx, time.Hour); !errors.Is(err, context.Canceled) {
		t.Errorf("sleepContext() = %v, expected context.Canceled", err)
	}
	if err := sleepContext(context.Background(), time.Millisecond); err != nil {
		t.Errorf("sleepContext() = %v, expected nil", err)
	}
}
