// Package game holds the snake simulation: the grid model, the per-tick
// movement rule, wall detection and food regeneration. It performs no I/O;
// the loop package drives it and the platform packages draw it.
package game

import (
	"math/rand"
	"time"
)

// TickInterval is the fixed duration of one game tick.
const TickInterval = 120 * time.Millisecond

// Food spawn bounds (inclusive).
const (
	FoodMinX = 1
	FoodMaxX = 49
	FoodMinY = 1
	FoodMaxY = 19
)

// Default glyphs for the two drawable entities.
const (
	SnakeGlyph = "█"
	FoodGlyph  = "●"
)

// Direction represents the snake's heading.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Point is a cell on the terminal grid.
type Point struct {
	X, Y int
}

// Status is the controller state: Running until the first wall hit.
type Status int

const (
	Running Status = iota
	Terminated
)

func (s Status) String() string {
	if s == Terminated {
		return "terminated"
	}
	return "running"
}

// Outcome reports what a single Advance did.
type Outcome struct {
	Moved      bool // Snake took a step
	Ate        bool // Head landed on the food
	Terminated bool // Candidate head hit the wall
}

// State is the complete mutable game state. It is owned by exactly one
// controller and never shared.
type State struct {
	Snake     []Point // Head at index 0
	Direction Direction
	Food      Point
	Tick      uint64
	Status    Status

	rng *rand.Rand
}

// NewState returns the opening layout: a two-segment snake heading right
// with food five cells ahead of it.
func NewState(rng *rand.Rand) *State {
	return &State{
		Snake: []Point{
			{X: 10, Y: 10}, // Head
			{X: 9, Y: 10},
		},
		Direction: Right,
		Food:      Point{X: 15, Y: 10},
		Status:    Running,
		rng:       rng,
	}
}

// Head returns the first segment.
func (s *State) Head() Point {
	return s.Snake[0]
}

// Len returns the number of segments.
func (s *State) Len() int {
	return len(s.Snake)
}

// Translate returns p moved one cell in direction d.
func Translate(p Point, d Direction) Point {
	switch d {
	case Up:
		return Point{X: p.X, Y: p.Y - 1}
	case Down:
		return Point{X: p.X, Y: p.Y + 1}
	case Left:
		return Point{X: p.X - 1, Y: p.Y}
	case Right:
		return Point{X: p.X + 1, Y: p.Y}
	}
	return p
}

// HitsWall reports whether p lies on the low boundary. Only the top and
// left edges end the game; there is no right or bottom wall.
func HitsWall(p Point) bool {
	return p.X <= 0 || p.Y <= 0
}

// Advance runs one simulation step heading in dir.
//
// On a wall hit the state is marked Terminated and the snake is left
// exactly as it was. Otherwise the candidate head is prepended and the tail
// is dropped unless the head landed on the food, in which case the food is
// regenerated and the snake keeps its extra segment. The body is not
// checked for self-intersection.
func (s *State) Advance(dir Direction) Outcome {
	if s.Status == Terminated {
		return Outcome{Terminated: true}
	}

	s.Direction = dir
	candidate := Translate(s.Head(), dir)

	if HitsWall(candidate) {
		s.Status = Terminated
		return Outcome{Terminated: true}
	}

	s.Tick++
	s.Snake = append(s.Snake, Point{})
	copy(s.Snake[1:], s.Snake)
	s.Snake[0] = candidate

	if candidate == s.Food {
		s.Food = s.SpawnFood()
		return Outcome{Moved: true, Ate: true}
	}

	s.Snake = s.Snake[:len(s.Snake)-1]
	return Outcome{Moved: true}
}

// SpawnFood picks a uniformly random food position inside the spawn bounds.
// The snake body is not excluded, so food may appear under a segment.
func (s *State) SpawnFood() Point {
	return Point{
		X: FoodMinX + s.rng.Intn(FoodMaxX-FoodMinX+1),
		Y: FoodMinY + s.rng.Intn(FoodMaxY-FoodMinY+1),
	}
}
