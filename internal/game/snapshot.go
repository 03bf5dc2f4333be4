package game

import "fmt"

// Snapshot captures the observable game state for logging and tests.
type Snapshot struct {
	Tick     uint64
	SnakeLen int
	HeadX    int
	HeadY    int
	Dir      Direction
	FoodX    int
	FoodY    int
	State    Status
}

// Snapshot returns the current game snapshot.
func (s *State) Snapshot() Snapshot {
	head := s.Head()
	return Snapshot{
		Tick:     s.Tick,
		SnakeLen: len(s.Snake),
		HeadX:    head.X,
		HeadY:    head.Y,
		Dir:      s.Direction,
		FoodX:    s.Food.X,
		FoodY:    s.Food.Y,
		State:    s.Status,
	}
}

// String formats the snapshot on one line.
func (s Snapshot) String() string {
	return fmt.Sprintf("tick=%d len=%d head=(%d,%d) dir=%s food=(%d,%d) state=%s",
		s.Tick, s.SnakeLen, s.HeadX, s.HeadY, s.Dir, s.FoodX, s.FoodY, s.State)
}
