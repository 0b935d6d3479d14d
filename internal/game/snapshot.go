package game

import (
	"slices"

	"github.com/slithergame/slither/internal/core"
)

// Snapshot is a read-only copy of everything the render sink needs to draw
// one frame of a session. Cell sets are sorted row-major so snapshots of
// identical states compare equal.
type Snapshot struct {
	Width      int
	Height     int
	Wraparound bool
	Snake      []core.Coord // head first
	HeadDir    core.Direction
	Fruits     []core.Coord
	Obstacles  []core.Coord
	Score      int
	Ticks      uint64
	Alive      bool
	Won        bool
	Paused     bool
}

// Snapshot captures the session's current state.
func (s *Session) Snapshot() Snapshot {
	l := s.level
	snap := Snapshot{
		Width:      l.width,
		Height:     l.height,
		Wraparound: l.wrap,
		Snake:      slices.Clone(l.snake.Body()),
		HeadDir:    l.snake.Dir(),
		Fruits:     sortedCoords(l.fruits),
		Obstacles:  sortedCoords(l.obstacles),
		Score:      s.score,
		Ticks:      s.ticks,
		Alive:      s.alive,
		Won:        s.won,
		Paused:     s.paused,
	}
	return snap
}

func sortedCoords(set map[core.Coord]struct{}) []core.Coord {
	out := make([]core.Coord, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b core.Coord) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	return out
}
