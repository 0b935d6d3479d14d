package game

import (
	"errors"
	"math/rand"

	"github.com/slithergame/slither/internal/core"
)

// ErrInsufficientSpace reports that fewer free cells exist than were
// requested. It is always recoverable: Place still returns every free cell
// it found, and callers proceed with the short set.
var ErrInsufficientSpace = errors.New("not enough free cells")

// Place draws count distinct cells uniformly, without replacement, from the
// cells of a w×h grid not present in excluded. If fewer than count free
// cells exist it returns all of them together with ErrInsufficientSpace.
func Place(rng *rand.Rand, count int, excluded map[core.Coord]struct{}, w, h int) (map[core.Coord]struct{}, error) {
	free := make([]core.Coord, 0, w*h-len(excluded))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := core.Coord{X: x, Y: y}
			if _, taken := excluded[c]; !taken {
				free = append(free, c)
			}
		}
	}

	picked := make(map[core.Coord]struct{}, count)
	if len(free) <= count {
		for _, c := range free {
			picked[c] = struct{}{}
		}
		if len(free) < count {
			return picked, ErrInsufficientSpace
		}
		return picked, nil
	}

	// Partial Fisher-Yates: the first count slots end up uniformly drawn.
	for i := 0; i < count; i++ {
		j := i + rng.Intn(len(free)-i)
		free[i], free[j] = free[j], free[i]
		picked[free[i]] = struct{}{}
	}
	return picked, nil
}
