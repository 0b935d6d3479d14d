// Package core provides the primitive types shared by the game engine and
// the terminal platform: grid coordinates, directions, abstract input
// actions, and the screen buffer. It has no external dependencies (especially
// no Bubble Tea) to keep game logic pure and testable.
package core

// Coord is a cell position on a level grid. Column 0, row 0 is the top-left
// corner. Coords are compared by value and usable as map keys.
type Coord struct {
	X, Y int
}

// Direction is one of the four movement directions on the grid.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	default:
		return East
	}
}

// Delta returns the unit vector for the direction. North is negative Y.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	default:
		return -1, 0
	}
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// Step computes the neighbor of c in direction d on a w×h grid.
// With wrap enabled the grid is toroidal and Step always succeeds; without
// it, stepping off an edge returns ok=false.
func Step(c Coord, d Direction, w, h int, wrap bool) (Coord, bool) {
	dx, dy := d.Delta()
	x, y := c.X+dx, c.Y+dy
	if wrap {
		x = (x + w) % w
		y = (y + h) % h
		return Coord{X: x, Y: y}, true
	}
	if x < 0 || x >= w || y < 0 || y >= h {
		return Coord{}, false
	}
	return Coord{X: x, Y: y}, true
}
