package game

import "github.com/slithergame/slither/internal/core"

// Snake is the ordered body of the snake, head first. The body never
// contains duplicate cells while the snake is alive.
type Snake struct {
	body []core.Coord
	dir  core.Direction
}

// NewSnake creates a length-1 snake at the given cell facing dir.
func NewSnake(head core.Coord, dir core.Direction) *Snake {
	return &Snake{body: []core.Coord{head}, dir: dir}
}

// Head returns the current head cell.
func (s *Snake) Head() core.Coord {
	return s.body[0]
}

// Dir returns the direction of the last committed move request.
func (s *Snake) Dir() core.Direction {
	return s.dir
}

// Len returns the body length.
func (s *Snake) Len() int {
	return len(s.body)
}

// Body returns the body cells, head first. The slice is shared; callers
// must not modify it.
func (s *Snake) Body() []core.Coord {
	return s.body
}

// Occupies reports whether any body cell is at c.
func (s *Snake) Occupies(c core.Coord) bool {
	for _, b := range s.body {
		if b == c {
			return true
		}
	}
	return false
}

// Advance resolves the direction for this tick and returns the cell the new
// head would occupy. A request to reverse into the body is silently ignored
// and the snake continues in its current direction. The turn is committed
// even when the step fails so the head faces the attempted direction; the
// body is not mutated - the caller moves or grows after collision checks.
func (s *Snake) Advance(req *core.Direction, w, h int, wrap bool) (core.Coord, bool) {
	if req != nil && *req != s.dir.Opposite() {
		s.dir = *req
	}
	return core.Step(s.Head(), s.dir, w, h, wrap)
}

// GrowInto prepends newHead without removing the tail, lengthening the
// snake by one. Used when a fruit is eaten.
func (s *Snake) GrowInto(newHead core.Coord) {
	s.body = append([]core.Coord{newHead}, s.body...)
}

// MoveInto prepends newHead and drops the tail, keeping the length
// unchanged.
func (s *Snake) MoveInto(newHead core.Coord) {
	copy(s.body[1:], s.body[:len(s.body)-1])
	s.body[0] = newHead
}

// hitsSelf reports whether moving the head to c would collide with the
// body. On a plain move the tail cell is exempt because it vacates in
// the same tick; a growing move keeps the tail, so the whole body counts.
func (s *Snake) hitsSelf(c core.Coord, growing bool) bool {
	body := s.body
	if !growing {
		body = body[:len(body)-1]
	}
	for _, b := range body {
		if b == c {
			return true
		}
	}
	return false
}
