package game

import (
	"math/rand"

	"github.com/slithergame/slither/internal/core"
)

// Obstacle generation parameters: roughly 3% of the grid becomes obstacles,
// with a cleared corridor ahead of and behind the snake's spawn cell so a
// fresh level is never an instant loss.
const (
	obstacleDensity    = 0.03
	forwardsClearance  = 7
	backwardsClearance = 3
)

// Outcome classifies the result of one tick.
type Outcome int

const (
	// OutcomeNone is returned for ticks that did not advance the game
	// (session paused or already over).
	OutcomeNone Outcome = iota

	// OutcomeMoved - the snake advanced into an empty cell.
	OutcomeMoved

	// OutcomeAte - the snake advanced into a fruit and grew; a
	// replacement fruit was placed if space allowed.
	OutcomeAte

	// OutcomeCollided - the snake hit its body, an obstacle, or the
	// border. The snake does not move; the session is over.
	OutcomeCollided

	// OutcomeFull - the last fruit was eaten and no cell remains for a
	// replacement. The board is exhausted; this ends the session as a win.
	OutcomeFull
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeMoved:
		return "moved"
	case OutcomeAte:
		return "ate"
	case OutcomeCollided:
		return "collided"
	case OutcomeFull:
		return "full"
	default:
		return "unknown"
	}
}

// CollisionCause reports what the snake collided with.
type CollisionCause int

const (
	CauseSelf CollisionCause = iota
	CauseObstacle
	CauseBorder
)

func (c CollisionCause) String() string {
	switch c {
	case CauseSelf:
		return "self"
	case CauseObstacle:
		return "obstacle"
	default:
		return "border"
	}
}

// TickResult is the outcome of one tick, with the collision cause when the
// outcome is OutcomeCollided.
type TickResult struct {
	Outcome Outcome
	Cause   CollisionCause
}

// Level owns the grid, the obstacle and fruit sets, and the snake, and
// resolves one tick of movement into a TickResult. Obstacles are fixed for
// the lifetime of a Level; fruits are replenished as they are eaten.
type Level struct {
	width, height int
	wrap          bool
	fruitTarget   int
	obstacles     map[core.Coord]struct{}
	fruits        map[core.Coord]struct{}
	snake         *Snake
	rng           *rand.Rand
}

// NewLevel builds a level from the given options: preset dimensions, the
// snake spawned at the grid center facing north, randomized obstacles when
// enabled, and the initial fruit set.
func NewLevel(opts Options, rng *rand.Rand) *Level {
	w, h := opts.Size.Dims()
	start := core.Coord{X: w / 2, Y: h / 2}

	l := &Level{
		width:       w,
		height:      h,
		wrap:        opts.Wraparound,
		fruitTarget: opts.Fruits,
		obstacles:   make(map[core.Coord]struct{}),
		fruits:      make(map[core.Coord]struct{}),
		snake:       NewSnake(start, core.North),
		rng:         rng,
	}

	if opts.Obstacles {
		l.placeObstacles(start)
	}
	l.topUpFruits()
	return l
}

// placeObstacles fills about obstacleDensity of the grid, keeping a
// corridor clear around the spawn: forwardsClearance cells ahead of the
// snake and backwardsClearance behind it.
func (l *Level) placeObstacles(start core.Coord) {
	count := int(float64(l.width*l.height)*obstacleDensity + 0.5)
	excluded := make(map[core.Coord]struct{})
	c := start
	for i := 0; i < forwardsClearance; i++ {
		excluded[c] = struct{}{}
		next, ok := core.Step(c, core.North, l.width, l.height, l.wrap)
		if !ok {
			break
		}
		c = next
	}
	c = start
	for i := 0; i < backwardsClearance; i++ {
		excluded[c] = struct{}{}
		next, ok := core.Step(c, core.South, l.width, l.height, l.wrap)
		if !ok {
			break
		}
		c = next
	}

	// A cramped grid can hold fewer obstacles than requested; that is fine.
	l.obstacles, _ = Place(l.rng, count, excluded, l.width, l.height)
}

// topUpFruits places fruits until the configured count is reached,
// excluding obstacles and the snake. A full board leaves the count short.
func (l *Level) topUpFruits() {
	missing := l.fruitTarget - len(l.fruits)
	if missing <= 0 {
		return
	}
	excluded := make(map[core.Coord]struct{}, len(l.obstacles)+len(l.fruits)+l.snake.Len())
	for c := range l.obstacles {
		excluded[c] = struct{}{}
	}
	for c := range l.fruits {
		excluded[c] = struct{}{}
	}
	for _, c := range l.snake.Body() {
		excluded[c] = struct{}{}
	}
	placed, _ := Place(l.rng, missing, excluded, l.width, l.height)
	for c := range placed {
		l.fruits[c] = struct{}{}
	}
}

// Tick advances the level by one step. The request, if any, is the
// direction change to apply this tick; a reversal request is ignored.
// Collision priority is self, then obstacle; border collisions surface
// during the geometry step. On collision the snake stays where it was.
func (l *Level) Tick(req *core.Direction) TickResult {
	cand, ok := l.snake.Advance(req, l.width, l.height, l.wrap)
	if !ok {
		return TickResult{Outcome: OutcomeCollided, Cause: CauseBorder}
	}

	if _, fruit := l.fruits[cand]; fruit {
		l.snake.GrowInto(cand)
		delete(l.fruits, cand)
		l.topUpFruits()
		if len(l.fruits) == 0 {
			return TickResult{Outcome: OutcomeFull}
		}
		return TickResult{Outcome: OutcomeAte}
	}

	if l.snake.hitsSelf(cand, false) {
		return TickResult{Outcome: OutcomeCollided, Cause: CauseSelf}
	}
	if _, hit := l.obstacles[cand]; hit {
		return TickResult{Outcome: OutcomeCollided, Cause: CauseObstacle}
	}

	l.snake.MoveInto(cand)
	return TickResult{Outcome: OutcomeMoved}
}

// Width returns the grid width.
func (l *Level) Width() int { return l.width }

// Height returns the grid height.
func (l *Level) Height() int { return l.height }

// Wraparound reports whether the borders wrap.
func (l *Level) Wraparound() bool { return l.wrap }

// Snake returns the level's snake.
func (l *Level) Snake() *Snake { return l.snake }

// FruitCount returns the number of fruits currently on the board.
func (l *Level) FruitCount() int { return len(l.fruits) }

// HasFruit reports whether a fruit is at c.
func (l *Level) HasFruit(c core.Coord) bool {
	_, ok := l.fruits[c]
	return ok
}

// HasObstacle reports whether an obstacle is at c.
func (l *Level) HasObstacle(c core.Coord) bool {
	_, ok := l.obstacles[c]
	return ok
}
