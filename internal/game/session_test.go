package game

import (
	"reflect"
	"testing"

	"github.com/slithergame/slither/internal/core"
)

func newTestSession(seed int64) *Session {
	opts := Options{Wraparound: true, Obstacles: false, Fruits: 1, Size: SizeSmall}
	return NewSession(opts, seed)
}

func TestSessionInitialState(t *testing.T) {
	s := newTestSession(1)
	if !s.Alive() {
		t.Fatal("new session not alive")
	}
	if s.Won() || s.Paused() {
		t.Fatal("new session should be neither won nor paused")
	}
	if s.Score() != 0 || s.Ticks() != 0 {
		t.Fatalf("score=%d ticks=%d, want 0/0", s.Score(), s.Ticks())
	}
}

func TestSessionTickAdvances(t *testing.T) {
	s := newTestSession(2)
	head := s.Level().Snake().Head()

	res := s.OnTick()
	if res.Outcome == OutcomeNone {
		t.Fatal("tick on a live session did nothing")
	}
	if s.Ticks() != 1 {
		t.Fatalf("ticks = %d, want 1", s.Ticks())
	}
	if s.Level().Snake().Head() == head {
		t.Fatal("head did not move")
	}
}

func TestSessionPausedTickIsNoop(t *testing.T) {
	s := newTestSession(3)
	s.OnTick()

	s.Pause()
	if !s.Paused() {
		t.Fatal("Pause did not pause")
	}
	before := s.Snapshot()

	for i := 0; i < 5; i++ {
		if res := s.OnTick(); res.Outcome != OutcomeNone {
			t.Fatalf("paused tick produced %v", res.Outcome)
		}
	}

	s.Resume()
	if s.Paused() {
		t.Fatal("Resume did not resume")
	}
	after := s.Snapshot()
	after.Paused = before.Paused
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("pause/resume changed state:\nbefore %+v\nafter  %+v", before, after)
	}
}

func TestSessionLastDirectionRequestWins(t *testing.T) {
	s := newTestSession(4)
	head := s.Level().Snake().Head()

	// Several requests between ticks; only the final one counts.
	s.Queue(core.West)
	s.Queue(core.North)
	s.Queue(core.East)
	s.OnTick()

	want := core.Coord{X: (head.X + 1) % s.Level().Width(), Y: head.Y}
	if got := s.Level().Snake().Head(); got != want {
		t.Fatalf("head = %v, want %v (east of %v)", got, want, head)
	}
	if s.Level().Snake().Dir() != core.East {
		t.Fatalf("dir = %v, want East", s.Level().Snake().Dir())
	}
}

func TestSessionQueuedDirectionConsumedOnce(t *testing.T) {
	s := newTestSession(5)
	s.Queue(core.East)
	s.OnTick()
	if s.Level().Snake().Dir() != core.East {
		t.Fatal("first tick did not honor the request")
	}

	// With no new request the snake keeps its heading.
	s.OnTick()
	if s.Level().Snake().Dir() != core.East {
		t.Fatalf("dir = %v, want East to persist", s.Level().Snake().Dir())
	}
}

func TestSessionScoresOnFruit(t *testing.T) {
	// 2x2 wrap grid: every move either eats or wins, so the score
	// climbs deterministically.
	opts := Options{Wraparound: true, Fruits: 1, Size: SizeSmall}
	s := NewSession(opts, 6)
	s.level = &Level{
		width:       2,
		height:      2,
		wrap:        true,
		fruitTarget: 1,
		fruits:      map[core.Coord]struct{}{{X: 0, Y: 1}: {}},
		snake:       NewSnake(core.Coord{X: 0, Y: 0}, core.South),
		rng:         s.rng,
	}

	res := s.OnTick()
	if res.Outcome != OutcomeAte {
		t.Fatalf("outcome = %v, want Ate", res.Outcome)
	}
	if s.Score() != 1 {
		t.Fatalf("score = %d, want 1", s.Score())
	}
	if !s.Alive() {
		t.Fatal("session should survive a plain fruit")
	}
}

func TestSessionFullEndsAsWin(t *testing.T) {
	opts := Options{Wraparound: true, Fruits: 1, Size: SizeSmall}
	s := NewSession(opts, 7)
	s.level = &Level{
		width:       1,
		height:      2,
		wrap:        true,
		fruitTarget: 1,
		fruits:      map[core.Coord]struct{}{{X: 0, Y: 1}: {}},
		snake:       NewSnake(core.Coord{X: 0, Y: 0}, core.South),
		rng:         s.rng,
	}

	res := s.OnTick()
	if res.Outcome != OutcomeFull {
		t.Fatalf("outcome = %v, want Full", res.Outcome)
	}
	if s.Score() != 1 {
		t.Fatalf("score = %d, want 1 (the final fruit still counts)", s.Score())
	}
	if s.Alive() {
		t.Fatal("session should end once the grid is full")
	}
	if !s.Won() {
		t.Fatal("a full grid is a win")
	}
}

func TestSessionCollisionEndsGame(t *testing.T) {
	opts := Options{Wraparound: false, Fruits: 1, Size: SizeSmall}
	s := NewSession(opts, 8)

	// Drive straight north into the border.
	for s.Alive() {
		if s.Ticks() > 100 {
			t.Fatal("never collided")
		}
		s.OnTick()
	}
	if s.Won() {
		t.Fatal("a collision is not a win")
	}

	// Ticks after death change nothing.
	snap := s.Snapshot()
	if res := s.OnTick(); res.Outcome != OutcomeNone {
		t.Fatalf("dead tick produced %v", res.Outcome)
	}
	if !reflect.DeepEqual(snap, s.Snapshot()) {
		t.Fatal("dead tick mutated state")
	}
}

func TestSessionRestart(t *testing.T) {
	s := newTestSession(9)
	for i := 0; i < 3; i++ {
		s.OnTick()
	}
	s.Pause()

	s.Restart(10)
	if !s.Alive() || s.Paused() || s.Won() {
		t.Fatal("restart did not reset flags")
	}
	if s.Score() != 0 || s.Ticks() != 0 {
		t.Fatalf("restart kept score=%d ticks=%d", s.Score(), s.Ticks())
	}
	if s.Level().Snake().Len() != 1 {
		t.Fatalf("restart snake length = %d, want 1", s.Level().Snake().Len())
	}
	if s.Options() != (Options{Wraparound: true, Fruits: 1, Size: SizeSmall}) {
		t.Fatalf("restart changed options: %+v", s.Options())
	}
}
