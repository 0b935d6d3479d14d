package game

import (
	"math/rand"

	"github.com/slithergame/slither/internal/core"
)

// Session is one playthrough: a level plus score, tick count, and liveness.
// It buffers direction requests between ticks - only the most recent
// request since the last tick is honored - and gates tick processing while
// paused.
type Session struct {
	opts    Options
	level   *Level
	rng     *rand.Rand
	score   int
	ticks   uint64
	alive   bool
	won     bool
	paused  bool
	pending *core.Direction
}

// NewSession starts a session with a freshly generated level.
func NewSession(opts Options, seed int64) *Session {
	rng := rand.New(rand.NewSource(seed))
	return &Session{
		opts:  opts,
		level: NewLevel(opts, rng),
		rng:   rng,
		alive: true,
	}
}

// Queue records a direction request for the next tick, replacing any
// earlier request from the same tick period.
func (s *Session) Queue(d core.Direction) {
	s.pending = &d
}

// OnTick advances the level by one step with the buffered request, clears
// the buffer, and folds the outcome into the session: score on OutcomeAte
// and OutcomeFull (the exhausting fruit still counts), death on
// OutcomeCollided, win on OutcomeFull. Ticks while paused or after the
// session has ended are no-ops.
func (s *Session) OnTick() TickResult {
	if s.paused || !s.alive {
		return TickResult{Outcome: OutcomeNone}
	}

	req := s.pending
	s.pending = nil
	s.ticks++

	result := s.level.Tick(req)
	switch result.Outcome {
	case OutcomeAte:
		s.score++
	case OutcomeFull:
		s.score++
		s.alive = false
		s.won = true
	case OutcomeCollided:
		s.alive = false
	}
	return result
}

// Pause suspends tick processing without touching level state.
func (s *Session) Pause() {
	s.paused = true
}

// Resume lifts a pause.
func (s *Session) Resume() {
	s.paused = false
}

// Restart discards the level and builds a fresh one from the same options,
// re-randomizing obstacles and fruits.
func (s *Session) Restart(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
	s.level = NewLevel(s.opts, s.rng)
	s.score = 0
	s.ticks = 0
	s.alive = true
	s.won = false
	s.paused = false
	s.pending = nil
}

// Options returns the options the session was created from.
func (s *Session) Options() Options { return s.opts }

// Level returns the session's level.
func (s *Session) Level() *Level { return s.level }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Ticks returns the number of processed ticks.
func (s *Session) Ticks() uint64 { return s.ticks }

// Alive reports whether the session is still running.
func (s *Session) Alive() bool { return s.alive }

// Won reports whether the session ended by exhausting the board.
func (s *Session) Won() bool { return s.won }

// Paused reports whether tick processing is suspended.
func (s *Session) Paused() bool { return s.paused }
