// Package highscore tracks the best score achieved for each distinct
// Options combination. Scores from different option sets never compete
// with each other.
package highscore

import "github.com/slithergame/slither/internal/game"

// Saver persists a single best score. It is satisfied by the sqlite store;
// tests substitute an in-memory recorder.
type Saver interface {
	SaveBest(opts game.Options, score int) error
}

// Table holds the best score per option set.
type Table struct {
	best map[game.Options]int
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{best: make(map[game.Options]int)}
}

// Load replaces the table contents with previously persisted scores.
func (t *Table) Load(scores map[game.Options]int) {
	t.best = make(map[game.Options]int, len(scores))
	for opts, score := range scores {
		t.best[opts] = score
	}
}

// Best returns the recorded best for the given options, zero when none.
func (t *Table) Best(opts game.Options) int {
	return t.best[opts]
}

// Record offers a finished session's score. It keeps the score only when it
// beats the stored best for those options and reports whether it did.
func (t *Table) Record(opts game.Options, score int) bool {
	if score <= t.best[opts] {
		return false
	}
	t.best[opts] = score
	return true
}

// All returns a copy of the table contents.
func (t *Table) All() map[game.Options]int {
	out := make(map[game.Options]int, len(t.best))
	for opts, score := range t.best {
		out[opts] = score
	}
	return out
}
