// Package storage provides SQLite-based persistence for high scores and
// the last-used game options. Uses the pure-Go modernc.org/sqlite driver
// to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/slithergame/slither/internal/game"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist. One high score
// row per distinct options combination, one settings row holding the
// options from the most recent run.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS high_scores (
			wraparound INTEGER NOT NULL,
			obstacles INTEGER NOT NULL,
			fruits INTEGER NOT NULL,
			size TEXT NOT NULL,
			score INTEGER NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (wraparound, obstacles, fruits, size)
		);

		CREATE TABLE IF NOT EXISTS settings (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			wraparound INTEGER NOT NULL,
			obstacles INTEGER NOT NULL,
			fruits INTEGER NOT NULL,
			size TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveBest stores a score for the given options, keeping the larger of the
// new and any previously stored value.
func (s *Store) SaveBest(opts game.Options, score int) error {
	_, err := s.db.Exec(
		`INSERT INTO high_scores (wraparound, obstacles, fruits, size, score)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT (wraparound, obstacles, fruits, size)
		 DO UPDATE SET score = MAX(score, excluded.score),
		               updated_at = CURRENT_TIMESTAMP`,
		opts.Wraparound, opts.Obstacles, opts.Fruits, opts.Size.String(), score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save high score: %w", err)
	}
	return nil
}

// Best returns the stored best score for the given options, zero when none
// has been recorded.
func (s *Store) Best(opts game.Options) (int, error) {
	var score int
	err := s.db.QueryRow(
		`SELECT score FROM high_scores
		 WHERE wraparound = ? AND obstacles = ? AND fruits = ? AND size = ?`,
		opts.Wraparound, opts.Obstacles, opts.Fruits, opts.Size.String(),
	).Scan(&score)

	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return score, nil
}

// LoadScores retrieves all stored high scores keyed by their options.
// Rows whose options no longer validate are skipped rather than failing
// the whole load.
func (s *Store) LoadScores() (map[game.Options]int, error) {
	rows, err := s.db.Query(
		"SELECT wraparound, obstacles, fruits, size, score FROM high_scores",
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query high scores: %w", err)
	}
	defer rows.Close()

	scores := make(map[game.Options]int)
	for rows.Next() {
		var opts game.Options
		var sizeName string
		var score int
		if err := rows.Scan(&opts.Wraparound, &opts.Obstacles, &opts.Fruits, &sizeName, &score); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		size, err := game.ParseLevelSize(sizeName)
		if err != nil {
			continue
		}
		opts.Size = size
		if _, notices := opts.Sanitize(); len(notices) > 0 {
			continue
		}
		scores[opts] = score
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return scores, nil
}

// SaveOptions records the options used for the most recent run so the next
// launch can restore them.
func (s *Store) SaveOptions(opts game.Options) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (id, wraparound, obstacles, fruits, size)
		 VALUES (1, ?, ?, ?, ?)
		 ON CONFLICT (id)
		 DO UPDATE SET wraparound = excluded.wraparound,
		               obstacles = excluded.obstacles,
		               fruits = excluded.fruits,
		               size = excluded.size,
		               updated_at = CURRENT_TIMESTAMP`,
		opts.Wraparound, opts.Obstacles, opts.Fruits, opts.Size.String(),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save options: %w", err)
	}
	return nil
}

// LoadOptions returns the options from the most recent run and whether any
// were stored. Stored options that no longer validate are sanitized
// field by field.
func (s *Store) LoadOptions() (game.Options, bool, error) {
	var opts game.Options
	var sizeName string
	err := s.db.QueryRow(
		"SELECT wraparound, obstacles, fruits, size FROM settings WHERE id = 1",
	).Scan(&opts.Wraparound, &opts.Obstacles, &opts.Fruits, &sizeName)

	if errors.Is(err, sql.ErrNoRows) {
		return game.DefaultOptions(), false, nil
	}
	if err != nil {
		return game.DefaultOptions(), false, fmt.Errorf("storage: cannot query options: %w", err)
	}

	size, err := game.ParseLevelSize(sizeName)
	if err != nil {
		opts.Size = game.DefaultOptions().Size
	} else {
		opts.Size = size
	}
	opts, _ = opts.Sanitize()
	return opts, true, nil
}
