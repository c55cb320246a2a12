// Package storage provides SQLite-based persistence for generated puzzles
// and completed solves. Uses the pure-Go modernc.org/sqlite driver to avoid
// CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for the puzzle archive.
type Store struct {
	db *sql.DB
}

// PuzzleEntry is one archived puzzle.
type PuzzleEntry struct {
	ID        int64
	Params    string // full parameter string, e.g. "7x7b20s4r"
	Desc      string // puzzle descriptor
	Seed      string // rng seed the generator ran with
	Hard      bool
	Clues     int
	CreatedAt time.Time
}

// SolveEntry records a finished game of an archived puzzle.
type SolveEntry struct {
	ID        int64
	PuzzleID  int64
	Moves     int
	UsedSolve bool
	Duration  int // seconds
	CreatedAt time.Time
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

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS puzzles (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			params TEXT NOT NULL,
			desc TEXT NOT NULL,
			seed TEXT NOT NULL DEFAULT '',
			hard INTEGER NOT NULL DEFAULT 0,
			clues INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_puzzles_params ON puzzles(params);

		CREATE TABLE IF NOT EXISTS solves (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			puzzle_id INTEGER NOT NULL REFERENCES puzzles(id),
			moves INTEGER NOT NULL DEFAULT 0,
			used_solve INTEGER NOT NULL DEFAULT 0,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_solves_puzzle ON solves(puzzle_id);
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

// SavePuzzle archives a generated puzzle and returns its ID.
func (s *Store) SavePuzzle(e PuzzleEntry) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO puzzles (params, desc, seed, hard, clues) VALUES (?, ?, ?, ?, ?)",
		e.Params, e.Desc, e.Seed, e.Hard, e.Clues,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save puzzle: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// PuzzleByID retrieves one archived puzzle, or nil if it doesn't exist.
func (s *Store) PuzzleByID(id int64) (*PuzzleEntry, error) {
	var e PuzzleEntry
	var createdAt any
	err := s.db.QueryRow(
		"SELECT id, params, desc, seed, hard, clues, created_at FROM puzzles WHERE id = ?",
		id,
	).Scan(&e.ID, &e.Params, &e.Desc, &e.Seed, &e.Hard, &e.Clues, &createdAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query puzzle: %w", err)
	}
	e.CreatedAt = parseCreatedAt(createdAt)
	return &e, nil
}

// RecentPuzzles retrieves the latest N archived puzzles, newest first.
func (s *Store) RecentPuzzles(limit int) ([]PuzzleEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(
		`SELECT id, params, desc, seed, hard, clues, created_at
		 FROM puzzles
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query puzzles: %w", err)
	}
	defer rows.Close()

	var entries []PuzzleEntry
	for rows.Next() {
		var e PuzzleEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Params, &e.Desc, &e.Seed, &e.Hard, &e.Clues, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseCreatedAt(createdAt)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// SaveSolve records a finished game and returns its ID.
func (s *Store) SaveSolve(e SolveEntry) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO solves (puzzle_id, moves, used_solve, duration_secs) VALUES (?, ?, ?, ?)",
		e.PuzzleID, e.Moves, e.UsedSolve, e.Duration,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save solve: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// SolvesForPuzzle retrieves all solves of a puzzle, newest first.
func (s *Store) SolvesForPuzzle(puzzleID int64) ([]SolveEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, puzzle_id, moves, used_solve, duration_secs, created_at
		 FROM solves
		 WHERE puzzle_id = ?
		 ORDER BY id DESC`,
		puzzleID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solves: %w", err)
	}
	defer rows.Close()

	var entries []SolveEntry
	for rows.Next() {
		var e SolveEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.PuzzleID, &e.Moves, &e.UsedSolve, &e.Duration, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseCreatedAt(createdAt)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// SolveCount returns the number of recorded solves of a puzzle.
func (s *Store) SolveCount(puzzleID int64) (int, error) {
	var n int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM solves WHERE puzzle_id = ?", puzzleID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count solves: %w", err)
	}
	return n, nil
}

// parseCreatedAt handles both time.Time and string datetime columns.
func parseCreatedAt(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
