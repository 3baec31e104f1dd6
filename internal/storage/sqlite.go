// Package storage provides SQLite-based persistence for the run leaderboard.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/nilemile/nilemile/internal/config"
)

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// RunEntry represents a single finished-run record on the leaderboard.
type RunEntry struct {
	ID         int64
	Name       string
	Elapsed    time.Duration
	Difficulty config.Difficulty
	CreatedAt  time.Time
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
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			elapsed_ms INTEGER NOT NULL,
			difficulty TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_difficulty ON runs(difficulty);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(difficulty, elapsed_ms ASC);
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

// SaveRun records a finished run on the leaderboard.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(name string, elapsed time.Duration, difficulty config.Difficulty) (int64, error) {
	if name == "" {
		name = "anonymous"
	}

	result, err := s.db.Exec(
		"INSERT INTO runs (name, elapsed_ms, difficulty) VALUES (?, ?, ?)",
		name, elapsed.Milliseconds(), string(difficulty),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopTimes retrieves the N fastest runs for the given difficulty.
// Results are ordered by elapsed time ascending; faster is better.
func (s *Store) TopTimes(difficulty config.Difficulty, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, name, elapsed_ms, difficulty, created_at
		 FROM runs
		 WHERE difficulty = ?
		 ORDER BY elapsed_ms ASC
		 LIMIT ?`,
		string(difficulty), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		e, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// AllTimes retrieves every recorded run for the given difficulty (no limit).
func (s *Store) AllTimes(difficulty config.Difficulty) ([]RunEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, name, elapsed_ms, difficulty, created_at
		 FROM runs
		 WHERE difficulty = ?
		 ORDER BY elapsed_ms ASC`,
		string(difficulty),
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		e, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, nil
}

// BestTime returns the fastest elapsed time for the given difficulty.
// Returns 0 if no runs exist.
func (s *Store) BestTime(difficulty config.Difficulty) (time.Duration, error) {
	var elapsed sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MIN(elapsed_ms) FROM runs WHERE difficulty = ?",
		string(difficulty),
	).Scan(&elapsed)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best time: %w", err)
	}

	if !elapsed.Valid {
		return 0, nil
	}

	return time.Duration(elapsed.Int64) * time.Millisecond, nil
}

// ClearRuns deletes all recorded runs for the given difficulty.
func (s *Store) ClearRuns(difficulty config.Difficulty) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE difficulty = ?", string(difficulty))
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

func scanRun(rows *sql.Rows) (RunEntry, error) {
	var e RunEntry
	var elapsedMs int64
	var difficulty string
	var createdAt any
	if err := rows.Scan(&e.ID, &e.Name, &elapsedMs, &difficulty, &createdAt); err != nil {
		return RunEntry{}, fmt.Errorf("storage: cannot scan row: %w", err)
	}

	e.Elapsed = time.Duration(elapsedMs) * time.Millisecond
	e.Difficulty = config.Difficulty(difficulty)

	// Parse the datetime - handle both time.Time and string
	switch v := createdAt.(type) {
	case time.Time:
		e.CreatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			e.CreatedAt = parsed
		}
	}

	return e, nil
}
