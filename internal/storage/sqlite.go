// Package storage provides SQLite-based persistence for Chromatch: per-mode
// high scores, the lifetime score that gates harmony unlocks, tutorial seen
// flags and the discovered-color collection.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/askoryk/chromatch/internal/game"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single high score record.
type ScoreEntry struct {
	ID        int64
	Mode      string
	Score     int
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

	// Create parent directories
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
		CREATE TABLE IF NOT EXISTS high_scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			mode TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_high_scores_mode ON high_scores(mode);
		CREATE INDEX IF NOT EXISTS idx_high_scores_top ON high_scores(mode, score DESC);

		CREATE TABLE IF NOT EXISTS lifetime (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			score INTEGER NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS seen_flags (
			flag TEXT PRIMARY KEY,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS discovered_colors (
			hex TEXT PRIMARY KEY,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
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

// SaveHighScore records a finished session's score for the given mode.
func (s *Store) SaveHighScore(mode string, score int) error {
	_, err := s.db.Exec(
		"INSERT INTO high_scores (mode, score) VALUES (?, ?)",
		mode, score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save score: %w", err)
	}
	return nil
}

// HighScore returns the best score for the given mode, 0 when none exists.
func (s *Store) HighScore(mode string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM high_scores WHERE mode = ?",
		mode,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// IsNewHighScore reports whether score beats everything recorded for mode.
func (s *Store) IsNewHighScore(score int, mode string) (bool, error) {
	best, err := s.HighScore(mode)
	if err != nil {
		return false, err
	}
	return score > best, nil
}

// TopScores retrieves the top N scores for the given mode, best first.
func (s *Store) TopScores(mode string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, mode, score, created_at
		 FROM high_scores
		 WHERE mode = ?
		 ORDER BY score DESC
		 LIMIT ?`,
		mode, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Mode, &e.Score, &createdAt); err != nil {
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

// ClearScores deletes all scores for the given mode.
func (s *Store) ClearScores(mode string) error {
	_, err := s.db.Exec("DELETE FROM high_scores WHERE mode = ?", mode)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// LifetimeScore returns the cumulative non-zen score.
func (s *Store) LifetimeScore() (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT score FROM lifetime WHERE id = 1").Scan(&score)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query lifetime score: %w", err)
	}
	return int(score.Int64), nil
}

// AddToLifetimeScore adds points to the cumulative total.
func (s *Store) AddToLifetimeScore(points int) error {
	_, err := s.db.Exec(
		`INSERT INTO lifetime (id, score) VALUES (1, ?)
		 ON CONFLICT (id) DO UPDATE SET score = score + excluded.score`,
		points,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot update lifetime score: %w", err)
	}
	return nil
}

// HasSeen reports whether a tutorial flag was already recorded.
func (s *Store) HasSeen(flag string) (bool, error) {
	var one int
	err := s.db.QueryRow("SELECT 1 FROM seen_flags WHERE flag = ?", flag).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("storage: cannot query seen flag: %w", err)
	}
	return true, nil
}

// MarkSeen records a tutorial flag.
func (s *Store) MarkSeen(flag string) error {
	_, err := s.db.Exec(
		"INSERT INTO seen_flags (flag) VALUES (?) ON CONFLICT (flag) DO NOTHING",
		flag,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot mark seen flag: %w", err)
	}
	return nil
}

// RecordDiscoveredColor stores a correctly answered color once.
func (s *Store) RecordDiscoveredColor(hex string) error {
	_, err := s.db.Exec(
		"INSERT INTO discovered_colors (hex) VALUES (?) ON CONFLICT (hex) DO NOTHING",
		hex,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record color: %w", err)
	}
	return nil
}

// DiscoveredColors returns all collected colors, oldest first.
func (s *Store) DiscoveredColors() ([]string, error) {
	rows, err := s.db.Query("SELECT hex FROM discovered_colors ORDER BY created_at, hex")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query colors: %w", err)
	}
	defer rows.Close()

	var colors []string
	for rows.Next() {
		var hex string
		if err := rows.Scan(&hex); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		colors = append(colors, hex)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return colors, nil
}

// parseCreatedAt handles the driver returning either time.Time or string.
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

// Ensure Store implements the engine's persistence contract.
var _ game.Persistence = (*Store)(nil)
