// Package storage provides SQLite-based persistence for snake scores.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// DefaultPath is where the CLI keeps its database.
const DefaultPath = "~/.snake/scores.db"

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single finished game.
type ScoreEntry struct {
	ID        int64
	Board     string
	Score     int
	Length    int
	CreatedAt time.Time
}

// BoardID names the record set for a grid size. Scores on different board
// sizes are not comparable, so each size keeps its own history and best.
func BoardID(gridSize int) string {
	return fmt.Sprintf("snake-%dx%d", gridSize, gridSize)
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
	// One connection serializes writers from concurrent sessions.
	db.SetMaxOpenConns(1)

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
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			board TEXT NOT NULL,
			score INTEGER NOT NULL,
			length INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(board, score DESC);

		CREATE TABLE IF NOT EXISTS best_scores (
			board TEXT PRIMARY KEY,
			score INTEGER NOT NULL,
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

// SaveScore records a finished game. Returns the ID of the inserted record.
func (s *Store) SaveScore(board string, score, length int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (board, score, length) VALUES (?, ?, ?)",
		board, score, length,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N scores for the board, highest first.
// Ties are ordered oldest first.
func (s *Store) TopScores(board string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, board, score, length, created_at
		 FROM scores
		 WHERE board = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		board, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Board, &e.Score, &e.Length, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest recorded game for the board.
// Returns 0 if no scores exist.
func (s *Store) HighScore(board string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE board = ?",
		board,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// BestScore returns the stored best for the board. Boards without a best
// record fall back to the score history.
func (s *Store) BestScore(board string) (int, error) {
	var score int
	err := s.db.QueryRow(
		"SELECT score FROM best_scores WHERE board = ?",
		board,
	).Scan(&score)

	if errors.Is(err, sql.ErrNoRows) {
		return s.HighScore(board)
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}
	return score, nil
}

// SetBestScore raises the stored best for the board. A lower score than the
// one on record is ignored, so concurrent sessions never lower the best.
func (s *Store) SetBestScore(board string, score int) error {
	_, err := s.db.Exec(
		`INSERT INTO best_scores (board, score, updated_at)
		 VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(board) DO UPDATE
		 SET score = excluded.score, updated_at = excluded.updated_at
		 WHERE excluded.score > best_scores.score`,
		board, score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save best score: %w", err)
	}
	return nil
}

// ClearScores deletes the history and best score for the board.
func (s *Store) ClearScores(board string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM scores WHERE board = ?", board); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM best_scores WHERE board = ?", board); err != nil {
		return fmt.Errorf("storage: cannot clear best score: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// Boards lists every board with recorded games, alphabetically.
func (s *Store) Boards() ([]string, error) {
	rows, err := s.db.Query("SELECT DISTINCT board FROM scores ORDER BY board")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot list boards: %w", err)
	}
	defer rows.Close()

	var boards []string
	for rows.Next() {
		var b string
		if err := rows.Scan(&b); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		boards = append(boards, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return boards, nil
}

// GameStats contains aggregated statistics for a board.
type GameStats struct {
	Board      string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LongestLen int
	LastPlayed time.Time
}

// GetGameStats retrieves aggregated statistics for a board.
func (s *Store) GetGameStats(board string) (*GameStats, error) {
	stats := &GameStats{Board: board}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(score), 0), COALESCE(MAX(length), 0)
		 FROM scores WHERE board = ?`,
		board,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.TotalScore, &stats.LongestLen)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM scores WHERE board = ? ORDER BY id DESC LIMIT 1`,
		board,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// parseTime handles the driver returning either time.Time or a string.
func parseTime(v any) time.Time {
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
