// Package storage provides SQLite-based persistence for scores and stage clears.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single run score.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Score     int
	CreatedAt time.Time
}

// StageClear is one recorded stage completion.
type StageClear struct {
	ID         int64
	RunID      string
	StageID    string
	Moves      int
	ShiftsUsed int
	Undos      int
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
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_game_id ON scores(game_id);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);

		CREATE TABLE IF NOT EXISTS stage_clears (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL,
			stage_id TEXT NOT NULL,
			moves INTEGER NOT NULL,
			shifts_used INTEGER NOT NULL,
			undos INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_stage_clears_stage ON stage_clears(stage_id, moves, shifts_used);
		CREATE INDEX IF NOT EXISTS idx_stage_clears_run ON stage_clears(run_id);
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

// NewRunID returns a fresh identifier grouping the clears of one run.
func NewRunID() string {
	return uuid.NewString()
}

// SaveScore records a final run score for the given game.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(gameID string, score int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (game_id, score) VALUES (?, ?)",
		gameID, score,
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

// TopScores retrieves the top N scores for the given game.
// Results are ordered by score descending.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, score, created_at
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Score, &createdAt); err != nil {
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

// HighScore returns the highest score for the given game.
// Returns 0 if no scores exist.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE game_id = ?",
		gameID,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// ClearScores deletes all scores for the given game.
func (s *Store) ClearScores(gameID string) error {
	_, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// SaveClear records a stage completion. An empty RunID gets a fresh one.
// Returns the ID of the inserted record.
func (s *Store) SaveClear(c StageClear) (int64, error) {
	if c.StageID == "" {
		return 0, errors.New("storage: stage clear without stage id")
	}
	if c.RunID == "" {
		c.RunID = NewRunID()
	}

	res, err := s.db.Exec(
		`INSERT INTO stage_clears (run_id, stage_id, moves, shifts_used, undos)
		 VALUES (?, ?, ?, ?, ?)`,
		c.RunID, c.StageID, c.Moves, c.ShiftsUsed, c.Undos,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save stage clear: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// BestClear returns the clear with the fewest moves, then fewest shifts,
// for the stage. Returns nil when the stage was never cleared.
func (s *Store) BestClear(stageID string) (*StageClear, error) {
	var c StageClear
	var createdAt any
	err := s.db.QueryRow(
		`SELECT id, run_id, stage_id, moves, shifts_used, undos, created_at
		 FROM stage_clears
		 WHERE stage_id = ?
		 ORDER BY moves ASC, shifts_used ASC, undos ASC, id ASC
		 LIMIT 1`,
		stageID,
	).Scan(&c.ID, &c.RunID, &c.StageID, &c.Moves, &c.ShiftsUsed, &c.Undos, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best clear: %w", err)
	}
	c.CreatedAt = parseTime(createdAt)
	return &c, nil
}

// ClearsForStage lists clears of a stage, best first.
func (s *Store) ClearsForStage(stageID string, limit int) ([]StageClear, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryClears(
		`SELECT id, run_id, stage_id, moves, shifts_used, undos, created_at
		 FROM stage_clears
		 WHERE stage_id = ?
		 ORDER BY moves ASC, shifts_used ASC, undos ASC, id ASC
		 LIMIT ?`,
		stageID, limit,
	)
}

// RunClears lists the clears recorded under one run id in order.
func (s *Store) RunClears(runID string) ([]StageClear, error) {
	return s.queryClears(
		`SELECT id, run_id, stage_id, moves, shifts_used, undos, created_at
		 FROM stage_clears
		 WHERE run_id = ?
		 ORDER BY id ASC`,
		runID,
	)
}

func (s *Store) queryClears(query string, args ...any) ([]StageClear, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query stage clears: %w", err)
	}
	defer rows.Close()

	var clears []StageClear
	for rows.Next() {
		var c StageClear
		var createdAt any
		if err := rows.Scan(&c.ID, &c.RunID, &c.StageID, &c.Moves, &c.ShiftsUsed, &c.Undos, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		c.CreatedAt = parseTime(createdAt)
		clears = append(clears, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return clears, nil
}

// StageStats aggregates clears of one stage.
type StageStats struct {
	StageID    string
	Clears     int
	BestMoves  int
	BestShifts int
	LastPlayed time.Time
}

// AllStageStats returns stats for every stage that was cleared at least once.
func (s *Store) AllStageStats() (map[string]*StageStats, error) {
	rows, err := s.db.Query(
		`SELECT stage_id, COUNT(*), MIN(moves), MIN(shifts_used), MAX(created_at)
		 FROM stage_clears
		 GROUP BY stage_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stage stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*StageStats)
	for rows.Next() {
		var st StageStats
		var lastPlayed any
		if err := rows.Scan(&st.StageID, &st.Clears, &st.BestMoves, &st.BestShifts, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.StageID] = &st
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// parseTime handles both time.Time and the string form SQLite may return.
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
