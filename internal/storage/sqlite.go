// Package storage records finished hatman runs in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const timeLayout = "2006-01-02 15:04:05"

// Outcome is how a run ended.
type Outcome string

const (
	OutcomeDefeated Outcome = "defeated" // Player health reached zero
	OutcomeCleared  Outcome = "cleared"  // Final level quota met
)

// Store manages the SQLite database connection for run history.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// RunRecord is one finished run.
type RunRecord struct {
	ID        int64
	Player    string
	Score     int
	Level     int
	Outcome   Outcome
	Seed      uint64
	Ticks     uint64
	CreatedAt time.Time
}

// Stats contains aggregated statistics over recorded runs.
type Stats struct {
	Runs       int
	Cleared    int
	HighScore  int
	AvgScore   float64
	BestLevel  int
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It expands a leading "~", creates the parent directories if needed and
// runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath == "~" || strings.HasPrefix(dbPath, "~/") {
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

	store := &Store{db: db, now: time.Now}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player TEXT NOT NULL,
			score INTEGER NOT NULL,
			level INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			seed INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(score DESC, level DESC);
		CREATE INDEX IF NOT EXISTS idx_runs_player ON runs(player);
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

// SaveRun records a finished run and returns its ID.
// A zero CreatedAt is stamped with the current time.
func (s *Store) SaveRun(run RunRecord) (int64, error) {
	if run.Player == "" {
		run.Player = "anonymous"
	}
	switch run.Outcome {
	case OutcomeDefeated, OutcomeCleared:
	default:
		return 0, fmt.Errorf("storage: unknown outcome %q", run.Outcome)
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = s.now()
	}

	seed := int64(run.Seed)   //#nosec G115
	ticks := int64(run.Ticks) //#nosec G115

	result, err := s.db.Exec(
		`INSERT INTO runs (player, score, level, outcome, seed, ticks, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.Player, run.Score, run.Level, string(run.Outcome), seed, ticks,
		run.CreatedAt.UTC().Format(timeLayout),
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

// TopRuns retrieves the best N runs, highest score first.
// Ties go to the higher level, then the earlier run.
func (s *Store) TopRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT id, player, score, level, outcome, seed, ticks, created_at
		 FROM runs
		 ORDER BY score DESC, level DESC, created_at ASC, id ASC
		 LIMIT ?`,
		limit,
	)
}

// PlayerRuns retrieves the best N runs of one player.
func (s *Store) PlayerRuns(player string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT id, player, score, level, outcome, seed, ticks, created_at
		 FROM runs
		 WHERE player = ?
		 ORDER BY score DESC, level DESC, created_at ASC, id ASC
		 LIMIT ?`,
		player, limit,
	)
}

func (s *Store) queryRuns(query string, args ...any) ([]RunRecord, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var r RunRecord
		var outcome string
		var seed, ticks int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Player, &r.Score, &r.Level, &outcome, &seed, &ticks, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Outcome = Outcome(outcome)
		r.Seed = uint64(seed)   //#nosec G115
		r.Ticks = uint64(ticks) //#nosec G115
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// HighScore returns the highest recorded score, or 0 without runs.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(score) FROM runs").Scan(&score); err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// Stats retrieves aggregated statistics over all runs.
func (s *Store) Stats() (*Stats, error) {
	return s.stats("", nil)
}

// PlayerStats retrieves aggregated statistics over one player's runs.
func (s *Store) PlayerStats(player string) (*Stats, error) {
	return s.stats("WHERE player = ?", []any{player})
}

func (s *Store) stats(where string, args []any) (*Stats, error) {
	stats := &Stats{}

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(MAX(level), 0)
		 FROM runs `+where,
		append([]any{string(OutcomeCleared)}, args...)...,
	).Scan(&stats.Runs, &stats.Cleared, &stats.HighScore, &stats.AvgScore, &stats.BestLevel)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(`SELECT created_at FROM runs `+where+` ORDER BY created_at DESC, id DESC LIMIT 1`, args...).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// ClearRuns deletes all recorded runs and returns how many were removed.
func (s *Store) ClearRuns() (int64, error) {
	res, err := s.db.Exec("DELETE FROM runs")
	if err != nil {
		return 0, fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count cleared runs: %w", err)
	}
	return n, nil
}

// parseTime handles both time.Time and string datetime values.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t.UTC()
	case string:
		if parsed, err := time.Parse(timeLayout, t); err == nil {
			return parsed
		}
	case []byte:
		if parsed, err := time.Parse(timeLayout, string(t)); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
