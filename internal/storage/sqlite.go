// Package storage provides a SQLite journal of finished rounds.
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

	"github.com/vovakirdan/ghost-catcher/internal/core"
)

// Store manages the SQLite database connection for the round journal.
type Store struct {
	db *sql.DB
}

// Round is a journaled round.
type Round struct {
	ID int64
	core.RoundSummary
}

// Stats aggregates every journaled round of one game.
type Stats struct {
	GameID      string
	Rounds      int
	BestScore   int
	AvgScore    float64
	TotalGhosts int64
	TotalMissed int64
	LastPlayed  time.Time
}

// timeLayout is how ended_at is stored. It sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

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
		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			difficulty TEXT NOT NULL DEFAULT '',
			score INTEGER NOT NULL,
			high_score INTEGER NOT NULL,
			ghosts INTEGER NOT NULL DEFAULT 0,
			bombs INTEGER NOT NULL DEFAULT 0,
			nets INTEGER NOT NULL DEFAULT 0,
			missed INTEGER NOT NULL DEFAULT 0,
			ramps INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			ended_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_recent ON rounds(game_id, ended_at DESC);
		CREATE INDEX IF NOT EXISTS idx_rounds_top ON rounds(game_id, score DESC);
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

// SaveRound journals a finished round. A zero EndedAt is stored as now.
// Returns the ID of the inserted record.
func (s *Store) SaveRound(r core.RoundSummary) (int64, error) {
	if r.Game == "" {
		return 0, errors.New("storage: round has no game id")
	}
	endedAt := r.EndedAt
	if endedAt.IsZero() {
		endedAt = time.Now()
	}

	result, err := s.db.Exec(
		`INSERT INTO rounds (game_id, difficulty, score, high_score, ghosts, bombs, nets, missed, ramps, duration_ms, ended_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Game, r.Difficulty, r.Score, r.HighScore,
		r.Ghosts, r.Bombs, r.Nets, r.Missed, r.Ramps,
		r.Duration.Milliseconds(), endedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save round: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const roundColumns = `id, game_id, difficulty, score, high_score, ghosts, bombs, nets, missed, ramps, duration_ms, ended_at`

// RecentRounds returns the latest rounds of a game, newest first.
func (s *Store) RecentRounds(gameID string, limit int) ([]Round, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRounds(
		`SELECT `+roundColumns+` FROM rounds WHERE game_id = ? ORDER BY ended_at DESC, id DESC LIMIT ?`,
		gameID, limit,
	)
}

// TopRounds returns the best rounds of a game, highest score first.
// Ties go to the earlier round.
func (s *Store) TopRounds(gameID string, limit int) ([]Round, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRounds(
		`SELECT `+roundColumns+` FROM rounds WHERE game_id = ? ORDER BY score DESC, ended_at ASC LIMIT ?`,
		gameID, limit,
	)
}

func (s *Store) queryRounds(query string, args ...any) ([]Round, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var rounds []Round
	for rows.Next() {
		var (
			r          Round
			durationMs int64
			endedAt    string
		)
		if err := rows.Scan(&r.ID, &r.Game, &r.Difficulty, &r.Score, &r.HighScore,
			&r.Ghosts, &r.Bombs, &r.Nets, &r.Missed, &r.Ramps, &durationMs, &endedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationMs) * time.Millisecond
		r.EndedAt = parseTime(endedAt)
		rounds = append(rounds, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return rounds, nil
}

// RoundStats retrieves aggregated statistics for a game. A game with no
// journaled rounds has zero stats.
func (s *Store) RoundStats(gameID string) (*Stats, error) {
	stats := &Stats{GameID: gameID}

	var lastPlayed sql.NullString
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(ghosts), 0), COALESCE(SUM(missed), 0), MAX(ended_at)
		 FROM rounds WHERE game_id = ?`,
		gameID,
	).Scan(&stats.Rounds, &stats.BestScore, &stats.AvgScore, &stats.TotalGhosts, &stats.TotalMissed, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get round stats: %w", err)
	}
	if lastPlayed.Valid {
		stats.LastPlayed = parseTime(lastPlayed.String)
	}

	return stats, nil
}

// ClearRounds deletes every journaled round of a game.
func (s *Store) ClearRounds(gameID string) error {
	if _, err := s.db.Exec("DELETE FROM rounds WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear rounds: %w", err)
	}
	return nil
}

func parseTime(v string) time.Time {
	t, err := time.Parse(timeLayout, v)
	if err != nil {
		return time.Time{}
	}
	return t
}
