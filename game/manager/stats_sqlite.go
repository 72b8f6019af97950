package manager

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStatsStore keeps Stats in a single-row SQLite table.
type SQLiteStatsStore struct {
	db *sql.DB
}

func OpenSQLiteStatsStore(dsn string) (*SQLiteStatsStore, error) {
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open stats db: %w", err)
	}
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS match_stats (
			id             INTEGER PRIMARY KEY CHECK (id = 1),
			matches_played INTEGER NOT NULL,
			ai_win_rate    REAL    NOT NULL
		)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create match_stats: %w", err)
	}
	return &SQLiteStatsStore{db: db}, nil
}

func (s *SQLiteStatsStore) Load() (Stats, error) {
	var stats Stats
	err := s.db.QueryRow(`SELECT matches_played, ai_win_rate FROM match_stats WHERE id = 1`).
		Scan(&stats.MatchesPlayed, &stats.AIWinRate)
	if errors.Is(err, sql.ErrNoRows) {
		return Stats{}, nil
	}
	if err != nil {
		return Stats{}, fmt.Errorf("query match_stats: %w", err)
	}
	return stats, nil
}

func (s *SQLiteStatsStore) Save(stats Stats) error {
	_, err := s.db.Exec(`
		INSERT INTO match_stats (id, matches_played, ai_win_rate) VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			matches_played = excluded.matches_played,
			ai_win_rate    = excluded.ai_win_rate`,
		stats.MatchesPlayed, stats.AIWinRate)
	if err != nil {
		return fmt.Errorf("save match_stats: %w", err)
	}
	return nil
}

func (s *SQLiteStatsStore) Close() error {
	return s.db.Close()
}
