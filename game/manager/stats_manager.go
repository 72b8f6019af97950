package manager

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Stats is the running result of all completed matches.
type Stats struct {
	MatchesPlayed int     `json:"matchesPlayed"`
	AIWinRate     float64 `json:"aiWinRate"`
}

// Record folds one finished match into the running average.
// aiScored is true when the AI finished the match with a score above zero.
func (s Stats) Record(aiScored bool) Stats {
	success := 0.0
	if aiScored {
		success = 1
	}
	played := float64(s.MatchesPlayed)
	return Stats{
		MatchesPlayed: s.MatchesPlayed + 1,
		AIWinRate:     (s.AIWinRate*played + success) / (played + 1),
	}
}

// StatsStore persists Stats between runs.
type StatsStore interface {
	Load() (Stats, error)
	Save(Stats) error
	Close() error
}

// OpenStatsStore picks a backend from the path: .db, .sqlite and .sqlite3
// files use SQLite, anything else is a JSON file.
func OpenStatsStore(path string) (StatsStore, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return OpenSQLiteStatsStore(path)
	default:
		return NewFileStatsStore(path), nil
	}
}

// FileStatsStore keeps Stats in a JSON file.
type FileStatsStore struct {
	path string
}

func NewFileStatsStore(path string) *FileStatsStore {
	return &FileStatsStore{path: path}
}

// Load returns zero Stats when the file does not exist yet.
func (fs *FileStatsStore) Load() (Stats, error) {
	data, err := os.ReadFile(fs.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Stats{}, nil
		}
		return Stats{}, fmt.Errorf("read stats file: %w", err)
	}

	var stats Stats
	if err := json.Unmarshal(data, &stats); err != nil {
		return Stats{}, fmt.Errorf("decode stats file %s: %w", fs.path, err)
	}
	if stats.MatchesPlayed < 0 || stats.AIWinRate < 0 || stats.AIWinRate > 1 {
		return Stats{}, fmt.Errorf("stats file %s out of range: %+v", fs.path, stats)
	}
	return stats, nil
}

func (fs *FileStatsStore) Save(stats Stats) error {
	if dir := filepath.Dir(fs.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create stats directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return fmt.Errorf("encode stats: %w", err)
	}

	// write-then-rename so a crash never leaves a torn file
	tmp := fs.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write stats file: %w", err)
	}
	if err := os.Rename(tmp, fs.path); err != nil {
		return fmt.Errorf("replace stats file: %w", err)
	}
	return nil
}

func (fs *FileStatsStore) Close() error { return nil }
