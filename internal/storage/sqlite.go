// Package storage provides SQLite-based persistence for level progress
// and solution replays. Uses the pure-Go modernc.org/sqlite driver to
// avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/rionnag/unblocked/internal/replay"
	"github.com/rionnag/unblocked/internal/session"
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
		CREATE TABLE IF NOT EXISTS level_progress (
			level_id TEXT PRIMARY KEY,
			attempts INTEGER NOT NULL DEFAULT 0,
			wins INTEGER NOT NULL DEFAULT 0,
			best_throws INTEGER NOT NULL DEFAULT 0,
			first_win DATETIME,
			help_used INTEGER NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS replays (
			level_id TEXT PRIMARY KEY,
			version INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS replay_actions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level_id TEXT NOT NULL,
			seq INTEGER NOT NULL,
			kind INTEGER NOT NULL,
			delay_ns INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_replay_actions_level ON replay_actions(level_id, seq);
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

// SaveProgress upserts the progress row for a level.
func (s *Store) SaveProgress(p *session.Progress) error {
	var firstWin any
	if !p.FirstWin.IsZero() {
		firstWin = p.FirstWin.UTC().Format("2006-01-02 15:04:05")
	}
	_, err := s.db.Exec(
		`INSERT INTO level_progress (level_id, attempts, wins, best_throws, first_win, help_used)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(level_id) DO UPDATE SET
			attempts = excluded.attempts,
			wins = excluded.wins,
			best_throws = excluded.best_throws,
			first_win = excluded.first_win,
			help_used = excluded.help_used`,
		p.LevelID, p.Attempts, p.Wins, p.BestThrows, firstWin, boolToInt(p.HelpUsed),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save progress: %w", err)
	}
	return nil
}

// LoadProgress returns the stored progress for a level, or a fresh zero
// record when the level has never been played.
func (s *Store) LoadProgress(levelID string) (*session.Progress, error) {
	p := &session.Progress{LevelID: levelID}
	var firstWin any
	var helpUsed int

	err := s.db.QueryRow(
		`SELECT attempts, wins, best_throws, first_win, help_used
		 FROM level_progress
		 WHERE level_id = ?`,
		levelID,
	).Scan(&p.Attempts, &p.Wins, &p.BestThrows, &firstWin, &helpUsed)

	if err == sql.ErrNoRows {
		return p, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query progress: %w", err)
	}

	p.HelpUsed = helpUsed != 0
	p.FirstWin = parseStoredTime(firstWin)
	return p, nil
}

// AllProgress returns progress for every level that has been played,
// ordered by level id.
func (s *Store) AllProgress() ([]session.Progress, error) {
	rows, err := s.db.Query(
		`SELECT level_id, attempts, wins, best_throws, first_win, help_used
		 FROM level_progress
		 ORDER BY level_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query progress: %w", err)
	}
	defer rows.Close()

	var all []session.Progress
	for rows.Next() {
		var p session.Progress
		var firstWin any
		var helpUsed int
		if err := rows.Scan(&p.LevelID, &p.Attempts, &p.Wins, &p.BestThrows, &firstWin, &helpUsed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		p.HelpUsed = helpUsed != 0
		p.FirstWin = parseStoredTime(firstWin)
		all = append(all, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return all, nil
}

// SolvedCount returns how many levels have at least one win.
func (s *Store) SolvedCount() (int, error) {
	var n int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM level_progress WHERE wins > 0",
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count solved levels: %w", err)
	}
	return n, nil
}

// SaveReplay stores the replay for a level, replacing any previous one.
// One replay per level is kept.
func (s *Store) SaveReplay(rec replay.Record) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM replay_actions WHERE level_id = ?", rec.LevelID); err != nil {
		return fmt.Errorf("storage: cannot clear old replay: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM replays WHERE level_id = ?", rec.LevelID); err != nil {
		return fmt.Errorf("storage: cannot clear old replay: %w", err)
	}

	if _, err := tx.Exec(
		"INSERT INTO replays (level_id, version) VALUES (?, ?)",
		rec.LevelID, rec.Version,
	); err != nil {
		return fmt.Errorf("storage: cannot save replay: %w", err)
	}

	for i, a := range rec.Actions {
		if _, err := tx.Exec(
			"INSERT INTO replay_actions (level_id, seq, kind, delay_ns) VALUES (?, ?, ?, ?)",
			rec.LevelID, i, int(a.Kind), int64(a.Delay),
		); err != nil {
			return fmt.Errorf("storage: cannot save replay action: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit replay: %w", err)
	}
	return nil
}

// LoadReplay returns the stored replay for a level, or nil if none
// exists. The record's version is returned as stored; the player is the
// one that decides whether it can play it.
func (s *Store) LoadReplay(levelID string) (*replay.Record, error) {
	rec := &replay.Record{LevelID: levelID}

	err := s.db.QueryRow(
		"SELECT version FROM replays WHERE level_id = ?",
		levelID,
	).Scan(&rec.Version)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replay: %w", err)
	}

	rows, err := s.db.Query(
		`SELECT kind, delay_ns
		 FROM replay_actions
		 WHERE level_id = ?
		 ORDER BY seq`,
		levelID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replay actions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var kind int
		var delayNS int64
		if err := rows.Scan(&kind, &delayNS); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		rec.Actions = append(rec.Actions, replay.Action{
			Kind:  replay.ActionKind(kind),
			Delay: time.Duration(delayNS),
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return rec, nil
}

// ClearLevel deletes all stored data for a level: progress and replay.
func (s *Store) ClearLevel(levelID string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, q := range []string{
		"DELETE FROM level_progress WHERE level_id = ?",
		"DELETE FROM replay_actions WHERE level_id = ?",
		"DELETE FROM replays WHERE level_id = ?",
	} {
		if _, err := tx.Exec(q, levelID); err != nil {
			return fmt.Errorf("storage: cannot clear level: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot clear level: %w", err)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// parseStoredTime handles the driver returning DATETIME columns as
// either time.Time or string.
func parseStoredTime(v any) time.Time {
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
