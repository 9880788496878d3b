// Package storage provides SQLite-based persistence for the SSH server's
// session journal. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for the session journal.
type Store struct {
	db *sql.DB
}

// SessionRecord describes one finished SSH session.
type SessionRecord struct {
	ID          int64
	User        string
	Remote      string
	StartedAt   time.Time
	EndedAt     time.Time
	GamesPlayed int
	Ticks       uint64
}

// Duration returns how long the session lasted.
func (r SessionRecord) Duration() time.Duration {
	return r.EndedAt.Sub(r.StartedAt)
}

// JournalStats aggregates the whole journal.
type JournalStats struct {
	Sessions    int
	Users       int
	GamesPlayed int
	Ticks       uint64
	LastSeen    time.Time
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
// Times are stored as unix milliseconds.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user TEXT NOT NULL,
			remote TEXT NOT NULL DEFAULT '',
			started_at INTEGER NOT NULL,
			ended_at INTEGER NOT NULL,
			games_played INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_ended_at ON sessions(ended_at DESC);
		CREATE INDEX IF NOT EXISTS idx_sessions_user ON sessions(user);
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

// RecordSession appends a finished session to the journal.
// Returns the ID of the inserted record.
func (s *Store) RecordSession(rec SessionRecord) (int64, error) {
	if rec.EndedAt.Before(rec.StartedAt) {
		return 0, fmt.Errorf("storage: session for %q ends before it starts", rec.User)
	}

	result, err := s.db.Exec(
		`INSERT INTO sessions (user, remote, started_at, ended_at, games_played, ticks)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.User, rec.Remote, rec.StartedAt.UnixMilli(), rec.EndedAt.UnixMilli(),
		rec.GamesPlayed, int64(rec.Ticks),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentSessions retrieves the last N sessions, newest first.
func (s *Store) RecentSessions(limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, user, remote, started_at, ended_at, games_played, ticks
		 FROM sessions
		 ORDER BY ended_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var records []SessionRecord
	for rows.Next() {
		var r SessionRecord
		var started, ended, ticks int64
		if err := rows.Scan(&r.ID, &r.User, &r.Remote, &started, &ended, &r.GamesPlayed, &ticks); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.StartedAt = time.UnixMilli(started)
		r.EndedAt = time.UnixMilli(ended)
		r.Ticks = uint64(ticks)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// Stats returns aggregate numbers over the whole journal.
func (s *Store) Stats() (JournalStats, error) {
	var st JournalStats
	var ticks, lastSeen int64

	err := s.db.QueryRow(
		`SELECT COUNT(*), COUNT(DISTINCT user),
		        COALESCE(SUM(games_played), 0), COALESCE(SUM(ticks), 0),
		        COALESCE(MAX(ended_at), 0)
		 FROM sessions`,
	).Scan(&st.Sessions, &st.Users, &st.GamesPlayed, &ticks, &lastSeen)
	if err != nil {
		return st, fmt.Errorf("storage: cannot get journal stats: %w", err)
	}

	st.Ticks = uint64(ticks)
	if lastSeen > 0 {
		st.LastSeen = time.UnixMilli(lastSeen)
	}
	return st, nil
}

// Prune deletes sessions that ended before cutoff and returns how many
// were removed.
func (s *Store) Prune(cutoff time.Time) (int64, error) {
	result, err := s.db.Exec("DELETE FROM sessions WHERE ended_at < ?", cutoff.UnixMilli())
	if err != nil {
		return 0, fmt.Errorf("storage: cannot prune sessions: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count pruned sessions: %w", err)
	}
	return n, nil
}
