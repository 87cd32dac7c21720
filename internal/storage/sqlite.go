// Package storage provides SQLite-based persistence for play sessions.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for session persistence.
type Store struct {
	db *sql.DB
}

// Session records the outcome of one play session.
type Session struct {
	ID          string
	Scenario    string
	Ticks       uint64
	Painted     int
	Bulldozed   int
	BlockEvents int
	Duration    int // seconds
	CreatedAt   time.Time
}

// ScenarioStats contains aggregated statistics for one scenario.
type ScenarioStats struct {
	Scenario     string
	Sessions     int
	TotalTicks   int64
	TotalPainted int64
	LastPlayed   time.Time
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

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			scenario TEXT NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			painted INTEGER NOT NULL DEFAULT 0,
			bulldozed INTEGER NOT NULL DEFAULT 0,
			block_events INTEGER NOT NULL DEFAULT 0,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_scenario ON sessions(scenario);
		CREATE INDEX IF NOT EXISTS idx_sessions_recent ON sessions(created_at DESC);
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

// SaveSession records a finished session. A session ID is generated when
// the caller leaves it empty. Returns the stored ID.
func (s *Store) SaveSession(sess Session) (string, error) {
	if sess.ID == "" {
		sess.ID = uuid.NewString()
	}
	_, err := s.db.Exec(
		`INSERT INTO sessions (id, scenario, ticks, painted, bulldozed, block_events, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		sess.ID, sess.Scenario, sess.Ticks, sess.Painted, sess.Bulldozed, sess.BlockEvents, sess.Duration,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save session: %w", err)
	}
	return sess.ID, nil
}

// RecentSessions retrieves the most recent sessions, newest first.
func (s *Store) RecentSessions(limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, scenario, ticks, painted, bulldozed, block_events, duration_secs, created_at
		 FROM sessions
		 ORDER BY created_at DESC, id
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var sess Session
		var createdAt any
		if err := rows.Scan(&sess.ID, &sess.Scenario, &sess.Ticks, &sess.Painted,
			&sess.Bulldozed, &sess.BlockEvents, &sess.Duration, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		sess.CreatedAt = parseTimestamp(createdAt)
		sessions = append(sessions, sess)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return sessions, nil
}

// SessionByID retrieves a single session, or nil if it does not exist.
func (s *Store) SessionByID(id string) (*Session, error) {
	var sess Session
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, scenario, ticks, painted, bulldozed, block_events, duration_secs, created_at
		 FROM sessions
		 WHERE id = ?`,
		id,
	).Scan(&sess.ID, &sess.Scenario, &sess.Ticks, &sess.Painted,
		&sess.Bulldozed, &sess.BlockEvents, &sess.Duration, &createdAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query session: %w", err)
	}

	sess.CreatedAt = parseTimestamp(createdAt)
	return &sess, nil
}

// StatsByScenario retrieves aggregated statistics for every scenario that
// has recorded sessions.
func (s *Store) StatsByScenario() (map[string]*ScenarioStats, error) {
	rows, err := s.db.Query(
		`SELECT scenario, COUNT(*), COALESCE(SUM(ticks), 0), COALESCE(SUM(painted), 0), MAX(created_at)
		 FROM sessions
		 GROUP BY scenario`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get scenario stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*ScenarioStats)
	for rows.Next() {
		var st ScenarioStats
		var lastPlayed any
		if err := rows.Scan(&st.Scenario, &st.Sessions, &st.TotalTicks, &st.TotalPainted, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTimestamp(lastPlayed)
		stats[st.Scenario] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// ClearSessions deletes all sessions for the given scenario.
func (s *Store) ClearSessions(scenario string) error {
	_, err := s.db.Exec("DELETE FROM sessions WHERE scenario = ?", scenario)
	if err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}

// parseTimestamp handles the driver returning DATETIME columns as either
// time.Time or string.
func parseTimestamp(v any) time.Time {
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
