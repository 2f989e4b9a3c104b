// Package sqlite provides the SQLite-backed session store.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/louisbranch/reclaim.space/internal/backend"
	"github.com/louisbranch/reclaim.space/internal/session"
)

const schema = `CREATE TABLE IF NOT EXISTS sessions (
    session_id   TEXT PRIMARY KEY,
    credential   TEXT NOT NULL,
    subject_id   INTEGER NOT NULL,
    display_name TEXT NOT NULL,
    email        TEXT NOT NULL,
    created_at   INTEGER NOT NULL
)`

// Store provides SQLite-backed persistence for web sessions.
type Store struct {
	sqlDB    *sql.DB
	lifetime time.Duration
	now      func() time.Time
}

var _ session.Store = (*Store)(nil)

// Open opens and migrates a session store at path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("migrate sessions table: %w", err)
	}
	return &Store{sqlDB: sqlDB, lifetime: session.Lifetime, now: time.Now}, nil
}

// Close releases the underlying SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Save writes a credential/subject pair and returns the generated id.
func (s *Store) Save(ctx context.Context, credential string, subject backend.Subject) (string, error) {
	if s == nil || s.sqlDB == nil {
		return "", fmt.Errorf("session storage is not configured")
	}
	credential = strings.TrimSpace(credential)
	if credential == "" {
		return "", fmt.Errorf("credential is required")
	}

	id := uuid.NewString()
	createdAt := s.now().UTC()
	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO sessions (session_id, credential, subject_id, display_name, email, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id,
		credential,
		subject.ID,
		subject.DisplayName,
		subject.Email,
		timeToUnixMillis(createdAt),
	)
	if err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}
	return id, nil
}

// Read loads a session by id. Expired rows read as absent and are removed.
func (s *Store) Read(ctx context.Context, id string) (session.Session, bool, error) {
	if s == nil || s.sqlDB == nil {
		return session.Session{}, false, fmt.Errorf("session storage is not configured")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return session.Session{}, false, nil
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT session_id, credential, subject_id, display_name, email, created_at
		 FROM sessions WHERE session_id = ?`,
		id,
	)

	var stored session.Session
	var createdAt int64
	if err := row.Scan(
		&stored.ID,
		&stored.Credential,
		&stored.Subject.ID,
		&stored.Subject.DisplayName,
		&stored.Subject.Email,
		&createdAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return session.Session{}, false, nil
		}
		return session.Session{}, false, fmt.Errorf("read session: %w", err)
	}
	stored.CreatedAt = unixMillisToTime(createdAt)

	if s.lifetime > 0 && s.now().After(stored.CreatedAt.Add(s.lifetime)) {
		_ = s.Clear(ctx, id)
		return session.Session{}, false, nil
	}
	return stored, true, nil
}

// Clear removes a session row. The credential/subject pair lives in one row,
// so the delete is atomic for readers.
func (s *Store) Clear(ctx context.Context, id string) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("session storage is not configured")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil
	}
	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM sessions WHERE session_id = ?`, id); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func timeToUnixMillis(value time.Time) int64 {
	if value.IsZero() {
		return 0
	}
	return value.UTC().UnixMilli()
}

func unixMillisToTime(value int64) time.Time {
	if value <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(value).UTC()
}
