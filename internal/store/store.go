package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"tavolo/internal/session"
)

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
    id         INTEGER PRIMARY KEY CHECK (id = 1),
    token      TEXT NOT NULL,
    admin_id   TEXT,
    email      TEXT,
    username   TEXT,
    created_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ','now'))
);

CREATE TABLE IF NOT EXISTS snapshots (
    view       TEXT PRIMARY KEY,
    payload    TEXT NOT NULL,
    fetched_at TEXT NOT NULL
);
`

// ErrNoSession is returned when no session has been saved yet.
var ErrNoSession = errors.New("no stored session")

// Store keeps the session and the last-known-good list snapshots in a local
// SQLite database, so a restarted console comes up signed in and showing
// data immediately (marked stale until the first poll lands).
type Store struct {
	db *sql.DB
}

// Open opens or creates the database and initializes the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// SaveSession replaces whatever session was stored before.
func (s *Store) SaveSession(sess *session.Session) error {
	_, err := s.db.Exec(`
		INSERT INTO sessions (id, token, admin_id, email, username, created_at)
		VALUES (1, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			token = excluded.token,
			admin_id = excluded.admin_id,
			email = excluded.email,
			username = excluded.username,
			created_at = excluded.created_at`,
		sess.Token, sess.AdminID, sess.Email, sess.Username,
		sess.CreatedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// LoadSession returns the stored session or ErrNoSession.
func (s *Store) LoadSession() (*session.Session, error) {
	var sess session.Session
	var createdAt string
	err := s.db.QueryRow(`
		SELECT token, admin_id, email, username, created_at
		FROM sessions WHERE id = 1`).
		Scan(&sess.Token, &sess.AdminID, &sess.Email, &sess.Username, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		sess.CreatedAt = t
	}
	return &sess, nil
}

// ClearSession removes the stored session. Logout keeps snapshots; they are
// harmless and make the next sign-in feel instant.
func (s *Store) ClearSession() error {
	if _, err := s.db.Exec(`DELETE FROM sessions`); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// SaveSnapshot stores a view's rows as JSON under its view key.
func (s *Store) SaveSnapshot(view string, rows any, fetchedAt time.Time) error {
	payload, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("encode snapshot %s: %w", view, err)
	}
	_, err = s.db.Exec(`
		INSERT INTO snapshots (view, payload, fetched_at)
		VALUES (?, ?, ?)
		ON CONFLICT(view) DO UPDATE SET
			payload = excluded.payload,
			fetched_at = excluded.fetched_at`,
		view, string(payload), fetchedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("save snapshot %s: %w", view, err)
	}
	return nil
}

// LoadSnapshot decodes a view's stored rows into out. ok is false when no
// snapshot exists for the view.
func (s *Store) LoadSnapshot(view string, out any) (fetchedAt time.Time, ok bool, err error) {
	var payload, fetched string
	scanErr := s.db.QueryRow(`SELECT payload, fetched_at FROM snapshots WHERE view = ?`, view).
		Scan(&payload, &fetched)
	if errors.Is(scanErr, sql.ErrNoRows) {
		return time.Time{}, false, nil
	}
	if scanErr != nil {
		return time.Time{}, false, fmt.Errorf("load snapshot %s: %w", view, scanErr)
	}
	if err := json.Unmarshal([]byte(payload), out); err != nil {
		return time.Time{}, false, fmt.Errorf("decode snapshot %s: %w", view, err)
	}
	if t, parseErr := time.Parse(time.RFC3339, fetched); parseErr == nil {
		fetchedAt = t
	}
	return fetchedAt, true, nil
}
