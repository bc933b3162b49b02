package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Outcome classifies how a dispatched command ended.
type Outcome string

const (
	OutcomeOK      Outcome = "ok"
	OutcomeWarning Outcome = "warning"
	OutcomeError   Outcome = "error"
)

// Kind is the command variety recorded in the journal.
type Kind string

const (
	KindAssign Kind = "assign"
	KindMove   Kind = "move"
	KindDelete Kind = "delete"
)

// Entry is one journaled command. The journal records operator activity
// only; it never caches server state.
type Entry struct {
	ID        string
	At        time.Time
	Kind      Kind
	JobID     string
	CleanerID string
	Slot      string
	Date      string
	Outcome   Outcome
	Detail    string
}

// Store is an append-only local journal of issued commands, backed by an
// embedded sqlite database under the config dir.
type Store struct {
	path string
	db   *sql.DB
}

// NewStore returns an unopened journal at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Open creates the database (and its directory) if needed and ensures the
// schema exists.
func (s *Store) Open() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create journal directory: %w", err)
	}
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open journal: %w", err)
	}
	s.db = db

	_, err = s.db.Exec(`
		CREATE TABLE IF NOT EXISTS command_history (
			id         TEXT PRIMARY KEY,
			at         TEXT NOT NULL,
			kind       TEXT NOT NULL,
			job_id     TEXT NOT NULL,
			cleaner_id TEXT,
			slot       TEXT,
			date       TEXT,
			outcome    TEXT NOT NULL,
			detail     TEXT
		)`)
	if err != nil {
		return fmt.Errorf("failed to create journal schema: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Append records one command outcome. The entry ID and timestamp are filled
// in when blank.
func (s *Store) Append(e Entry) error {
	if s.db == nil {
		return fmt.Errorf("journal not open")
	}
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.At.IsZero() {
		e.At = time.Now()
	}
	_, err := s.db.Exec(`
		INSERT INTO command_history (id, at, kind, job_id, cleaner_id, slot, date, outcome, detail)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.At.Format(time.RFC3339), string(e.Kind), e.JobID,
		e.CleanerID, e.Slot, e.Date, string(e.Outcome), e.Detail,
	)
	if err != nil {
		return fmt.Errorf("failed to append journal entry: %w", err)
	}
	return nil
}

// Recent returns the most recent entries, newest first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	if s.db == nil {
		return nil, fmt.Errorf("journal not open")
	}
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(`
		SELECT id, at, kind, job_id, cleaner_id, slot, date, outcome, detail
		FROM command_history ORDER BY at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to read journal: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var at string
		var cleanerID, slot, date, detail sql.NullString
		if err := rows.Scan(&e.ID, &at, &e.Kind, &e.JobID, &cleanerID, &slot, &date, &e.Outcome, &detail); err != nil {
			return nil, err
		}
		e.At, _ = time.Parse(time.RFC3339, at)
		e.CleanerID = cleanerID.String
		e.Slot = slot.String
		e.Date = date.String
		e.Detail = detail.String
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
