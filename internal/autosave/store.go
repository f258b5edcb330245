// Package autosave persists in-progress form input so a crash or restart
// never loses what the user typed. Drafts are stored per section in a
// SQLite database under the state directory.
package autosave

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/Vivinjayanth/AI-Microservices-Platform/internal/config"
	"github.com/Vivinjayanth/AI-Microservices-Platform/internal/logging"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS drafts (
	section  TEXT PRIMARY KEY,
	data     TEXT NOT NULL,
	saved_at TEXT NOT NULL
);
`

// Draft is one saved snapshot of a section's input.
type Draft struct {
	Section string
	Data    string
	SavedAt time.Time
}

// Store is a SQLite-backed draft store. Safe for concurrent use; the
// database serializes writers.
type Store struct {
	db *sql.DB
}

// DefaultPath returns the draft database location under the state dir.
func DefaultPath() string {
	return filepath.Join(config.Get("state_dir", os.TempDir()), "drafts.db")
}

// NewStore opens (and if needed creates) the draft database at dbPath.
func NewStore(dbPath string) (*Store, error) {
	if strings.TrimSpace(dbPath) == "" {
		return nil, fmt.Errorf("autosave store: db path cannot be empty")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("autosave store: create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("autosave store: open db: %w", err)
	}

	store := &Store{db: db}
	if err := store.init(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *Store) init() error {
	if _, err := s.db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		return fmt.Errorf("autosave store: set busy timeout: %w", err)
	}
	if _, err := s.db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("autosave store: create schema: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Save upserts the draft for section.
func (s *Store) Save(section, data string) error {
	if strings.TrimSpace(section) == "" {
		return fmt.Errorf("autosave store: section cannot be empty")
	}
	_, err := s.db.Exec(
		`INSERT INTO drafts (section, data, saved_at) VALUES (?, ?, ?)
		 ON CONFLICT(section) DO UPDATE SET data = excluded.data, saved_at = excluded.saved_at`,
		section, data, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("autosave store: save draft: %w", err)
	}
	return nil
}

// Load returns the draft for section. A missing section returns ok=false
// without error. A row whose timestamp cannot be parsed is treated as
// corrupted: it is deleted and reported as missing.
func (s *Store) Load(section string) (Draft, bool, error) {
	var draft Draft
	var savedAt string
	err := s.db.QueryRow(
		`SELECT data, saved_at FROM drafts WHERE section = ?`, section,
	).Scan(&draft.Data, &savedAt)
	if err == sql.ErrNoRows {
		return Draft{}, false, nil
	}
	if err != nil {
		return Draft{}, false, fmt.Errorf("autosave store: load draft: %w", err)
	}

	draft.Section = section
	draft.SavedAt, err = time.Parse(time.RFC3339, savedAt)
	if err != nil {
		logging.Warn("discarding corrupted draft", "section", section)
		_ = s.Delete(section)
		return Draft{}, false, nil
	}
	return draft, true, nil
}

// Delete removes the draft for section. Deleting a missing section is
// not an error.
func (s *Store) Delete(section string) error {
	if _, err := s.db.Exec(`DELETE FROM drafts WHERE section = ?`, section); err != nil {
		return fmt.Errorf("autosave store: delete draft: %w", err)
	}
	return nil
}

// Sections lists the sections that currently hold a draft.
func (s *Store) Sections() ([]string, error) {
	rows, err := s.db.Query(`SELECT section FROM drafts ORDER BY section`)
	if err != nil {
		return nil, fmt.Errorf("autosave store: list sections: %w", err)
	}
	defer rows.Close()

	var sections []string
	for rows.Next() {
		var section string
		if err := rows.Scan(&section); err != nil {
			return nil, fmt.Errorf("autosave store: scan section: %w", err)
		}
		sections = append(sections, section)
	}
	return sections, rows.Err()
}
