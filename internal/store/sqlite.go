package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/amishk599/resumatch/internal/model"
)

// Ensure SQLiteStore implements model.HistoryStore.
var _ model.HistoryStore = (*SQLiteStore)(nil)

// SQLiteStore keeps past analyses in a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) a SQLite database at dbPath and ensures the
// analyses table exists.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	// Verify the connection is alive.
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging sqlite db: %w", err)
	}

	createTable := `CREATE TABLE IF NOT EXISTS analyses (
		id          TEXT PRIMARY KEY,
		resume_name TEXT NOT NULL,
		percent     REAL NOT NULL,
		matched     TEXT NOT NULL,
		missing     TEXT NOT NULL,
		created_at  INTEGER NOT NULL
	)`
	if _, err := db.Exec(createTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating analyses table: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Save records one analysis. Saving the same ID twice replaces the row.
func (s *SQLiteStore) Save(rec model.Record) error {
	matched, err := json.Marshal(rec.Matched)
	if err != nil {
		return fmt.Errorf("encoding matched skills for %s: %w", rec.ID, err)
	}
	missing, err := json.Marshal(rec.Missing)
	if err != nil {
		return fmt.Errorf("encoding missing skills for %s: %w", rec.ID, err)
	}

	_, err = s.db.Exec(
		`INSERT OR REPLACE INTO analyses (id, resume_name, percent, matched, missing, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.ResumeName, rec.Percent, string(matched), string(missing), rec.CreatedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("saving analysis %s: %w", rec.ID, err)
	}
	return nil
}

// Recent returns up to limit analyses, newest first. limit must be positive.
func (s *SQLiteStore) Recent(limit int) ([]model.Record, error) {
	if limit < 1 {
		return nil, fmt.Errorf("listing analyses: limit must be positive, got %d", limit)
	}
	rows, err := s.db.Query(
		`SELECT id, resume_name, percent, matched, missing, created_at
		 FROM analyses ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing analyses: %w", err)
	}
	defer rows.Close()

	var records []model.Record
	for rows.Next() {
		var (
			rec              model.Record
			matched, missing string
			createdAt        int64
		)
		if err := rows.Scan(&rec.ID, &rec.ResumeName, &rec.Percent, &matched, &missing, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning analysis: %w", err)
		}
		if err := json.Unmarshal([]byte(matched), &rec.Matched); err != nil {
			return nil, fmt.Errorf("decoding matched skills for %s: %w", rec.ID, err)
		}
		if err := json.Unmarshal([]byte(missing), &rec.Missing); err != nil {
			return nil, fmt.Errorf("decoding missing skills for %s: %w", rec.ID, err)
		}
		rec.CreatedAt = time.Unix(0, createdAt)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Cleanup deletes analyses older than the given duration.
func (s *SQLiteStore) Cleanup(olderThan time.Duration) error {
	cutoff := time.Now().Add(-olderThan).UnixNano()
	_, err := s.db.Exec("DELETE FROM analyses WHERE created_at < ?", cutoff)
	if err != nil {
		return fmt.Errorf("cleaning up analyses older than %v: %w", olderThan, err)
	}
	return nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
