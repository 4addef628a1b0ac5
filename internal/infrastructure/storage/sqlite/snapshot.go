// Package sqlite caches state slices on disk so the daemon can warm-start
// and the CLI can read the last known state offline.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

var ErrNoSnapshot = errors.New("no snapshot")

type Slice struct {
	Name    string
	Data    json.RawMessage
	SavedAt time.Time
}

type SnapshotStorage struct {
	db *sql.DB
}

func NewSnapshotStorage(path string) (*SnapshotStorage, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open snapshot database: %w", err)
	}

	s := &SnapshotStorage{db: db}

	if err := s.initTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init snapshot tables: %w", err)
	}

	return s, nil
}

func (s *SnapshotStorage) initTables() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS slices (
			name TEXT PRIMARY KEY,
			data BLOB NOT NULL,
			saved_at DATETIME NOT NULL
		);
	`)
	return err
}

// Save replaces the stored slices in one transaction.
func (s *SnapshotStorage) Save(ctx context.Context, slices []Slice) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO slices (name, data, saved_at) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET data = excluded.data, saved_at = excluded.saved_at
	`)
	if err != nil {
		return fmt.Errorf("prepare: %w", err)
	}
	defer stmt.Close()

	for _, sl := range slices {
		if _, err := stmt.ExecContext(ctx, sl.Name, []byte(sl.Data), sl.SavedAt.UTC()); err != nil {
			return fmt.Errorf("save slice %s: %w", sl.Name, err)
		}
	}

	return tx.Commit()
}

// Load returns every stored slice ordered by name.
func (s *SnapshotStorage) Load(ctx context.Context) ([]Slice, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name, data, saved_at FROM slices ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("query slices: %w", err)
	}
	defer rows.Close()

	var out []Slice
	for rows.Next() {
		var (
			sl   Slice
			data []byte
		)
		if err := rows.Scan(&sl.Name, &data, &sl.SavedAt); err != nil {
			return nil, fmt.Errorf("scan slice: %w", err)
		}
		sl.Data = data
		out = append(out, sl)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(out) == 0 {
		return nil, ErrNoSnapshot
	}
	return out, nil
}

func (s *SnapshotStorage) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM slices`)
	return err
}

func (s *SnapshotStorage) Close() error {
	return s.db.Close()
}
