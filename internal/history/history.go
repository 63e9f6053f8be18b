// Package history persists retired notifications in SQLite.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/llehouerou/notice/internal/db"
)

const (
	appName    = "notice"
	dbFileName = "notice.db"
)

// Entry is one retired notification.
type Entry struct {
	ID        int64
	Severity  string
	Title     string
	Message   string
	Reason    string
	ShownAt   time.Time
	RetiredAt time.Time
}

// Store records and lists retired notifications.
type Store struct {
	db     *sql.DB
	retain int // newest entries kept; 0 keeps everything
}

// Open opens (creating if needed) the history database at path. An empty
// path means $XDG_DATA_HOME/notice/notice.db.
func Open(path string) (*Store, error) {
	if path == "" {
		var err error
		path, err = xdg.DataFile(filepath.Join(appName, dbFileName))
		if err != nil {
			return nil, fmt.Errorf("resolve history path: %w", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create history dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}

	return newStore(db)
}

// OpenMemory opens a throwaway in-memory store.
func OpenMemory() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, err
	}
	// each pooled connection would get its own empty database
	db.SetMaxOpenConns(1)
	return newStore(db)
}

func newStore(db *sql.DB) (*Store, error) {
	if err := initSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("init history schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SetRetention limits the store to the n most recently retired entries,
// pruned on every Record. Zero or negative keeps everything.
func (s *Store) SetRetention(n int) {
	s.retain = max(n, 0)
}

// Record stores e, prunes entries beyond the retention limit, and returns
// the new entry's ID.
func (s *Store) Record(e Entry) (int64, error) {
	var id int64
	err := db.WithTx(context.Background(), s.db, func(tx *sql.Tx) error {
		res, err := tx.Exec(`
			INSERT INTO notifications (severity, title, message, reason, shown_at, retired_at)
			VALUES (?, ?, ?, ?, ?, ?)
		`, e.Severity, e.Title, e.Message, e.Reason, e.ShownAt.UnixMilli(), e.RetiredAt.UnixMilli())
		if err != nil {
			return err
		}
		if id, err = res.LastInsertId(); err != nil {
			return err
		}
		if s.retain == 0 {
			return nil
		}
		_, err = tx.Exec(`
			DELETE FROM notifications WHERE id NOT IN (
				SELECT id FROM notifications
				ORDER BY retired_at DESC, id DESC
				LIMIT ?
			)
		`, s.retain)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("record notification: %w", err)
	}
	return id, nil
}

// Recent returns up to limit entries, most recently retired first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	if limit <= 0 {
		return nil, nil
	}

	rows, err := s.db.Query(`
		SELECT id, severity, title, message, reason, shown_at, retired_at
		FROM notifications
		ORDER BY retired_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var shown, retired int64
		if err := rows.Scan(&e.ID, &e.Severity, &e.Title, &e.Message, &e.Reason, &shown, &retired); err != nil {
			return nil, err
		}
		e.ShownAt = time.UnixMilli(shown)
		e.RetiredAt = time.UnixMilli(retired)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// CountByReason returns how many notifications retired for each reason.
func (s *Store) CountByReason() (map[string]int, error) {
	rows, err := s.db.Query(`SELECT reason, COUNT(*) FROM notifications GROUP BY reason`)
	if err != nil {
		return nil, fmt.Errorf("count notifications: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var reason string
		var n int
		if err := rows.Scan(&reason, &n); err != nil {
			return nil, err
		}
		counts[reason] = n
	}
	return counts, rows.Err()
}

// Clear deletes every entry.
func (s *Store) Clear() error {
	_, err := s.db.Exec(`DELETE FROM notifications`)
	return err
}
