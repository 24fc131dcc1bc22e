package activity

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Store wraps a SQLite database holding the action journal.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the journal database at path, ensures the data
// directory exists, and creates the schema.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open activity db: %w", err)
	}
	// WAL plus a busy timeout so concurrent action handlers wait instead of
	// getting SQLITE_BUSY.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)

	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS actions (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    action TEXT NOT NULL,
    target TEXT NOT NULL,
    ok INTEGER NOT NULL,
    message TEXT NOT NULL,
    timestamp DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_actions_timestamp ON actions(timestamp);
`)
	return err
}

// Record stores an action outcome. A zero Timestamp is filled with now.
func (s *Store) Record(e Entry) error {
	ts := e.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	ok := 0
	if e.OK {
		ok = 1
	}
	_, err := s.db.Exec(
		`INSERT INTO actions (action, target, ok, message, timestamp) VALUES (?, ?, ?, ?, ?)`,
		e.Action, e.Target, ok, e.Message, ts.UTC(),
	)
	return err
}

// Recent returns the latest entries, newest first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	rows, err := s.db.Query(
		`SELECT id, action, target, ok, message, timestamp FROM actions ORDER BY timestamp DESC, id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var ok int
		if err := rows.Scan(&e.ID, &e.Action, &e.Target, &ok, &e.Message, &e.Timestamp); err != nil {
			return nil, err
		}
		e.OK = ok == 1
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Purge deletes entries older than the cutoff and reports how many went.
func (s *Store) Purge(olderThan time.Time) (int64, error) {
	res, err := s.db.Exec(`DELETE FROM actions WHERE timestamp < ?`, olderThan.UTC())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// StartCleanupScheduler purges entries older than retentionDays on the given
// interval. The returned function stops the scheduler.
func (s *Store) StartCleanupScheduler(retentionDays int, interval time.Duration) func() {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-ticker.C:
				cutoff := time.Now().AddDate(0, 0, -retentionDays)
				if _, err := s.Purge(cutoff); err != nil {
					fmt.Fprintf(os.Stderr, "activity cleanup: %v\n", err)
				}
			case <-done:
				ticker.Stop()
				return
			}
		}
	}()
	return func() { close(done) }
}
