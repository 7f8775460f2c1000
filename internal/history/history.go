// Package history records what the user did with articles (viewed, opened,
// saved, dismissed) in a local SQLite log.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Event actions.
const (
	ActionViewed     = "viewed"
	ActionOpened     = "opened"
	ActionSaved      = "saved"
	ActionUnsaved    = "unsaved"
	ActionDismissed  = "dismissed"
	ActionDiscovered = "discovered"
)

type Event struct {
	ID        int64
	ArticleID string
	Title     string
	Source    string
	Action    string
	CreatedAt time.Time
}

type Log struct {
	readDB  *sql.DB
	writeDB *sql.DB
}

func Open(dbPath string) (*Log, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating history dir: %w", err)
	}

	writeDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening write db: %w", err)
	}
	writeDB.SetMaxOpenConns(1)

	readDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		writeDB.Close()
		return nil, fmt.Errorf("opening read db: %w", err)
	}

	l := &Log{readDB: readDB, writeDB: writeDB}
	if err := l.init(); err != nil {
		l.Close()
		return nil, err
	}
	return l, nil
}

func (l *Log) init() error {
	_, err := l.writeDB.Exec(`
		CREATE TABLE IF NOT EXISTS events (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			article_id TEXT NOT NULL,
			title      TEXT NOT NULL DEFAULT '',
			source     TEXT NOT NULL DEFAULT '',
			action     TEXT NOT NULL,
			created_at DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_events_created ON events(created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_events_action ON events(action);
	`)
	if err != nil {
		return fmt.Errorf("initializing schema: %w", err)
	}
	return nil
}

func (l *Log) Close() error {
	var errs []error
	if l.readDB != nil {
		errs = append(errs, l.readDB.Close())
	}
	if l.writeDB != nil {
		errs = append(errs, l.writeDB.Close())
	}
	for _, e := range errs {
		if e != nil {
			return e
		}
	}
	return nil
}

// Record appends one event. A zero CreatedAt means now.
func (l *Log) Record(e Event) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	_, err := l.writeDB.Exec(`
		INSERT INTO events (article_id, title, source, action, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, e.ArticleID, e.Title, e.Source, e.Action, e.CreatedAt)
	if err != nil {
		return fmt.Errorf("recording event: %w", err)
	}
	return nil
}

// Recent returns the newest events, capped at limit.
func (l *Log) Recent(limit int) ([]Event, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := l.readDB.Query(`
		SELECT id, article_id, title, source, action, created_at
		FROM events ORDER BY created_at DESC, id DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.ID, &e.ArticleID, &e.Title, &e.Source, &e.Action, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// Counts returns the number of events per action.
func (l *Log) Counts() (map[string]int, error) {
	rows, err := l.readDB.Query(`SELECT action, COUNT(*) FROM events GROUP BY action`)
	if err != nil {
		return nil, fmt.Errorf("counting events: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var action string
		var n int
		if err := rows.Scan(&action, &n); err != nil {
			return nil, fmt.Errorf("scanning count: %w", err)
		}
		counts[action] = n
	}
	return counts, rows.Err()
}

// Prune deletes events older than the retention window and returns how many
// were removed.
func (l *Log) Prune(retention time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retention)
	res, err := l.writeDB.Exec(`DELETE FROM events WHERE created_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("pruning events: %w", err)
	}
	return res.RowsAffected()
}

// Stats returns the event count and the database file size.
func (l *Log) Stats(dbPath string) (int, int64, error) {
	var count int
	if err := l.readDB.QueryRow(`SELECT COUNT(*) FROM events`).Scan(&count); err != nil {
		return 0, 0, fmt.Errorf("counting events: %w", err)
	}
	info, err := os.Stat(dbPath)
	if err != nil {
		return count, 0, fmt.Errorf("reading db size: %w", err)
	}
	return count, info.Size(), nil
}
