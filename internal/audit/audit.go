// Package audit records tool invocations in a local SQLite database.
package audit

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS tool_calls (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	tool        TEXT NOT NULL,
	arguments   TEXT NOT NULL DEFAULT '',
	status      TEXT NOT NULL,
	error       TEXT NOT NULL DEFAULT '',
	duration_ms INTEGER NOT NULL DEFAULT 0,
	created_at  TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_tool_calls_created_at ON tool_calls(created_at);
`

// Entry is one recorded tool invocation.
type Entry struct {
	ID        int64         `json:"id"`
	Tool      string        `json:"tool"`
	Arguments string        `json:"arguments,omitempty"`
	Status    string        `json:"status"` // "ok" or "error"; derived from Error when empty
	Error     string        `json:"error,omitempty"`
	Duration  time.Duration `json:"duration"`
	CreatedAt time.Time     `json:"created_at"`
}

// Logger appends tool invocations to a SQLite database.
type Logger struct {
	db *sql.DB
}

// Open opens or creates the audit database at path and applies the
// schema. WAL mode keeps writers from blocking readers.
func Open(path string) (*Logger, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open audit db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set journal mode: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply audit schema: %w", err)
	}
	return &Logger{db: db}, nil
}

// Log records one invocation.
func (l *Logger) Log(ctx context.Context, e Entry) error {
	status := e.Status
	if status == "" {
		status = "ok"
		if e.Error != "" {
			status = "error"
		}
	}
	createdAt := e.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := l.db.ExecContext(ctx, `
		INSERT INTO tool_calls (tool, arguments, status, error, duration_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		e.Tool, e.Arguments, status, e.Error, e.Duration.Milliseconds(), createdAt,
	)
	if err != nil {
		return fmt.Errorf("insert tool call: %w", err)
	}
	return nil
}

// Recent returns the newest entries, most recent first.
func (l *Logger) Recent(ctx context.Context, limit int) ([]Entry, error) {
	rows, err := l.db.QueryContext(ctx, `
		SELECT id, tool, arguments, status, error, duration_ms, created_at
		FROM tool_calls ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query tool calls: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var ms int64
		if err := rows.Scan(&e.ID, &e.Tool, &e.Arguments, &e.Status, &e.Error, &ms, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan tool call: %w", err)
		}
		e.Duration = time.Duration(ms) * time.Millisecond
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tool calls: %w", err)
	}
	return entries, nil
}

// Close closes the underlying database.
func (l *Logger) Close() error {
	return l.db.Close()
}
