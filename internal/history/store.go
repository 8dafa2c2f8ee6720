// Package history keeps a SQLite record of the lines consolefmt has emitted.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/harrison/consolefmt/internal/console"
	_ "github.com/mattn/go-sqlite3"
)

// timeLayout is fixed-width so created_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Entry is one recorded console call.
type Entry struct {
	ID        string
	Level     console.Level
	Format    string
	Args      []string
	Text      string
	CreatedAt time.Time
}

// Store manages the history database.
type Store struct {
	db     *sql.DB
	dbPath string
}

// NewStore opens (creating if needed) the database at dbPath and migrates it.
// ":memory:" opens a private in-memory database.
func NewStore(dbPath string) (*Store, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("history database path is empty")
	}

	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if dbPath == ":memory:" {
		// every connection would otherwise get its own empty database
		db.SetMaxOpenConns(1)
	}

	pragmas := []string{
		"PRAGMA busy_timeout=5000",
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("set %s: %w", pragma, err)
		}
	}

	s := &Store{db: db, dbPath: dbPath}
	if err := s.ApplyMigrations(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return s, nil
}

// Path returns the database path.
func (s *Store) Path() string {
	return s.dbPath
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Record inserts e, assigning an ID and timestamp when they are unset.
func (s *Store) Record(ctx context.Context, e *Entry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}

	args := e.Args
	if args == nil {
		args = []string{}
	}
	argsJSON, err := json.Marshal(args)
	if err != nil {
		return fmt.Errorf("marshal args: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO entries (id, level, format, args, text, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		e.ID,
		strings.ToLower(e.Level.String()),
		e.Format,
		string(argsJSON),
		e.Text,
		e.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("insert entry: %w", err)
	}
	return nil
}

// Query filters entries returned by List.
type Query struct {
	// Limit caps the number of entries; 0 means no limit.
	Limit int
	// MinLevel drops entries below this channel.
	MinLevel console.Level
}

// Recent returns up to limit entries, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]*Entry, error) {
	return s.List(ctx, Query{Limit: limit, MinLevel: console.LevelDebug})
}

// List returns entries matching q, newest first.
func (s *Store) List(ctx context.Context, q Query) ([]*Entry, error) {
	var names []string
	var params []any
	for _, l := range []console.Level{console.LevelDebug, console.LevelLog, console.LevelInfo, console.LevelWarn, console.LevelError} {
		if l.Enabled(q.MinLevel) {
			names = append(names, "?")
			params = append(params, strings.ToLower(l.String()))
		}
	}

	query := `SELECT id, level, format, args, text, created_at FROM entries
		WHERE level IN (` + strings.Join(names, ", ") + `)
		ORDER BY created_at DESC, rowid DESC`
	if q.Limit > 0 {
		query += ` LIMIT ?`
		params = append(params, q.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}
	return entries, nil
}

func scanEntry(rows *sql.Rows) (*Entry, error) {
	e := &Entry{}
	var level, argsJSON, createdAt string
	if err := rows.Scan(&e.ID, &level, &e.Format, &argsJSON, &e.Text, &createdAt); err != nil {
		return nil, fmt.Errorf("scan entry: %w", err)
	}

	lvl, err := console.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("entry %s: %w", e.ID, err)
	}
	e.Level = lvl

	if err := json.Unmarshal([]byte(argsJSON), &e.Args); err != nil {
		return nil, fmt.Errorf("unmarshal args for entry %s: %w", e.ID, err)
	}

	e.CreatedAt, err = time.Parse(timeLayout, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse timestamp for entry %s: %w", e.ID, err)
	}
	return e, nil
}

// Count returns the number of stored entries.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM entries`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count entries: %w", err)
	}
	return n, nil
}

// Clear deletes all entries and returns how many were removed.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM entries`)
	if err != nil {
		return 0, fmt.Errorf("clear entries: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("get rows affected: %w", err)
	}
	return n, nil
}
