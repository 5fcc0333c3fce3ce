// Package sqlite provides a SQLite-backed implementation of the
// storage.Storage interface using database/sql.
//
// The blank import registers the "sqlite3" driver with database/sql.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/aanand-mishra/names-api/internal/config"
	"github.com/aanand-mishra/names-api/internal/storage"
	"github.com/aanand-mishra/names-api/internal/types"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
	CREATE TABLE IF NOT EXISTS names (
		id   INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT    NOT NULL,
		age  INTEGER NOT NULL,
		city TEXT    NOT NULL DEFAULT ''
	)
`

// SQLite is the SQLite implementation of storage.Storage.
// *sql.DB is a connection pool and is safe for concurrent use.
type SQLite struct {
	Db *sql.DB
}

var _ storage.Storage = (*SQLite)(nil)

// New opens the database file at cfg.Path, creates the names table if it
// does not already exist, and returns a ready-to-use *SQLite.
func New(cfg config.Storage) (*SQLite, error) {
	// SQLite allows a single writer at a time; the busy timeout makes
	// concurrent writers wait instead of failing with SQLITE_BUSY.
	db, err := sql.Open("sqlite3", cfg.Path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: open db: %w", err)
	}

	switch {
	case isInMemory(cfg.Path):
		// Each connection to :memory: opens its own empty database, so the
		// pool must hold exactly one connection that never expires.
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(0)
		db.SetConnMaxIdleTime(0)
	case cfg.MaxOpenConns > 0:
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}

	// CREATE TABLE IF NOT EXISTS is idempotent, so it runs on every startup.
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite.New: create table: %w", err)
	}

	return &SQLite{Db: db}, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// CreateName inserts a new row and returns it with the generated id.
// Values are bound through ? placeholders, never concatenated into SQL.
// ─────────────────────────────────────────────────────────────────────────────
func (s *SQLite) CreateName(ctx context.Context, n types.Name) (types.Name, error) {
	result, err := s.Db.ExecContext(ctx,
		"INSERT INTO names (name, age, city) VALUES (?, ?, ?)",
		n.Name, n.Age, n.City,
	)
	if err != nil {
		return types.Name{}, fmt.Errorf("CreateName: exec: %w", err)
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return types.Name{}, fmt.Errorf("CreateName: last insert id: %w", err)
	}

	n.ID = lastID
	return n, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// GetNameByID fetches exactly one row matched by primary key.
// QueryRow defers the "no rows" error until Scan, where it is translated
// into storage.ErrNotFound.
// ─────────────────────────────────────────────────────────────────────────────
func (s *SQLite) GetNameByID(ctx context.Context, id int64) (types.Name, error) {
	var n types.Name

	err := s.Db.QueryRowContext(ctx,
		"SELECT id, name, age, city FROM names WHERE id = ? LIMIT 1", id,
	).Scan(&n.ID, &n.Name, &n.Age, &n.City)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Name{}, fmt.Errorf("GetNameByID %d: %w", id, storage.ErrNotFound)
		}
		return types.Name{}, fmt.Errorf("GetNameByID: scan: %w", err)
	}

	return n, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// GetNames returns all rows ordered by id.
// ─────────────────────────────────────────────────────────────────────────────
func (s *SQLite) GetNames(ctx context.Context) ([]types.Name, error) {
	rows, err := s.Db.QueryContext(ctx,
		"SELECT id, name, age, city FROM names ORDER BY id",
	)
	if err != nil {
		return nil, fmt.Errorf("GetNames: query: %w", err)
	}
	defer rows.Close()

	// Non-nil so an empty table encodes as [] rather than null.
	names := make([]types.Name, 0)

	for rows.Next() {
		var n types.Name
		if err := rows.Scan(&n.ID, &n.Name, &n.Age, &n.City); err != nil {
			return nil, fmt.Errorf("GetNames: scan row: %w", err)
		}
		names = append(names, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("GetNames: rows iteration: %w", err)
	}

	return names, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// UpdateName writes only the columns set in p. A nil pointer binds as NULL,
// and COALESCE then keeps the stored value.
// ─────────────────────────────────────────────────────────────────────────────
func (s *SQLite) UpdateName(ctx context.Context, id int64, p types.Patch) (types.Name, error) {
	result, err := s.Db.ExecContext(ctx, `
		UPDATE names SET
			name = COALESCE(?, name),
			age  = COALESCE(?, age),
			city = COALESCE(?, city)
		WHERE id = ?`,
		p.Name, p.Age, p.City, id,
	)
	if err != nil {
		return types.Name{}, fmt.Errorf("UpdateName: exec: %w", err)
	}

	if err := requireOneRow(result, "UpdateName", id); err != nil {
		return types.Name{}, err
	}

	// Re-read so the caller sees exactly what is stored.
	return s.GetNameByID(ctx, id)
}

// ─────────────────────────────────────────────────────────────────────────────
// DeleteNameByID removes a row by primary key.
// ─────────────────────────────────────────────────────────────────────────────
func (s *SQLite) DeleteNameByID(ctx context.Context, id int64) error {
	result, err := s.Db.ExecContext(ctx, "DELETE FROM names WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("DeleteNameByID: exec: %w", err)
	}

	return requireOneRow(result, "DeleteNameByID", id)
}

// Ping checks that the database file can be reached.
func (s *SQLite) Ping(ctx context.Context) error {
	return s.Db.PingContext(ctx)
}

// Close closes the underlying connection pool.
func (s *SQLite) Close() error {
	return s.Db.Close()
}

func isInMemory(path string) bool {
	return path == ":memory:" || strings.HasPrefix(path, "file::memory:") || strings.Contains(path, "mode=memory")
}

func requireOneRow(result sql.Result, op string, id int64) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: rows affected: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s %d: %w", op, id, storage.ErrNotFound)
	}
	return nil
}
