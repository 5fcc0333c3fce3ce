// Package postgres implements storage.Storage on PostgreSQL through the pgx
// database/sql driver.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/aanand-mishra/names-api/internal/config"
	"github.com/aanand-mishra/names-api/internal/storage"
	"github.com/aanand-mishra/names-api/internal/types"
)

const schema = `
	CREATE TABLE IF NOT EXISTS names (
		id   BIGSERIAL PRIMARY KEY,
		name TEXT      NOT NULL,
		age  INTEGER   NOT NULL CHECK (age > 0),
		city TEXT      NOT NULL DEFAULT ''
	)
`

// Postgres persists name records in a PostgreSQL table.
type Postgres struct {
	db *sql.DB
}

var _ storage.Storage = (*Postgres)(nil)

// New connects using cfg.DSN, verifies the connection and ensures the names
// table exists.
func New(ctx context.Context, cfg config.Storage) (*Postgres, error) {
	db, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("postgres.New: open db: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
		db.SetMaxIdleConns(cfg.MaxOpenConns)
	}
	db.SetConnMaxIdleTime(5 * time.Minute)

	store, err := NewFromDB(ctx, db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

// NewFromDB wraps an existing pool. The schema is created if missing.
func NewFromDB(ctx context.Context, db *sql.DB) (*Postgres, error) {
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("postgres.New: ping: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("postgres.New: create table: %w", err)
	}
	return &Postgres{db: db}, nil
}

// CreateName inserts n and returns it with the id assigned by the sequence.
func (p *Postgres) CreateName(ctx context.Context, n types.Name) (types.Name, error) {
	err := p.db.QueryRowContext(ctx,
		`INSERT INTO names (name, age, city) VALUES ($1, $2, $3) RETURNING id`,
		n.Name, n.Age, n.City,
	).Scan(&n.ID)
	if err != nil {
		return types.Name{}, fmt.Errorf("CreateName: %w", err)
	}
	return n, nil
}

// GetNameByID returns one record or storage.ErrNotFound.
func (p *Postgres) GetNameByID(ctx context.Context, id int64) (types.Name, error) {
	var n types.Name
	err := p.db.QueryRowContext(ctx,
		`SELECT id, name, age, city FROM names WHERE id = $1`, id,
	).Scan(&n.ID, &n.Name, &n.Age, &n.City)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Name{}, fmt.Errorf("GetNameByID %d: %w", id, storage.ErrNotFound)
		}
		return types.Name{}, fmt.Errorf("GetNameByID: %w", err)
	}
	return n, nil
}

// GetNames returns all records ordered by id.
func (p *Postgres) GetNames(ctx context.Context) ([]types.Name, error) {
	rows, err := p.db.QueryContext(ctx, `SELECT id, name, age, city FROM names ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("GetNames: query: %w", err)
	}
	defer rows.Close()

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

// UpdateName writes the columns set in patch and returns the stored value in
// the same round trip. Nil fields bind as NULL and COALESCE keeps the column.
func (p *Postgres) UpdateName(ctx context.Context, id int64, patch types.Patch) (types.Name, error) {
	var out types.Name
	err := p.db.QueryRowContext(ctx, `
		UPDATE names SET
			name = COALESCE($1, name),
			age  = COALESCE($2, age),
			city = COALESCE($3, city)
		WHERE id = $4
		RETURNING id, name, age, city`,
		patch.Name, patch.Age, patch.City, id,
	).Scan(&out.ID, &out.Name, &out.Age, &out.City)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Name{}, fmt.Errorf("UpdateName %d: %w", id, storage.ErrNotFound)
		}
		return types.Name{}, fmt.Errorf("UpdateName: %w", err)
	}
	return out, nil
}

// DeleteNameByID removes one record or reports storage.ErrNotFound.
func (p *Postgres) DeleteNameByID(ctx context.Context, id int64) error {
	res, err := p.db.ExecContext(ctx, `DELETE FROM names WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("DeleteNameByID: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("DeleteNameByID: rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("DeleteNameByID %d: %w", id, storage.ErrNotFound)
	}
	return nil
}

// Ping checks connectivity.
func (p *Postgres) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}

// Close closes the pool.
func (p *Postgres) Close() error {
	return p.db.Close()
}
