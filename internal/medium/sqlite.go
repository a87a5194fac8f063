package medium

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/magangjo/backoffice/internal/dbx"
	"github.com/magangjo/backoffice/internal/medium/migrations"
)

// SQLite persists keys in a single local_store table. It is the durable
// medium for normal operation; the file lives wherever the configured DSN
// points and survives process restarts.
type SQLite struct {
	db *sql.DB
}

// RunMigrations applies the embedded goose migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return goose.UpContext(ctx, db, ".")
}

// OpenSQLite opens (creating if needed) the sqlite database at dsn and
// applies migrations.
func OpenSQLite(ctx context.Context, dsn string) (*SQLite, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite medium: %w", err)
	}
	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate sqlite medium: %w", err)
	}
	return NewSQLite(db), nil
}

// NewSQLite wraps an already-opened, already-migrated database handle.
func NewSQLite(db *sql.DB) *SQLite {
	return &SQLite{db: db}
}

func (m *SQLite) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := m.db.QueryRowContext(ctx, `SELECT value FROM local_store WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get local_store[%s]: %w", key, err)
	}
	return value, nil
}

func (m *SQLite) Set(ctx context.Context, key string, value []byte) error {
	_, err := m.db.ExecContext(ctx, `
		INSERT INTO local_store (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set local_store[%s]: %w", key, err)
	}
	return nil
}

func (m *SQLite) Delete(ctx context.Context, key string) error {
	_, err := m.db.ExecContext(ctx, `DELETE FROM local_store WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete local_store[%s]: %w", key, err)
	}
	return nil
}

// DeleteMany removes the given keys in one transaction so a namespace
// reset is all-or-nothing.
func (m *SQLite) DeleteMany(ctx context.Context, keys []string) error {
	return dbx.WithTx(ctx, m.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for _, key := range keys {
			if _, err := tx.ExecContext(ctx, `DELETE FROM local_store WHERE key = ?`, key); err != nil {
				return fmt.Errorf("failed to delete local_store[%s]: %w", key, err)
			}
		}
		return nil
	})
}

func (m *SQLite) Keys(ctx context.Context) ([]string, error) {
	rows, err := m.db.QueryContext(ctx, `SELECT key FROM local_store`)
	if err != nil {
		return nil, fmt.Errorf("failed to list local_store keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("failed to scan local_store key: %w", err)
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate local_store keys: %w", err)
	}
	return keys, nil
}

func (m *SQLite) Clear(ctx context.Context) error {
	_, err := m.db.ExecContext(ctx, `DELETE FROM local_store`)
	if err != nil {
		return fmt.Errorf("failed to clear local_store: %w", err)
	}
	return nil
}

func (m *SQLite) Close() error {
	return m.db.Close()
}

var (
	_ Medium       = (*SQLite)(nil)
	_ BatchDeleter = (*SQLite)(nil)
)
