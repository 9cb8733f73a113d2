// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"

	"github.com/ZeldaFan0225/Ratchet-Chat-sub002/internal/logger"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// sqliteSessionStore is the SQLite-backed implementation of [SessionStore].
// A single table maps blob keys to opaque values; the database file lives
// next to the client's other local state. DSN ":memory:" gives an ephemeral
// store for tests and throwaway sessions.
type sqliteSessionStore struct {
	db      *sql.DB
	builder sq.StatementBuilderType
	log     *logger.Logger
}

// NewSQLiteSessionStore opens (creating if needed) the SQLite database at
// dsn, runs pending schema migrations, and returns the store. Returns an
// error if the database cannot be opened or migration fails.
func NewSQLiteSessionStore(dsn string, log *logger.Logger) (SessionStore, error) {
	if dsn == "" {
		dsn = ":memory:"
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite session store: %w", err)
	}

	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate session store: %w", err)
	}

	log.Debug().Str("dsn", dsn).Msg("session store ready")

	return &sqliteSessionStore{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Question),
		log:     log,
	}, nil
}

func migrate(db *sql.DB) error {
	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

// Get implements [SessionStore].
func (s *sqliteSessionStore) Get(ctx context.Context, key string) ([]byte, error) {
	query, args, err := s.builder.
		Select("value").
		From("session_blobs").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get query: %w", err)
	}

	var value []byte
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrBlobNotFound, key)
		}
		return nil, fmt.Errorf("get blob %q: %w", key, err)
	}
	return value, nil
}

// Put implements [SessionStore].
func (s *sqliteSessionStore) Put(ctx context.Context, key string, value []byte) error {
	query, args, err := s.builder.
		Insert("session_blobs").
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP").
		ToSql()
	if err != nil {
		return fmt.Errorf("build put query: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("put blob %q: %w", key, err)
	}
	return nil
}

// Delete implements [SessionStore]. Deleting a missing key is a no-op.
func (s *sqliteSessionStore) Delete(ctx context.Context, key string) error {
	query, args, err := s.builder.
		Delete("session_blobs").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete blob %q: %w", key, err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *sqliteSessionStore) Close() error {
	return s.db.Close()
}
